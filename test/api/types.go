/*
Copyright 2025-2026 the Folio CMS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse is returned by resource deletion.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// PostInput is the create/update body for a post.  ID is only sent on update.
type PostInput struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// Post is a post as returned by the API.
type Post struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	Cover     string `json:"cover,omitempty"`
	Author    any    `json:"author,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// PostList is the listing envelope for posts.
type PostList struct {
	Posts []Post `json:"posts"`
}

// ProjectInput is the create/update body for a project.
type ProjectInput struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	Demo    string `json:"demo"`
}

// Project is a project as returned by the API.
type Project struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	Demo      string `json:"demo"`
	Cover     string `json:"cover,omitempty"`
	Author    any    `json:"author,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ProjectList is the listing envelope for projects.
type ProjectList struct {
	Projects []Project `json:"projects"`
}
