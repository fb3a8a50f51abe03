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

import (
	"fmt"
	"net/url"
	"strconv"
)

// Pagination selects a page of a listing. Zero values are omitted from the query.
type Pagination struct {
	Page  int
	Limit int
}

// Query renders the pagination as a query string including the leading '?',
// or the empty string when nothing is set.
func (p Pagination) Query() string {
	values := url.Values{}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if len(values) == 0 {
		return ""
	}

	return "?" + values.Encode()
}

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Authentication endpoints.
func (e *Endpoints) Login() string {
	return "/login"
}

// Post endpoints.
func (e *Endpoints) ListPosts(pagination Pagination) string {
	return "/post" + pagination.Query()
}

func (e *Endpoints) CreatePost() string {
	return "/post"
}

// UpdatePost has no identifier in the path, it travels in the body.
func (e *Endpoints) UpdatePost() string {
	return "/post"
}

func (e *Endpoints) GetPost(postID string) string {
	return fmt.Sprintf("/post/%s", url.PathEscape(postID))
}

func (e *Endpoints) DeletePost(postID string) string {
	return fmt.Sprintf("/post/%s", url.PathEscape(postID))
}

// Project endpoints.
func (e *Endpoints) ListProjects(pagination Pagination) string {
	return "/project" + pagination.Query()
}

func (e *Endpoints) CreateProject() string {
	return "/project"
}

func (e *Endpoints) UpdateProject() string {
	return "/project"
}

func (e *Endpoints) GetProject(projectID string) string {
	return fmt.Sprintf("/project/%s", url.PathEscape(projectID))
}

func (e *Endpoints) DeleteProject(projectID string) string {
	return fmt.Sprintf("/project/%s", url.PathEscape(projectID))
}
