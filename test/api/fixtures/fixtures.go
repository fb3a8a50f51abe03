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

// Package fixtures holds Ginkgo helpers shared by the scenario suites.
//
//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package fixtures

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/folio-cms/conformance/test/api"
)

// LoginWithSession logs in as the configured test user and fails the test if that is rejected.
func LoginWithSession(client *api.APIClient, ctx context.Context, config *api.TestConfig) *api.Session {
	GinkgoHelper()

	_, session, err := client.Login(ctx, config.Credentials())
	Expect(err).NotTo(HaveOccurred(), "Login with the configured test credentials should succeed")
	Expect(session.Token).NotTo(BeEmpty())

	return session
}

// CreatePostWithCleanup creates a post and schedules its deletion.  Cleanup runs whether
// the test passes or fails, and tolerates the test having deleted the post itself.
func CreatePostWithCleanup(client *api.APIClient, ctx context.Context, session *api.Session, payload api.PostInput) *api.Post {
	GinkgoHelper()

	post, err := client.CreatePost(ctx, session, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(post.ID).NotTo(BeEmpty(), "Created post should carry an _id")
	Expect(post.Title).To(Equal(payload.Title))

	GinkgoWriter.Printf("Created post with ID: %s\n", post.ID)

	postID := post.ID

	DeferCleanup(func(ctx context.Context) {
		if _, err := client.DeletePost(ctx, session, postID); err != nil {
			if api.IsNotFound(err) {
				return
			}

			GinkgoWriter.Printf("Warning: Failed to delete post %s: %v\n", postID, err)

			return
		}

		GinkgoWriter.Printf("Successfully deleted post: %s\n", postID)
	})

	return post
}

// CreateProjectWithCleanup creates a project and schedules its deletion.
func CreateProjectWithCleanup(client *api.APIClient, ctx context.Context, session *api.Session, payload api.ProjectInput) *api.Project {
	GinkgoHelper()

	project, err := client.CreateProject(ctx, session, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(project.ID).NotTo(BeEmpty(), "Created project should carry an _id")
	Expect(project.Title).To(Equal(payload.Title))

	GinkgoWriter.Printf("Created project with ID: %s\n", project.ID)

	projectID := project.ID

	DeferCleanup(func(ctx context.Context) {
		if _, err := client.DeleteProject(ctx, session, projectID); err != nil {
			if api.IsNotFound(err) {
				return
			}

			GinkgoWriter.Printf("Warning: Failed to delete project %s: %v\n", projectID, err)

			return
		}

		GinkgoWriter.Printf("Successfully deleted project: %s\n", projectID)
	})

	return project
}

// FirstPostOrSkip returns the first listed post, skipping the test when there are none.
func FirstPostOrSkip(client *api.APIClient, ctx context.Context) api.Post {
	GinkgoHelper()

	posts, err := client.ListPosts(ctx, api.Pagination{})
	Expect(err).NotTo(HaveOccurred())

	if len(posts.Posts) == 0 {
		Skip("No posts available to test")
	}

	return posts.Posts[0]
}

// FirstProjectOrSkip returns the first listed project, skipping the test when there are none.
func FirstProjectOrSkip(client *api.APIClient, ctx context.Context) api.Project {
	GinkgoHelper()

	projects, err := client.ListProjects(ctx, api.Pagination{})
	Expect(err).NotTo(HaveOccurred())

	if len(projects.Projects) == 0 {
		Skip("No projects available to test")
	}

	return projects.Projects[0]
}

// VerifyPostMatches checks every writable field of a post against the payload it was written with.
func VerifyPostMatches(post *api.Post, payload api.PostInput) {
	GinkgoHelper()

	Expect(post.Title).To(Equal(payload.Title))
	Expect(post.Summary).To(Equal(payload.Summary))
	Expect(post.Content).To(Equal(payload.Content))
}

// VerifyProjectMatches checks every writable field of a project against the payload it was written with.
func VerifyProjectMatches(project *api.Project, payload api.ProjectInput) {
	GinkgoHelper()

	Expect(project.Title).To(Equal(payload.Title))
	Expect(project.Summary).To(Equal(payload.Summary))
	Expect(project.Content).To(Equal(payload.Content))
	Expect(project.Demo).To(Equal(payload.Demo))
}

// ExpectNotFound asserts err is a 404 from the API.
func ExpectNotFound(err error) {
	GinkgoHelper()

	Expect(err).To(HaveOccurred())
	Expect(api.IsNotFound(err)).To(BeTrue(), "Expected HTTP 404, got: %v", err)
}

// ExpectFields asserts the raw resource carries every named key.
func ExpectFields(document map[string]any, keys ...string) {
	GinkgoHelper()

	for _, key := range keys {
		Expect(document).To(HaveKey(key), "Response should include %q", key)
	}
}
