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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/folio-cms/conformance/test/api"
	"github.com/folio-cms/conformance/test/api/fixtures"
)

var _ = Describe("Post Management", func() {
	Context("When creating a post", func() {
		var session *api.Session

		BeforeEach(func() {
			session = fixtures.LoginWithSession(client, ctx, config)
		})

		Describe("Given a valid payload", func() {
			It("should return the post with an identifier and the submitted fields", func() {
				payload := api.NewPostPayload().
					WithTitle("T").
					WithSummary("S").
					WithContent("C").
					Build()

				post := fixtures.CreatePostWithCleanup(client, ctx, session, payload)
				fixtures.VerifyPostMatches(post, payload)

				fetched, err := client.GetPost(ctx, post.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched.ID).To(Equal(post.ID))
				fixtures.VerifyPostMatches(fetched, payload)
			})
		})
	})

	Context("When listing posts", func() {
		It("should return a posts array", func() {
			posts, err := client.ListPosts(ctx, api.Pagination{})
			Expect(err).NotTo(HaveOccurred())
			Expect(posts.Posts).NotTo(BeNil(), "Response should contain a posts array")

			GinkgoWriter.Printf("Found %d posts\n", len(posts.Posts))
		})
	})

	Context("When retrieving a specific post", func() {
		Describe("Given the post exists", func() {
			It("should return its title and content", func() {
				first := fixtures.FirstPostOrSkip(client, ctx)

				document, err := client.GetPostDocument(ctx, first.ID)
				Expect(err).NotTo(HaveOccurred())
				fixtures.ExpectFields(document, "_id", "title", "content")
				Expect(document["_id"]).To(Equal(first.ID))
				Expect(document["title"]).To(BeAssignableToTypeOf(""))
				Expect(document["title"]).NotTo(BeEmpty())
			})
		})

		Describe("Given the post does not exist", func() {
			It("should return a not found error", func() {
				_, err := client.GetPost(ctx, "000000000000000000000000")
				fixtures.ExpectNotFound(err)
			})
		})
	})

	Context("When updating a post", func() {
		var (
			session *api.Session
			post    *api.Post
		)

		BeforeEach(func() {
			session = fixtures.LoginWithSession(client, ctx, config)
			post = fixtures.CreatePostWithCleanup(client, ctx, session,
				api.NewPostPayload().
					WithSummary("This is a test post that will be updated").
					WithContent("This is the content of the test post that will be updated").
					Build())
		})

		Describe("Given valid update parameters", func() {
			It("should reflect the new fields in the response and on re-fetch", func() {
				update := api.NewPostPayload().
					WithTitle("Updated Test Post").
					WithSummary("This is an updated test post").
					WithContent("This is the updated content of the test post").
					Build()

				updated, err := client.UpdatePost(ctx, session, post.ID, update)
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Title).To(Equal(update.Title))

				fetched, err := client.GetPost(ctx, post.ID)
				Expect(err).NotTo(HaveOccurred())
				fixtures.VerifyPostMatches(fetched, update)
				Expect(fetched.Title).NotTo(Equal(post.Title))
				Expect(fetched.Summary).NotTo(Equal(post.Summary))
			})
		})
	})

	Context("When deleting a post", func() {
		var session *api.Session

		BeforeEach(func() {
			session = fixtures.LoginWithSession(client, ctx, config)
		})

		Describe("Given the post exists", func() {
			It("should delete it so that it can no longer be fetched", func() {
				post := fixtures.CreatePostWithCleanup(client, ctx, session,
					api.NewPostPayload().
						WithSummary("This is a test post that will be deleted").
						WithContent("This is the content of the test post that will be deleted").
						Build())

				result, err := client.DeletePost(ctx, session, post.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())

				_, err = client.GetPost(ctx, post.ID)
				fixtures.ExpectNotFound(err)
			})
		})

		Describe("Given the post was already deleted", func() {
			It("should return not found on the second delete", func() {
				post := fixtures.CreatePostWithCleanup(client, ctx, session, api.NewPostPayload().Build())

				_, err := client.DeletePost(ctx, session, post.ID)
				Expect(err).NotTo(HaveOccurred())

				_, err = client.DeletePost(ctx, session, post.ID)
				fixtures.ExpectNotFound(err)
			})
		})
	})
})
