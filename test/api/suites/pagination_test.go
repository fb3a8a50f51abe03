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

var _ = Describe("Pagination", func() {
	Context("When listing with a limit", func() {
		It("should never return more posts than the limit", func() {
			posts, err := client.ListPosts(ctx, api.Pagination{Page: 1, Limit: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(posts.Posts).NotTo(BeNil())
			Expect(len(posts.Posts)).To(BeNumerically("<=", 5))
		})

		It("should never return more projects than the limit", func() {
			projects, err := client.ListProjects(ctx, api.Pagination{Page: 1, Limit: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(projects.Projects).NotTo(BeNil())
			Expect(len(projects.Projects)).To(BeNumerically("<=", 5))
		})
	})

	Context("When paging through results", func() {
		var session *api.Session

		BeforeEach(func() {
			session = fixtures.LoginWithSession(client, ctx, config)
		})

		Describe("Given at least two posts exist", func() {
			It("should not repeat a post on consecutive pages", func() {
				fixtures.CreatePostWithCleanup(client, ctx, session, api.NewPostPayload().Build())
				fixtures.CreatePostWithCleanup(client, ctx, session, api.NewPostPayload().Build())

				first, err := client.ListPosts(ctx, api.Pagination{Page: 1, Limit: 1})
				Expect(err).NotTo(HaveOccurred())
				Expect(first.Posts).To(HaveLen(1))

				second, err := client.ListPosts(ctx, api.Pagination{Page: 2, Limit: 1})
				Expect(err).NotTo(HaveOccurred())
				Expect(second.Posts).To(HaveLen(1))

				Expect(api.SharedIDs(api.PostIDs(first), api.PostIDs(second))).To(BeEmpty())
			})
		})

		Describe("Given at least two projects exist", func() {
			It("should not repeat a project on consecutive pages", func() {
				fixtures.CreateProjectWithCleanup(client, ctx, session, api.NewProjectPayload().Build())
				fixtures.CreateProjectWithCleanup(client, ctx, session, api.NewProjectPayload().Build())

				first, err := client.ListProjects(ctx, api.Pagination{Page: 1, Limit: 1})
				Expect(err).NotTo(HaveOccurred())
				Expect(first.Projects).To(HaveLen(1))

				second, err := client.ListProjects(ctx, api.Pagination{Page: 2, Limit: 1})
				Expect(err).NotTo(HaveOccurred())
				Expect(second.Projects).To(HaveLen(1))

				Expect(api.SharedIDs(api.ProjectIDs(first), api.ProjectIDs(second))).To(BeEmpty())
			})
		})
	})
})
