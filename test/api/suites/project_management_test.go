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

var _ = Describe("Project Management", func() {
	Context("When listing projects", func() {
		It("should return a projects array", func() {
			projects, err := client.ListProjects(ctx, api.Pagination{})
			Expect(err).NotTo(HaveOccurred())
			Expect(projects.Projects).NotTo(BeNil(), "Response should contain a projects array")

			GinkgoWriter.Printf("Found %d projects\n", len(projects.Projects))
		})
	})

	Context("When retrieving a specific project", func() {
		Describe("Given the project exists", func() {
			It("should return its title and content", func() {
				first := fixtures.FirstProjectOrSkip(client, ctx)

				document, err := client.GetProjectDocument(ctx, first.ID)
				Expect(err).NotTo(HaveOccurred())
				fixtures.ExpectFields(document, "_id", "title", "content")
				Expect(document["_id"]).To(Equal(first.ID))
				Expect(document["title"]).To(BeAssignableToTypeOf(""))
				Expect(document["title"]).NotTo(BeEmpty())
			})
		})

		Describe("Given the project does not exist", func() {
			It("should return a not found error", func() {
				_, err := client.GetProject(ctx, "000000000000000000000000")
				fixtures.ExpectNotFound(err)
			})
		})
	})

	Context("When creating and deleting a project", func() {
		var session *api.Session

		BeforeEach(func() {
			session = fixtures.LoginWithSession(client, ctx, config)
		})

		Describe("Given a valid payload", func() {
			It("should be fetchable until deleted and absent afterwards", func() {
				payload := api.NewProjectPayload().
					WithSummary("This is a test project that will be deleted").
					WithContent("This is the content of the test project that will be deleted").
					Build()

				project := fixtures.CreateProjectWithCleanup(client, ctx, session, payload)

				// Then: the project can be fetched by the returned identifier
				fetched, err := client.GetProject(ctx, project.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched.ID).To(Equal(project.ID))
				fixtures.VerifyProjectMatches(fetched, payload)

				result, err := client.DeleteProject(ctx, session, project.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())

				_, err = client.GetProject(ctx, project.ID)
				fixtures.ExpectNotFound(err)

				// And: absence is idempotent, a second delete is also not found
				_, err = client.DeleteProject(ctx, session, project.ID)
				fixtures.ExpectNotFound(err)
			})
		})
	})

	Context("When updating a project", func() {
		var (
			session *api.Session
			project *api.Project
		)

		BeforeEach(func() {
			session = fixtures.LoginWithSession(client, ctx, config)
			project = fixtures.CreateProjectWithCleanup(client, ctx, session,
				api.NewProjectPayload().
					WithSummary("This is a test project that will be updated").
					WithContent("This is the content of the test project that will be updated").
					Build())
		})

		Describe("Given valid update parameters", func() {
			It("should update every field", func() {
				update := api.NewProjectPayload().
					WithTitle("Updated Test Project").
					WithSummary("This is an updated test project").
					WithContent("This is the updated content of the test project").
					WithDemo("updateddemo").
					Build()

				updated, err := client.UpdateProject(ctx, session, project.ID, update)
				Expect(err).NotTo(HaveOccurred())
				fixtures.VerifyProjectMatches(updated, update)

				fetched, err := client.GetProject(ctx, project.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched.Title).To(Equal(update.Title))
				Expect(fetched.Demo).To(Equal(update.Demo))
			})
		})
	})
})
