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
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/folio-cms/conformance/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When logging in", func() {
		Describe("Given the configured test credentials", func() {
			It("should return the user and set a token cookie", func() {
				login, session, err := client.Login(ctx, config.Credentials())
				Expect(err).NotTo(HaveOccurred())

				Expect(login.ID).NotTo(BeEmpty(), "Login response should include id")
				Expect(login.Username).NotTo(BeEmpty(), "Login response should include username")
				Expect(session.Token).NotTo(BeEmpty(), "Login should set the token cookie")

				GinkgoWriter.Printf("Logged in as %s (%s)\n", login.Username, login.ID)
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject the login with a structured error", func() {
				resp, body, err := client.LoginRaw(ctx, api.Credentials{
					Username: "invaliduser",
					Password: "invalidpassword",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

				var errorBody map[string]any
				Expect(json.Unmarshal(body, &errorBody)).To(Succeed())
				Expect(errorBody).To(HaveKeyWithValue("error", "Wrong credentials"))

				for _, cookie := range resp.Cookies() {
					Expect(cookie.Name).NotTo(Equal(api.SessionCookieName), "A rejected login must not issue a token")
				}
			})
		})
	})

	Context("When mutating without authenticating", func() {
		Describe("Given a forged session", func() {
			It("should refuse to create the post", func() {
				_, err := client.CreatePost(ctx, &api.Session{Token: api.GenerateTestID()}, api.NewPostPayload().Build())
				Expect(err).To(HaveOccurred())
				Expect(api.StatusCode(err)).To(BeNumerically(">=", http.StatusBadRequest))
			})
		})
	})
})
