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

// Package api provides integration test utilities for the Folio CMS content API.
//
// The API is treated as a black box: everything here talks to it over HTTP
// and nothing assumes anything about how it stores or authenticates.
//
// # Configuration
//
// LoadTestConfig reads API_URL, TEST_USERNAME and TEST_PASSWORD, plus
// tuning variables, from the environment or a .env file found above the
// working directory.  The resulting TestConfig is passed explicitly to the
// client and fixtures, there is no package level state.
//
// # Sessions
//
// Logging in yields a Session holding the token cookie.  Mutating calls take
// the Session as a parameter, the client has no cookie jar, so a scenario
// that forgets to authenticate fails loudly with ErrNoSession rather than
// silently riding on another scenario's login.
//
// # Fixtures
//
// The Ginkgo helpers live in the fixtures subpackage, so this package stays
// free of the test framework and can back the smoke CLI.  Its
// CreatePostWithCleanup and CreateProjectWithCleanup register deletion with
// DeferCleanup, so a failing scenario does not leak resources into later
// runs.
//
// # Schema Validation
//
// With VALIDATE_SCHEMA=true every expected response is also checked against
// the embedded OpenAPI document, see openapi.yaml.
package api
