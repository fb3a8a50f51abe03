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
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoSessionToken is returned when a login succeeds without setting the token cookie.
	ErrNoSessionToken = errors.New("login response did not set a token cookie")

	// ErrNoSession is returned when a mutating call is made without a session.
	ErrNoSession = errors.New("no session provided for authenticated request")
)

// StatusError is returned when the API answers with a status other than the one expected.
type StatusError struct {
	Method         string
	Path           string
	ExpectedStatus int
	StatusCode     int
	Body           string
	TraceID        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.ExpectedStatus, e.StatusCode, e.Body, e.TraceID)
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
