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
	"net/http"
)

// SessionCookieName is the cookie the API issues the session token in.
const SessionCookieName = "token"

// Session is the credential obtained from a login.  It is passed explicitly
// to every authenticated call, the client itself holds no cookie state.
type Session struct {
	Token   string
	Cookies []*http.Cookie
}

// newSession extracts the session token from a login response's cookies.
func newSession(cookies []*http.Cookie) (*Session, error) {
	for _, cookie := range cookies {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			return &Session{
				Token:   cookie.Value,
				Cookies: cookies,
			}, nil
		}
	}

	return nil, ErrNoSessionToken
}

// apply attaches the session to an outbound request.  The token is always
// sent, the rest of the login cookies ride along as issued.
func (s *Session) apply(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: s.Token})

	for _, cookie := range s.Cookies {
		if cookie.Name == SessionCookieName {
			continue
		}

		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
}
