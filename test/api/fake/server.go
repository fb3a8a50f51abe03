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

// Package fake is an in-memory stand-in for the content API.  It implements
// the same endpoints and status codes, so the harness can be exercised
// without a deployed server.
package fake

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"k8s.io/utils/ptr"
)

const (
	// TokenCookie is the session cookie name.
	TokenCookie = "token"

	// ErrWrongCredentials is the error message returned on a failed login.
	ErrWrongCredentials = "Wrong credentials"
)

// Options configures the fake.
type Options struct {
	// Username and Password are the only credentials the fake accepts.
	Username string
	Password string

	// Seed starts the fake with one post and one project.
	Seed bool
}

// Server is the fake API.  It is safe for concurrent use.
type Server struct {
	options  Options
	userID   string
	validate *validator.Validate

	lock     sync.Mutex
	sessions map[string]string
	posts    *collection
	projects *collection
}

// NewServer returns a fake, empty unless options.Seed is set.
func NewServer(options Options) *Server {
	s := &Server{
		options:  options,
		userID:   newID(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		sessions: map[string]string{},
		posts:    newCollection("posts", false),
		projects: newCollection("projects", true),
	}

	if options.Seed {
		s.posts.create(&createBody{
			Title:   "Welcome",
			Summary: "The first post",
			Content: "Hello from the content API.",
		}, options.Username)

		s.projects.create(&createBody{
			Title:   "Portfolio",
			Summary: "The first project",
			Content: "A project to look at.",
			Demo:    ptr.To("https://example.com/demo"),
		}, options.Username)
	}

	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/login", s.login)

	s.mount(router, "/post", s.posts)
	s.mount(router, "/project", s.projects)

	return router
}

// PostCount returns the number of stored posts.
func (s *Server) PostCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.posts.order)
}

// ProjectCount returns the number of stored projects.
func (s *Server) ProjectCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.projects.order)
}

func (s *Server) mount(router chi.Router, path string, c *collection) {
	router.Get(path, func(w http.ResponseWriter, r *http.Request) {
		s.list(w, r, c)
	})

	router.Get(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.get(w, r, c)
	})

	router.With(s.authenticated).Post(path, func(w http.ResponseWriter, r *http.Request) {
		s.create(w, r, c)
	})

	router.With(s.authenticated).Put(path, func(w http.ResponseWriter, r *http.Request) {
		s.update(w, r, c)
	})

	router.With(s.authenticated).Delete(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.delete(w, r, c)
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &errorBody{Error: message})
}

// newID returns a 24 character hex identifier.
func newID() string {
	bytes := make([]byte, 12)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginBody struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request")
		return
	}

	if creds.Username == "" || creds.Username != s.options.Username || creds.Password != s.options.Password {
		writeError(w, http.StatusBadRequest, ErrWrongCredentials)
		return
	}

	token := newID() + newID()

	s.lock.Lock()
	s.sessions[token] = s.userID
	s.lock.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, &loginBody{
		ID:       s.userID,
		Username: creds.Username,
	})
}

// authenticated rejects requests without a session cookie issued by login.
func (s *Server) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(TokenCookie)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		s.lock.Lock()
		_, ok := s.sessions[cookie.Value]
		s.lock.Unlock()

		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// pageParameter parses an optional positive integer query parameter.
func pageParameter(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, false
	}

	return value, true
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, c *collection) {
	page, ok := pageParameter(r, "page")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid page")
		return
	}

	limit, ok := pageParameter(r, "limit")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	s.lock.Lock()
	items := c.page(page, limit)
	s.lock.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		c.listKey: items,
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request, c *collection) {
	s.lock.Lock()
	item, ok := c.get(chi.URLParam(r, "id"))
	s.lock.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, c *collection) {
	var body createBody

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request")
		return
	}

	if err := s.validate.Struct(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.lock.Lock()
	item := c.create(&body, s.options.Username)
	s.lock.Unlock()

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, c *collection) {
	var body updateBody

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request")
		return
	}

	if err := s.validate.Struct(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.lock.Lock()
	item, ok := c.update(&body)
	s.lock.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

type deleteBody struct {
	Success bool `json:"success"`
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request, c *collection) {
	s.lock.Lock()
	ok := c.delete(chi.URLParam(r, "id"))
	s.lock.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, &deleteBody{Success: true})
}
