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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// HTTPDoer is the transport the client sends requests through.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	config    *TestConfig
	endpoints *Endpoints
	validator *SchemaValidator
	out       io.Writer
}

// Option customizes an APIClient.
type Option func(*APIClient)

// WithHTTPDoer replaces the default *http.Client.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *APIClient) {
		c.client = doer
	}
}

// WithLogWriter sets where request diagnostics go, they are discarded by default.
func WithLogWriter(w io.Writer) Option {
	return func(c *APIClient) {
		c.out = w
	}
}

// NewAPIClientWithConfig returns a client for config.BaseURL.
func NewAPIClientWithConfig(config *TestConfig, options ...Option) (*APIClient, error) {
	c := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
		out:       io.Discard,
	}

	for _, o := range options {
		o(c)
	}

	if config.ValidateSchema {
		validator, err := NewSchemaValidator(c.baseURL)
		if err != nil {
			return nil, err
		}

		c.validator = validator
	}

	return c, nil
}

func (c *APIClient) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	c.printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	c.printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh ID per request means any failure can be found in the server logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest issues a single request.  A nil session sends an anonymous request,
// a zero expectedStatus accepts whatever the server answers.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, session *Session, body any, expectedStatus int) (*http.Response, []byte, error) {
	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if session != nil {
		session.apply(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		c.printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		return resp, respBody, &StatusError{
			Method:         method,
			Path:           path,
			ExpectedStatus: expectedStatus,
			StatusCode:     resp.StatusCode,
			Body:           string(respBody),
			TraceID:        extractTraceID(traceParent),
		}
	}

	if c.validator != nil && expectedStatus > 0 {
		if err := c.validator.ValidateResponse(ctx, req, resp.StatusCode, resp.Header, respBody); err != nil {
			c.logError(method, path, duration, traceParent, err, "schema validation")
			return resp, respBody, err
		}
	}

	return resp, respBody, nil
}

// decode unmarshals a response body, naming the resource in any error.
func decode[T any](body []byte, resourceType string) (*T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling %s response: %w", resourceType, err)
	}

	return &out, nil
}

// requireSession guards the mutating calls.
func requireSession(session *Session) error {
	if session == nil || session.Token == "" {
		return ErrNoSession
	}

	return nil
}

// Login authenticates with the given credentials and returns the user and their session.
func (c *APIClient) Login(ctx context.Context, credentials Credentials) (*LoginResponse, *Session, error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Login(), nil, credentials, http.StatusOK)
	if err != nil {
		return nil, nil, fmt.Errorf("logging in: %w", err)
	}

	login, err := decode[LoginResponse](respBody, "login")
	if err != nil {
		return nil, nil, err
	}

	session, err := newSession(resp.Cookies())
	if err != nil {
		return nil, nil, fmt.Errorf("logging in: %w", err)
	}

	return login, session, nil
}

// LoginRaw posts credentials and returns whatever the server answered.
func (c *APIClient) LoginRaw(ctx context.Context, credentials Credentials) (*http.Response, []byte, error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Login(), nil, credentials, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("logging in: %w", err)
	}

	return resp, respBody, nil
}

// ListPosts lists posts, optionally paginated.
func (c *APIClient) ListPosts(ctx context.Context, pagination Pagination) (*PostList, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListPosts(pagination), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return decode[PostList](respBody, "posts")
}

// GetPost fetches a single post.
func (c *APIClient) GetPost(ctx context.Context, postID string) (*Post, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetPost(postID), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting post '%s': %w", postID, err)
	}

	return decode[Post](respBody, "post")
}

// GetPostDocument fetches a single post as raw JSON, so callers can check
// which keys the API actually sent.
func (c *APIClient) GetPostDocument(ctx context.Context, postID string) (map[string]any, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetPost(postID), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting post '%s': %w", postID, err)
	}

	document, err := decode[map[string]any](respBody, "post")
	if err != nil {
		return nil, err
	}

	return *document, nil
}

// CreatePost creates a new post.
func (c *APIClient) CreatePost(ctx context.Context, session *Session, input PostInput) (*Post, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreatePost(), session, input, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return decode[Post](respBody, "post")
}

// UpdatePost replaces the fields of an existing post.
func (c *APIClient) UpdatePost(ctx context.Context, session *Session, postID string, input PostInput) (*Post, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	input.ID = postID

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdatePost(), session, input, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating post '%s': %w", postID, err)
	}

	return decode[Post](respBody, "post")
}

// DeletePost deletes a post.
func (c *APIClient) DeletePost(ctx context.Context, session *Session, postID string) (*DeleteResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeletePost(postID), session, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("deleting post '%s': %w", postID, err)
	}

	return decode[DeleteResponse](respBody, "delete")
}

// ListProjects lists projects, optionally paginated.
func (c *APIClient) ListProjects(ctx context.Context, pagination Pagination) (*ProjectList, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListProjects(pagination), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return decode[ProjectList](respBody, "projects")
}

// GetProject fetches a single project.
func (c *APIClient) GetProject(ctx context.Context, projectID string) (*Project, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetProject(projectID), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting project '%s': %w", projectID, err)
	}

	return decode[Project](respBody, "project")
}

// GetProjectDocument fetches a single project as raw JSON.
func (c *APIClient) GetProjectDocument(ctx context.Context, projectID string) (map[string]any, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetProject(projectID), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting project '%s': %w", projectID, err)
	}

	document, err := decode[map[string]any](respBody, "project")
	if err != nil {
		return nil, err
	}

	return *document, nil
}

// CreateProject creates a new project.
func (c *APIClient) CreateProject(ctx context.Context, session *Session, input ProjectInput) (*Project, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateProject(), session, input, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return decode[Project](respBody, "project")
}

// UpdateProject replaces the fields of an existing project.
func (c *APIClient) UpdateProject(ctx context.Context, session *Session, projectID string, input ProjectInput) (*Project, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	input.ID = projectID

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdateProject(), session, input, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating project '%s': %w", projectID, err)
	}

	return decode[Project](respBody, "project")
}

// DeleteProject deletes a project.
func (c *APIClient) DeleteProject(ctx context.Context, session *Session, projectID string) (*DeleteResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteProject(projectID), session, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("deleting project '%s': %w", projectID, err)
	}

	return decode[DeleteResponse](respBody, "delete")
}
