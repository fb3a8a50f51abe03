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

package smoke

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/folio-cms/conformance/test/api"

	"k8s.io/apimachinery/pkg/util/wait"
)

var (
	ErrNotReady   = errors.New("api did not become ready")
	ErrStepFailed = errors.New("smoke step failed")
)

const (
	// pollInterval is how often readiness is checked.
	pollInterval = 2 * time.Second

	// cleanupTimeout bounds the delete of a post left behind by a failed run.
	cleanupTimeout = 30 * time.Second
)

// Step is a single named check.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes the smoke steps in order and stops at the first failure.
type Runner struct {
	options *Options
	client  *api.APIClient
	logger  logr.Logger

	session *api.Session
	postID  string
	deleted bool
}

// NewRunner creates a runner for the given options.
func NewRunner(options *Options, client *api.APIClient, logger logr.Logger) *Runner {
	return &Runner{
		options: options,
		client:  client,
		logger:  logger,
	}
}

// WaitReady polls the post listing until it answers or the wait expires.
func (r *Runner) WaitReady(ctx context.Context) error {
	if r.options.Wait <= 0 {
		return nil
	}

	attempt := 0

	condition := func(ctx context.Context) (bool, error) {
		attempt++

		if _, err := r.client.ListPosts(ctx, api.Pagination{Page: 1, Limit: 1}); err != nil {
			r.logger.V(1).Info("api not ready", "attempt", attempt, "error", err.Error())

			return false, nil
		}

		return true, nil
	}

	if err := wait.PollUntilContextTimeout(ctx, pollInterval, r.options.Wait, true, condition); err != nil {
		return fmt.Errorf("%w after %s: %w", ErrNotReady, r.options.Wait, err)
	}

	r.logger.Info("api ready", "url", r.options.APIURL, "attempts", attempt)

	return nil
}

// Steps returns the checks to run, honouring --no-write.
func (r *Runner) Steps() []Step {
	steps := []Step{
		{Name: "login", Run: r.login},
		{Name: "list", Run: r.list},
	}

	if r.options.NoWrite {
		return steps
	}

	return append(steps,
		Step{Name: "create post", Run: r.createPost},
		Step{Name: "fetch post", Run: r.fetchPost},
		Step{Name: "delete post", Run: r.deletePost},
		Step{Name: "fetch deleted post", Run: r.fetchDeletedPost},
	)
}

// Run waits for readiness and then executes every step.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.WaitReady(ctx); err != nil {
		return err
	}

	defer r.cleanup(ctx)

	for _, step := range r.Steps() {
		start := time.Now()

		if err := step.Run(ctx); err != nil {
			r.logger.Error(err, "step failed", "step", step.Name, "duration", time.Since(start))

			return fmt.Errorf("%w: %s: %w", ErrStepFailed, step.Name, err)
		}

		r.logger.Info("step passed", "step", step.Name, "duration", time.Since(start))
	}

	return nil
}

func (r *Runner) login(ctx context.Context) error {
	login, session, err := r.client.Login(ctx, api.Credentials{
		Username: r.options.Username,
		Password: r.options.Password,
	})
	if err != nil {
		return err
	}

	r.logger.V(1).Info("logged in", "id", login.ID, "username", login.Username)

	r.session = session

	return nil
}

func (r *Runner) list(ctx context.Context) error {
	posts, err := r.client.ListPosts(ctx, api.Pagination{})
	if err != nil {
		return err
	}

	projects, err := r.client.ListProjects(ctx, api.Pagination{})
	if err != nil {
		return err
	}

	r.logger.V(1).Info("listed resources", "posts", len(posts.Posts), "projects", len(projects.Projects))

	return nil
}

func (r *Runner) createPost(ctx context.Context) error {
	payload := api.NewPostPayload().
		WithTitle("Smoke " + api.GenerateTestID()).
		WithSummary("Created by content-api-smoke").
		Build()

	post, err := r.client.CreatePost(ctx, r.session, payload)
	if err != nil {
		return err
	}

	if post.ID == "" {
		return fmt.Errorf("%w: created post has no _id", ErrStepFailed)
	}

	r.postID = post.ID

	return nil
}

func (r *Runner) fetchPost(ctx context.Context) error {
	post, err := r.client.GetPost(ctx, r.postID)
	if err != nil {
		return err
	}

	if post.ID != r.postID {
		return fmt.Errorf("%w: fetched post '%s', expected '%s'", ErrStepFailed, post.ID, r.postID)
	}

	return nil
}

func (r *Runner) deletePost(ctx context.Context) error {
	result, err := r.client.DeletePost(ctx, r.session, r.postID)
	if err != nil {
		return err
	}

	r.deleted = true

	if !result.Success {
		return fmt.Errorf("%w: delete of '%s' not reported as successful", ErrStepFailed, r.postID)
	}

	return nil
}

func (r *Runner) fetchDeletedPost(ctx context.Context) error {
	_, err := r.client.GetPost(ctx, r.postID)
	if err == nil {
		return fmt.Errorf("%w: deleted post '%s' is still fetchable", ErrStepFailed, r.postID)
	}

	if !api.IsNotFound(err) {
		return err
	}

	return nil
}

// cleanup deletes the smoke post when a step failed before the delete step ran.
// It still runs after ctx is cancelled, and a 404 counts as already gone.
func (r *Runner) cleanup(ctx context.Context) {
	if r.postID == "" || r.deleted {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if _, err := r.client.DeletePost(ctx, r.session, r.postID); err != nil && !api.IsNotFound(err) {
		r.logger.Error(err, "failed to delete smoke post", "id", r.postID)

		return
	}

	r.deleted = true

	r.logger.Info("deleted smoke post after failure", "id", r.postID)
}
