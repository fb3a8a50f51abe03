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
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// PostPayloadBuilder builds post payloads for testing.
type PostPayloadBuilder struct {
	payload PostInput
}

// NewPostPayload creates a post payload with a unique title.
func NewPostPayload() *PostPayloadBuilder {
	return &PostPayloadBuilder{
		payload: PostInput{
			Title:   generateRandomName("Test Post"),
			Summary: "This is a test post created by the conformance suite",
			Content: "This is the content of a test post created by the conformance suite",
		},
	}
}

// WithTitle sets the post title.
func (b *PostPayloadBuilder) WithTitle(title string) *PostPayloadBuilder {
	b.payload.Title = title
	return b
}

// WithSummary sets the post summary.
func (b *PostPayloadBuilder) WithSummary(summary string) *PostPayloadBuilder {
	b.payload.Summary = summary
	return b
}

// WithContent sets the post content.
func (b *PostPayloadBuilder) WithContent(content string) *PostPayloadBuilder {
	b.payload.Content = content
	return b
}

// Build returns the completed post payload.
func (b *PostPayloadBuilder) Build() PostInput {
	return b.payload
}

// ProjectPayloadBuilder builds project payloads for testing.
type ProjectPayloadBuilder struct {
	payload ProjectInput
}

// NewProjectPayload creates a project payload with a unique title.
func NewProjectPayload() *ProjectPayloadBuilder {
	return &ProjectPayloadBuilder{
		payload: ProjectInput{
			Title:   generateRandomName("Test Project"),
			Summary: "This is a test project created by the conformance suite",
			Content: "This is the content of a test project created by the conformance suite",
			Demo:    "testdemo",
		},
	}
}

// WithTitle sets the project title.
func (b *ProjectPayloadBuilder) WithTitle(title string) *ProjectPayloadBuilder {
	b.payload.Title = title
	return b
}

// WithSummary sets the project summary.
func (b *ProjectPayloadBuilder) WithSummary(summary string) *ProjectPayloadBuilder {
	b.payload.Summary = summary
	return b
}

// WithContent sets the project content.
func (b *ProjectPayloadBuilder) WithContent(content string) *ProjectPayloadBuilder {
	b.payload.Content = content
	return b
}

// WithDemo sets the project demo link.
func (b *ProjectPayloadBuilder) WithDemo(demo string) *ProjectPayloadBuilder {
	b.payload.Demo = demo
	return b
}

// Build returns the completed project payload.
func (b *ProjectPayloadBuilder) Build() ProjectInput {
	return b.payload
}
