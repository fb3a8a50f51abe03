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

package fake

import (
	"slices"
	"time"

	"k8s.io/utils/ptr"
)

type createBody struct {
	Title   string  `json:"title" validate:"required"`
	Summary string  `json:"summary"`
	Content string  `json:"content"`
	Demo    *string `json:"demo"`
}

// updateBody fields are optional, anything omitted keeps its stored value.
type updateBody struct {
	ID      string  `json:"id" validate:"required"`
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Summary *string `json:"summary"`
	Content *string `json:"content"`
	Demo    *string `json:"demo"`
}

type resource struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Demo      *string   `json:"demo,omitempty"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// collection stores one resource kind.  Callers hold the server lock.
type collection struct {
	listKey  string
	withDemo bool
	items    map[string]*resource
	// order is creation order, oldest first.
	order []string
}

func newCollection(listKey string, withDemo bool) *collection {
	return &collection{
		listKey:  listKey,
		withDemo: withDemo,
		items:    map[string]*resource{},
	}
}

// page returns the 1-based page of items, newest first.  A zero limit returns everything.
func (c *collection) page(page, limit int) []resource {
	ids := slices.Clone(c.order)
	slices.Reverse(ids)

	if limit > 0 {
		if page < 1 {
			page = 1
		}

		start := min((page-1)*limit, len(ids))
		end := min(start+limit, len(ids))

		ids = ids[start:end]
	}

	out := make([]resource, 0, len(ids))

	for _, id := range ids {
		out = append(out, *c.items[id])
	}

	return out
}

func (c *collection) get(id string) (resource, bool) {
	item, ok := c.items[id]
	if !ok {
		return resource{}, false
	}

	return *item, true
}

func (c *collection) create(body *createBody, author string) resource {
	now := time.Now().UTC()

	item := &resource{
		ID:        newID(),
		Title:     body.Title,
		Summary:   body.Summary,
		Content:   body.Content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if c.withDemo {
		item.Demo = ptr.To(ptr.Deref(body.Demo, ""))
	}

	c.items[item.ID] = item
	c.order = append(c.order, item.ID)

	return *item
}

func (c *collection) update(body *updateBody) (resource, bool) {
	item, ok := c.items[body.ID]
	if !ok {
		return resource{}, false
	}

	item.Title = ptr.Deref(body.Title, item.Title)
	item.Summary = ptr.Deref(body.Summary, item.Summary)
	item.Content = ptr.Deref(body.Content, item.Content)

	if c.withDemo && body.Demo != nil {
		item.Demo = ptr.To(*body.Demo)
	}

	item.UpdatedAt = time.Now().UTC()

	return *item, true
}

func (c *collection) delete(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}

	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(x string) bool {
		return x == id
	})

	return true
}
