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
	"slices"

	"github.com/spjmurray/go-util/pkg/set"
)

// PostIDs extracts post identifiers from a listing.
func PostIDs(list *PostList) []string {
	ids := make([]string, len(list.Posts))

	for i := range list.Posts {
		ids[i] = list.Posts[i].ID
	}

	return ids
}

// ProjectIDs extracts project identifiers from a listing.
func ProjectIDs(list *ProjectList) []string {
	ids := make([]string, len(list.Projects))

	for i := range list.Projects {
		ids[i] = list.Projects[i].ID
	}

	return ids
}

// SharedIDs returns the identifiers present on both pages.
func SharedIDs(a, b []string) []string {
	first := set.New[string](a...)
	second := set.New[string](b...)
	common := first.Intersection(second)

	var shared []string

	for id := range common.All() {
		shared = append(shared, id)
	}

	slices.Sort(shared)

	return shared
}
