// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package fields

import (
	"maps"
	"slices"
	"strings"

	"github.com/baslia/openfda/internal/tree"
)

// SchemaFields returns the documentable field paths of a JSON Schema tree:
// the parent path of every flattened key whose leaf value is not the
// compound type tag "object". The list is de-duplicated, first occurrence
// wins, and ordered by sorted flattened keys so it is stable for a given
// input.
func SchemaFields(schema map[string]any) []string {
	flat := tree.Flatten(schema)

	seen := make(map[string]bool)
	var paths []string
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		if flat[key] == "object" {
			continue
		}
		path := tree.Parent(key)
		if seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths
}

// MappingFields returns the set of field paths in an Elasticsearch mapping
// tree: every flattened key with the index/document-type root and the
// trailing mapping attribute removed.
func MappingFields(mapping map[string]any) map[string]bool {
	result := make(map[string]bool)
	for key := range tree.Flatten(mapping) {
		result[tree.Parent(stripRoot(key))] = true
	}
	return result
}

// Queryable converts a mapping field path into the name the search API
// accepts, deleting the "properties." and ".fields" structural segments.
func Queryable(path string) string {
	path = strings.ReplaceAll(path, "properties"+tree.Sep, "")
	return strings.ReplaceAll(path, subFieldsMarker, "")
}
