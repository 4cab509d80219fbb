// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package fields

import (
	"maps"
	"slices"
	"strings"

	"github.com/baslia/openfda/internal/tree"
)

// arrayMarker is the JSON Schema path segment wrapping the shape of each
// array element. Elasticsearch mappings have no such segment, arrays are
// implicit there.
const arrayMarker = "items"

// ESIndex builds a lookup from schema-shaped field paths to their
// Elasticsearch-mapping equivalents by dropping every array-marker segment
// from the flattened schema keys. When several flattened keys share a
// field path, the last one in sorted key order wins.
func ESIndex(schema map[string]any) map[string]string {
	flat := tree.Flatten(schema)

	index := make(map[string]string, len(flat))
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		index[tree.Parent(key)] = tree.Parent(stripItems(key))
	}
	return index
}

// stripItems removes every segment equal to the array marker from a
// flattened schema key. Segment-wise, so field names that merely contain
// "items" are left alone.
func stripItems(key string) string {
	segments := strings.Split(key, tree.Sep)
	kept := segments[:0]
	for _, segment := range segments {
		if segment != arrayMarker {
			kept = append(kept, segment)
		}
	}
	return strings.Join(kept, tree.Sep)
}
