// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package fields

import (
	"strings"

	"github.com/baslia/openfda/internal/tree"
)

// Markers whose presence in a flattened mapping key signals that the field
// carries a secondary exact (unanalyzed) variant: either an explicit
// "*_exact" sibling list or a "fields" sub-field block.
const (
	exactListMarker = "_exact"
	subFieldsMarker = ".fields"
)

// ExactIndex scans an Elasticsearch mapping tree for fields that have an
// exact counterpart. Each matching flattened key is truncated at the first
// marker occurrence and stripped of its index/document-type root; the
// remaining field paths form the returned set. The index is consulted by
// the annotator and the API checker, never iterated.
func ExactIndex(mapping map[string]any) map[string]bool {
	index := make(map[string]bool)
	for key := range tree.Flatten(mapping) {
		var marker string
		switch {
		case strings.Contains(key, exactListMarker):
			marker = exactListMarker
		case strings.Contains(key, subFieldsMarker):
			marker = subFieldsMarker
		default:
			continue
		}
		part, _, _ := strings.Cut(key, marker)
		index[stripRoot(part)] = true
	}
	return index
}

// stripRoot removes the leading path segment, the Elasticsearch index or
// document-type name that roots every mapping key.
func stripRoot(key string) string {
	_, rest, _ := strings.Cut(key, tree.Sep)
	return rest
}
