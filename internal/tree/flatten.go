// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

// Package tree implements dot-path operations over nested string-keyed
// trees: flattening into breadcrumb-style keys, deep get/set, and input
// validation. Trees are map[string]any values whose nodes are either
// nested mappings or scalar leaves; lists are not supported anywhere in a
// tree and are rejected by Validate.
package tree

// Flatten converts a nested tree into a single-level map from dot-joined
// root-to-leaf paths to leaf values, {"a.b.c": value}. Only mapping nodes
// are recursed into; any other value terminates its path as a leaf.
//
// The caller is responsible for ensuring the tree is list-free (see
// Validate); a list value is carried through as an opaque leaf.
func Flatten(t map[string]any) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, t, "")
	return flat
}

func flattenInto(flat map[string]any, t map[string]any, prefix string) {
	for key, value := range t {
		path := key
		if prefix != "" {
			path = prefix + Sep + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenInto(flat, child, path)
			continue
		}
		flat[path] = value
	}
}
