// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package tree

import (
	"fmt"
	"maps"
	"slices"
)

// Validate checks that t contains only string-keyed mappings and scalar
// leaves. The flattening and path operations silently misbehave on list
// values, so lists anywhere in the tree fail validation with an error
// naming the offending dot-path, as do mappings with non-string keys.
func Validate(t map[string]any) error {
	return validateNode(t, "")
}

func validateNode(v any, path string) error {
	switch node := v.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(node)) {
			child := key
			if path != "" {
				child = path + Sep + key
			}
			if err := validateNode(node[key], child); err != nil {
				return err
			}
		}
		return nil
	case []any:
		return fmt.Errorf("lists are not supported: found one at %s", displayPath(path))
	case map[any]any:
		return fmt.Errorf("mapping with non-string keys at %s", displayPath(path))
	default:
		return nil
	}
}

func displayPath(path string) string {
	if path == "" {
		return "the document root"
	}
	return fmt.Sprintf("%q", path)
}
