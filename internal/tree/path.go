// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package tree

import (
	"fmt"
	"strings"
)

// Sep joins the segments of a flat key.
const Sep = "."

// SetDeep sets value at the dot-delimited path inside t, creating
// intermediate mapping nodes as needed. The write is non-destructive: when
// the final key already holds a value, that value is left unchanged. The
// tree is mutated in place; t exclusively owns every mapping SetDeep
// creates.
//
// An error is returned when a node along the path exists and is not a
// mapping, identifying the offending path.
func SetDeep(t map[string]any, path string, value any) error {
	segs := strings.Split(path, Sep)
	last := segs[len(segs)-1]

	node := t
	for i, seg := range segs[:len(segs)-1] {
		child, ok := node[seg]
		if !ok {
			next := make(map[string]any)
			node[seg] = next
			node = next
			continue
		}
		m, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %q: value at %q is not a mapping",
				path, strings.Join(segs[:i+1], Sep))
		}
		node = m
	}

	if _, ok := node[last]; !ok {
		node[last] = value
	}
	return nil
}

// GetDeep returns the value at the dot-delimited path inside t. Lookups
// never fail: when any step hits a missing key or a non-mapping node, an
// empty mapping is returned instead. That keeps deep lookups safe on
// heterogeneous trees where a shorter path may already end in a leaf.
func GetDeep(t map[string]any, path string) any {
	var current any = t
	for _, seg := range strings.Split(path, Sep) {
		m, ok := current.(map[string]any)
		if !ok {
			return map[string]any{}
		}
		current, ok = m[seg]
		if !ok {
			return map[string]any{}
		}
	}
	return current
}

// Parent removes the last segment from a dot-delimited key, yielding the
// path of the enclosing node. A key without a separator reduces to "".
func Parent(key string) string {
	if i := strings.LastIndex(key, Sep); i >= 0 {
		return key[:i]
	}
	return ""
}
