// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

// Package fields reconciles a JSON Schema with the Elasticsearch mapping
// that indexes the same dataset. Both trees are flattened into a common
// dot-path key space; the mapping side reveals which fields carry an exact
// (unanalyzed) variant, and the schema side receives a fixed set of
// documentation attributes under every leaf field.
package fields

import (
	"fmt"

	"github.com/baslia/openfda/internal/tree"
)

// metaSchemaKey is the JSON Schema meta key dropped before annotation.
const metaSchemaKey = "$schema"

const (
	attrType    = "type"
	attrIsExact = "is_exact"
)

// Attribute is a single documentation attribute injected under a field.
type Attribute struct {
	Name  string
	Value any
}

// Defaults returns the attribute set every documentable field receives, in
// the order the attributes are written. Nil values render as blanks in the
// output document and are filled in by hand afterwards.
func Defaults() []Attribute {
	return []Attribute{
		{Name: "format", Value: nil},
		{Name: attrType, Value: "string"},
		{Name: "description", Value: nil},
		{Name: "possible_values", Value: nil},
		{Name: attrIsExact, Value: false},
	}
}

// Annotate injects the default documentation attributes under every leaf
// field of the schema tree, marking fields whose mapping counterpart has an
// exact variant. The schema tree is mutated in place and must be exclusively
// owned by the caller; existing values are never overwritten. Returns the
// number of fields annotated.
func Annotate(schema, mapping map[string]any) (int, error) {
	delete(schema, metaSchemaKey)

	exact := ExactIndex(mapping)
	esIndex := ESIndex(schema)

	annotated := 0
	for _, field := range SchemaFields(schema) {
		if field == "" {
			continue
		}

		// Compound containers keep their own attributes; only their leaves
		// get documentation defaults.
		typeTag, _ := tree.GetDeep(schema, field+tree.Sep+attrType).(string)
		if typeTag == "object" || typeTag == "array" {
			continue
		}

		esField, translated := esIndex[field]
		isExact := translated && exact[esField]

		for _, attr := range Defaults() {
			value := attr.Value
			if isExact && attr.Name == attrIsExact {
				value = true
			}
			if err := tree.SetDeep(schema, field+tree.Sep+attr.Name, value); err != nil {
				return annotated, fmt.Errorf("failed to annotate %s: %w", field, err)
			}
		}
		annotated++
	}

	return annotated, nil
}
