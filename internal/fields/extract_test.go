// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package fields

import (
	"testing"

	"github.com/baslia/openfda/internal/tree"
	"github.com/stretchr/testify/assert"
)

func TestSchemaFields(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"brand_name": map[string]any{"type": "string"},
			"openfda": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"spl_id": map[string]any{"type": "string"},
				},
			},
		},
	}

	fields := SchemaFields(schema)

	// "type": "object" leaves are containers, not documentable fields.
	assert.Equal(t, []string{
		"properties.brand_name",
		"properties.openfda.properties.spl_id",
	}, fields)
}

func TestSchemaFields_DeduplicatesAttributes(t *testing.T) {
	schema := map[string]any{
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "already documented",
				"format":      "date",
			},
		},
	}

	assert.Equal(t, []string{"properties.name"}, SchemaFields(schema))
}

func TestSchemaFields_NeverReturnsObjectTyped(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
			"b": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"c": map[string]any{"type": "integer"},
				},
			},
		},
	}

	for _, field := range SchemaFields(schema) {
		typeTag, _ := tree.GetDeep(schema, field+".type").(string)
		assert.NotEqual(t, "object", typeTag, "field %s", field)
	}
}

func TestSchemaFields_StableOrder(t *testing.T) {
	schema := map[string]any{
		"properties": map[string]any{
			"zeta":  map[string]any{"type": "string"},
			"alpha": map[string]any{"type": "string"},
			"mid":   map[string]any{"type": "string"},
		},
	}

	want := SchemaFields(schema)
	for range 10 {
		assert.Equal(t, want, SchemaFields(schema))
	}
}

func TestMappingFields(t *testing.T) {
	mapping := map[string]any{
		"drug": map[string]any{
			"properties": map[string]any{
				"brand_name": map[string]any{"type": "string"},
				"openfda": map[string]any{
					"properties": map[string]any{
						"spl_id": map[string]any{"type": "string"},
					},
				},
			},
		},
	}

	fields := MappingFields(mapping)

	assert.Equal(t, map[string]bool{
		"properties.brand_name":                true,
		"properties.openfda.properties.spl_id": true,
	}, fields)
}

func TestMappingFields_ShallowKeys(t *testing.T) {
	// Keys at or directly under the root collapse to the empty path.
	mapping := map[string]any{
		"drug": map[string]any{"dynamic": "strict"},
	}

	assert.Equal(t, map[string]bool{"": true}, MappingFields(mapping))
}

func TestQueryable(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"properties.brand_name", "brand_name"},
		{"properties.openfda.properties.spl_id", "openfda.spl_id"},
		{"properties.brand_name.fields", "brand_name"},
		{"properties.brand_name.fields.exact", "brand_name.exact"},
		{"patient.drug", "patient.drug"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Queryable(tt.path), "path %q", tt.path)
	}
}
