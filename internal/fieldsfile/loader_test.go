// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package fieldsfile

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/baslia/openfda/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_SchemaJSON(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	schema, err := loader.Schema("schema.json")
	require.NoError(t, err)

	assert.Equal(t, "string", tree.GetDeep(schema, "properties.brand_name.type"))
	assert.Equal(t, "string", tree.GetDeep(schema, "properties.route.items.type"))
	assert.Contains(t, schema, "$schema")
}

func TestLoader_SchemaYAML(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	schema, err := loader.Schema("schema.yaml")
	require.NoError(t, err)

	assert.Equal(t, "string", tree.GetDeep(schema, "properties.generic_name.type"))
	assert.Equal(t, "The type of drug product.", tree.GetDeep(schema, "properties.product_type.description"))
}

func TestLoader_MappingJSON(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	mapping, err := loader.Mapping("mapping.json")
	require.NoError(t, err)

	assert.Equal(t, "not_analyzed", tree.GetDeep(mapping, "drug.properties.brand_name.fields.exact.index"))
}

func TestLoader_NotFound(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	_, err := loader.Mapping("nonexistent.json")
	require.Error(t, err)
}

func TestLoader_UnsupportedExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"mapping.toml": &fstest.MapFile{Data: []byte("drug = 1")},
	}
	loader := NewLoader(fsys)
	_, err := loader.Mapping("mapping.toml")
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestLoader_InvalidJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"invalid.json": &fstest.MapFile{Data: []byte("{invalid json}")},
	}
	loader := NewLoader(fsys)
	_, err := loader.Mapping("invalid.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestLoader_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"invalid.yaml": &fstest.MapFile{Data: []byte("{{invalid yaml")},
	}
	loader := NewLoader(fsys)
	_, err := loader.Mapping("invalid.yaml")
	require.Error(t, err)
}

func TestLoader_RejectsLists(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.json": &fstest.MapFile{Data: []byte(`{"required": ["brand_name"]}`)},
	}
	loader := NewLoader(fsys)
	_, err := loader.Schema("schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lists are not supported")
	assert.Contains(t, err.Error(), `"required"`)
}

func TestLoader_SchemaPreflight(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.json": &fstest.MapFile{Data: []byte(`{"properties": "not an object"}`)},
	}
	loader := NewLoader(fsys)
	_, err := loader.Schema("schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid JSON Schema")
}

func TestLoader_MappingSkipsPreflight(t *testing.T) {
	// Mapping documents are not JSON Schemas; the same shape must load.
	fsys := fstest.MapFS{
		"mapping.json": &fstest.MapFile{Data: []byte(`{"properties": "not an object"}`)},
	}
	loader := NewLoader(fsys)
	_, err := loader.Mapping("mapping.json")
	require.NoError(t, err)
}
