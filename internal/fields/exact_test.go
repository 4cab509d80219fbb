// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactIndex_SubFieldsMarker(t *testing.T) {
	mapping := map[string]any{
		"drug": map[string]any{
			"properties": map[string]any{
				"brand_name": map[string]any{
					"type": "string",
					"fields": map[string]any{
						"exact": map[string]any{"type": "string"},
					},
				},
				"generic_name": map[string]any{"type": "string"},
			},
		},
	}

	index := ExactIndex(mapping)

	assert.Equal(t, map[string]bool{"properties.brand_name": true}, index)
}

func TestExactIndex_ExactListMarker(t *testing.T) {
	mapping := map[string]any{
		"drug": map[string]any{
			"properties": map[string]any{
				"openfda": map[string]any{
					"properties": map[string]any{
						"spl_id_exact": map[string]any{"type": "string"},
					},
				},
			},
		},
	}

	index := ExactIndex(mapping)

	assert.Equal(t, map[string]bool{"properties.openfda.properties.spl_id": true}, index)
}

func TestExactIndex_NoMarkers(t *testing.T) {
	mapping := map[string]any{
		"drug": map[string]any{
			"properties": map[string]any{
				"brand_name": map[string]any{"type": "string"},
			},
		},
	}

	assert.Empty(t, ExactIndex(mapping))
}

func TestExactIndex_TruncatesAtFirstMarker(t *testing.T) {
	// A fields block below an exact list must not widen the recorded path.
	mapping := map[string]any{
		"drug": map[string]any{
			"properties": map[string]any{
				"name_exact": map[string]any{
					"fields": map[string]any{
						"raw": map[string]any{"type": "string"},
					},
				},
			},
		},
	}

	index := ExactIndex(mapping)

	assert.Equal(t, map[string]bool{"properties.name": true}, index)
}

func TestExactIndex_Deterministic(t *testing.T) {
	mapping := map[string]any{
		"drug": map[string]any{
			"properties": map[string]any{
				"brand_name": map[string]any{
					"type": "string",
					"fields": map[string]any{
						"exact": map[string]any{"type": "string"},
					},
				},
				"generic_name": map[string]any{
					"type": "string",
					"fields": map[string]any{
						"exact": map[string]any{"type": "string"},
					},
				},
			},
		},
	}

	want := ExactIndex(mapping)
	for range 10 {
		assert.Equal(t, want, ExactIndex(mapping))
	}
}
