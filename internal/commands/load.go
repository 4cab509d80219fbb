// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package commands

import (
	"os"
	"path/filepath"

	"github.com/baslia/openfda/internal/fieldsfile"
)

// loadMapping reads and validates an Elasticsearch mapping document.
func loadMapping(path string) (map[string]any, error) {
	loader := fieldsfile.NewLoader(os.DirFS(filepath.Dir(path)))
	return loader.Mapping(filepath.Base(path))
}

// loadSchema reads and validates a JSON Schema document.
func loadSchema(path string) (map[string]any, error) {
	loader := fieldsfile.NewLoader(os.DirFS(filepath.Dir(path)))
	return loader.Schema(filepath.Base(path))
}
