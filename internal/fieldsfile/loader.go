// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

// Package fieldsfile reads the schema and mapping documents that feed the
// fields generator and writes the annotated result.
package fieldsfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/baslia/openfda/internal/tree"
	gojson "github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// ErrUnsupported is returned for input files whose extension names no known
// document format.
var ErrUnsupported = errors.New("format not supported")

// Loader reads schema and mapping documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Mapping loads an Elasticsearch mapping document. The format is determined
// from the file extension; the decoded tree must be list-free.
func (l *Loader) Mapping(filePath string) (map[string]any, error) {
	return l.load(filePath)
}

// Schema loads a JSON Schema document. On top of the mapping checks, the
// raw tree must also parse as a structurally valid JSON Schema.
func (l *Loader) Schema(filePath string) (map[string]any, error) {
	t, err := l.load(filePath)
	if err != nil {
		return nil, err
	}
	if err := preflight(t); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return t, nil
}

func (l *Loader) load(filePath string) (map[string]any, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	t, err := decode(data, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	if err := tree.Validate(t); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return t, nil
}

func decode(data []byte, filePath string) (map[string]any, error) {
	var t map[string]any
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, err
		}
	case strings.HasSuffix(filePath, ".json"):
		if err := gojson.Unmarshal(data, &t); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupported
	}
	return t, nil
}

// preflight round-trips the tree through canonical JSON into a schema value,
// rejecting documents whose shape no JSON Schema processor would accept.
func preflight(t map[string]any) error {
	raw, err := gojson.Marshal(t)
	if err != nil {
		return err
	}
	var schema jsonschema.Schema
	if err := gojson.Unmarshal(raw, &schema); err != nil {
		return fmt.Errorf("not a valid JSON Schema: %w", err)
	}
	return nil
}
