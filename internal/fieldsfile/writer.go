package fieldsfile

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Write encodes the tree as indented YAML with keys sorted alphabetically at
// every level. Null values render as blanks, the written file is a skeleton
// whose empty attributes are filled in by hand afterwards.
func Write(w io.Writer, t map[string]any) error {
	doc, err := fieldsNode(t)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFile writes the tree to path, creating or truncating the file.
func WriteFile(path string, t map[string]any) error {
	f, err := os.Create(path) //nolint:gosec // path is the user-chosen output name
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if err := Write(f, t); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func fieldsNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range slices.Sorted(maps.Keys(val)) {
			child, err := fieldsNode(val[key])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child,
			)
		}
		return node, nil
	case nil:
		// An empty scalar with the null tag emits as a blank value.
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: ""}, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}
