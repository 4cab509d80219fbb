// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package commands

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/baslia/openfda/internal/fields"
	"github.com/spf13/cobra"
)

type flatMappingOptions struct {
	mapping string
}

func newFlatMappingCmd() *cobra.Command {
	opts := &flatMappingOptions{}

	cmd := &cobra.Command{
		Use:   "flat-mapping",
		Short: "Print the queryable field names from a mapping file",
		Long: `Flatten an Elasticsearch mapping file and print its queryable field
names, one per line, sorted and de-duplicated. Exact variants are omitted.`,
		Example: `  fieldsgen flat-mapping --mapping drug.label.mapping.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatMapping(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mapping, "mapping", "", "ES mapping file")
	_ = cmd.MarkFlagRequired("mapping")

	return cmd
}

func runFlatMapping(cmd *cobra.Command, opts *flatMappingOptions) error {
	mapping, err := loadMapping(opts.mapping)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for path := range fields.MappingFields(mapping) {
		name := fields.Queryable(path)
		if name == "" || strings.Contains(name, "exact") {
			continue
		}
		seen[name] = true
	}

	out := cmd.OutOrStdout()
	for _, name := range slices.Sorted(maps.Keys(seen)) {
		fmt.Fprintln(out, name)
	}

	return nil
}
