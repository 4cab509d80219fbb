// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package commands

import (
	"strconv"

	"github.com/baslia/openfda/internal/fields"
	"github.com/baslia/openfda/internal/fieldsfile"
	"github.com/baslia/openfda/internal/prompts"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	mapping  string
	schema   string
	filename string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a _fields.yaml skeleton from a schema and a mapping",
		Long: `Generate the skeleton structure for a _fields.yaml file by reconciling a
JSON Schema file with the matching Elasticsearch mapping file. Every leaf
field receives the documentation attributes the website expects; the content
itself is filled in by another process, most likely a manual one.`,
		Example: `  # Interactive mode
  fieldsgen generate

  # Generate from explicit files
  fieldsgen generate --mapping drug.label.mapping.json --schema drug.label.schema.json --filename _fields.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.mapping, "mapping", "", "ES mapping file")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "JSON Schema file")
	cmd.Flags().StringVar(&opts.filename, "filename", "", "Output file name for the fields file")

	return cmd
}

func runGenerate(opts *generateOptions) error {
	if opts.mapping == "" || opts.schema == "" || opts.filename == "" {
		if err := prompts.RunGenerateForm(&opts.mapping, &opts.schema, &opts.filename); err != nil {
			return err
		}
	}

	mapping, err := loadMapping(opts.mapping)
	if err != nil {
		return err
	}
	schema, err := loadSchema(opts.schema)
	if err != nil {
		return err
	}

	annotated, err := fields.Annotate(schema, mapping)
	if err != nil {
		return err
	}

	if err := fieldsfile.WriteFile(opts.filename, schema); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Mapping", Value: opts.mapping},
		{Label: "Schema", Value: opts.schema},
		{Label: "Fields", Value: strconv.Itoa(annotated)},
		{Label: "Output", Value: opts.filename},
	}, "Fields file generated")

	return nil
}
