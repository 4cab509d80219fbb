// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm prompts for the generate inputs that were not provided on
// the command line. Values already set keep their flag value and are not
// shown.
func RunGenerateForm(mapping, schema, filename *string) error {
	hasMapping := *mapping != ""
	hasSchema := *schema != ""
	hasFilename := *filename != ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mapping file").
				Placeholder("e.g., ./drug.label.mapping.json").
				Value(mapping).
				Validate(fileValidator("mapping file")),
		).WithHideFunc(func() bool { return hasMapping }),
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file").
				Placeholder("e.g., ./drug.label.schema.json").
				Value(schema).
				Validate(fileValidator("schema file")),
		).WithHideFunc(func() bool { return hasSchema }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Placeholder("e.g., ./_fields.yaml").
				Value(filename).
				Validate(requiredValidator("output file")),
		).WithHideFunc(func() bool { return hasFilename }),
	).WithTheme(Theme()).Run()
}
