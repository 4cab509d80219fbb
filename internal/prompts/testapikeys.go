// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package prompts

import "github.com/charmbracelet/huh"

// RunAPIKeysForm prompts for the test-api-keys inputs that were not provided
// on the command line.
func RunAPIKeysForm(mapping, endpoint *string) error {
	hasMapping := *mapping != ""
	hasEndpoint := *endpoint != ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mapping file").
				Placeholder("e.g., ./drug.event.mapping.json").
				Value(mapping).
				Validate(fileValidator("mapping file")),
		).WithHideFunc(func() bool { return hasMapping }),
		huh.NewGroup(
			huh.NewInput().
				Title("Endpoint").
				Placeholder("e.g., /drug/event").
				Value(endpoint).
				Validate(requiredValidator("endpoint")),
		).WithHideFunc(func() bool { return hasEndpoint }),
	).WithTheme(Theme()).Run()
}
