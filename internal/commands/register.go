// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fieldsgen",
		Short: "Field documentation tooling for open.fda.gov datasets",
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newTestAPIKeysCmd())
	rootCmd.AddCommand(newFlatMappingCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
