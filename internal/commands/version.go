// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package commands

import (
	"fmt"

	"github.com/baslia/openfda/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the fieldsgen version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
}
