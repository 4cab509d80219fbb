// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

// Package main is the entry point for the fieldsgen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/baslia/openfda/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
