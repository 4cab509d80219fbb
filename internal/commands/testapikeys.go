// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

package commands

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/baslia/openfda/internal/apicheck"
	"github.com/baslia/openfda/internal/prompts"
	"github.com/spf13/cobra"
)

type testAPIKeysOptions struct {
	host        string
	mapping     string
	endpoint    string
	concurrency int
	timeout     time.Duration
}

func newTestAPIKeysCmd() *cobra.Command {
	opts := &testAPIKeysOptions{}

	cmd := &cobra.Command{
		Use:   "test-api-keys",
		Short: "Check that every mapping field is queryable through the API",
		Long: `Check an API to make sure that all fields in the mapping file are
queryable, and report the keys that answered with a non-200 response.

Please note, it is possible to get false positives, since the API responds
with 404s when there is no data in the response. For instance, the query
/device/510k.json?search=_exists_:ssp_indicator returns nothing, but it is a
valid field from the source, it just happens to never have data.`,
		Example: `  # Interactive mode
  fieldsgen test-api-keys

  # Check a local API
  fieldsgen test-api-keys --mapping drug.event.mapping.json --endpoint /drug/event

  # Check production with a tighter probe bound
  fieldsgen test-api-keys --host https://api.fda.gov --mapping drug.event.mapping.json --endpoint /drug/event --concurrency 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTestAPIKeys(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "http://localhost:8000", "Base URL for the API to test")
	cmd.Flags().StringVar(&opts.mapping, "mapping", "", "ES mapping file")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Endpoint to test, i.e. /drug/event")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", apicheck.DefaultConcurrency, "Maximum number of in-flight probes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Per-request timeout")

	return cmd
}

func runTestAPIKeys(cmd *cobra.Command, opts *testAPIKeysOptions) error {
	if opts.mapping == "" || opts.endpoint == "" {
		if err := prompts.RunAPIKeysForm(&opts.mapping, &opts.endpoint); err != nil {
			return err
		}
	}

	mapping, err := loadMapping(opts.mapping)
	if err != nil {
		return err
	}

	checker := &apicheck.Checker{
		Host:        opts.host,
		Endpoint:    opts.endpoint,
		Client:      &http.Client{Timeout: opts.timeout},
		Concurrency: opts.concurrency,
		Logger:      slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	report, err := checker.Run(cmd.Context(), mapping)
	if err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Endpoint", Value: opts.host + opts.endpoint},
		{Label: "Keys checked", Value: strconv.Itoa(len(report.Results))},
		{Label: "Missing", Value: strconv.Itoa(len(report.Missing()))},
	}, "")

	return nil
}
