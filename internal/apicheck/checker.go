// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openFDA Authors

// Package apicheck verifies that every field in an Elasticsearch mapping
// document is queryable through a live search API.
package apicheck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/baslia/openfda/internal/fields"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight probes when the caller
// does not choose a limit. Probes are independent, idempotent reads.
const DefaultConcurrency = 8

// probeURL is the existence query issued per field key.
const probeURL = "%s%s.json?search=_exists_:%s"

// Checker probes an API endpoint for every queryable field in a mapping.
// The zero value is usable; Host and Endpoint are normally set.
type Checker struct {
	Host        string
	Endpoint    string
	Client      *http.Client
	Concurrency int
	Logger      *slog.Logger
}

// Result is the outcome of probing a single field key. Err is set when the
// request itself failed, in which case Status is zero.
type Result struct {
	Key    string
	Status int
	Err    error
}

// Report holds the outcome of a full API check, ordered by key.
type Report struct {
	Results []Result
}

// Missing returns the keys that did not answer with HTTP 200, including
// keys whose probe failed outright. A 404 can be a false positive: a valid
// field that happens to hold no data anywhere answers 404 to an existence
// query.
func (r *Report) Missing() []string {
	var missing []string
	for _, res := range r.Results {
		if res.Err != nil || res.Status != http.StatusOK {
			missing = append(missing, res.Key)
		}
	}
	return missing
}

// Run probes every queryable field key in the mapping, plus the ".exact"
// variant of fields that have an exact counterpart, and logs a per-key and
// summary view of the outcome. It returns the collected report; the error
// is non-nil only when ctx ended before all probes finished.
func (c *Checker) Run(ctx context.Context, mapping map[string]any) (*Report, error) {
	keys := probeKeys(mapping)

	results := make([]Result, len(keys))
	var g errgroup.Group
	g.SetLimit(c.limit())
	for i, key := range keys {
		g.Go(func() error {
			results[i] = c.probe(ctx, key)
			return nil
		})
	}
	_ = g.Wait() // probes report through results, never an error

	report := &Report{Results: results}
	c.log(report)
	return report, ctx.Err()
}

func (c *Checker) log(report *Report) {
	logger := c.logger()
	for _, res := range report.Results {
		switch {
		case res.Err != nil:
			logger.Error("request failed", "key", res.Key, "error", res.Err)
		case res.Status == http.StatusOK:
			logger.Info("Ok!", "key", res.Key)
		}
	}

	if missing := report.Missing(); len(missing) > 0 {
		logger.Info("keys returned a non-200 response", "keys", missing)
	} else {
		logger.Info("all keys in the mapping are returned by the API")
	}
}

func (c *Checker) probe(ctx context.Context, key string) Result {
	url := fmt.Sprintf(probeURL, c.Host, c.Endpoint, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Key: key, Err: err}
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return Result{Key: key, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	return Result{Key: key, Status: resp.StatusCode}
}

// probeKeys cleans every mapping field path into its queryable name and
// pairs exact fields with their ".exact" variant. The cleaned set is
// de-duplicated and sorted.
func probeKeys(mapping map[string]any) []string {
	exact := fields.ExactIndex(mapping)

	seen := make(map[string]bool)
	for path := range fields.MappingFields(mapping) {
		if path == "" {
			continue
		}
		seen[fields.Queryable(path)] = true
		if exact[path] {
			seen[fields.Queryable(path)+".exact"] = true
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

func (c *Checker) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

func (c *Checker) limit() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
