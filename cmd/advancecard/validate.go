// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/advancecard/internal/config"
	"github.com/davetashner/advancecard/internal/validate"
)

// Validate-specific flag values.
var (
	validateJSON bool
)

// validateCmd checks persisted settings snapshots.
var validateCmd = &cobra.Command{
	Use:   "validate [settings-file...]",
	Short: "Validate persisted card settings snapshots",
	Long: `Validate card settings snapshots (.yaml, .toml or .json) before handing them
to a refresh.

Type mismatches, unparseable colors, unknown comparators or display units and
out-of-range values are errors. Unknown objects or properties, which a refresh
ignores, are warnings. Each issue comes with a fix suggestion when one exists.

Several files are checked concurrently and reported in argument order.
Without a file argument the configured settings snapshot is checked:
  advancecard validate card.yaml
  advancecard validate --json card.toml themes/*.yaml
  advancecard validate`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "print the result as JSON")
}

// fileResult is one validated snapshot.
type fileResult struct {
	File string `json:"file"`
	*validate.Result
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		cfg, err := config.Resolve(".")
		if err != nil {
			return exitError(ExitInvalidArgs, "advancecard: %v", err)
		}
		if cfg.Settings == "" {
			return exitError(ExitInvalidArgs, "advancecard: no settings file given and none configured")
		}
		paths = []string{cfg.Settings}
	}

	results, err := validateFiles(cmd.Context(), paths)
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}

	if validateJSON {
		var doc any = results
		if len(results) == 1 {
			doc = results[0].Result
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, r := range results {
			prefix := ""
			if len(results) > 1 {
				prefix = r.File + ": "
			}
			printIssues(cmd, prefix, r.Result)
		}
	}

	for _, r := range results {
		if !r.Valid() {
			return exitError(ExitInvalidArgs, "")
		}
	}
	return nil
}

// validateFiles loads and checks each path concurrently. The first load
// error cancels the rest.
func validateFiles(ctx context.Context, paths []string) ([]fileResult, error) {
	results := make([]fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			objects, err := config.LoadSnapshot(path)
			if err != nil {
				return err
			}
			results[i] = fileResult{File: path, Result: validate.Validate(objects)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printIssues(cmd *cobra.Command, prefix string, result *validate.Result) {
	errs := result.Count(validate.SeverityError)
	warnings := result.Count(validate.SeverityWarning)

	w := cmd.ErrOrStderr()
	for _, issue := range result.Issues {
		_, _ = fmt.Fprintf(w, "%s%s: %s: %s\n", prefix, issue.Severity, issue.Path(), issue.Message)
		if issue.Suggestion != "" {
			_, _ = fmt.Fprintf(w, "  fix: %s\n", issue.Suggestion)
		}
	}

	if result.Valid() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%svalid: %d objects, %d warning(s)\n", prefix, result.Objects, warnings)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%d error(s), %d warning(s) found in %d objects\n", prefix, errs, warnings, result.Objects)
}
