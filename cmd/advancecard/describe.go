// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/advancecard/internal/pipeline"
	"github.com/davetashner/advancecard/internal/refresh"
)

// Describe-specific flag values.
var (
	describeData     string
	describeSettings string
	describeModel    bool
)

// describeCmd prints the property-pane projection of the card settings.
var describeCmd = &cobra.Command{
	Use:   "describe [object...]",
	Short: "Show the property pane instances of the card settings",
	Long: `Show what the host property pane would display for each settings object.

Without --data the projection covers the default settings. With --data the
card is refreshed first, so the projection reflects the data view's objects,
any --settings snapshot and the data view's tooltip columns.

  advancecard describe
  advancecard describe conditionSettings --data sales.json
  advancecard describe --model --settings card.yaml --data sales.json`,
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVarP(&describeData, "data", "d", "", "data view to refresh before describing")
	describeCmd.Flags().StringVarP(&describeSettings, "settings", "s", "", "persisted settings snapshot (requires --data)")
	describeCmd.Flags().BoolVar(&describeModel, "model", false, "print the formatting model instead of the instances")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	if describeSettings != "" && describeData == "" {
		return exitError(ExitInvalidArgs, "advancecard: --settings requires --data")
	}

	p := pipeline.New(refresh.LogEvents{})
	if describeData != "" {
		out, err := p.Run(cmd.Context(), pipeline.Request{
			DataPath:     describeData,
			SettingsPath: describeSettings,
		})
		if err != nil {
			return exitError(ExitInvalidArgs, "advancecard: %v", err)
		}
		if out.Status == refresh.Failed {
			return exitError(ExitRenderFailed, "advancecard: refresh failed (%v)", out.Err)
		}
	}

	var v any
	if describeModel {
		v = p.FormattingModel()
	} else {
		instances, err := p.DescribeNames(args)
		if err != nil {
			return exitError(ExitInvalidArgs, "advancecard: %v", err)
		}
		v = instances
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
