// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davetashner/advancecard/internal/config"
	"github.com/davetashner/advancecard/internal/format"
)

// Format-specific flag values.
var (
	formatUnit     int
	formatDecimals int
	formatLocale   string
)

// formatCmd formats a single number the way a card label would.
var formatCmd = &cobra.Command{
	Use:   "format <value>",
	Short: "Format a number with a display unit and precision",
	Long: `Format a number the way a card label renders it.

Display units: 0 auto, 1 none, 2 thousands, 3 millions, 4 billions,
5 trillions. The locale defaults to the configured locale.

  advancecard format 1234567
  advancecard format 1234567 --unit 3 --decimals 2
  advancecard format --unit 1 --decimals 1 --locale de-DE -- -1234.5`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().IntVarP(&formatUnit, "unit", "u", 0, "display unit code (0-5)")
	formatCmd.Flags().IntVar(&formatDecimals, "decimals", 0, "decimal places (0-15)")
	formatCmd.Flags().StringVarP(&formatLocale, "locale", "l", "", "BCP 47 locale")
}

func runFormat(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %q is not a number", args[0])
	}
	unit, err := format.ParseUnit(formatUnit)
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}

	locale := formatLocale
	if locale == "" {
		cfg, err := config.Resolve(".")
		if err != nil {
			return exitError(ExitInvalidArgs, "advancecard: %v", err)
		}
		locale = cfg.Locale
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), format.Format(value, unit, formatDecimals, locale))
	return nil
}
