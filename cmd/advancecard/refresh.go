// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/advancecard/internal/dataview"
	"github.com/davetashner/advancecard/internal/output"
	"github.com/davetashner/advancecard/internal/pipeline"
	"github.com/davetashner/advancecard/internal/refresh"
)

// Refresh-specific flag values.
var (
	refreshSettings string
	refreshFormat   string
	refreshOutput   string
	refreshLocale   string
	refreshWidth    float64
	refreshHeight   float64
	refreshSet      []string
)

// refreshCmd runs one card refresh.
var refreshCmd = &cobra.Command{
	Use:   "refresh [data-view.json]",
	Short: "Run a card refresh over a data view",
	Long: `Run one card refresh over a host data view and print the computed frame.

The data view is read from the file argument, or from stdin when no file is
given. Persisted card settings (YAML, TOML or JSON) layer over the data view's
own objects, and --set assignments layer over both:

  advancecard refresh sales.json --settings card.yaml
  advancecard refresh sales.json --set dataLabelSettings.displayUnit=3
  cat sales.json | advancecard refresh --format json

Exit code 2 means the refresh failed, 3 that there was nothing to render.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVarP(&refreshSettings, "settings", "s", "", "persisted settings snapshot (.yaml, .toml or .json)")
	refreshCmd.Flags().StringVarP(&refreshFormat, "format", "f", "text", "output format (json, markdown, text)")
	refreshCmd.Flags().StringVarP(&refreshOutput, "output", "o", "", "output file path (default: stdout)")
	refreshCmd.Flags().StringVarP(&refreshLocale, "locale", "l", "", "BCP 47 locale overriding the data view locale")
	refreshCmd.Flags().Float64Var(&refreshWidth, "width", 0, "viewport width")
	refreshCmd.Flags().Float64Var(&refreshHeight, "height", 0, "viewport height")
	refreshCmd.Flags().StringArrayVar(&refreshSet, "set", nil, "settings assignment object.property=value (repeatable)")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, flagOverrides{
		Locale:   refreshLocale,
		Format:   refreshFormat,
		Settings: refreshSettings,
		Width:    refreshWidth,
		Height:   refreshHeight,
	})
	if err != nil {
		return err
	}
	formatter, _ := output.GetFormatter(cfg.OutputFormat) // validated by resolveConfig

	objects, err := parseAssignments(refreshSet)
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}

	req := pipeline.Request{
		SettingsPath:  cfg.Settings,
		Objects:       objects,
		DefaultLocale: cfg.Locale,
		Viewport:      refresh.Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height},
	}
	if cmd.Flags().Changed("locale") {
		req.Locale = cfg.Locale
	}
	if len(args) > 0 {
		req.DataPath = args[0]
	} else {
		if req.DataView, err = dataview.Decode(cmd.InOrStdin()); err != nil {
			if errors.Is(err, dataview.ErrEmptyInput) {
				return exitError(ExitInvalidArgs, "advancecard: no data view on stdin (pass a file or pipe JSON)")
			}
			return exitError(ExitInvalidArgs, "advancecard: %v", err)
		}
	}

	p := pipeline.New(refresh.LogEvents{})
	out, err := p.Run(cmd.Context(), req)
	if err != nil {
		return exitError(ExitInvalidArgs, "advancecard: %v", err)
	}

	if err := writeOutcome(cmd, formatter, out); err != nil {
		return err
	}

	switch out.Status {
	case refresh.Failed:
		return exitError(ExitRenderFailed, "advancecard: refresh failed (%v)", out.Err)
	case refresh.NoData:
		return exitError(ExitNoData, "")
	}
	slog.Info("refresh complete", "refresh_id", out.ID, "labels", len(out.Frame.Labels))
	return nil
}

func writeOutcome(cmd *cobra.Command, formatter output.Formatter, out refresh.Outcome) error {
	var w io.Writer = cmd.OutOrStdout()
	if refreshOutput != "" {
		if err := cmdFS.MkdirAll(filepath.Dir(refreshOutput), 0o750); err != nil {
			return exitError(ExitInvalidArgs, "advancecard: cannot create output directory for %q (%v)", refreshOutput, err)
		}
		f, err := cmdFS.Create(refreshOutput)
		if err != nil {
			return exitError(ExitInvalidArgs, "advancecard: cannot create output file %q (%v)", refreshOutput, err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}
	if err := formatter.Format(out, w); err != nil {
		return exitError(ExitRenderFailed, "advancecard: %s output failed (%v)", formatter.Name(), err)
	}
	return nil
}
