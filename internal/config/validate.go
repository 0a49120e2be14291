// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/davetashner/advancecard/internal/output"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			errs = append(errs, fmt.Sprintf("locale: invalid BCP 47 tag %q", cfg.Locale))
		}
	}

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.Settings != "" {
		if _, err := SnapshotFormat(cfg.Settings); err != nil {
			errs = append(errs, fmt.Sprintf("settings: %v", err))
		}
	}

	if cfg.Viewport.Width < 0 {
		errs = append(errs, fmt.Sprintf("viewport.width: must be non-negative, got %g", cfg.Viewport.Width))
	}
	if cfg.Viewport.Height < 0 {
		errs = append(errs, fmt.Sprintf("viewport.height: must be non-negative, got %g", cfg.Viewport.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
