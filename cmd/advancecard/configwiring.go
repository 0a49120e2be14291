// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/config"
)

// flagOverrides holds CLI flag values that override the resolved config.
// Only flags the user changed are applied.
type flagOverrides struct {
	Locale   string
	Format   string
	Settings string
	Width    float64
	Height   float64
}

// resolveConfig loads the effective config for the working directory and
// applies the changed flags of cmd on top.
func resolveConfig(cmd *cobra.Command, flags flagOverrides) (*config.Config, error) {
	cfg, err := config.Resolve(".")
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "advancecard: %v", err)
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("locale") {
		cfg.Locale = flags.Locale
	}
	if changed("format") {
		cfg.OutputFormat = flags.Format
	}
	if changed("settings") {
		cfg.Settings = flags.Settings
	}
	if changed("width") {
		cfg.Viewport.Width = flags.Width
	}
	if changed("height") {
		cfg.Viewport.Height = flags.Height
	}

	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "advancecard: %v", err)
	}
	return cfg, nil
}

func isNull(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "null", "Null", "NULL", "~":
		return true
	}
	return false
}

// parseAssignments turns object.property=value assignments into settings
// objects. Values are read as YAML scalars, so 3 is a number, true a bool
// and null clears the property.
func parseAssignments(assignments []string) (card.Objects, error) {
	if len(assignments) == 0 {
		return nil, nil
	}
	objects := make(card.Objects)
	for _, a := range assignments {
		key, raw, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q (want object.property=value)", a)
		}
		objName, prop, ok := strings.Cut(strings.TrimSpace(key), ".")
		if !ok || objName == "" || prop == "" {
			return nil, fmt.Errorf("invalid assignment %q (want object.property=value)", a)
		}
		if _, known := card.ParseObjectName(objName); !known {
			return nil, fmt.Errorf("unknown settings object %q", objName)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid value in %q: %w", a, err)
		}
		if value == nil && !isNull(raw) {
			// "#RRGGBB" reads as a YAML comment.
			value = raw
		}
		if objects[objName] == nil {
			objects[objName] = make(map[string]any)
		}
		objects[objName][prop] = value
	}
	return objects, nil
}
