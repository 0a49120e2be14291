// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names an explicit global config file, bypassing the
// user config directory.
const EnvConfigPath = "ADVANCECARD_CONFIG"

// GlobalConfigPath is the per-user config file: $ADVANCECARD_CONFIG when
// set, else advancecard/config.yaml under $XDG_CONFIG_HOME or ~/.config.
func GlobalConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "advancecard", "config.yaml")
}

// LoadGlobal reads the per-user config. A missing file is an empty Config.
func LoadGlobal() (*Config, error) {
	return loadFile(GlobalConfigPath())
}
