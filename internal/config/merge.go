// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override file config.
const (
	EnvLocale = "ADVANCECARD_LOCALE"
	EnvFormat = "ADVANCECARD_FORMAT"
)

// DotEnvFile is read from the working directory for environment overrides.
const DotEnvFile = ".env"

// Merge combines two configs. Non-zero overlay values take precedence.
func Merge(base, overlay *Config) *Config {
	result := *base

	if overlay.Locale != "" {
		result.Locale = overlay.Locale
	}
	if overlay.OutputFormat != "" {
		result.OutputFormat = overlay.OutputFormat
	}
	if overlay.Settings != "" {
		result.Settings = overlay.Settings
	}
	if overlay.Viewport.Width != 0 {
		result.Viewport.Width = overlay.Viewport.Width
	}
	if overlay.Viewport.Height != 0 {
		result.Viewport.Height = overlay.Viewport.Height
	}

	return &result
}

// LoadEnv returns the environment overrides for dir. Values from the
// process environment win over values from a .env file in dir.
func LoadEnv(dir string) (map[string]string, error) {
	env := make(map[string]string)

	dotenv, err := godotenv.Read(filepath.Join(dir, DotEnvFile))
	switch {
	case err == nil:
		for _, key := range []string{EnvLocale, EnvFormat} {
			if v, ok := dotenv[key]; ok {
				env[key] = v
			}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", DotEnvFile, err)
	}

	for _, key := range []string{EnvLocale, EnvFormat} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			env[key] = v
		}
	}
	return env, nil
}

// ApplyEnv overlays environment overrides onto cfg.
func ApplyEnv(cfg *Config, env map[string]string) *Config {
	return Merge(cfg, &Config{
		Locale:       env[EnvLocale],
		OutputFormat: env[EnvFormat],
	})
}

// Resolve builds the effective config for dir: built-in defaults, then the
// global file, then the repo file, then the environment. CLI flags are
// applied by the caller on top.
func Resolve(dir string) (*Config, error) {
	layers, err := Layers(dir)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	for _, l := range layers {
		cfg = Merge(cfg, l.Config)
	}
	if cfg.Settings != "" && !filepath.IsAbs(cfg.Settings) {
		cfg.Settings = filepath.Join(dir, cfg.Settings)
	}
	return cfg, nil
}
