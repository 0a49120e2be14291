// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package config handles .advancecard.yaml configuration files.
package config

// Config represents the contents of a .advancecard.yaml file.
type Config struct {
	Locale       string   `yaml:"locale,omitempty"`
	OutputFormat string   `yaml:"output_format,omitempty"`
	Settings     string   `yaml:"settings,omitempty"`
	Viewport     Viewport `yaml:"viewport,omitempty"`
}

// Viewport is the default card size handed to a refresh.
type Viewport struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".advancecard.yaml"

// Built-in defaults used when no file, environment or flag sets a value.
const (
	DefaultLocale       = "en-US"
	DefaultOutputFormat = "text"
	DefaultWidth        = 320
	DefaultHeight       = 160
)

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Locale:       DefaultLocale,
		OutputFormat: DefaultOutputFormat,
		Viewport:     Viewport{Width: DefaultWidth, Height: DefaultHeight},
	}
}
