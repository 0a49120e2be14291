// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package config

import "fmt"

// Layer sources, lowest precedence first.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceRepo    = "repo"
	SourceEnv     = "env"
)

// Layer is one contributor to the effective config.
type Layer struct {
	Source string
	Config *Config
}

// Layers loads every config layer for dir in precedence order. Later
// layers override earlier ones field by field.
func Layers(dir string) ([]Layer, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	repo, err := Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading repo config: %w", err)
	}
	env, err := LoadEnv(dir)
	if err != nil {
		return nil, err
	}
	return []Layer{
		{SourceDefault, Defaults()},
		{SourceGlobal, global},
		{SourceRepo, repo},
		{SourceEnv, ApplyEnv(&Config{}, env)},
	}, nil
}

// Origin reports which layer supplies the value at keyPath, walking from
// the highest precedence down. It returns "" when no layer sets the key.
func Origin(layers []Layer, keyPath string) (any, string) {
	for i := len(layers) - 1; i >= 0; i-- {
		if v, err := GetValue(layers[i].Config, keyPath); err == nil {
			return v, layers[i].Source
		}
	}
	return nil, ""
}
