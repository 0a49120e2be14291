// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/advancecard/internal/card"
)

// ErrUnsupportedSnapshot is returned for settings files with an unknown
// extension.
var ErrUnsupportedSnapshot = errors.New("unsupported settings file type")

// SnapshotFormat returns the decoder name for a settings file path:
// "yaml", "toml" or "json".
func SnapshotFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("%w: %q (use .yaml, .yml, .toml or .json)", ErrUnsupportedSnapshot, filepath.Base(path))
	}
}

// LoadSnapshot reads persisted card settings objects from a YAML, TOML or
// JSON file. The file maps object names to their properties, the same shape
// the host persists.
func LoadSnapshot(path string) (card.Objects, error) {
	kind, err := SnapshotFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-provided settings path
	if err != nil {
		return nil, err
	}

	objects := card.Objects{}
	switch kind {
	case "yaml":
		err = yaml.Unmarshal(data, &objects)
	case "toml":
		_, err = toml.Decode(string(data), &objects)
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&objects)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if objects == nil {
		objects = card.Objects{} // a "null" document
	}
	return objects, nil
}
