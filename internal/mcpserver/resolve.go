// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes card refreshes, property-pane projection and value
// formatting as tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File kinds a tool may be pointed at.
var (
	dataViewExts = []string{".json"}
	snapshotExts = []string{".yaml", ".yml", ".toml", ".json"}
)

// ResolveFile turns a tool-supplied path into an absolute path with
// symlinks resolved. The target must be a regular file whose extension is
// one of exts, compared case-insensitively.
func ResolveFile(path string, exts ...string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no file path given")
	}
	if ext := strings.ToLower(filepath.Ext(path)); len(exts) > 0 && !slices.Contains(exts, ext) {
		return "", fmt.Errorf("%q: expected a %s file", path, strings.Join(exts, ", "))
	}

	abs, err := filepath.Abs(path)
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err != nil:
		return "", fmt.Errorf("cannot stat %q: %w", path, err)
	case !info.Mode().IsRegular():
		return "", fmt.Errorf("%q is not a regular file", path)
	}
	return abs, nil
}
