// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package testable abstracts the file writes made by the CLI so tests can
// inject failures without touching the real disk.
package testable

import (
	"io"
	"os"
)

// FileSystem is the set of file operations the CLI uses to write output.
type FileSystem interface {
	// Create creates or truncates the named file.
	Create(name string) (io.WriteCloser, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OsFileSystem writes to the real disk.
type OsFileSystem struct{}

func (OsFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name) //nolint:gosec // caller controls path
}

func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// DefaultFS is the production FileSystem.
var DefaultFS FileSystem = OsFileSystem{}
