// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"io"
	"os"
)

// MockFileSystem overrides individual operations. A nil field falls
// through to OsFileSystem.
type MockFileSystem struct {
	CreateFn   func(name string) (io.WriteCloser, error)
	MkdirAllFn func(path string, perm os.FileMode) error
}

func (m *MockFileSystem) Create(name string) (io.WriteCloser, error) {
	if m.CreateFn != nil {
		return m.CreateFn(name)
	}
	return OsFileSystem{}.Create(name)
}

func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return OsFileSystem{}.MkdirAll(path, perm)
}

var _ FileSystem = (*MockFileSystem)(nil)
