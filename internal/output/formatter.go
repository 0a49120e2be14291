// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package output renders refresh outcomes as json, text or markdown.
package output

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/davetashner/advancecard/internal/refresh"
)

// Formatter writes a refresh outcome in one output format.
type Formatter interface {
	Name() string
	Format(out refresh.Outcome, w io.Writer) error
}

// ErrUnknownFormat is wrapped by GetFormatter for unregistered names.
var ErrUnknownFormat = errors.New("unknown format")

// formatters is filled by the init functions of this package and read-only
// afterwards.
var formatters = map[string]Formatter{}

// RegisterFormatter adds f under f.Name(), replacing any earlier entry.
// Call it only from init.
func RegisterFormatter(f Formatter) {
	formatters[f.Name()] = f
}

// GetFormatter looks up a formatter by name.
func GetFormatter(name string) (Formatter, error) {
	if f, ok := formatters[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
}

// Names lists the registered formats in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(formatters))
}
