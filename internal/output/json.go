// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/davetashner/advancecard/internal/refresh"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

type jsonEnvelope struct {
	ID       string         `json:"id"`
	Status   refresh.Status `json:"status"`
	Error    string         `json:"error,omitempty"`
	Frame    *refresh.Frame `json:"frame,omitempty"`
	Metadata jsonMetadata   `json:"metadata"`
}

type jsonMetadata struct {
	GeneratedAt string `json:"generated_at"`
	LabelCount  int    `json:"label_count"`
}

// JSONFormatter writes an outcome as one JSON document. Output is indented
// for terminals and other writers, and compact when w is a file or pipe
// that is not a terminal, or when Compact is set.
type JSONFormatter struct {
	Compact bool

	// Clock stamps generated_at; nil means time.Now.
	Clock func() time.Time
}

var _ Formatter = (*JSONFormatter)(nil)

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Name() string { return "json" }

func (f *JSONFormatter) Format(out refresh.Outcome, w io.Writer) error {
	clock := f.Clock
	if clock == nil {
		clock = time.Now
	}
	env := jsonEnvelope{
		ID:     out.ID,
		Status: out.Status,
		Frame:  out.Frame,
		Metadata: jsonMetadata{
			GeneratedAt: clock().UTC().Format(time.RFC3339),
		},
	}
	if out.Frame != nil {
		env.Metadata.LabelCount = len(out.Frame.Labels)
	}
	if out.Err != nil {
		env.Error = out.Err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !f.compact(w) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (f *JSONFormatter) compact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
