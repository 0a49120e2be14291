// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const salesView = `{
  "locale": "en-US",
  "objects": {"postfixSettings": {"show": true}},
  "table": {
    "columns": [
      {"displayName": "Revenue", "roles": {"mainMeasure": true}, "type": {"numeric": true}},
      {"displayName": "Change", "roles": {"postfixMeasure": true}, "type": {"numeric": true}}
    ],
    "rows": [[-1500000, -12]]
  }
}`

const emptyView = `{"table": {"columns": [], "rows": []}}`

// newTestCmd returns rootCmd with its I/O redirected to fresh buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(nil)
	rootCmd.SetContext(context.Background())
	return rootCmd, stdout, stderr
}

// resetFlags restores the flags of cmds and the global flags to their
// defaults. Slice flags are reset by the caller.
func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	for _, c := range cmds {
		c.Flags().VisitAll(reset)
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	rootCmd.Flags().VisitAll(reset)
}

// isolate runs the test in a fresh working directory with no global config
// and no environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("ADVANCECARD_CONFIG", "")
	t.Setenv("ADVANCECARD_LOCALE", "")
	t.Setenv("ADVANCECARD_FORMAT", "")

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
	return dir
}

// writeTestFile creates a file (and any necessary parent directories) under
// dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// envelope is the subset of the JSON output the tests look at.
type envelope struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
	Frame  *struct {
		Locale   string `json:"locale"`
		Viewport struct {
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		} `json:"viewport"`
		Labels []struct {
			Role  string `json:"role"`
			Text  string `json:"text"`
			Color string `json:"color"`
		} `json:"labels"`
	} `json:"frame"`
}

func decodeEnvelope(t *testing.T, data []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env), "output: %s", data)
	return env
}

func (e envelope) label(role string) (text, fg string) {
	if e.Frame == nil {
		return "", ""
	}
	for _, l := range e.Frame.Labels {
		if l.Role == role {
			return l.Text, l.Color
		}
	}
	return "", ""
}
