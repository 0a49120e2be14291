// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/advancecard/internal/config"
	"github.com/davetashner/advancecard/internal/testable"
)

func resetRefreshFlags() {
	resetFlags(refreshCmd)
	// Reset slices after VisitAll; StringArray.Set appends.
	refreshSet = nil
}

func TestRefreshCmd_JSON(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "--format", "json", "--quiet"})
	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	assert.Equal(t, "rendered", env.Status)
	require.NotNil(t, env.Frame)
	assert.Equal(t, "en-US", env.Frame.Locale)
	assert.Equal(t, float64(config.DefaultWidth), env.Frame.Viewport.Width)

	text, fg := env.label("primary")
	assert.Equal(t, "-2M", text)
	assert.Equal(t, "#00FF00", fg)
	text, fg = env.label("postfix")
	assert.Equal(t, "-12", text)
	assert.Equal(t, "#F25022", fg, "postfix takes its negative sign color")
}

func TestRefreshCmd_Text(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "--quiet"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "Status: rendered")
	assert.Contains(t, out, "-2M")
	assert.Contains(t, out, "Condition: no rule matched")
}

func TestRefreshCmd_Stdin(t *testing.T) {
	resetRefreshFlags()
	isolate(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetIn(strings.NewReader(salesView))
	cmd.SetArgs([]string{"refresh", "-f", "json", "--quiet"})
	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	assert.Equal(t, "rendered", env.Status)
}

func TestRefreshCmd_EmptyStdin(t *testing.T) {
	resetRefreshFlags()
	isolate(t)

	cmd, _, _ := newTestCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"refresh", "--quiet"})
	err := cmd.Execute()
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, err.Error(), "no data view on stdin")
}

func TestRefreshCmd_SetAssignments(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-f", "json", "--quiet",
		"--set", "conditionSettings.show=true",
		"--set", "conditionSettings.applyToDataLabel=true",
		"--set", "dataLabelSettings.displayUnit=3",
		"--set", "dataLabelSettings.decimalPlaces=2",
	})
	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	text, fg := env.label("primary")
	assert.Equal(t, "-1.50M", text)
	assert.Equal(t, "#FF0000", fg, "rule 2 (< 0) colors the primary label")
	_, fg = env.label("postfix")
	assert.Equal(t, "#FF0000", fg, "conditional foreground beats the sign color")
}

func TestRefreshCmd_SettingsFromConfig(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)
	writeTestFile(t, dir, "card.toml", "[dataLabelSettings]\ndisplayUnit = 2\n")
	writeTestFile(t, dir, config.FileName, "settings: card.toml\nlocale: de-DE\nviewport:\n  width: 500\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-f", "json", "--quiet"})
	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	require.NotNil(t, env.Frame)
	assert.Equal(t, "en-US", env.Frame.Locale, "the data view locale beats the configured default")
	assert.Equal(t, 500.0, env.Frame.Viewport.Width)
	text, _ := env.label("primary")
	assert.Equal(t, "-1,500K", text)
}

func TestRefreshCmd_LocaleFlagOverridesDataView(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-f", "json", "--quiet", "--locale", "de-DE", "--set", "dataLabelSettings.displayUnit=2"})
	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	require.NotNil(t, env.Frame)
	assert.Equal(t, "de-DE", env.Frame.Locale)
	text, _ := env.label("primary")
	assert.Equal(t, "-1.500K", text)
}

func TestRefreshCmd_FailedRefresh(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-f", "json", "--quiet", "--set", "dataLabelSettings.fontSize=big"})
	err := cmd.Execute()
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitRenderFailed, ece.ExitCode())

	env := decodeEnvelope(t, stdout.Bytes())
	assert.Equal(t, "failed", env.Status)
	assert.Contains(t, env.Error, "fontSize")
	assert.Nil(t, env.Frame)
}

func TestRefreshCmd_NoData(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "empty.json", emptyView)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-f", "json", "--quiet"})
	err := cmd.Execute()
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitNoData, ece.ExitCode())
	assert.Equal(t, "no_data", decodeEnvelope(t, stdout.Bytes()).Status)
}

func TestRefreshCmd_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"missing.json"}, "open data view"},
		{"bad format", []string{"sales.json", "--format", "xml"}, "output_format"},
		{"bad locale", []string{"sales.json", "--locale", "not a locale!"}, "locale"},
		{"bad assignment", []string{"sales.json", "--set", "show=true"}, "invalid assignment"},
		{"unknown object", []string{"sales.json", "--set", "nope.show=true"}, `unknown settings object "nope"`},
		{"bad settings extension", []string{"sales.json", "--settings", "card.ini"}, "settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRefreshFlags()
			dir := isolate(t)
			writeTestFile(t, dir, "sales.json", salesView)

			cmd, _, _ := newTestCmd()
			cmd.SetArgs(append([]string{"refresh", "--quiet"}, tt.args...))
			err := cmd.Execute()
			require.Error(t, err)

			var ece *exitCodeError
			require.True(t, errors.As(err, &ece))
			assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRefreshCmd_OutputFile(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)
	outPath := filepath.Join(dir, "out", "frame.json")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-f", "json", "-o", outPath, "--quiet"})
	require.NoError(t, cmd.Execute())
	assert.Empty(t, stdout.String())

	written, err := os.ReadFile(outPath) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "rendered", decodeEnvelope(t, written).Status)
}

func TestRefreshCmd_OutputFileCreateError(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)

	orig := cmdFS
	cmdFS = &testable.MockFileSystem{
		CreateFn: func(string) (io.WriteCloser, error) { return nil, os.ErrPermission },
	}
	t.Cleanup(func() { cmdFS = orig })

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-o", "frame.txt", "--quiet"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create output file")
}

func TestRefreshCmd_OutputDirError(t *testing.T) {
	resetRefreshFlags()
	dir := isolate(t)
	data := writeTestFile(t, dir, "sales.json", salesView)

	orig := cmdFS
	cmdFS = &testable.MockFileSystem{
		MkdirAllFn: func(string, os.FileMode) error { return os.ErrPermission },
	}
	t.Cleanup(func() { cmdFS = orig })

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"refresh", data, "-o", "out/frame.txt", "--quiet"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create output directory")
}

func TestParseAssignments(t *testing.T) {
	objects, err := parseAssignments([]string{
		"strokeSettings.strokeWidth=3",
		"strokeSettings.strokeColor=#112233",
		"conditionSettings.value1=null",
		"tooltipSettings.title=Total sales",
		"postfixSettings.show=false",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, objects["strokeSettings"]["strokeWidth"])
	assert.Equal(t, "#112233", objects["strokeSettings"]["strokeColor"])
	assert.Contains(t, objects["conditionSettings"], "value1")
	assert.Nil(t, objects["conditionSettings"]["value1"])
	assert.Equal(t, "Total sales", objects["tooltipSettings"]["title"])
	assert.Equal(t, false, objects["postfixSettings"]["show"])

	none, err := parseAssignments(nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = parseAssignments([]string{"general.alignment"})
	assert.ErrorContains(t, err, "invalid assignment")
	_, err = parseAssignments([]string{".show=true"})
	assert.ErrorContains(t, err, "invalid assignment")
}
