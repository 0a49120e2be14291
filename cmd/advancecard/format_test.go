// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/advancecard/internal/config"
)

func resetFormatFlags() {
	resetFlags(formatCmd)
}

func TestFormatCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"auto", []string{"1234567"}, "1M"},
		{"millions with decimals", []string{"1234567", "--unit", "3", "--decimals", "2"}, "1.23M"},
		{"none grouped", []string{"1234567", "-u", "1"}, "1,234,567"},
		{"negative german", []string{"--unit", "1", "--decimals", "1", "--locale", "de-DE", "--", "-1234.5"}, "-1.234,5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFormatFlags()
			isolate(t)

			cmd, stdout, _ := newTestCmd()
			cmd.SetArgs(append([]string{"format"}, tt.args...))
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, strings.TrimSpace(stdout.String()))
		})
	}
}

func TestFormatCmd_ConfiguredLocale(t *testing.T) {
	resetFormatFlags()
	dir := isolate(t)
	writeTestFile(t, dir, config.FileName, "locale: de-DE\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"format", "1234.5", "--unit", "1", "--decimals", "1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.234,5", strings.TrimSpace(stdout.String()))
}

func TestFormatCmd_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"not a number", []string{"abc"}, "is not a number"},
		{"unknown unit", []string{"1", "--unit", "9"}, "unknown display unit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFormatFlags()
			isolate(t)

			cmd, _, _ := newTestCmd()
			cmd.SetArgs(append([]string{"format"}, tt.args...))
			err := cmd.Execute()
			require.Error(t, err)

			var ece *exitCodeError
			require.True(t, errors.As(err, &ece))
			assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
