package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	resetFlags()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "advance card visual")
	for _, sub := range []string{"refresh", "describe", "format", "validate", "config", "mcp", "version"} {
		assert.Contains(t, out, sub, "root help missing %s subcommand", sub)
	}
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		flag string
	}{
		{"verbose", "--verbose"},
		{"quiet", "--quiet"},
		{"no-color", "--no-color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rootCmd.PersistentFlags().Lookup(strings.TrimPrefix(tt.flag, "--"))
			assert.NotNil(t, f, "global flag %s not registered", tt.flag)
		})
	}

	v := rootCmd.PersistentFlags().ShorthandLookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "verbose", v.Name)
	q := rootCmd.PersistentFlags().ShorthandLookup("q")
	require.NotNil(t, q)
	assert.Equal(t, "quiet", q.Name)
}

func TestNoColorFlag(t *testing.T) {
	resetFlags(formatCmd)
	isolate(t)
	color.NoColor = false

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"format", "1", "--no-color"})
	require.NoError(t, cmd.Execute())
	assert.True(t, color.NoColor)
}

func TestUnknownCommand(t *testing.T) {
	resetFlags()
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"render"})
	assert.Error(t, cmd.Execute())
}
