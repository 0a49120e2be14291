// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/advancecard/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running advancecard as an MCP server, exposing refresh, describe, format and validate tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing the card tools:
  - refresh:  Run a card refresh over a data view and settings snapshot
  - describe: Project the property pane of the last refreshed card
  - format:   Format a number with a display unit, decimals and locale
  - validate: Check a settings snapshot

All tool calls share one card instance, so describe reflects the settings
of the last successful refresh.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcpserver.Run(cmd.Context(), Version, mcpTransport())
	},
}

// mcpTransport is replaced in tests with an in-memory pipe.
var mcpTransport = func() mcp.Transport { return &mcp.StdioTransport{} }

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
