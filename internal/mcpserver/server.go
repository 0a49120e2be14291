// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/advancecard/internal/pipeline"
	"github.com/davetashner/advancecard/internal/refresh"
)

// New creates a new MCP server with the card tools registered. All tool
// calls share one card instance, so describe reflects the last refresh.
func New(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "advancecard",
		Title:   "Advance Card",
		Version: version,
	}, nil)

	registerTools(server, newTools(pipeline.New(refresh.LogEvents{})))
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, transport mcp.Transport) error {
	server := New(version)
	return server.Run(ctx, transport)
}
