// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/advancecard/internal/config"
	"github.com/davetashner/advancecard/internal/dataview"
	"github.com/davetashner/advancecard/internal/format"
	"github.com/davetashner/advancecard/internal/output"
	"github.com/davetashner/advancecard/internal/pipeline"
	"github.com/davetashner/advancecard/internal/refresh"
	"github.com/davetashner/advancecard/internal/validate"
)

// RefreshInput is the input schema for the refresh MCP tool.
type RefreshInput struct {
	DataPath     string  `json:"data_path,omitempty" jsonschema:"Path to a data view JSON file"`
	DataView     string  `json:"data_view,omitempty" jsonschema:"Inline data view JSON document (used instead of data_path)"`
	SettingsPath string  `json:"settings_path,omitempty" jsonschema:"Persisted settings snapshot (.yaml, .toml or .json) layered over the data view objects"`
	Locale       string  `json:"locale,omitempty" jsonschema:"BCP 47 locale overriding the data view locale"`
	Width        float64 `json:"width,omitempty" jsonschema:"Viewport width (default 320)"`
	Height       float64 `json:"height,omitempty" jsonschema:"Viewport height (default 160)"`
	Format       string  `json:"format,omitempty" jsonschema:"Output format: json, text, markdown (default: json)"`
}

// DescribeInput is the input schema for the describe MCP tool.
type DescribeInput struct {
	Objects string `json:"objects,omitempty" jsonschema:"Comma-separated settings object names (default: all)"`
	Model   bool   `json:"model,omitempty" jsonschema:"Return the formatting model cards instead of object instances"`
}

// FormatInput is the input schema for the format MCP tool.
type FormatInput struct {
	Value       float64 `json:"value" jsonschema:"Raw number to format"`
	DisplayUnit int     `json:"display_unit,omitempty" jsonschema:"0 auto, 1 none, 2 thousands, 3 millions, 4 billions, 5 trillions"`
	Decimals    int     `json:"decimals,omitempty" jsonschema:"Decimal places, clamped to 0-15"`
	Locale      string  `json:"locale,omitempty" jsonschema:"BCP 47 locale (default en-US)"`
}

// ValidateInput is the input schema for the validate MCP tool.
type ValidateInput struct {
	SettingsPath string `json:"settings_path" jsonschema:"Persisted settings snapshot (.yaml, .toml or .json) to check"`
}

// tools holds the card instance the tool handlers share.
type tools struct {
	pipeline *pipeline.Pipeline
}

func newTools(p *pipeline.Pipeline) *tools {
	return &tools{pipeline: p}
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all card tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "refresh",
		Description: "Run one card refresh over a data view and optional settings snapshot. Returns the computed frame: label texts and colors, matched condition, fill, stroke, link and tooltip.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.handleRefresh)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "describe",
		Description: "Describe the property pane of the last refreshed card: the instances of each settings object, or the formatting model cards.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.handleDescribe)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format",
		Description: "Format a number the way a card label shows it, with a display unit, decimal places and locale.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.handleFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check a persisted settings snapshot for unknown objects and properties, bad values and out-of-range numbers.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.handleValidate)
}

func (t *tools) handleRefresh(ctx context.Context, _ *mcp.CallToolRequest, input RefreshInput) (*mcp.CallToolResult, any, error) {
	formatName := "json"
	if input.Format != "" {
		formatName = input.Format
	}
	formatter, err := output.GetFormatter(formatName)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", formatName)
	}

	req := pipeline.Request{
		Locale: input.Locale,
		Viewport: refresh.Viewport{
			Width:  orDefault(input.Width, config.DefaultWidth),
			Height: orDefault(input.Height, config.DefaultHeight),
		},
	}
	switch {
	case input.DataView != "":
		dv, err := dataview.Decode(strings.NewReader(input.DataView))
		if err != nil {
			return nil, nil, err
		}
		req.DataView = dv
	case input.DataPath != "":
		if req.DataPath, err = ResolveFile(input.DataPath, dataViewExts...); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("one of data_path or data_view is required")
	}
	if input.SettingsPath != "" {
		if req.SettingsPath, err = ResolveFile(input.SettingsPath, snapshotExts...); err != nil {
			return nil, nil, err
		}
	}

	out, err := t.pipeline.Run(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("refresh failed: %w", err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(out, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String(), out.Status == refresh.Failed), nil, nil
}

func (t *tools) handleDescribe(_ context.Context, _ *mcp.CallToolRequest, input DescribeInput) (*mcp.CallToolResult, any, error) {
	if input.Model {
		return jsonResult(t.pipeline.FormattingModel())
	}

	instances, err := t.pipeline.DescribeNames(splitAndTrim(input.Objects))
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(instances)
}

func (t *tools) handleFormat(_ context.Context, _ *mcp.CallToolRequest, input FormatInput) (*mcp.CallToolResult, any, error) {
	unit, err := format.ParseUnit(input.DisplayUnit)
	if err != nil {
		return nil, nil, err
	}
	locale := input.Locale
	if locale == "" {
		locale = format.DefaultLocale
	}
	return textResult(format.Format(input.Value, unit, input.Decimals, locale), false), nil, nil
}

func (t *tools) handleValidate(_ context.Context, _ *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, any, error) {
	path, err := ResolveFile(input.SettingsPath, snapshotExts...)
	if err != nil {
		return nil, nil, err
	}
	objects, err := config.LoadSnapshot(path)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(validate.Validate(objects))
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: isError,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data), false), nil, nil
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
