// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package dataview models the table the host hands the card on every refresh
// and extracts the values each label role displays.
package dataview

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/davetashner/advancecard/internal/card"
)

// Column roles the card binds measures to.
const (
	RoleMain     = "mainMeasure"
	RolePrefix   = "prefixMeasure"
	RolePostfix  = "postfixMeasure"
	RoleTooltips = "tooltipMeasures"
)

// ErrEmptyInput is returned by Decode when the reader holds no document.
var ErrEmptyInput = errors.New("empty data view")

// DataView is one host data snapshot.
type DataView struct {
	Locale  string       `json:"locale,omitempty"`
	Objects card.Objects `json:"objects,omitempty"`
	Table   *Table       `json:"table,omitempty"`
}

// Table is the categorical-free table mapping: ordered columns and rows.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ColumnType is the declared value type of a column.
type ColumnType struct {
	Numeric bool `json:"numeric,omitempty"`
	Integer bool `json:"integer,omitempty"`
	Text    bool `json:"text,omitempty"`
}

// Column describes one table column and the roles it is bound to.
type Column struct {
	DisplayName string          `json:"displayName"`
	QueryName   string          `json:"queryName,omitempty"`
	Roles       map[string]bool `json:"roles,omitempty"`
	Type        ColumnType      `json:"type"`
	// Objects holds per-column metadata, such as tooltip formatting.
	Objects card.Objects `json:"objects,omitempty"`
}

// HasRole reports whether the column is bound to role.
func (c *Column) HasRole(role string) bool {
	return c.Roles[role]
}

// IsNumeric reports whether the column declares a numeric or integer type.
func (c *Column) IsNumeric() bool {
	return c.Type.Numeric || c.Type.Integer
}

// Empty reports whether t has nothing to render.
func (t *Table) Empty() bool {
	return t == nil || len(t.Columns) == 0 || len(t.Rows) == 0
}

// Find returns the index of the first column bound to role, or -1.
func (t *Table) Find(role string) int {
	if t == nil {
		return -1
	}
	for i := range t.Columns {
		if t.Columns[i].HasRole(role) {
			return i
		}
	}
	return -1
}

// WithRole returns the indexes of every column bound to role, in column
// order.
func (t *Table) WithRole(role string) []int {
	if t == nil {
		return nil
	}
	var out []int
	for i := range t.Columns {
		if t.Columns[i].HasRole(role) {
			out = append(out, i)
		}
	}
	return out
}

// Cell returns the value in row, column col, or nil when out of range.
func (t *Table) Cell(row, col int) any {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return nil
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Decode reads a host data view document. Numbers are kept as json.Number
// until a consumer asks for them.
func Decode(r io.Reader) (*DataView, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var dv DataView
	if err := dec.Decode(&dv); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("decode data view: %w", err)
	}
	return &dv, nil
}

// Number converts a table cell to a finite float. Text cells that parse as a
// number are not numeric; the column type decides how they are shown.
func Number(cell any) (float64, bool) {
	var f float64
	switch v := cell.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isBlank reports whether a cell holds no displayable value.
func isBlank(cell any) bool {
	switch v := cell.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

// text renders a non-numeric cell verbatim.
func text(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
