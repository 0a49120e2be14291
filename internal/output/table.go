// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"
)

// Alignment justifies a column's cells.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ColorFunc decorates a cell after its width has been measured.
type ColorFunc func(value string) string

// Column describes one table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table is an aligned plain-text table with a bold header and a dashed
// rule under it. Every line is indented by two spaces.
type Table struct {
	columns []Column
	rows    [][]string
}

func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row, dropping surplus values and leaving missing cells
// empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Render writes the table to w in a single write.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = cellWidth(c.Header)
		for _, row := range t.rows {
			widths[i] = max(widths[i], cellWidth(row[i]))
		}
	}

	var b strings.Builder
	bold := color.New(color.Bold)
	t.line(&b, func(i int) (string, string) {
		h := t.columns[i].Header
		return h, bold.Sprint(h)
	}, widths)
	t.line(&b, func(i int) (string, string) {
		r := strings.Repeat("-", widths[i])
		return r, r
	}, widths)
	for _, row := range t.rows {
		t.line(&b, func(i int) (string, string) {
			if f := t.columns[i].Color; f != nil {
				return row[i], f(row[i])
			}
			return row[i], row[i]
		}, widths)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// line writes one row; cell returns the raw text used for padding and the
// text actually printed.
func (t *Table) line(b *strings.Builder, cell func(int) (string, string), widths []int) {
	var row strings.Builder
	for i, c := range t.columns {
		raw, shown := cell(i)
		gap := strings.Repeat(" ", max(widths[i]-cellWidth(raw), 0))
		if i > 0 {
			row.WriteString("  ")
		}
		if c.Align == AlignRight {
			row.WriteString(gap + shown)
		} else {
			row.WriteString(shown + gap)
		}
	}
	b.WriteString("  ")
	b.WriteString(strings.TrimRight(row.String(), " "))
	b.WriteByte('\n')
}

// cellWidth counts terminal columns: wide and fullwidth runes take two.
func cellWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
