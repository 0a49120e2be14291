// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package dataview

import (
	"strconv"
	"strings"

	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/format"
)

// Tooltip metadata property names persisted per tooltip column.
const (
	MeasureFormatProperty    = "measureFormat"
	MeasurePrecisionProperty = "measurePrecision"
)

// TooltipItem is one line of the card tooltip.
type TooltipItem struct {
	DisplayName string `json:"display_name"`
	Value       string `json:"value"`
}

// Values are the label values computed for one refresh.
type Values struct {
	HasData      bool   `json:"has_data"`
	Primary      string `json:"primary"`
	Prefix       string `json:"prefix,omitempty"`
	Postfix      string `json:"postfix,omitempty"`
	CategoryName string `json:"category_name,omitempty"`

	// Reference is the raw primary number conditions are resolved against.
	// Nil when the primary cell is not numeric.
	Reference *float64 `json:"reference,omitempty"`

	// PostfixNumber is the numeric postfix value that picks the postfix sign
	// color. Nil when the postfix is not numeric.
	PostfixNumber *float64 `json:"postfix_number,omitempty"`

	Tooltips []TooltipItem `json:"tooltips,omitempty"`
}

// Extract computes the label values from the first row of t.
func Extract(t *Table, s *card.Settings, locale string) Values {
	main := t.Find(RoleMain)
	if t.Empty() || main < 0 {
		return Values{}
	}

	v := Values{HasData: true}

	cell := t.Cell(0, main)
	switch n, ok := Number(cell); {
	case ok:
		v.Primary = s.Primary.Format(n, locale)
		v.Reference = &n
	case isBlank(cell):
		v.Primary = s.Primary.Text
	default:
		v.Primary = text(cell)
	}

	v.Prefix, _ = decoration(t, &s.Prefix, RolePrefix, locale)
	v.Postfix, v.PostfixNumber = decoration(t, &s.Postfix, RolePostfix, locale)

	if s.Category.Text != "" {
		v.CategoryName = s.Category.Text
	} else {
		v.CategoryName = t.Columns[main].DisplayName
	}

	v.Tooltips = tooltips(t, locale)
	return v
}

// decoration computes a prefix or postfix value: the role's text override,
// else the bound measure formatted with the role's style. The returned number
// is the value's sign source.
func decoration(t *Table, style *card.LabelStyle, role, locale string) (string, *float64) {
	if style.Text != "" {
		if n, err := strconv.ParseFloat(strings.TrimSpace(style.Text), 64); err == nil {
			return style.Text, &n
		}
		return style.Text, nil
	}
	col := t.Find(role)
	if col < 0 {
		return "", nil
	}
	cell := t.Cell(0, col)
	if n, ok := Number(cell); ok {
		return style.Format(n, locale), &n
	}
	if isBlank(cell) {
		return "", nil
	}
	return text(cell), nil
}

func tooltips(t *Table, locale string) []TooltipItem {
	cols := t.WithRole(RoleTooltips)
	if len(cols) == 0 {
		return nil
	}
	items := make([]TooltipItem, 0, len(cols))
	for _, i := range cols {
		col := &t.Columns[i]
		cell := t.Cell(0, i)
		item := TooltipItem{DisplayName: col.DisplayName}
		if n, ok := Number(cell); ok {
			unit, decimals := TooltipFormat(col)
			item.Value = format.Format(n, unit, decimals, locale)
		} else {
			item.Value = text(cell)
		}
		items = append(items, item)
	}
	return items
}

// TooltipFormat reads a tooltip column's display unit and precision from its
// metadata. Missing or invalid values default to auto and zero decimals.
func TooltipFormat(col *Column) (format.Unit, int) {
	props := tooltipObject(col)
	unit := format.Auto
	if code, ok := intProperty(props, MeasureFormatProperty); ok {
		if u, err := format.ParseUnit(code); err == nil {
			unit = u
		}
	}
	decimals, _ := intProperty(props, MeasurePrecisionProperty)
	return unit, decimals
}

func tooltipObject(col *Column) map[string]any {
	if props, ok := col.Objects[card.ObjectTooltip.String()]; ok {
		return props
	}
	return col.Objects["tootlipSettings"]
}

func intProperty(props map[string]any, name string) (int, bool) {
	n, ok := Number(props[name])
	if !ok {
		return 0, false
	}
	return int(n), true
}
