// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package card

import (
	"fmt"

	"github.com/davetashner/advancecard/internal/format"
	"github.com/davetashner/advancecard/internal/palette"
)

// LabelRole is a semantic text slot on the card.
type LabelRole int

// Label roles, in the order they are laid out.
const (
	RolePrefix LabelRole = iota
	RolePrimary
	RolePostfix
	RoleCategory
)

// Roles lists every label role in layout order.
func Roles() []LabelRole {
	return []LabelRole{RolePrefix, RolePrimary, RolePostfix, RoleCategory}
}

// String returns the role name.
func (r LabelRole) String() string {
	switch r {
	case RolePrefix:
		return "prefix"
	case RolePrimary:
		return "primary"
	case RolePostfix:
		return "postfix"
	case RoleCategory:
		return "category"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Object returns the settings object that persists the role's style.
func (r LabelRole) Object() ObjectName {
	switch r {
	case RolePrefix:
		return ObjectPrefix
	case RolePostfix:
		return ObjectPostfix
	case RoleCategory:
		return ObjectCategoryLabel
	default:
		return ObjectDataLabel
	}
}

// Font describes the typeface of a label.
type Font struct {
	Family    string  `json:"family" yaml:"family"`
	Size      float64 `json:"size" yaml:"size"`
	Bold      bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty" yaml:"underline,omitempty"`
}

// SignColors are the postfix base colors chosen by the sign of its value.
type SignColors struct {
	Negative palette.Color `json:"negative" yaml:"negative"`
	Neutral  palette.Color `json:"neutral" yaml:"neutral"`
	Positive palette.Color `json:"positive" yaml:"positive"`
}

// For picks the color for v by strict sign: positive, negative, or neutral
// for exactly zero.
func (c SignColors) For(v float64) palette.Color {
	switch {
	case v > 0:
		return c.Positive
	case v < 0:
		return c.Negative
	default:
		return c.Neutral
	}
}

// LabelStyle is the formatting of one label role.
type LabelStyle struct {
	Role LabelRole `json:"-" yaml:"-"`
	Show bool      `json:"show" yaml:"show"`
	// Text overrides the label's value. For the primary role it is the text
	// shown when the value cell is blank.
	Text          string        `json:"text,omitempty" yaml:"text,omitempty"`
	Color         palette.Color `json:"color" yaml:"color"`
	Font          Font          `json:"font" yaml:"font"`
	Alignment     string        `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Spacing       float64       `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	DisplayUnit   format.Unit   `json:"display_unit" yaml:"display_unit"`
	DecimalPlaces int           `json:"decimal_places" yaml:"decimal_places"`
	WordWrap      bool          `json:"word_wrap,omitempty" yaml:"word_wrap,omitempty"`

	// SignColors is set only for the postfix role.
	SignColors *SignColors `json:"sign_colors,omitempty" yaml:"sign_colors,omitempty"`
}

// Format renders raw with the style's display unit and decimal places.
func (l *LabelStyle) Format(raw float64, locale string) string {
	return format.Format(raw, l.DisplayUnit, l.DecimalPlaces, locale)
}
