// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package card holds the card-wide settings store: label styles for every
// role, fill and stroke appearance, conditional formatting rules and the
// remaining host-editable settings objects. A Settings value is rebuilt from
// persisted host metadata on every refresh.
package card

import (
	"fmt"

	"github.com/davetashner/advancecard/internal/condition"
	"github.com/davetashner/advancecard/internal/palette"
)

// Font families the host offers by default.
const (
	StandardFontFamily = "wf_standard-font, helvetica, arial, sans-serif"
	SegoeFontFamily    = `"Segoe UI", wf_segoe-ui_normal, helvetica, arial, sans-serif`
)

// Settings is the full configuration of one card.
type Settings struct {
	Prefix       LabelStyle        `json:"prefix" yaml:"prefix"`
	Primary      LabelStyle        `json:"primary" yaml:"primary"`
	Postfix      LabelStyle        `json:"postfix" yaml:"postfix"`
	Category     LabelStyle        `json:"category" yaml:"category"`
	Fill         Fill              `json:"fill" yaml:"fill"`
	Stroke       Stroke            `json:"stroke" yaml:"stroke"`
	Conditions   ConditionSettings `json:"conditions" yaml:"conditions"`
	Tooltip      Tooltip           `json:"tooltip" yaml:"tooltip"`
	About        About             `json:"about" yaml:"about"`
	General      General           `json:"general" yaml:"general"`
	ExternalLink ExternalLink      `json:"external_link" yaml:"external_link"`
}

// Label returns the style of role.
func (s *Settings) Label(role LabelRole) *LabelStyle {
	switch role {
	case RolePrefix:
		return &s.Prefix
	case RolePostfix:
		return &s.Postfix
	case RoleCategory:
		return &s.Category
	case RolePrimary:
		return &s.Primary
	default:
		panic(fmt.Sprintf("card: unknown label role %d", int(role)))
	}
}

// Fill is the card background.
type Fill struct {
	Show         bool          `json:"show" yaml:"show"`
	Color        palette.Color `json:"color" yaml:"color"`
	Transparency float64       `json:"transparency" yaml:"transparency"`
	ShowImage    bool          `json:"show_image" yaml:"show_image"`
	ImageURL     string        `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ImagePadding float64       `json:"image_padding,omitempty" yaml:"image_padding,omitempty"`
}

// StrokeStyle is the border line pattern.
type StrokeStyle int

// Stroke styles, persisted as "0", "1" and "2".
const (
	StrokeSolid StrokeStyle = iota
	StrokeDashed
	StrokeDotted
)

// String returns the style name.
func (s StrokeStyle) String() string {
	switch s {
	case StrokeSolid:
		return "solid"
	case StrokeDashed:
		return "dashed"
	case StrokeDotted:
		return "dotted"
	default:
		return fmt.Sprintf("stroke(%d)", int(s))
	}
}

// Corner indexes the four corners of the card.
type Corner int

// Corners in persisted order.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = [...]string{"topLeft", "topRight", "bottomLeft", "bottomRight"}

// String returns the persisted corner name.
func (c Corner) String() string {
	if c < TopLeft || c > BottomRight {
		return fmt.Sprintf("corner(%d)", int(c))
	}
	return cornerNames[c]
}

// CornerStyle says whether a corner is rounded, and whether the rounding
// curves into the card instead of out of it.
type CornerStyle struct {
	Round  bool `json:"round" yaml:"round"`
	Inward bool `json:"inward" yaml:"inward"`
}

// Stroke is the card border.
type Stroke struct {
	Show    bool          `json:"show" yaml:"show"`
	Color   palette.Color `json:"color" yaml:"color"`
	Width   float64       `json:"width" yaml:"width"`
	Style   StrokeStyle   `json:"style" yaml:"style"`
	LineCap string        `json:"line_cap" yaml:"line_cap"`
	// DashArray is a custom dash pattern used by solid strokes.
	DashArray    string         `json:"dash_array,omitempty" yaml:"dash_array,omitempty"`
	CornerRadius float64        `json:"corner_radius" yaml:"corner_radius"`
	Corners      [4]CornerStyle `json:"corners" yaml:"corners"`
}

// Tooltip holds the card-wide tooltip text.
type Tooltip struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// About describes the visual build.
type About struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	HelpURL string `json:"help_url,omitempty" yaml:"help_url,omitempty"`
}

// General holds layout settings shared by all labels.
type General struct {
	Alignment        string  `json:"alignment" yaml:"alignment"`
	AlignmentSpacing float64 `json:"alignment_spacing" yaml:"alignment_spacing"`
}

// ExternalLink is the URL the host opens when the card is clicked.
type ExternalLink struct {
	Show bool   `json:"show" yaml:"show"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Defaults returns the settings of a freshly inserted card.
func Defaults() *Settings {
	label := func(role LabelRole, color palette.Color, size float64) LabelStyle {
		return LabelStyle{
			Role:      role,
			Show:      true,
			Color:     color,
			Font:      Font{Family: StandardFontFamily, Size: size},
			Alignment: "left",
		}
	}

	s := &Settings{
		Prefix:  label(RolePrefix, "#333333", 12),
		Primary: label(RolePrimary, "#00FF00", 20),
		Postfix: label(RolePostfix, "#000000", 12),
		Category: LabelStyle{
			Role:  RoleCategory,
			Color: "#A6A6A6",
			Font:  Font{Family: SegoeFontFamily, Size: 12},
		},
		Fill: Fill{Color: "#FEA19E"},
		Stroke: Stroke{
			Color:        "#666666",
			Width:        2,
			Style:        StrokeSolid,
			LineCap:      "butt",
			CornerRadius: 15,
		},
		Conditions: ConditionSettings{
			Count:          3,
			ApplyToPostfix: true,
			Rules:          defaultRules(),
		},
		General: General{Alignment: "left"},
	}
	s.Prefix.Spacing = 4
	s.Postfix.Spacing = 4
	s.Postfix.SignColors = &SignColors{
		Negative: "#F25022",
		Neutral:  "#000000",
		Positive: "#7FBA00",
	}
	s.Primary.Text = "0"
	s.Primary.WordWrap = true
	return s
}

func defaultRules() []condition.Rule {
	rules := make([]condition.Rule, condition.MaxRules)
	for i := range rules {
		rules[i] = condition.Rule{Comparator: condition.GreaterThan}
	}
	rules[0] = condition.Rule{Comparator: condition.GreaterThan, Threshold: condition.Threshold(0), Foreground: "#00FF00"}
	rules[1] = condition.Rule{Comparator: condition.LessThan, Threshold: condition.Threshold(0), Foreground: "#FF0000"}
	rules[2] = condition.Rule{Comparator: condition.Equal, Threshold: condition.Threshold(0), Foreground: "#000000"}
	return rules
}
