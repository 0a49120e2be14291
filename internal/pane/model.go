// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package pane

import (
	"github.com/davetashner/advancecard/internal/card"
)

// Control is the host widget that edits a slice.
type Control string

// Controls used by the formatting model.
const (
	Dropdown       Control = "Dropdown"
	FontControl    Control = "FontControl"
	TextInput      Control = "TextInput"
	ColorPicker    Control = "ColorPicker"
	AlignmentGroup Control = "AlignmentGroup"
)

// Descriptor binds a control field to a persisted property.
type Descriptor struct {
	Field    string `json:"field,omitempty"`
	Object   string `json:"objectName"`
	Property string `json:"propertyName"`
	Value    any    `json:"value"`
}

// Slice is one control on a formatting card.
type Slice struct {
	UID         string       `json:"uid"`
	DisplayName string       `json:"displayName"`
	Control     Control      `json:"control"`
	Descriptors []Descriptor `json:"descriptors"`
}

// Group is a titled run of slices.
type Group struct {
	UID         string  `json:"uid"`
	DisplayName string  `json:"displayName"`
	Slices      []Slice `json:"slices"`
}

// FormattingCard is one card of the host formatting model.
type FormattingCard struct {
	UID         string  `json:"uid"`
	DisplayName string  `json:"displayName"`
	Groups      []Group `json:"groups"`
}

var cardTitles = map[card.LabelRole]string{
	card.RolePrimary: "Data field",
	card.RolePrefix:  "Period counter",
	card.RolePostfix: "Change Value",
}

// FormattingModel builds the formatting cards for the primary, prefix and
// postfix labels.
func FormattingModel(s *card.Settings) []FormattingCard {
	roles := []card.LabelRole{card.RolePrimary, card.RolePrefix, card.RolePostfix}
	cards := make([]FormattingCard, 0, len(roles))
	for _, role := range roles {
		cards = append(cards, roleCard(role, s))
	}
	return cards
}

func roleCard(role card.LabelRole, s *card.Settings) FormattingCard {
	style := s.Label(role)
	obj := role.Object().String()
	uid := role.String() + "Card"
	bind := func(prop string, value any) Descriptor {
		return Descriptor{Object: obj, Property: prop, Value: value}
	}
	field := func(name, prop string, value any) Descriptor {
		d := bind(prop, value)
		d.Field = name
		return d
	}

	font := Group{
		UID:         uid + "_fontControl_group",
		DisplayName: "Font Control Group",
		Slices: []Slice{
			{
				UID:         uid + "_displayUnits",
				DisplayName: "Display units",
				Control:     Dropdown,
				Descriptors: []Descriptor{bind("displayUnit", int(style.DisplayUnit))},
			},
			{
				UID:         uid + "_font",
				DisplayName: "Font",
				Control:     FontControl,
				Descriptors: []Descriptor{
					field("fontFamily", "fontFamily", style.Font.Family),
					field("fontSize", "fontSize", style.Font.Size),
					field("bold", "isBold", style.Font.Bold),
					field("italic", "isItalic", style.Font.Italic),
					field("underline", "isunderline", style.Font.Underline),
				},
			},
		},
	}
	if role == card.RolePrimary {
		font.Slices = append(font.Slices, Slice{
			UID:         uid + "_showBlankAs",
			DisplayName: "Show Blank as",
			Control:     TextInput,
			Descriptors: []Descriptor{bind("text", style.Text)},
		})
	}

	design := Group{
		UID:         uid + "_dataDesign_group",
		DisplayName: "Data Design Group",
	}
	if role == card.RolePostfix && style.SignColors != nil {
		design.Slices = append(design.Slices,
			colorSlice(uid+"_negative", "Negative", bind("color_negative", string(style.SignColors.Negative))),
			colorSlice(uid+"_neutral", "Neutral", bind("color_neutral", string(style.SignColors.Neutral))),
			colorSlice(uid+"_positive", "Positive", bind("color_positive", string(style.SignColors.Positive))),
		)
	} else {
		design.Slices = append(design.Slices,
			colorSlice(uid+"_fontColor", "Font Color", bind("color", string(style.Color))))
	}
	design.Slices = append(design.Slices, Slice{
		UID:         uid + "_lineAlignment",
		DisplayName: "Line Alignment",
		Control:     AlignmentGroup,
		Descriptors: []Descriptor{bind("lineAlignment", style.Alignment)},
	})

	return FormattingCard{
		UID:         uid,
		DisplayName: cardTitles[role],
		Groups:      []Group{font, design},
	}
}

func colorSlice(uid, name string, d Descriptor) Slice {
	return Slice{UID: uid, DisplayName: name, Control: ColorPicker, Descriptors: []Descriptor{d}}
}
