// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package refresh

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"

	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/condition"
	"github.com/davetashner/advancecard/internal/dataview"
	"github.com/davetashner/advancecard/internal/palette"
)

// Dash patterns of the non-solid stroke styles.
const (
	DashedArray = "8, 4"
	DottedArray = "2, 2"
)

// Viewport is the size of the area the host gives the card.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Label is one visible text element of the card.
type Label struct {
	Role      string        `json:"role"`
	Text      string        `json:"text"`
	Color     palette.Color `json:"color"`
	Font      card.Font     `json:"font"`
	Alignment string        `json:"alignment,omitempty"`
	CSS       string        `json:"css"`
}

// Fill is the resolved card background.
type Fill struct {
	Color        palette.Color `json:"color"`
	Opacity      float64       `json:"opacity"`
	ImageURL     string        `json:"image_url,omitempty"`
	ImagePadding float64       `json:"image_padding,omitempty"`
}

// CornerRadius is the resolved rounding of one corner.
type CornerRadius struct {
	Corner string  `json:"corner"`
	Radius float64 `json:"radius"`
	Inward bool    `json:"inward,omitempty"`
}

// Stroke is the resolved card border.
type Stroke struct {
	Color     palette.Color  `json:"color"`
	Width     float64        `json:"width"`
	Style     string         `json:"style"`
	DashArray string         `json:"dash_array,omitempty"`
	LineCap   string         `json:"line_cap"`
	Corners   []CornerRadius `json:"corners"`
}

// Tooltip is the resolved card tooltip.
type Tooltip struct {
	Title   string                 `json:"title,omitempty"`
	Content string                 `json:"content,omitempty"`
	Items   []dataview.TooltipItem `json:"items,omitempty"`
}

// Frame is everything one refresh computed for the rendering layer.
type Frame struct {
	ID        string           `json:"id"`
	Locale    string           `json:"locale"`
	Viewport  Viewport         `json:"viewport"`
	Values    dataview.Values  `json:"values"`
	Condition condition.Result `json:"condition"`
	Labels    []Label          `json:"labels"`
	Fill      *Fill            `json:"fill,omitempty"`
	Stroke    *Stroke          `json:"stroke,omitempty"`
	LinkURL   string           `json:"link_url,omitempty"`
	Tooltip   *Tooltip         `json:"tooltip,omitempty"`
}

// Label returns the visible label for role.
func (f *Frame) Label(role card.LabelRole) (Label, bool) {
	for _, l := range f.Labels {
		if l.Role == role.String() {
			return l, true
		}
	}
	return Label{}, false
}

func buildFrame(s *card.Settings, v dataview.Values) *Frame {
	f := &Frame{Values: v}
	if v.Reference != nil {
		f.Condition = s.Conditions.Resolve(*v.Reference)
	}

	for _, role := range card.Roles() {
		text, ok := labelText(s, v, role)
		if !ok {
			continue
		}
		style := s.Label(role)
		color := labelColor(s, v, f.Condition, role)
		f.Labels = append(f.Labels, Label{
			Role:      role.String(),
			Text:      text,
			Color:     color,
			Font:      style.Font,
			Alignment: style.Alignment,
			CSS:       labelCSS(role, style, color),
		})
	}

	if s.Fill.Show {
		f.Fill = buildFill(&s.Fill, f.Condition.Background)
	}
	if s.Stroke.Show {
		f.Stroke = buildStroke(&s.Stroke)
	}
	if s.ExternalLink.Show && strings.TrimSpace(s.ExternalLink.URL) != "" {
		f.LinkURL = s.ExternalLink.URL
	}
	if s.Tooltip.Title != "" || s.Tooltip.Content != "" || len(v.Tooltips) > 0 {
		f.Tooltip = &Tooltip{Title: s.Tooltip.Title, Content: s.Tooltip.Content, Items: v.Tooltips}
	}
	return f
}

// labelText returns the text of role and whether the label is visible.
func labelText(s *card.Settings, v dataview.Values, role card.LabelRole) (string, bool) {
	switch role {
	case card.RolePrimary:
		return v.Primary, v.Primary != ""
	case card.RoleCategory:
		return v.CategoryName, v.Primary != "" && s.Category.Show
	case card.RolePrefix:
		return v.Prefix, s.Prefix.Show && v.Prefix != ""
	case card.RolePostfix:
		return v.Postfix, s.Postfix.Show && v.Postfix != ""
	}
	return "", false
}

// labelColor resolves the text color of role. An applicable conditional
// foreground wins. Without one the postfix takes its sign color and every
// other role its static color.
func labelColor(s *card.Settings, v dataview.Values, res condition.Result, role card.LabelRole) palette.Color {
	if fg := s.Conditions.Foreground(res, role); fg.IsSet() {
		return fg
	}
	style := s.Label(role)
	if role == card.RolePostfix && style.SignColors != nil {
		var n float64
		if v.PostfixNumber != nil {
			n = *v.PostfixNumber
		}
		return style.SignColors.For(n)
	}
	return style.Color
}

func buildFill(f *card.Fill, conditional palette.Color) *Fill {
	out := &Fill{
		Color:   conditional.Or(f.Color),
		Opacity: opacity(f.Transparency),
	}
	if f.ShowImage && strings.TrimSpace(f.ImageURL) != "" {
		out.ImageURL = f.ImageURL
		out.ImagePadding = f.ImagePadding
	}
	return out
}

// opacity converts a 0..100 transparency percentage.
func opacity(transparency float64) float64 {
	o := 1 - transparency/100
	switch {
	case o < 0:
		return 0
	case o > 1:
		return 1
	}
	return o
}

func buildStroke(st *card.Stroke) *Stroke {
	out := &Stroke{
		Color:   st.Color,
		Width:   st.Width,
		Style:   st.Style.String(),
		LineCap: st.LineCap,
	}
	switch st.Style {
	case card.StrokeDashed:
		out.DashArray = DashedArray
	case card.StrokeDotted:
		out.DashArray = DottedArray
	default:
		out.DashArray = st.DashArray
	}
	for c, corner := range st.Corners {
		r := CornerRadius{Corner: card.Corner(c).String()}
		if corner.Round {
			r.Radius = st.CornerRadius
			r.Inward = corner.Inward
		}
		out.Corners = append(out.Corners, r)
	}
	return out
}

// labelCSS renders the inline style of a label.
func labelCSS(role card.LabelRole, style *card.LabelStyle, color palette.Color) string {
	decls := []*css.Declaration{
		declare("color", string(color)),
		declare("font-family", style.Font.Family),
		declare("font-size", px(style.Font.Size)),
	}
	if style.Font.Bold {
		decls = append(decls, declare("font-weight", "bold"))
	}
	if style.Font.Italic {
		decls = append(decls, declare("font-style", "italic"))
	}
	if style.Font.Underline {
		decls = append(decls, declare("text-decoration", "underline"))
	}
	if style.Alignment != "" {
		decls = append(decls, declare("text-align", style.Alignment))
	}
	switch role {
	case card.RolePrefix:
		decls = append(decls, declare("margin-right", px(style.Spacing)))
	case card.RolePostfix:
		decls = append(decls, declare("margin-left", px(style.Spacing)))
	case card.RolePrimary:
		if style.WordWrap {
			decls = append(decls, declare("white-space", "normal"))
		} else {
			decls = append(decls, declare("white-space", "nowrap"))
		}
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.Value == "" {
			continue
		}
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " ")
}

func declare(property, value string) *css.Declaration {
	d := css.NewDeclaration()
	d.Property = property
	d.Value = value
	return d
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
