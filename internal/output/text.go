// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/davetashner/advancecard/internal/palette"
	"github.com/davetashner/advancecard/internal/refresh"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// TextFormatter writes an outcome as an aligned terminal summary.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the outcome to w.
func (f *TextFormatter) Format(out refresh.Outcome, w io.Writer) error {
	p := &printer{w: w}
	p.printf("%s %s\n", colorBold.Sprint("Refresh"), out.ID)
	p.printf("Status: %s\n", colorStatus(out.Status))
	if out.Err != nil {
		p.printf("Error: %s\n", out.Err)
	}
	if out.Frame == nil {
		return p.err
	}
	fr := out.Frame
	p.printf("Locale: %s  Viewport: %sx%s\n\n", fr.Locale, num(fr.Viewport.Width), num(fr.Viewport.Height))

	if len(fr.Labels) > 0 {
		tbl := NewTable(
			Column{Header: "ROLE"},
			Column{Header: "TEXT", Align: AlignRight},
			Column{Header: "COLOR", Color: Swatch},
			Column{Header: "FONT"},
		)
		for _, l := range fr.Labels {
			tbl.AddRow(l.Role, l.Text, string(l.Color), fmt.Sprintf("%spx %s", num(l.Font.Size), l.Font.Family))
		}
		if p.err == nil {
			p.err = tbl.Render(w)
		}
		p.printf("\n")
	}

	if fr.Condition.Matched() {
		p.printf("Condition: rule %d matched (foreground %s, background %s)\n",
			fr.Condition.Slot, orNone(fr.Condition.Foreground), orNone(fr.Condition.Background))
	} else {
		p.printf("Condition: no rule matched\n")
	}
	if fr.Fill != nil {
		p.printf("Fill: %s %s opacity %s\n", Swatch(string(fr.Fill.Color)), fr.Fill.Color, num(fr.Fill.Opacity))
		if fr.Fill.ImageURL != "" {
			p.printf("  image %s (padding %s)\n", fr.Fill.ImageURL, num(fr.Fill.ImagePadding))
		}
	}
	if fr.Stroke != nil {
		p.printf("Stroke: %s %s %spx %s", Swatch(string(fr.Stroke.Color)), fr.Stroke.Color, num(fr.Stroke.Width), fr.Stroke.Style)
		if fr.Stroke.DashArray != "" {
			p.printf(" [%s]", fr.Stroke.DashArray)
		}
		p.printf("\n")
	}
	if fr.LinkURL != "" {
		p.printf("Link: %s\n", fr.LinkURL)
	}
	if fr.Tooltip != nil {
		p.printf("Tooltip: %s\n", fr.Tooltip.Title)
		if fr.Tooltip.Content != "" {
			p.printf("  %s\n", fr.Tooltip.Content)
		}
		for _, item := range fr.Tooltip.Items {
			p.printf("  %s: %s\n", item.DisplayName, item.Value)
		}
	}
	return p.err
}

// Swatch prefixes a hex color with a block drawn in that color. Values that
// are not colors pass through unchanged.
func Swatch(value string) string {
	r, g, b, err := palette.Color(value).RGB()
	if err != nil {
		return value
	}
	return color.RGB(int(r), int(g), int(b)).Sprint("■") + " " + value
}

func colorStatus(s refresh.Status) string {
	switch s {
	case refresh.Rendered:
		return colorGreen.Sprint(s)
	case refresh.NoData:
		return colorYellow.Sprint(s)
	default:
		return colorRed.Sprint(s)
	}
}

func orNone(c palette.Color) string {
	if c.IsSet() {
		return string(c)
	}
	return "none"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("write text: %w", err)
	}
}
