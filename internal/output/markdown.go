// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/advancecard/internal/refresh"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes an outcome as a Markdown summary.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the outcome to w.
//
// The output includes:
//   - A title heading with the refresh status
//   - A label table (role, text, color)
//   - Appearance sections for condition, fill, stroke, link and tooltip
func (m *MarkdownFormatter) Format(out refresh.Outcome, w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Card refresh `%s`\n\n", out.ID)
	fmt.Fprintf(&b, "**Status:** %s\n", out.Status)
	if out.Err != nil {
		fmt.Fprintf(&b, "\n> %s\n", escapePipes(out.Err.Error()))
	}

	if fr := out.Frame; fr != nil {
		fmt.Fprintf(&b, "\n**Locale:** %s | **Viewport:** %sx%s\n", fr.Locale, num(fr.Viewport.Width), num(fr.Viewport.Height))

		if len(fr.Labels) > 0 {
			b.WriteString("\n## Labels\n\n| Role | Text | Color | CSS |\n|------|-----:|-------|-----|\n")
			for _, l := range fr.Labels {
				fmt.Fprintf(&b, "| %s | %s | `%s` | `%s` |\n", l.Role, escapePipes(l.Text), l.Color, l.CSS)
			}
		}

		b.WriteString("\n## Appearance\n\n")
		if fr.Condition.Matched() {
			fmt.Fprintf(&b, "- Condition: rule %d (foreground `%s`, background `%s`)\n",
				fr.Condition.Slot, orNone(fr.Condition.Foreground), orNone(fr.Condition.Background))
		} else {
			b.WriteString("- Condition: no rule matched\n")
		}
		if fr.Fill != nil {
			fmt.Fprintf(&b, "- Fill: `%s` at opacity %s\n", fr.Fill.Color, num(fr.Fill.Opacity))
			if fr.Fill.ImageURL != "" {
				fmt.Fprintf(&b, "- Image: <%s>\n", fr.Fill.ImageURL)
			}
		}
		if fr.Stroke != nil {
			fmt.Fprintf(&b, "- Stroke: `%s` %spx %s\n", fr.Stroke.Color, num(fr.Stroke.Width), fr.Stroke.Style)
		}
		if fr.LinkURL != "" {
			fmt.Fprintf(&b, "- Link: <%s>\n", fr.LinkURL)
		}

		if tt := fr.Tooltip; tt != nil {
			b.WriteString("\n## Tooltip\n\n")
			if tt.Title != "" {
				fmt.Fprintf(&b, "**%s**\n\n", tt.Title)
			}
			if tt.Content != "" {
				fmt.Fprintf(&b, "%s\n\n", tt.Content)
			}
			for _, item := range tt.Items {
				fmt.Fprintf(&b, "- %s: %s\n", item.DisplayName, item.Value)
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
