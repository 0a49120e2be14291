// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package palette defines the color value shared by card settings, the
// condition resolver and refresh frames.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string is neither a hex color
// nor a CSS color name.
var ErrInvalidColor = errors.New("invalid color")

// Color is a CSS hex color ("#RGB" or "#RRGGBB"). The zero value means the
// color is unset.
type Color string

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool {
	return strings.TrimSpace(string(c)) != ""
}

// Or returns c if it is set, otherwise fallback.
func (c Color) Or(fallback Color) Color {
	if c.IsSet() {
		return c
	}
	return fallback
}

// RGB returns the red, green and blue components of the color.
func (c Color) RGB() (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Parse validates s as a hex color or a CSS color name. Names become
// "#RRGGBB". An empty string yields the unset color.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return "", fmt.Errorf("%w: %q (expected #RGB, #RRGGBB or a CSS color name)", ErrInvalidColor, s)
		}
		return Color(fmt.Sprintf("#%02X%02X%02X", named.R, named.G, named.B)), nil
	}
	c := Color(s)
	if _, _, _, err := c.RGB(); err != nil {
		return "", err
	}
	return c, nil
}
