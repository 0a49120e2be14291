// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package condition resolves conditional formatting: given a reference value
// and an ordered list of rules, it picks the colors of the first rule that
// holds.
package condition

import (
	"errors"
	"fmt"

	"github.com/davetashner/advancecard/internal/palette"
)

// MaxRules is the number of rule slots a card carries.
const MaxRules = 10

// ErrUnknownComparator is returned by ParseComparator for anything other than
// ">", "<" or "=".
var ErrUnknownComparator = errors.New("unknown comparator")

// Comparator compares a reference value against a rule threshold.
type Comparator string

// Supported comparators.
const (
	GreaterThan Comparator = ">"
	LessThan    Comparator = "<"
	Equal       Comparator = "="
)

// ParseComparator validates s as a comparator.
func ParseComparator(s string) (Comparator, error) {
	switch c := Comparator(s); c {
	case GreaterThan, LessThan, Equal:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q (must be >, < or =)", ErrUnknownComparator, s)
	}
}

// Holds reports whether value compares to threshold. Equality is exact.
func (c Comparator) Holds(value, threshold float64) bool {
	switch c {
	case GreaterThan:
		return value > threshold
	case LessThan:
		return value < threshold
	case Equal:
		return value == threshold
	default:
		return false
	}
}

// Rule is one conditional formatting slot.
type Rule struct {
	Comparator Comparator    `json:"comparator" yaml:"comparator"`
	Threshold  *float64      `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Foreground palette.Color `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background palette.Color `json:"background,omitempty" yaml:"background,omitempty"`
}

// Threshold returns a pointer to v, for building rules.
func Threshold(v float64) *float64 {
	return &v
}

// Matches reports whether the rule applies to value. A rule without a
// threshold never matches.
func (r Rule) Matches(value float64) bool {
	if r.Threshold == nil {
		return false
	}
	return r.Comparator.Holds(value, *r.Threshold)
}

// Result is the color decision of a resolution. Either side may be unset, in
// which case the caller keeps its own default for that side.
type Result struct {
	// Slot is the 1-based index of the matching rule, 0 when nothing matched.
	Slot       int           `json:"slot"`
	Foreground palette.Color `json:"foreground,omitempty"`
	Background palette.Color `json:"background,omitempty"`
}

// Matched reports whether any rule matched.
func (r Result) Matched() bool {
	return r.Slot > 0
}

// Resolve walks the first limit rules in slot order and returns the colors of
// the first one that matches value. Rules past limit are never evaluated.
func Resolve(value float64, rules []Rule, limit int) Result {
	if limit > len(rules) {
		limit = len(rules)
	}
	for i := 0; i < limit; i++ {
		if rules[i].Matches(value) {
			return Result{
				Slot:       i + 1,
				Foreground: rules[i].Foreground,
				Background: rules[i].Background,
			}
		}
	}
	return Result{}
}
