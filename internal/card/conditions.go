// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package card

import (
	"github.com/davetashner/advancecard/internal/condition"
	"github.com/davetashner/advancecard/internal/palette"
)

// ConditionSettings configures conditional formatting.
type ConditionSettings struct {
	Show bool `json:"show" yaml:"show"`
	// Count is the number of active rule slots (conditionNumbers).
	Count           int              `json:"count" yaml:"count"`
	ApplyToPrimary  bool             `json:"apply_to_primary" yaml:"apply_to_primary"`
	ApplyToCategory bool             `json:"apply_to_category" yaml:"apply_to_category"`
	ApplyToPrefix   bool             `json:"apply_to_prefix" yaml:"apply_to_prefix"`
	ApplyToPostfix  bool             `json:"apply_to_postfix" yaml:"apply_to_postfix"`
	Rules           []condition.Rule `json:"rules" yaml:"rules"`
}

// ClampConditionCount bounds a rule count to 1..MaxRules.
func ClampConditionCount(n int) int {
	if n > condition.MaxRules {
		return condition.MaxRules
	}
	if n <= 0 {
		return 1
	}
	return n
}

// Clamp bounds Count in place.
func (c *ConditionSettings) Clamp() {
	c.Count = ClampConditionCount(c.Count)
}

// Limit is the clamped number of rules to consider.
func (c *ConditionSettings) Limit() int {
	return ClampConditionCount(c.Count)
}

// Active returns the rules inside the clamped limit.
func (c *ConditionSettings) Active() []condition.Rule {
	n := c.Limit()
	if n > len(c.Rules) {
		n = len(c.Rules)
	}
	return c.Rules[:n]
}

// AppliesTo reports whether a conditional foreground recolors role.
func (c *ConditionSettings) AppliesTo(role LabelRole) bool {
	switch role {
	case RolePrefix:
		return c.ApplyToPrefix
	case RolePostfix:
		return c.ApplyToPostfix
	case RoleCategory:
		return c.ApplyToCategory
	default:
		return c.ApplyToPrimary
	}
}

// Resolve returns the conditional colors for reference. Nothing resolves when
// conditional formatting is off.
func (c *ConditionSettings) Resolve(reference float64) condition.Result {
	if !c.Show {
		return condition.Result{}
	}
	return condition.Resolve(reference, c.Rules, c.Limit())
}

// Foreground returns the conditional foreground for role from res, or unset
// when the role does not take conditional colors.
func (c *ConditionSettings) Foreground(res condition.Result, role LabelRole) palette.Color {
	if !c.AppliesTo(role) {
		return ""
	}
	return res.Foreground
}
