// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package format

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned by ParseUnit for codes outside 0..5.
var ErrUnknownUnit = errors.New("unknown display unit")

// Unit is a display unit. The numeric values are the codes persisted in card
// settings.
type Unit int

// Display units.
const (
	Auto Unit = iota
	None
	Thousands
	Millions
	Billions
	Trillions
)

var unitNames = [...]string{"auto", "none", "thousands", "millions", "billions", "trillions"}

var unitSuffixes = [...]string{"", "", "K", "M", "B", "T"}

// ParseUnit decodes a persisted display unit code.
func ParseUnit(code int) (Unit, error) {
	if code < int(Auto) || code > int(Trillions) {
		return None, fmt.Errorf("%w: %d (must be 0..5)", ErrUnknownUnit, code)
	}
	return Unit(code), nil
}

// Units lists every display unit in code order.
func Units() []Unit {
	return []Unit{Auto, None, Thousands, Millions, Billions, Trillions}
}

func (u Unit) valid() bool {
	return u >= Auto && u <= Trillions
}

// String returns the unit name.
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return unitNames[u]
}

// Suffix returns the short suffix appended after a scaled value.
func (u Unit) Suffix() string {
	if !u.valid() {
		return ""
	}
	return unitSuffixes[u]
}

// exponent is the power of ten the unit divides by.
func (u Unit) exponent() int32 {
	switch u {
	case Thousands:
		return 3
	case Millions:
		return 6
	case Billions:
		return 9
	case Trillions:
		return 12
	default:
		return 0
	}
}
