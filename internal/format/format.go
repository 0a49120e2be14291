// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package format renders raw numbers for display: display-unit scaling,
// decimal rounding and locale-aware digit grouping.
package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when a locale is empty or cannot be parsed.
const DefaultLocale = "en-US"

// MaxDecimals caps the fraction digits a value is rendered with.
const MaxDecimals = 15

// Format scales raw by unit, rounds it half away from zero to decimals
// fraction digits and renders it for locale, followed by the unit suffix.
//
// Zero always renders as "0". The sign is always an ASCII minus placed
// directly before the digits, whatever the locale.
func Format(raw float64, unit Unit, decimals int, locale string) string {
	switch {
	case math.IsNaN(raw):
		return "NaN"
	case math.IsInf(raw, 1):
		return "∞"
	case math.IsInf(raw, -1):
		return "-∞"
	case raw == 0:
		return "0"
	}

	if unit == Auto {
		unit = AutoUnit(raw)
	}
	decimals = clampDecimals(decimals)

	scaled := decimal.NewFromFloat(math.Abs(raw)).
		Shift(-unit.exponent()).
		Round(int32(decimals))

	digits := printer(locale).Sprintf("%v", number.Decimal(
		scaled.InexactFloat64(),
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
	if raw < 0 && !scaled.IsZero() {
		digits = "-" + digits
	}
	return digits + unit.Suffix()
}

// AutoUnit picks the largest unit that keeps the scaled magnitude of raw at
// or above one. Values below one thousand get None.
func AutoUnit(raw float64) Unit {
	abs := math.Abs(raw)
	for _, u := range []Unit{Trillions, Billions, Millions, Thousands} {
		if abs >= math.Pow10(int(u.exponent())) {
			return u
		}
	}
	return None
}

// Tag parses locale into a language tag, falling back to DefaultLocale.
func Tag(locale string) language.Tag {
	if locale == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func printer(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale))
}

func clampDecimals(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxDecimals {
		return MaxDecimals
	}
	return n
}
