// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package validate checks persisted card settings objects before they reach
// a refresh. It reports every problem it finds with a fix suggestion instead
// of stopping at the first one.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/condition"
	"github.com/davetashner/advancecard/internal/format"
	"github.com/davetashner/advancecard/internal/palette"
)

// Severity ranks an issue.
type Severity int

const (
	// SeverityWarning marks input a refresh ignores or clamps.
	SeverityWarning Severity = iota
	// SeverityError marks input a refresh rejects.
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MarshalText encodes the severity as its name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ValidAlignments are the accepted label and general alignments.
var ValidAlignments = []string{"left", "center", "right"}

// ValidLineCaps are the accepted stroke line caps.
var ValidLineCaps = []string{"butt", "round", "square"}

// Issue is a single problem with one settings property.
type Issue struct {
	Severity   Severity `json:"severity"`
	Object     string   `json:"object"`
	Property   string   `json:"property,omitempty"` // empty for object-level issues
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Path returns object.property, or the object alone.
func (i *Issue) Path() string {
	if i.Property == "" {
		return i.Object
	}
	return i.Object + "." + i.Property
}

// Error implements the error interface.
func (i *Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Path(), i.Message)
}

// Result contains the outcome of validating a set of settings objects.
type Result struct {
	Objects int     `json:"objects"`
	Issues  []Issue `json:"issues"`
}

// Valid returns true if no error-level issue was found.
func (r *Result) Valid() bool {
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Count returns the number of issues with severity sev.
func (r *Result) Count(sev Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == sev {
			n++
		}
	}
	return n
}

func (r *Result) add(sev Severity, object, property, message, suggestion string) {
	r.Issues = append(r.Issues, Issue{
		Severity:   sev,
		Object:     object,
		Property:   property,
		Message:    message,
		Suggestion: suggestion,
	})
}

// Validate checks every object and property in objects. Issues are ordered
// by object and property name.
func Validate(objects card.Objects) *Result {
	result := &Result{Objects: len(objects)}
	s := card.Defaults()

	for _, objName := range sortedKeys(objects) {
		obj, ok := card.ParseObjectName(objName)
		if !ok {
			result.add(SeverityWarning, objName, "",
				fmt.Sprintf("unknown settings object %q is ignored", objName),
				suggest(objName, objectNames()))
			continue
		}
		props := objects[objName]
		for _, prop := range sortedKeys(props) {
			if !card.HasProperty(obj, prop) {
				result.add(SeverityWarning, objName, prop,
					fmt.Sprintf("unknown property %q is ignored", prop),
					suggest(prop, card.PropertyNames(obj)))
				continue
			}
			if err := s.Set(obj, prop, props[prop]); err != nil {
				msg := strings.TrimPrefix(err.Error(), obj.String()+"."+prop+": ")
				result.add(SeverityError, objName, prop, msg, suggestionFor(err))
				continue
			}
			checkValue(result, objName, obj, prop, s)
		}
	}
	return result
}

// checkValue runs the range and format checks of one decoded property.
func checkValue(r *Result, objName string, obj card.ObjectName, prop string, s *card.Settings) {
	value := s.Properties(obj)[prop]

	switch prop {
	case "decimalPlaces":
		if n, _ := value.(int); n < 0 || n > 15 {
			r.add(SeverityWarning, objName, prop,
				fmt.Sprintf("decimal places %d are clamped to 0..15", n),
				"set decimalPlaces between 0 and 15")
		}
	case "conditionNumbers":
		if n, _ := value.(int); n != card.ClampConditionCount(n) {
			r.add(SeverityWarning, objName, prop,
				fmt.Sprintf("rule count %d is clamped to %d", n, card.ClampConditionCount(n)),
				fmt.Sprintf("set conditionNumbers between 1 and %d", condition.MaxRules))
		}
	case "transparency":
		if f, _ := value.(float64); f < 0 || f > 100 {
			r.add(SeverityError, objName, prop,
				fmt.Sprintf("transparency %v is outside 0..100", f),
				"transparency is a percentage between 0 and 100")
		}
	case "fontSize":
		if f, _ := value.(float64); f <= 0 {
			r.add(SeverityError, objName, prop,
				fmt.Sprintf("font size %v must be positive", f),
				"use a font size in points, e.g. 12")
		}
	case "strokeWidth", "cornerRadius", "spacing", "imagePadding", "alignmentSpacing":
		if f, _ := value.(float64); f < 0 {
			r.add(SeverityError, objName, prop,
				fmt.Sprintf("%s %v must not be negative", prop, f),
				fmt.Sprintf("set %s to 0 or more", prop))
		}
	case "lineAlignment", "alignment":
		checkOneOf(r, objName, prop, value, ValidAlignments)
	case "strokeLineCap":
		checkOneOf(r, objName, prop, value, ValidLineCaps)
	case "url", "imageURL", "helpUrl":
		checkURL(r, objName, prop, value)
	case "version":
		if v, _ := value.(string); v != "" && !semver.IsValid(canonicalVersion(v)) {
			r.add(SeverityWarning, objName, prop,
				fmt.Sprintf("version %q is not a semantic version", v),
				"use MAJOR.MINOR.PATCH, e.g. 1.2.0")
		}
	}
}

func checkOneOf(r *Result, objName, prop string, value any, valid []string) {
	v, _ := value.(string)
	for _, ok := range valid {
		if v == ok {
			return
		}
	}
	suggestion := fmt.Sprintf("%s must be one of: %s", prop, strings.Join(valid, ", "))
	if hint := closestMatch(strings.ToLower(v), valid, 3); hint != "" {
		suggestion = fmt.Sprintf("did you mean %q?", hint)
	}
	r.add(SeverityError, objName, prop, fmt.Sprintf("invalid %s %q", prop, v), suggestion)
}

func checkURL(r *Result, objName, prop string, value any) {
	v, _ := value.(string)
	if strings.TrimSpace(v) == "" {
		return
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		r.add(SeverityError, objName, prop,
			fmt.Sprintf("%s %q is not an absolute http(s) URL", prop, v),
			"use a full address such as https://example.com/report")
	}
}

// canonicalVersion adds the "v" prefix semver expects.
func canonicalVersion(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// suggestionFor maps a decode error to a fix.
func suggestionFor(err error) string {
	switch {
	case errors.Is(err, palette.ErrInvalidColor):
		return `use a hex color such as "#1F77B4", a CSS color name, or {"solid":{"color":"#1F77B4"}}`
	case errors.Is(err, condition.ErrUnknownComparator):
		return `use one of ">", "<" or "="`
	case errors.Is(err, format.ErrUnknownUnit):
		return "use a display unit code: 0 auto, 1 none, 2 thousands, 3 millions, 4 billions, 5 trillions"
	case errors.Is(err, card.ErrTypeMismatch):
		return "check the value's JSON type against the property"
	}
	return ""
}

func suggest(input string, candidates []string) string {
	if hint := closestMatch(input, candidates, 3); hint != "" {
		return fmt.Sprintf("did you mean %q?", hint)
	}
	return ""
}

func objectNames() []string {
	names := make([]string, 0, len(card.ObjectNames()))
	for _, o := range card.ObjectNames() {
		names = append(names, o.String())
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// closestMatch finds the closest string in candidates to input using
// Levenshtein distance. Returns empty string if no match is within maxDist.
func closestMatch(input string, candidates []string, maxDist int) string {
	best := ""
	bestDist := maxDist + 1

	for _, c := range candidates {
		d := levenshtein(input, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	if bestDist <= maxDist {
		return best
	}
	return ""
}

// levenshtein computes the Levenshtein edit distance between two strings.
func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}
