// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/davetashner/advancecard/internal/condition"
	"github.com/davetashner/advancecard/internal/format"
	"github.com/davetashner/advancecard/internal/palette"
)

var (
	// ErrUnknownProperty is returned when setting a property an object does
	// not persist.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrTypeMismatch is returned when a persisted value has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// property binds one persisted property name to a settings field.
type property struct {
	name string
	get  func(s *Settings) any
	set  func(s *Settings, v any) error
}

var schema = buildSchema()

func lookupProperty(obj ObjectName, name string) (property, bool) {
	for _, p := range schema[obj] {
		if p.name == name {
			return p, true
		}
	}
	return property{}, false
}

func buildSchema() map[ObjectName][]property {
	m := map[ObjectName][]property{
		ObjectGeneral: {
			stringProp("alignment", func(s *Settings) *string { return &s.General.Alignment }),
			floatProp("alignmentSpacing", func(s *Settings) *float64 { return &s.General.AlignmentSpacing }),
		},
		ObjectBackground: {
			boolProp("show", func(s *Settings) *bool { return &s.Fill.Show }),
			colorProp("backgroundColor", func(s *Settings) *palette.Color { return &s.Fill.Color }),
			boolProp("showImage", func(s *Settings) *bool { return &s.Fill.ShowImage }),
			stringProp("imageURL", func(s *Settings) *string { return &s.Fill.ImageURL }),
			floatProp("imagePadding", func(s *Settings) *float64 { return &s.Fill.ImagePadding }),
			floatProp("transparency", func(s *Settings) *float64 { return &s.Fill.Transparency }),
		},
		ObjectStroke:    strokeProperties(),
		ObjectCondition: conditionProperties(),
		ObjectTooltip: {
			stringProp("title", func(s *Settings) *string { return &s.Tooltip.Title }),
			stringProp("content", func(s *Settings) *string { return &s.Tooltip.Content }),
		},
		ObjectAbout: {
			stringProp("version", func(s *Settings) *string { return &s.About.Version }),
			stringProp("helpUrl", func(s *Settings) *string { return &s.About.HelpURL }),
		},
		ObjectExternalLink: {
			boolProp("show", func(s *Settings) *bool { return &s.ExternalLink.Show }),
			stringProp("url", func(s *Settings) *string { return &s.ExternalLink.URL }),
		},
	}
	for _, role := range Roles() {
		m[role.Object()] = labelProperties(role)
	}
	return m
}

// labelProperties builds the persisted properties of one label role. Roles
// share the font and color fields; the rest depends on the role.
func labelProperties(role LabelRole) []property {
	style := func(s *Settings) *LabelStyle { return s.Label(role) }

	var props []property
	if role != RolePrimary {
		props = append(props, boolProp("show", func(s *Settings) *bool { return &style(s).Show }))
	}
	props = append(props,
		stringProp("text", func(s *Settings) *string { return &style(s).Text }),
		colorProp("color", func(s *Settings) *palette.Color { return &style(s).Color }),
	)
	if role == RolePostfix {
		props = append(props,
			signColorProperty(role, "color_negative", func(c *SignColors) *palette.Color { return &c.Negative }),
			signColorProperty(role, "color_neutral", func(c *SignColors) *palette.Color { return &c.Neutral }),
			signColorProperty(role, "color_positive", func(c *SignColors) *palette.Color { return &c.Positive }),
		)
	}
	if role == RolePrefix || role == RolePostfix {
		props = append(props, floatProp("spacing", func(s *Settings) *float64 { return &style(s).Spacing }))
	}
	props = append(props,
		floatProp("fontSize", func(s *Settings) *float64 { return &style(s).Font.Size }),
		stringProp("fontFamily", func(s *Settings) *string { return &style(s).Font.Family }),
		boolProp("isBold", func(s *Settings) *bool { return &style(s).Font.Bold }),
		boolProp("isItalic", func(s *Settings) *bool { return &style(s).Font.Italic }),
		boolProp("isunderline", func(s *Settings) *bool { return &style(s).Font.Underline }),
	)
	if role != RoleCategory {
		props = append(props,
			stringProp("lineAlignment", func(s *Settings) *string { return &style(s).Alignment }),
			unitProp("displayUnit", func(s *Settings) *format.Unit { return &style(s).DisplayUnit }),
			intProp("decimalPlaces", func(s *Settings) *int { return &style(s).DecimalPlaces }),
		)
	}
	if role == RolePrimary {
		props = append(props, boolProp("wordWrap", func(s *Settings) *bool { return &style(s).WordWrap }))
	}
	return props
}

// signColorProperty builds a sign color property whose reads never allocate
// the role's SignColors.
func signColorProperty(role LabelRole, name string, pick func(*SignColors) *palette.Color) property {
	read := colorProp(name, func(s *Settings) *palette.Color {
		if c := s.Label(role).SignColors; c != nil {
			return pick(c)
		}
		return pick(&SignColors{})
	})
	write := colorProp(name, func(s *Settings) *palette.Color {
		l := s.Label(role)
		if l.SignColors == nil {
			l.SignColors = &SignColors{}
		}
		return pick(l.SignColors)
	})
	return property{name: name, get: read.get, set: write.set}
}

func strokeProperties() []property {
	props := []property{
		boolProp("show", func(s *Settings) *bool { return &s.Stroke.Show }),
		colorProp("strokeColor", func(s *Settings) *palette.Color { return &s.Stroke.Color }),
		floatProp("strokeWidth", func(s *Settings) *float64 { return &s.Stroke.Width }),
		strokeStyleProp("strokeType", func(s *Settings) *StrokeStyle { return &s.Stroke.Style }),
		stringProp("strokeLineCap", func(s *Settings) *string { return &s.Stroke.LineCap }),
		stringProp("strokeArray", func(s *Settings) *string { return &s.Stroke.DashArray }),
		floatProp("cornerRadius", func(s *Settings) *float64 { return &s.Stroke.CornerRadius }),
	}
	corners := []Corner{TopLeft, TopRight, BottomLeft, BottomRight}
	for _, c := range corners {
		props = append(props, boolProp(c.String(), func(s *Settings) *bool { return &s.Stroke.Corners[c].Round }))
	}
	for _, c := range corners {
		props = append(props, boolProp(c.String()+"Inward", func(s *Settings) *bool { return &s.Stroke.Corners[c].Inward }))
	}
	return props
}

// RuleKeys returns the persisted property names of the rule in the 1-based
// slot: comparator, threshold, foreground and background.
func RuleKeys(slot int) (comparator, threshold, foreground, background string) {
	n := strconv.Itoa(slot)
	return "condition" + n, "value" + n, "foregroundColor" + n, "backgroundColor" + n
}

func conditionProperties() []property {
	props := []property{
		boolProp("show", func(s *Settings) *bool { return &s.Conditions.Show }),
		countProp("conditionNumbers", func(s *Settings) *int { return &s.Conditions.Count }),
		boolProp("applyToDataLabel", func(s *Settings) *bool { return &s.Conditions.ApplyToPrimary }),
		boolProp("applyToCategoryLabel", func(s *Settings) *bool { return &s.Conditions.ApplyToCategory }),
		boolProp("applyToPrefix", func(s *Settings) *bool { return &s.Conditions.ApplyToPrefix }),
		boolProp("applyToPostfix", func(s *Settings) *bool { return &s.Conditions.ApplyToPostfix }),
	}
	for i := range condition.MaxRules {
		cmpKey, valueKey, fgKey, bgKey := RuleKeys(i + 1)
		props = append(props,
			ruleProperty(i, func(rule ruleAccessor) property {
				return comparatorProp(cmpKey, func(s *Settings) *condition.Comparator { return &rule(s).Comparator })
			}),
			ruleProperty(i, func(rule ruleAccessor) property {
				return thresholdProp(valueKey, func(s *Settings) **float64 { return &rule(s).Threshold })
			}),
			ruleProperty(i, func(rule ruleAccessor) property {
				return colorProp(fgKey, func(s *Settings) *palette.Color { return &rule(s).Foreground })
			}),
			ruleProperty(i, func(rule ruleAccessor) property {
				return colorProp(bgKey, func(s *Settings) *palette.Color { return &rule(s).Background })
			}),
		)
	}
	return props
}

type ruleAccessor func(s *Settings) *condition.Rule

// ruleProperty builds a rule slot property whose reads never modify the
// settings and whose writes grow a short rule list to reach slot i.
func ruleProperty(i int, build func(rule ruleAccessor) property) property {
	read := build(func(s *Settings) *condition.Rule {
		if i < len(s.Conditions.Rules) {
			return &s.Conditions.Rules[i]
		}
		return &condition.Rule{Comparator: condition.GreaterThan}
	})
	write := build(func(s *Settings) *condition.Rule { return ruleAt(s, i) })
	return property{name: read.name, get: read.get, set: write.set}
}

func ruleAt(s *Settings, i int) *condition.Rule {
	for len(s.Conditions.Rules) <= i {
		s.Conditions.Rules = append(s.Conditions.Rules, condition.Rule{Comparator: condition.GreaterThan})
	}
	return &s.Conditions.Rules[i]
}

func boolProp(name string, field func(*Settings) *bool) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return *field(s) },
		set: func(s *Settings, v any) error {
			if v == nil {
				return nil
			}
			b, err := toBool(v)
			if err != nil {
				return err
			}
			*field(s) = b
			return nil
		},
	}
}

func floatProp(name string, field func(*Settings) *float64) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return *field(s) },
		set: func(s *Settings, v any) error {
			if v == nil {
				return nil
			}
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			*field(s) = f
			return nil
		},
	}
}

func intProp(name string, field func(*Settings) *int) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return *field(s) },
		set: func(s *Settings, v any) error {
			if v == nil {
				return nil
			}
			n, err := toInt(v)
			if err != nil {
				return err
			}
			*field(s) = n
			return nil
		},
	}
}

// countProp accepts any number and truncates it toward zero; range
// clamping happens on refresh.
func countProp(name string, field func(*Settings) *int) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return *field(s) },
		set: func(s *Settings, v any) error {
			if v == nil {
				return nil
			}
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			if math.IsNaN(f) {
				return mismatch("number", v)
			}
			*field(s) = saturate(math.Trunc(f))
			return nil
		},
	}
}

func stringProp(name string, field func(*Settings) *string) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return *field(s) },
		set: func(s *Settings, v any) error {
			if v == nil {
				*field(s) = ""
				return nil
			}
			str, ok := v.(string)
			if !ok {
				return mismatch("string", v)
			}
			*field(s) = str
			return nil
		},
	}
}

func colorProp(name string, field func(*Settings) *palette.Color) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return string(*field(s)) },
		set: func(s *Settings, v any) error {
			c, err := toColor(v)
			if err != nil {
				return err
			}
			*field(s) = c
			return nil
		},
	}
}

func unitProp(name string, field func(*Settings) *format.Unit) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return int(*field(s)) },
		set: func(s *Settings, v any) error {
			if v == nil {
				return nil
			}
			n, err := toInt(v)
			if err != nil {
				return err
			}
			u, err := format.ParseUnit(n)
			if err != nil {
				return err
			}
			*field(s) = u
			return nil
		},
	}
}

func strokeStyleProp(name string, field func(*Settings) *StrokeStyle) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return strconv.Itoa(int(*field(s))) },
		set: func(s *Settings, v any) error {
			if v == nil {
				return nil
			}
			n, err := toInt(v)
			if err != nil {
				return err
			}
			if n < int(StrokeSolid) || n > int(StrokeDotted) {
				return fmt.Errorf("unknown stroke type %d (must be 0, 1 or 2)", n)
			}
			*field(s) = StrokeStyle(n)
			return nil
		},
	}
}

func comparatorProp(name string, field func(*Settings) *condition.Comparator) property {
	return property{
		name: name,
		get:  func(s *Settings) any { return string(*field(s)) },
		set: func(s *Settings, v any) error {
			if v == nil {
				return nil
			}
			str, ok := v.(string)
			if !ok {
				return mismatch("string", v)
			}
			c, err := condition.ParseComparator(str)
			if err != nil {
				return err
			}
			*field(s) = c
			return nil
		},
	}
}

// thresholdProp maps a nullable number: null leaves the rule without a
// threshold.
func thresholdProp(name string, field func(*Settings) **float64) property {
	return property{
		name: name,
		get: func(s *Settings) any {
			if t := *field(s); t != nil {
				return *t
			}
			return nil
		},
		set: func(s *Settings, v any) error {
			if v == nil {
				*field(s) = nil
				return nil
			}
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			*field(s) = &f
			return nil
		},
	}
}

func mismatch(want string, got any) error {
	return fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, want, got)
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, mismatch("bool", v)
		}
		return parsed, nil
	default:
		return false, mismatch("bool", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch("number", v)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, mismatch("number", v)
		}
		return f, nil
	default:
		return 0, mismatch("number", v)
	}
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: expected integer, got %g", ErrTypeMismatch, f)
	}
	return saturate(f), nil
}

// saturate converts a whole float to int, pinning values outside the int
// range to its bounds.
func saturate(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}

// toColor accepts a plain color string or a host fill object of the form
// {"solid": {"color": "#RRGGBB"}}.
func toColor(v any) (palette.Color, error) {
	switch c := v.(type) {
	case nil:
		return "", nil
	case string:
		return palette.Parse(c)
	case palette.Color:
		return palette.Parse(string(c))
	case map[string]any:
		solid, ok := c["solid"].(map[string]any)
		if !ok {
			return "", mismatch("color", v)
		}
		str, ok := solid["color"].(string)
		if !ok {
			return "", mismatch("color", v)
		}
		return palette.Parse(str)
	default:
		return "", mismatch("color", v)
	}
}
