// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package pane projects card settings into the instances the host property
// pane displays and edits. Projection is read-only.
package pane

import (
	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/dataview"
)

// Selector scopes an instance to a single column.
type Selector struct {
	Metadata string `json:"metadata"`
}

// Instance is one editable group of properties of a settings object.
type Instance struct {
	ObjectName  string         `json:"objectName"`
	DisplayName string         `json:"displayName,omitempty"`
	Properties  map[string]any `json:"properties"`
	Selector    *Selector      `json:"selector"`
}

// projector builds the instances of one settings object.
type projector func(obj card.ObjectName, s *card.Settings, t *dataview.Table) []Instance

var projectors = map[card.ObjectName]projector{
	card.ObjectGeneral:    projectGeneral,
	card.ObjectCondition:  projectConditions,
	card.ObjectTooltip:    projectTooltip,
	card.ObjectBackground: projectBackground,
}

func init() {
	for _, obj := range card.ObjectNames() {
		if _, ok := projectors[obj]; !ok {
			projectors[obj] = projectAll
		}
	}
}

// Describe returns the property-pane instances of obj. The table supplies
// per-column entries and may be nil.
func Describe(obj card.ObjectName, s *card.Settings, t *dataview.Table) []Instance {
	p, ok := projectors[obj]
	if !ok {
		return nil
	}
	return p(obj, s, t)
}

// projectAll exposes every persisted property of obj in one instance.
func projectAll(obj card.ObjectName, s *card.Settings, _ *dataview.Table) []Instance {
	return []Instance{{ObjectName: obj.String(), Properties: s.Properties(obj)}}
}

func projectGeneral(obj card.ObjectName, s *card.Settings, _ *dataview.Table) []Instance {
	return []Instance{{
		ObjectName: obj.String(),
		Properties: map[string]any{
			"alignmentSpacing": s.General.AlignmentSpacing,
			"alignment":        s.General.Alignment,
		},
	}}
}

// projectConditions emits the header instance followed by one block per
// active rule slot.
func projectConditions(obj card.ObjectName, s *card.Settings, _ *dataview.Table) []Instance {
	c := &s.Conditions
	limit := c.Limit()
	out := make([]Instance, 0, limit+1)
	out = append(out, Instance{
		ObjectName: obj.String(),
		Properties: map[string]any{
			"show":                 c.Show,
			"conditionNumbers":     limit,
			"applyToDataLabel":     c.ApplyToPrimary,
			"applyToCategoryLabel": c.ApplyToCategory,
			"applyToPrefix":        c.ApplyToPrefix,
			"applyToPostfix":       c.ApplyToPostfix,
		},
	})

	props := s.Properties(obj)
	for slot := 1; slot <= limit; slot++ {
		cmpKey, valueKey, fgKey, bgKey := card.RuleKeys(slot)
		out = append(out, Instance{
			ObjectName: obj.String(),
			Properties: map[string]any{
				cmpKey:   props[cmpKey],
				valueKey: props[valueKey],
				fgKey:    props[fgKey],
				bgKey:    props[bgKey],
			},
		})
	}
	return out
}

// projectTooltip emits the card tooltip text and, for every numeric tooltip
// column, its display unit and precision scoped to that column.
func projectTooltip(obj card.ObjectName, s *card.Settings, t *dataview.Table) []Instance {
	out := []Instance{{
		ObjectName: obj.String(),
		Properties: map[string]any{
			"title":   s.Tooltip.Title,
			"content": s.Tooltip.Content,
		},
	}}
	for _, i := range t.WithRole(dataview.RoleTooltips) {
		col := &t.Columns[i]
		if !col.IsNumeric() {
			continue
		}
		unit, decimals := dataview.TooltipFormat(col)
		sel := &Selector{Metadata: col.QueryName}
		out = append(out,
			Instance{
				ObjectName:  obj.String(),
				DisplayName: col.DisplayName + " Display Unit",
				Properties:  map[string]any{dataview.MeasureFormatProperty: int(unit)},
				Selector:    sel,
			},
			Instance{
				ObjectName:  obj.String(),
				DisplayName: col.DisplayName + " Precision",
				Properties:  map[string]any{dataview.MeasurePrecisionProperty: decimals},
				Selector:    sel,
			},
		)
	}
	return out
}

// projectBackground hides the image fields until image display is on.
func projectBackground(obj card.ObjectName, s *card.Settings, _ *dataview.Table) []Instance {
	f := &s.Fill
	props := map[string]any{
		"show":            f.Show,
		"backgroundColor": string(f.Color),
		"showImage":       f.ShowImage,
		"transparency":    f.Transparency,
	}
	if f.ShowImage {
		props["imageURL"] = f.ImageURL
		props["imagePadding"] = f.ImagePadding
	}
	return []Instance{{ObjectName: obj.String(), DisplayName: "Fill", Properties: props}}
}
