package pane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/dataview"
	"github.com/davetashner/advancecard/internal/format"
)

func TestDescribe_General(t *testing.T) {
	s := card.Defaults()
	s.General.AlignmentSpacing = 6

	got := Describe(card.ObjectGeneral, s, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "general", got[0].ObjectName)
	assert.Equal(t, map[string]any{"alignmentSpacing": 6.0, "alignment": "left"}, got[0].Properties)
	assert.Nil(t, got[0].Selector)
}

func TestDescribe_ConditionBlocks(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		blocks int
	}{
		{"default", 3, 3},
		{"above max", 15, 10},
		{"zero", 0, 1},
		{"negative", -2, 1},
		{"max", 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := card.Defaults()
			s.Conditions.Count = tt.count

			got := Describe(card.ObjectCondition, s, nil)
			require.Len(t, got, tt.blocks+1)
			assert.Equal(t, tt.blocks, got[0].Properties["conditionNumbers"])
			assert.Contains(t, got[0].Properties, "applyToDataLabel")

			last := got[len(got)-1].Properties
			cmpKey, valueKey, _, _ := card.RuleKeys(tt.blocks)
			assert.Contains(t, last, cmpKey)
			assert.Contains(t, last, valueKey)
			for _, inst := range got[1:] {
				assert.Len(t, inst.Properties, 4)
			}
		})
	}
}

func TestDescribe_ConditionBlockValues(t *testing.T) {
	s := card.Defaults()
	got := Describe(card.ObjectCondition, s, nil)
	require.Len(t, got, 4)
	assert.Equal(t, map[string]any{
		"condition2":       "<",
		"value2":           0.0,
		"foregroundColor2": "#FF0000",
		"backgroundColor2": "",
	}, got[2].Properties)
}

func TestDescribe_ConditionsShortRuleList(t *testing.T) {
	s := card.Defaults()
	s.Conditions.Rules = s.Conditions.Rules[:2]
	s.Conditions.Count = 5

	got := Describe(card.ObjectCondition, s, nil)
	require.Len(t, got, 6)
	assert.Equal(t, ">", got[5].Properties["condition5"])
	assert.Nil(t, got[5].Properties["value5"])
	assert.Len(t, s.Conditions.Rules, 2, "projection does not modify settings")
}

func TestDescribe_Tooltip(t *testing.T) {
	tbl := &dataview.Table{
		Columns: []dataview.Column{
			{DisplayName: "Revenue", Roles: map[string]bool{dataview.RoleMain: true}, Type: dataview.ColumnType{Numeric: true}},
			{
				DisplayName: "Margin", QueryName: "Avg(Sales.Margin)",
				Roles:   map[string]bool{dataview.RoleTooltips: true},
				Type:    dataview.ColumnType{Numeric: true},
				Objects: card.Objects{"tooltipSettings": {"measureFormat": 3.0, "measurePrecision": 2.0}},
			},
			{DisplayName: "Region", QueryName: "Geo.Region", Roles: map[string]bool{dataview.RoleTooltips: true}, Type: dataview.ColumnType{Text: true}},
			{DisplayName: "Units", QueryName: "Sum(Sales.Units)", Roles: map[string]bool{dataview.RoleTooltips: true}, Type: dataview.ColumnType{Integer: true}},
		},
	}
	s := card.Defaults()
	s.Tooltip.Title = "Sales"

	got := Describe(card.ObjectTooltip, s, tbl)
	require.Len(t, got, 5)
	assert.Equal(t, "tooltipSettings", got[0].ObjectName)
	assert.Equal(t, "Sales", got[0].Properties["title"])

	assert.Equal(t, "Margin Display Unit", got[1].DisplayName)
	assert.Equal(t, int(format.Millions), got[1].Properties["measureFormat"])
	require.NotNil(t, got[1].Selector)
	assert.Equal(t, "Avg(Sales.Margin)", got[1].Selector.Metadata)
	assert.Equal(t, "Margin Precision", got[2].DisplayName)
	assert.Equal(t, 2, got[2].Properties["measurePrecision"])

	assert.Equal(t, "Units Display Unit", got[3].DisplayName)
	assert.Equal(t, 0, got[3].Properties["measureFormat"])
	assert.Equal(t, "Sum(Sales.Units)", got[4].Selector.Metadata)
}

func TestDescribe_TooltipWithoutTable(t *testing.T) {
	got := Describe(card.ObjectTooltip, card.Defaults(), nil)
	require.Len(t, got, 1)
}

func TestDescribe_BackgroundImageFields(t *testing.T) {
	s := card.Defaults()
	got := Describe(card.ObjectBackground, s, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Fill", got[0].DisplayName)
	assert.NotContains(t, got[0].Properties, "imageURL")
	assert.NotContains(t, got[0].Properties, "imagePadding")
	assert.Equal(t, "#FEA19E", got[0].Properties["backgroundColor"])

	s.Fill.ShowImage = true
	s.Fill.ImageURL = "https://example.com/logo.png"
	got = Describe(card.ObjectBackground, s, nil)
	assert.Equal(t, "https://example.com/logo.png", got[0].Properties["imageURL"])
	assert.Contains(t, got[0].Properties, "imagePadding")
}

func TestDescribe_DefaultEnumeration(t *testing.T) {
	s := card.Defaults()
	for _, obj := range []card.ObjectName{card.ObjectPrefix, card.ObjectPostfix, card.ObjectStroke, card.ObjectAbout, card.ObjectExternalLink} {
		got := Describe(obj, s, nil)
		require.Len(t, got, 1, obj.String())
		assert.Equal(t, s.Properties(obj), got[0].Properties)
	}
	assert.Nil(t, Describe(card.ObjectName(42), s, nil))
}

func TestDescribe_EveryObjectHasProjector(t *testing.T) {
	for _, obj := range card.ObjectNames() {
		assert.NotEmpty(t, Describe(obj, card.Defaults(), nil), obj.String())
	}
}
