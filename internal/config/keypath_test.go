package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue_TopLevel(t *testing.T) {
	cfg := &Config{OutputFormat: "json", Locale: "de-DE"}

	val, err := GetValue(cfg, "output_format")
	require.NoError(t, err)
	assert.Equal(t, "json", val)

	val, err = GetValue(cfg, "locale")
	require.NoError(t, err)
	assert.Equal(t, "de-DE", val)
}

func TestGetValue_Nested(t *testing.T) {
	cfg := &Config{Viewport: Viewport{Width: 300.5}}

	val, err := GetValue(cfg, "viewport.width")
	require.NoError(t, err)
	assert.Equal(t, 300.5, val)

	block, err := GetValue(cfg, "viewport")
	require.NoError(t, err)
	m, ok := block.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 300.5, m["width"])
}

func TestGetValue_NotFound(t *testing.T) {
	_, err := GetValue(&Config{}, "output_format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = GetValue(&Config{Locale: "x"}, "locale.sub")
	assert.Error(t, err)
}

func TestSetValue(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "output_format", "json"))
	require.NoError(t, SetValue(data, "viewport.width", "400"))
	require.NoError(t, SetValue(data, "viewport.height", "120.5"))

	assert.Equal(t, "json", data["output_format"])
	vp, ok := data["viewport"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 400, vp["width"])
	assert.Equal(t, 120.5, vp["height"])
}

func TestSetValue_ParentNotMap(t *testing.T) {
	data := map[string]any{"locale": "en-US"}
	err := SetValue(data, "locale.x", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a map")

	assert.Error(t, SetValue(data, "", "x"))
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Equal(t, 42, coerceValue("42"))
	assert.Equal(t, 1.5, coerceValue("1.5"))
	assert.Equal(t, 1000.0, coerceValue("1e3"))
	assert.Equal(t, "en-US", coerceValue("en-US"))
	assert.Equal(t, "#FF0000", coerceValue("#FF0000"), "a leading # is not a comment")
	assert.Equal(t, "[1, 2]", coerceValue("[1, 2]"))
	assert.Equal(t, "null", coerceValue("null"))
}

func TestFlattenMap(t *testing.T) {
	flat := FlattenMap(map[string]any{
		"locale":   "en-US",
		"viewport": map[string]any{"width": 10, "height": 20},
	}, "")
	assert.Equal(t, map[string]any{
		"locale":          "en-US",
		"viewport.width":  10,
		"viewport.height": 20,
	}, flat)
}

func TestValidateKeyPath(t *testing.T) {
	valid := []string{"locale", "output_format", "settings", "viewport", "viewport.width", "viewport.height"}
	for _, k := range valid {
		assert.NoError(t, ValidateKeyPath(k), k)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"", "empty key path"},
		{"colour", "unknown key"},
		{"locale.region", "is a scalar"},
		{"viewport.depth", "unknown viewport field"},
		{"viewport.width.px", `"viewport.width" is a scalar`},
	}
	for _, tt := range tests {
		err := ValidateKeyPath(tt.key)
		require.Error(t, err, tt.key)
		assert.Contains(t, err.Error(), tt.want)
	}
}

func TestValidateKeyPath_ListsValidKeys(t *testing.T) {
	err := ValidateKeyPath("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locale, output_format, settings, viewport")
}

func TestUnsetValue(t *testing.T) {
	data := map[string]any{
		"locale":   "en-US",
		"viewport": map[string]any{"width": 10, "height": 20},
	}

	assert.True(t, UnsetValue(data, "viewport.width"))
	assert.Equal(t, map[string]any{"height": 20}, data["viewport"])

	assert.True(t, UnsetValue(data, "viewport.height"))
	assert.NotContains(t, data, "viewport", "empty sections are pruned")

	assert.False(t, UnsetValue(data, "viewport.height"))
	assert.False(t, UnsetValue(data, "locale.region"))
	assert.True(t, UnsetValue(data, "locale"))
	assert.Empty(t, data)
}
