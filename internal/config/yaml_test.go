package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	content := `
locale: sv-SE
output_format: markdown
settings: card.yaml
viewport:
  width: 500
  height: 250
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "sv-SE", cfg.Locale)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "card.yaml", cfg.Settings)
	assert.InDelta(t, 500, cfg.Viewport.Width, 0)
	assert.InDelta(t, 250, cfg.Viewport.Height, 0)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("viewport: [unclosed"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("locale: de-DE\nviewport:\n  widht: 10\n"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), nil, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadRaw_MissingIsEmpty(t *testing.T) {
	m, err := LoadRaw(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)
	data := map[string]any{
		"locale":   "nl-NL",
		"viewport": map[string]any{"width": 300},
		"custom":   "kept",
	}
	require.NoError(t, WriteFile(path, data))

	back, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, data, back)

	_, err = Load(filepath.Dir(path))
	assert.ErrorContains(t, err, "custom", "raw edits keep keys that strict loading rejects")

	delete(data, "custom")
	require.NoError(t, WriteFile(path, data))
	cfg, err := Load(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, "nl-NL", cfg.Locale)
}

func TestCheckRaw(t *testing.T) {
	assert.NoError(t, CheckRaw(map[string]any{}))
	assert.NoError(t, CheckRaw(map[string]any{"viewport": map[string]any{"width": 480}}))

	err := CheckRaw(map[string]any{"viewport": map[string]any{"width": -5}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "viewport.width")

	err = CheckRaw(map[string]any{"viewport": "wide"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
