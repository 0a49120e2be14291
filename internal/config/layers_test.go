package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayers_Order(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLocale, "fr-FR")
	t.Setenv(EnvFormat, "")

	layers, err := Layers(t.TempDir())
	require.NoError(t, err)

	sources := make([]string, 0, len(layers))
	for _, l := range layers {
		sources = append(sources, l.Source)
	}
	assert.Equal(t, []string{SourceDefault, SourceGlobal, SourceRepo, SourceEnv}, sources)
	assert.Equal(t, "fr-FR", layers[3].Config.Locale)
}

func TestLayers_BadRepoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("locale: [\n"), 0o600))

	_, err := Layers(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repo config")
}

func TestOrigin(t *testing.T) {
	layers := []Layer{
		{SourceDefault, Defaults()},
		{SourceGlobal, &Config{OutputFormat: "markdown"}},
		{SourceRepo, &Config{Viewport: Viewport{Width: 480}}},
		{SourceEnv, &Config{}},
	}

	tests := []struct {
		key    string
		value  any
		source string
	}{
		{"output_format", "markdown", SourceGlobal},
		{"viewport.width", 480.0, SourceRepo},
		{"viewport.height", DefaultHeight, SourceDefault},
		{"settings", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, src := Origin(layers, tt.key)
			assert.Equal(t, tt.source, src)
			if tt.value != nil {
				assert.EqualValues(t, tt.value, v)
			}
		})
	}
}
