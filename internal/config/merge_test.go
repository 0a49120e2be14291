package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_OverlayWins(t *testing.T) {
	base := &Config{Locale: "en-US", OutputFormat: "text", Viewport: Viewport{Width: 320, Height: 160}}
	overlay := &Config{OutputFormat: "json", Viewport: Viewport{Height: 90}}

	got := Merge(base, overlay)
	assert.Equal(t, &Config{Locale: "en-US", OutputFormat: "json", Viewport: Viewport{Width: 320, Height: 90}}, got)
	assert.Equal(t, "text", base.OutputFormat, "base is not modified")
}

func TestMerge_EmptyOverlay(t *testing.T) {
	base := Defaults()
	assert.Equal(t, base, Merge(base, &Config{}))
}

func TestLoadEnv_DotEnvAndProcess(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile),
		[]byte("ADVANCECARD_LOCALE=fr-FR\nADVANCECARD_FORMAT=markdown\nOTHER=x\n"), 0o600))
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvFormat, "json")

	env, err := LoadEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{EnvLocale: "fr-FR", EnvFormat: "json"}, env)
}

func TestLoadEnv_NoDotEnv(t *testing.T) {
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvFormat, "")
	env, err := LoadEnv(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestResolve_Precedence(t *testing.T) {
	global := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", global)
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvFormat, "")
	require.NoError(t, os.MkdirAll(filepath.Join(global, "advancecard"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(global, "advancecard", "config.yaml"),
		[]byte("locale: de-DE\noutput_format: markdown\nviewport:\n  width: 999\n"), 0o600))

	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, FileName),
		[]byte("output_format: json\nsettings: card.yaml\n"), 0o600))

	cfg, err := Resolve(repo)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", cfg.Locale, "global beats defaults")
	assert.Equal(t, "json", cfg.OutputFormat, "repo beats global")
	assert.InDelta(t, 999, cfg.Viewport.Width, 0)
	assert.InDelta(t, DefaultHeight, cfg.Viewport.Height, 0)
	assert.Equal(t, filepath.Join(repo, "card.yaml"), cfg.Settings)

	t.Setenv(EnvLocale, "ja-JP")
	cfg, err = Resolve(repo)
	require.NoError(t, err)
	assert.Equal(t, "ja-JP", cfg.Locale, "environment beats files")
}
