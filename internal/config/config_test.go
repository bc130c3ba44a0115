package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("BLACKJACK_COLOR", "")
	t.Setenv("BLACKJACK_LOG_LEVEL", "")
	t.Setenv("BLACKJACK_SHOW_DECK", "")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(filepath.Join(dir, "blackjack", "config.toml"))
	assert.True(t, os.IsNotExist(err), "loading must not create a file")
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "blackjack", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("color = \"never\"\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel, "absent keys keep their defaults")
	assert.True(t, cfg.ShowDeck)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BLACKJACK_COLOR", "ALWAYS")
	t.Setenv("BLACKJACK_LOG_LEVEL", "debug")
	t.Setenv("BLACKJACK_SHOW_DECK", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ShowDeck)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("BLACKJACK_LOG_LEVEL")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BLACKJACK_LOG_LEVEL=info\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("BLACKJACK_COLOR", "sometimes")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("BLACKJACK_COLOR", "")
	t.Setenv("BLACKJACK_SHOW_DECK", "maybe")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := isolate(t)

	path, err := WriteDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "blackjack", "config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `color = "auto"`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestUseColor(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.UseColor(true))
	assert.False(t, cfg.UseColor(false))

	cfg.Color = ColorAlways
	assert.True(t, cfg.UseColor(false))

	cfg.Color = ColorNever
	assert.False(t, cfg.UseColor(true))
}
