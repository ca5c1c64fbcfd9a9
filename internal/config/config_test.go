package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure ambient variables from the developer's shell don't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PAPER_TEMPLATES_ROOT", "PAPER_TEMPLATES_MANIFEST", "PAPER_TEMPLATES_NO_COLOR", "NO_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultRoot(), cfg.Root)
	assert.Equal(t, "package.json", cfg.Manifest)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, filepath.Join(AppDir, "templates"), filepath.Join(filepath.Base(filepath.Dir(cfg.Root)), filepath.Base(cfg.Root)))
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, AppDir, filepath.Base(filepath.Dir(path)))
}

func TestLoad_EnvAppliesOverDefaultFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAPER_TEMPLATES_ROOT", "/env/templates")
	t.Setenv("PAPER_TEMPLATES_MANIFEST", "env.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/env/templates", cfg.Root)
	assert.Equal(t, "env.json", cfg.Manifest)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromPath("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_ValidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
root = "/opt/paper-code/templates"
manifest = "manifest.json"
no_color = true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/opt/paper-code/templates", cfg.Root)
	assert.Equal(t, "manifest.json", cfg.Manifest)
	assert.True(t, cfg.NoColor)
}

func TestLoadFromPath_PartialFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`root = "/srv/templates"`), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/templates", cfg.Root)
	assert.Equal(t, "package.json", cfg.Manifest)
	assert.False(t, cfg.NoColor)
}

func TestLoadFromPath_EmptyValuesFallBack(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("root = \"\"\nmanifest = \"\"\n"), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_InvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`invalid toml {{{{ content`), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
}

func TestLoadFromPath_EmptyPath(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromPath("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := `
root = "/file/templates"
manifest = "file.json"
no_color = false
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	t.Setenv("PAPER_TEMPLATES_ROOT", "/env/templates")
	t.Setenv("PAPER_TEMPLATES_MANIFEST", "env.json")
	t.Setenv("PAPER_TEMPLATES_NO_COLOR", "1")

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/env/templates", cfg.Root)
	assert.Equal(t, "env.json", cfg.Manifest)
	assert.True(t, cfg.NoColor)
}

func TestEnvOverrides_NoColorAnyValue(t *testing.T) {
	for _, key := range []string{"PAPER_TEMPLATES_NO_COLOR", "NO_COLOR"} {
		for _, val := range []string{"1", "true", "anything", ""} {
			t.Run(key+"="+val, func(t *testing.T) {
				clearEnv(t)
				t.Setenv(key, val)
				cfg, err := LoadFromPath("")
				require.NoError(t, err)
				assert.True(t, cfg.NoColor, "%s=%q should enable no_color", key, val)
			})
		}
	}
}

func TestRegistry(t *testing.T) {
	cfg := &Config{Root: "/srv/templates", Manifest: "manifest.json"}
	reg := cfg.Registry()
	assert.Equal(t, "/srv/templates", reg.TemplatesPath())
	assert.Equal(t, filepath.Join("/srv/templates", "manifest.json"), reg.ManifestPath())
}

func TestSampleConfigIsValidTOML(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(SampleConfig(), &cfg)
	require.NoError(t, err)
	// Everything is commented out.
	assert.Equal(t, Config{}, cfg)
}

func TestWriteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "paper-code", "config.toml")
	require.NoError(t, WriteConfigFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SampleConfig(), string(data))
}
