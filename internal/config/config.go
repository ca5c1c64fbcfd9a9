// Package config provides configuration file and environment variable support
// for paper-templates.
//
// Configuration priority (highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Config file ($XDG_CONFIG_HOME/paper-code/config.toml)
//  4. Built-in defaults
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	templates "github.com/paper-code/templates"
)

// AppDir is the directory name used under the XDG base directories.
const AppDir = "paper-code"

// Config represents the paper-templates configuration.
type Config struct {
	// Root is the templates installation directory.
	// Default: $XDG_DATA_HOME/paper-code/templates
	Root string `toml:"root" json:"root" yaml:"root"`

	// Manifest is the manifest file name under Root.
	// Default: package.json
	Manifest string `toml:"manifest" json:"manifest" yaml:"manifest"`

	// NoColor disables colored output.
	// Default: false
	NoColor bool `toml:"no_color" json:"no_color" yaml:"no_color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Root:     DefaultRoot(),
		Manifest: templates.DefaultManifestName,
		NoColor:  false,
	}
}

// DefaultRoot returns the default templates root.
func DefaultRoot() string {
	return filepath.Join(xdg.DataHome, AppDir, "templates")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDir, "config.toml")
}

// Load loads configuration from the default config file and environment variables.
func Load() (*Config, error) {
	return LoadFromPath(DefaultConfigPath())
}

// LoadFromPath loads configuration from a specific file path.
// Environment variables take precedence over file settings.
// Returns default config if the config file doesn't exist.
func LoadFromPath(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyEnv()

	// An explicitly empty value in the file falls back to the default.
	if cfg.Root == "" {
		cfg.Root = DefaultRoot()
	}
	if cfg.Manifest == "" {
		cfg.Manifest = templates.DefaultManifestName
	}

	return cfg, nil
}

// applyEnv applies environment variable overrides to the config.
func (c *Config) applyEnv() {
	if root := os.Getenv("PAPER_TEMPLATES_ROOT"); root != "" {
		c.Root = root
	}

	if manifest := os.Getenv("PAPER_TEMPLATES_MANIFEST"); manifest != "" {
		c.Manifest = manifest
	}

	// PAPER_TEMPLATES_NO_COLOR and NO_COLOR - any value means true
	if _, ok := os.LookupEnv("PAPER_TEMPLATES_NO_COLOR"); ok {
		c.NoColor = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}
}

// Registry returns a template registry for the configured root and manifest.
func (c *Config) Registry() *templates.Registry {
	return templates.New(c.Root, templates.WithManifestName(c.Manifest))
}

// SampleConfig returns a sample configuration file content.
func SampleConfig() string {
	return `# paper-templates configuration file
# Location: $XDG_CONFIG_HOME/paper-code/config.toml
#
# Configuration priority (highest to lowest):
#   1. Command-line flags
#   2. Environment variables (PAPER_TEMPLATES_*)
#   3. This config file
#   4. Built-in defaults

# Templates installation directory (contains core/, ai/, stacks/, libs/, github/)
# Default: $XDG_DATA_HOME/paper-code/templates
# Environment: PAPER_TEMPLATES_ROOT
# root = "/usr/local/share/paper-code/templates"

# Package manifest file name, relative to root
# Default: package.json
# Environment: PAPER_TEMPLATES_MANIFEST
# manifest = "package.json"

# Disable colored output
# Default: false
# Environment: PAPER_TEMPLATES_NO_COLOR or NO_COLOR (any value = true)
# no_color = false
`
}

// WriteConfigFile writes the sample config file to the specified path.
// Creates parent directories if needed.
func WriteConfigFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(SampleConfig()), 0644)
}
