// Package config handles loading and validation of the taku
// configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/taku-sh/taku/internal/terrors"
)

// SupportedConfigNames contains supported configuration file names,
// in order of preference.
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// Config is the taku configuration. Every field has a default; a
// missing config file is not an error.
type Config struct {
	ScriptsDir string `koanf:"scripts_dir" yaml:"scripts_dir"`
	BinDir     string `koanf:"bin_dir" yaml:"bin_dir"`
	Editor     string `koanf:"editor" yaml:"editor"`
}

// Dir returns the taku config directory (XDG_CONFIG_HOME/taku).
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taku"), nil
}

// DefaultPath returns the path where a fresh config file is created.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SupportedConfigNames[0]), nil
}

// Find returns the path of the existing config file, or "" when the
// user has none.
func Find() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// parserFor picks a koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// Load reads a config file and applies defaults and environment
// overrides (TAKU_SCRIPTS, TAKU_BIN_DIR, EDITOR).
func Load(path string) (*Config, error) {
	var cfg Config

	parser, err := parserFor(path)
	if err != nil {
		return nil, terrors.NewConfigurationError(path, "cannot load config", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, terrors.NewConfigurationError(path, "failed to parse config", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, terrors.NewConfigurationError(path, "failed to decode config", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault loads the user's config file if one exists, otherwise
// returns the built-in defaults.
func LoadDefault() (*Config, error) {
	path, err := Find()
	if err != nil {
		return nil, err
	}

	if path != "" {
		return Load(path)
	}

	var cfg Config
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills empty fields from the environment and the XDG
// layout. TAKU_SCRIPTS wins over the config file, matching the shims
// that export it.
func (c *Config) applyDefaults() error {
	if v := os.Getenv("TAKU_SCRIPTS"); v != "" {
		c.ScriptsDir = v
	}
	if v := os.Getenv("TAKU_BIN_DIR"); v != "" {
		c.BinDir = v
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	if c.ScriptsDir == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		c.ScriptsDir = filepath.Join(dataHome, "taku", "scripts")
	}

	if c.BinDir == "" {
		c.BinDir = filepath.Join(home, ".local", "bin")
	}

	if c.Editor == "" {
		c.Editor = os.Getenv("EDITOR")
	}
	if c.Editor == "" {
		c.Editor = os.Getenv("VISUAL")
	}

	return nil
}

// WriteDefault writes a fresh config file with the current defaults
// spelled out, so the user has something concrete to edit.
func WriteDefault(path string) error {
	var cfg Config
	if err := cfg.applyDefaults(); err != nil {
		return err
	}

	body, err := yamlv3.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	header := "# taku configuration\n# scripts_dir: where managed scripts live\n# bin_dir: where install places shims\n# editor: used by taku edit (falls back to $EDITOR)\n"

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(header), body...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
