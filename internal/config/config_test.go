package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TAKU_SCRIPTS", "")
	t.Setenv("TAKU_BIN_DIR", "")
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("XDG_DATA_HOME", "")
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yml")
	content := "scripts_dir: /srv/scripts\nbin_dir: /srv/bin\neditor: vim\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/scripts", cfg.ScriptsDir)
	assert.Equal(t, "/srv/bin", cfg.BinDir)
	assert.Equal(t, "vim", cfg.Editor)
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "scripts_dir = \"/srv/scripts\"\neditor = \"nano\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/scripts", cfg.ScriptsDir)
	assert.Equal(t, "nano", cfg.Editor)
	// Unset keys fall back to defaults.
	assert.NotEmpty(t, cfg.BinDir)
}

func TestLoad_JSON(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"scripts_dir": "/srv/scripts"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/scripts", cfg.ScriptsDir)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TAKU_SCRIPTS", "/env/scripts")
	t.Setenv("TAKU_BIN_DIR", "/env/bin")

	path := filepath.Join(t.TempDir(), "config.yml")
	content := "scripts_dir: /file/scripts\nbin_dir: /file/bin\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	// Environment wins over the file, matching what installed shims export.
	assert.Equal(t, "/env/scripts", cfg.ScriptsDir)
	assert.Equal(t, "/env/bin", cfg.BinDir)
}

func TestLoadDefault_NoConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Contains(t, cfg.ScriptsDir, filepath.Join("taku", "scripts"))
	assert.Contains(t, cfg.BinDir, filepath.Join(".local", "bin"))
}

func TestLoadDefault_FindsConfig(t *testing.T) {
	clearEnv(t)
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	takuDir := filepath.Join(configHome, "taku")
	require.NoError(t, os.MkdirAll(takuDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(takuDir, "config.yml"), []byte("editor: helix\n"), 0o644))

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "helix", cfg.Editor)
}

func TestWriteDefault(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "taku", "config.yml")

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scripts_dir:")
	assert.Contains(t, string(data), "bin_dir:")

	// The generated file must load back cleanly.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ScriptsDir)
}

func TestValidate_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("scripts_dir: /srv/scripts\n"), 0o644))

	result, err := Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("script_dir: /typo\n"), 0o644))

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidate_WrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [not, a, string]\n"), 0o644))

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := Validate(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestValidate_Unparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0o644))

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
