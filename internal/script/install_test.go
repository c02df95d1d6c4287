package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taku-sh/taku/internal/terrors"
)

func TestStore_Install(t *testing.T) {
	store := newTestStore(t)
	binDir := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, store.Create("test", ""))

	res, err := store.Install("test", binDir)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, filepath.Join(binDir, "test"), res.Target)

	data, err := os.ReadFile(res.Target)
	require.NoError(t, err)
	shim := string(data)
	assert.Contains(t, shim, "#!/usr/bin/env bash")
	assert.Contains(t, shim, "export TAKU_SCRIPTS=")
	assert.Contains(t, shim, `exec taku run "test" "$@"`)

	info, err := os.Stat(res.Target)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111, "shim must be executable")
}

func TestStore_Install_SkipsExistingTarget(t *testing.T) {
	store := newTestStore(t)
	binDir := t.TempDir()
	require.NoError(t, store.Create("test", ""))

	existing := filepath.Join(binDir, "test")
	require.NoError(t, os.WriteFile(existing, []byte("existing content"), 0o755))

	res, err := store.Install("test", binDir)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "existing content", string(data))
}

func TestStore_Install_UnknownScript(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Install("ghost", t.TempDir())
	var notFound *terrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStore_InstallAll(t *testing.T) {
	store := newTestStore(t)
	binDir := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, store.Create("script1", ""))
	require.NoError(t, store.Create("script2", ""))
	require.NoError(t, os.MkdirAll(filepath.Join(store.Root(), TemplatesDir), 0o755))

	results, err := store.InstallAll(binDir)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	assert.FileExists(t, filepath.Join(binDir, "script1"))
	assert.FileExists(t, filepath.Join(binDir, "script2"))
	assert.NoFileExists(t, filepath.Join(binDir, TemplatesDir))
}

func TestStore_Uninstall(t *testing.T) {
	store := newTestStore(t)
	binDir := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, store.Create("test", ""))

	_, err := store.Install("test", binDir)
	require.NoError(t, err)

	res, err := store.Uninstall("test", binDir)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.NoFileExists(t, res.Target)
}

func TestStore_Uninstall_NotInstalled(t *testing.T) {
	store := newTestStore(t)

	res, err := store.Uninstall("test", t.TempDir())
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestStore_UninstallAll(t *testing.T) {
	store := newTestStore(t)
	binDir := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, store.Create("script1", ""))
	require.NoError(t, store.Create("script2", ""))

	_, err := store.InstallAll(binDir)
	require.NoError(t, err)

	results, err := store.UninstallAll(binDir)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	for _, res := range results {
		assert.True(t, res.Found)
		assert.NoFileExists(t, res.Target)
	}
}
