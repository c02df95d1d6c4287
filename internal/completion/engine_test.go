package completion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRegistry is an in-memory Registry that records how often it was
// queried, so tests can assert that certain modes never touch it.
type fakeRegistry struct {
	names []string
	err   error
	calls int
}

func (f *fakeRegistry) Complete(prefix string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return Filter(f.names, prefix), nil
}

func TestEngine_Manager_Subcommands(t *testing.T) {
	reg := &fakeRegistry{names: []string{"deploy"}}
	engine := NewEngine(ToolManager, reg)

	// Regardless of the previous word, index <= 1 completes the verb.
	result := engine.Complete(Request{Tool: ToolManager, Words: []string{"taku", ""}, CWord: 1})
	assert.ElementsMatch(t, Subcommands(), result)
	assert.Equal(t, 0, reg.calls)

	result = engine.Complete(Request{Tool: ToolManager, Words: []string{"taku", "in"}, CWord: 1})
	assert.Equal(t, []string{"install"}, result)
}

func TestEngine_Manager_ScriptNames(t *testing.T) {
	reg := &fakeRegistry{names: []string{"deploy", "deck", "backup"}}
	engine := NewEngine(ToolManager, reg)

	result := engine.Complete(Request{Tool: ToolManager, Words: []string{"taku", "run", "de"}, CWord: 2})
	assert.Equal(t, []string{"deploy", "deck"}, result)
	assert.Equal(t, 1, reg.calls)
}

func TestEngine_Manager_NewTakesNoCandidates(t *testing.T) {
	reg := &fakeRegistry{names: []string{"abacus"}}
	engine := NewEngine(ToolManager, reg)

	result := engine.Complete(Request{Tool: ToolManager, Words: []string{"taku", "new", "ab"}, CWord: 2})
	assert.Empty(t, result)
	// No dynamic call is made for non-script verbs.
	assert.Equal(t, 0, reg.calls)
}

func TestEngine_Manager_PastScriptName(t *testing.T) {
	reg := &fakeRegistry{names: []string{"deploy"}}
	engine := NewEngine(ToolManager, reg)

	result := engine.Complete(Request{Tool: ToolManager, Words: []string{"taku", "run", "deploy", "d"}, CWord: 3})
	assert.Empty(t, result)
	assert.Equal(t, 0, reg.calls)
}

func TestEngine_Runner_RegistryFirst(t *testing.T) {
	reg := &fakeRegistry{names: []string{"deploy", "deck"}}
	engine := NewEngine(ToolRunner, reg)

	result := engine.Complete(Request{Tool: ToolRunner, Words: []string{"tax", "de"}, CWord: 1})
	assert.Equal(t, []string{"deploy", "deck"}, result)
}

func TestEngine_Runner_PathFallbackOnEmptyRegistry(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "deploy.sh"), []byte("#!/bin/sh\n"), 0o755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	reg := &fakeRegistry{names: []string{}}
	engine := NewEngine(ToolRunner, reg)

	result := engine.Complete(Request{Tool: ToolRunner, Words: []string{"tax", "dep"}, CWord: 1})
	assert.Equal(t, []string{"deploy.sh"}, result)
}

func TestEngine_Runner_PathFallbackOnRegistryError(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	reg := &fakeRegistry{err: assert.AnError}
	engine := NewEngine(ToolRunner, reg)

	result := engine.Complete(Request{Tool: ToolRunner, Words: []string{"tax", "no"}, CWord: 1})
	assert.Equal(t, []string{"notes.txt"}, result)
}

func TestEngine_Runner_PathOnlyIgnoresRegistry(t *testing.T) {
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	reg := &fakeRegistry{names: []string{"--verbose-matching-script"}}
	engine := NewEngine(ToolRunner, reg)

	result := engine.Complete(Request{Tool: ToolRunner, Words: []string{"tax", "deploy.sh", "--verb"}, CWord: 2})
	assert.Empty(t, result)
	assert.Equal(t, 0, reg.calls)
}

func TestEngine_NilRegistry(t *testing.T) {
	engine := NewEngine(ToolManager, nil)

	result := engine.Complete(Request{Tool: ToolManager, Words: []string{"taku", "run", "de"}, CWord: 2})
	assert.Empty(t, result)
}

func TestEngine_Idempotent(t *testing.T) {
	reg := &fakeRegistry{names: []string{"deploy", "deck"}}
	engine := NewEngine(ToolManager, reg)

	req := Request{Tool: ToolManager, Words: []string{"taku", "run", "de"}, CWord: 2}
	first := engine.Complete(req)
	second := engine.Complete(req)
	assert.Equal(t, first, second)
}

func TestRequest_Words(t *testing.T) {
	req := Request{Words: []string{"taku", "run", "de"}, CWord: 2}
	assert.Equal(t, "de", req.CurrentWord())
	assert.Equal(t, "run", req.PreviousWord())

	// Cursor past the end means a fresh empty word; the previous word
	// is still the last one typed.
	req = Request{Words: []string{"taku", "run"}, CWord: 2}
	assert.Equal(t, "", req.CurrentWord())
	assert.Equal(t, "run", req.PreviousWord())

	req = Request{Words: []string{"taku"}, CWord: 0}
	assert.Equal(t, "taku", req.CurrentWord())
	assert.Equal(t, "", req.PreviousWord())
}
