package script

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/taku-sh/taku/internal/terrors"
)

// shimTemplate is the wrapper installed into the bin directory. It pins
// the store root via TAKU_SCRIPTS so the shim keeps working from any
// directory, then hands over to taku run.
const shimTemplate = `#!/usr/bin/env bash
export TAKU_SCRIPTS="%s"
exec taku run "%s" "$@"
`

// InstallResult describes the outcome of installing one script.
type InstallResult struct {
	Name    string
	Target  string
	Skipped bool // an unrelated file already occupied the target
}

// UninstallResult describes the outcome of uninstalling one script.
type UninstallResult struct {
	Name   string
	Target string
	Found  bool
}

// Install writes a shim for the script into binDir. An existing target
// is never overwritten; the result reports it as skipped.
func (s *Store) Install(name, binDir string) (*InstallResult, error) {
	if !s.Exists(name) {
		return nil, terrors.NewNotFoundError(name, fmt.Sprintf("script '%s' not found", name))
	}

	if err := os.MkdirAll(binDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create bin directory: %w", err)
	}

	target := filepath.Join(binDir, name)
	if _, err := os.Stat(target); err == nil {
		return &InstallResult{Name: name, Target: target, Skipped: true}, nil
	}

	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts directory: %w", err)
	}

	shim := fmt.Sprintf(shimTemplate, root, name)
	if err := os.WriteFile(target, []byte(shim), 0755); err != nil {
		return nil, fmt.Errorf("failed to write shim for %s: %w", name, err)
	}

	return &InstallResult{Name: name, Target: target}, nil
}

// InstallAll installs shims for every script in the store.
func (s *Store) InstallAll(binDir string) ([]InstallResult, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	results := make([]InstallResult, 0, len(names))
	for _, name := range names {
		res, err := s.Install(name, binDir)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}

	return results, nil
}

// Uninstall removes a script's shim from binDir. A missing shim is
// reported, not an error.
func (s *Store) Uninstall(name, binDir string) (*UninstallResult, error) {
	target := filepath.Join(binDir, name)

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return &UninstallResult{Name: name, Target: target, Found: false}, nil
		}
		return nil, fmt.Errorf("failed to remove shim for %s: %w", name, err)
	}

	return &UninstallResult{Name: name, Target: target, Found: true}, nil
}

// UninstallAll removes the shims of every script in the store.
func (s *Store) UninstallAll(binDir string) ([]UninstallResult, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	results := make([]UninstallResult, 0, len(names))
	for _, name := range names {
		res, err := s.Uninstall(name, binDir)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}

	return results, nil
}
