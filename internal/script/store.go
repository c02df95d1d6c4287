// Package script manages the on-disk registry of named scripts. Each
// script lives in its own directory: <root>/<name>/<name> is the
// executable, with an optional meta.toml sidecar. Templates for new
// scripts live under <root>/.templates.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taku-sh/taku/internal/terrors"
)

// TemplatesDir is the directory under the store root that holds script
// templates. It starts with a dot so listings skip it.
const TemplatesDir = ".templates"

// Store is the script registry rooted at a single directory.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory. The directory
// does not have to exist yet; it is created on first write.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the directory that holds a script.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.root, name)
}

// Path returns the path of a script's executable file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name, name)
}

// Exists reports whether a script directory exists.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.Dir(name))
	return err == nil && info.IsDir()
}

// List returns the sorted names of all scripts in the store. Dot
// directories (templates among them) and stray files are skipped. A
// missing root means an empty store, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Complete returns the script names matching a prefix. This is the
// registry query behind `taku complete` and satisfies the completion
// engine's Registry interface.
func (s *Store) Complete(prefix string) ([]string, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	matches := []string{}
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}

	return matches, nil
}

// Content returns the script file's contents.
func (s *Store) Content(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return "", fmt.Errorf("failed to read script %s: %w", name, err)
	}
	return string(data), nil
}

// Remove deletes a script and everything in its directory.
func (s *Store) Remove(name string) error {
	if !s.Exists(name) {
		return terrors.NewNotFoundError(name, fmt.Sprintf("script '%s' not found", name))
	}

	if err := os.RemoveAll(s.Dir(name)); err != nil {
		return fmt.Errorf("failed to remove script %s: %w", name, err)
	}

	return nil
}

// ValidateName rejects names that cannot round-trip through the
// completion protocol or the filesystem layout. Registry output is
// split on whitespace, so whitespace in a name would corrupt it; path
// separators would escape the store root.
func ValidateName(name string) error {
	if name == "" {
		return terrors.NewValidationError("name", "script name is empty", nil)
	}
	if strings.ContainsAny(name, " \t\n") {
		return terrors.NewValidationError("name", fmt.Sprintf("script name '%s' contains whitespace", name), nil)
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.Contains(name, "/") {
		return terrors.NewValidationError("name", fmt.Sprintf("script name '%s' contains a path separator", name), nil)
	}
	if strings.HasPrefix(name, ".") {
		return terrors.NewValidationError("name", fmt.Sprintf("script name '%s' starts with a dot", name), nil)
	}
	return nil
}
