package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/taku-sh/taku/internal/terrors"
)

const defaultBody = `#!/usr/bin/env bash

echo "hello from %s"
`

// templateData is what a script template can reference.
type templateData struct {
	Name string
}

// Create adds a new script to the store. Without a template the script
// gets a minimal bash body; with one, the file under .templates is
// rendered with the script name available as {{ .Name }}.
func (s *Store) Create(name, templateName string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if s.Exists(name) {
		return terrors.NewAlreadyExistsError(name, fmt.Sprintf("the script %s already exists", name))
	}

	var body string
	if templateName == "" {
		body = fmt.Sprintf(defaultBody, name)
	} else {
		rendered, err := s.renderTemplate(templateName, name)
		if err != nil {
			return err
		}
		body = rendered
	}

	if err := os.MkdirAll(s.Dir(name), 0755); err != nil {
		return fmt.Errorf("failed to create script directory: %w", err)
	}

	if err := os.WriteFile(s.Path(name), []byte(body), 0755); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	return nil
}

// renderTemplate renders a script template with sprig's function map.
func (s *Store) renderTemplate(templateName, scriptName string) (string, error) {
	path := filepath.Join(s.root, TemplatesDir, templateName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", terrors.NewNotFoundError(templateName, fmt.Sprintf("template %s does not exist", templateName))
		}
		return "", fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Funcs(sprig.TxtFuncMap()).Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Name: scriptName}); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateName, err)
	}

	return buf.String(), nil
}

// Templates returns the sorted names of available script templates.
func (s *Store) Templates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, TemplatesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
