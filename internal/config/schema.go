package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/xeipuuv/gojsonschema"
)

// configSchema is the JSON Schema the config file must satisfy. Kept
// strict (additionalProperties: false) so typos in key names surface
// during validate instead of being silently ignored.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "taku configuration",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "scripts_dir": {
      "type": "string",
      "description": "Directory holding managed scripts"
    },
    "bin_dir": {
      "type": "string",
      "description": "Directory where install places shims"
    },
    "editor": {
      "type": "string",
      "description": "Editor command used by taku edit"
    }
  }
}`

// ValidationResult contains the results of config validation.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate checks a config file against the embedded schema.
func Validate(path string) (*ValidationResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("failed to parse config: %v", err)},
		}, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	docLoader := gojsonschema.NewGoLoader(k.Raw())

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid(), Errors: []string{}}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, desc.String())
	}

	return out, nil
}
