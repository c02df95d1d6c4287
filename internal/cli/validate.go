package cli

import (
	"fmt"

	"github.com/taku-sh/taku/internal/config"
)

// Validate checks a config file against the schema and reports the
// findings. With no argument the user's own config file is checked.
func Validate(configPath string) error {
	if configPath == "" {
		path, err := config.Find()
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Println("No config file found; taku is running on defaults.")
			return nil
		}
		configPath = path
	}

	result, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Printf("✓ %s is valid\n", configPath)
		return nil
	}

	fmt.Printf("✗ %s is invalid:\n", configPath)
	for _, msg := range result.Errors {
		fmt.Printf("  - %s\n", msg)
	}

	return fmt.Errorf("config validation failed")
}
