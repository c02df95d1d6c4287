package script

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// MetaFileName is the optional metadata sidecar next to a script.
const MetaFileName = "meta.toml"

// Meta holds script metadata from meta.toml.
type Meta struct {
	Description string   `koanf:"description"`
	Author      string   `koanf:"author"`
	Tags        []string `koanf:"tags"`
}

// Meta parses a script's meta.toml. A script without one yields an
// empty Meta, not an error.
func (s *Store) Meta(name string) (Meta, error) {
	var meta Meta

	data, err := os.ReadFile(filepath.Join(s.Dir(name), MetaFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return meta, fmt.Errorf("failed to read metadata for %s: %w", name, err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
		return meta, fmt.Errorf("failed to parse metadata for %s: %w", name, err)
	}

	if err := k.Unmarshal("", &meta); err != nil {
		return meta, fmt.Errorf("failed to decode metadata for %s: %w", name, err)
	}

	return meta, nil
}
