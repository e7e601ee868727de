package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config back to the file it was loaded from. A config built
// from defaults only is written to the user's config directory and Path is
// updated to match.
func (c *Config) Save() error {
	if c.Path == "" {
		c.Path = filepath.Join(ConfigDir(), "config.yaml")
	}
	return c.SaveTo(c.Path)
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
