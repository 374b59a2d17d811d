package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaultConfig is the annotated starter file written by `scoutarrd -init`.
// It keeps ${VAR} references intact so secrets come from the environment
// rather than living in the file.
//
//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the annotated starter config to path, creating
// parent directories as needed.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// Write serializes the config as TOML to path. Unlike WriteDefault the
// output reflects the in-memory values, so any substituted secrets are
// written in the clear.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
