package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile decodes a YAML (or JSON) file into target.
//
// An empty path is not an error: the target is left untouched.
func LoadFile(path string, target any) error {
	if target == nil {
		return errors.New("config target is required")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Load resolves configuration in order: existing values, file, environment.
func Load(path string, target any) error {
	if err := LoadFile(path, target); err != nil {
		return err
	}
	return ParseEnv(target)
}
