package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate validates the installer configuration.
func Validate(config *Config) error {
	loader := NewLoader()
	return loader.Validate(config)
}

// ValidateExtensionName checks that name is usable as a single directory
// name inside the extensions directory.
func ValidateExtensionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("extension name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("extension name cannot be %q", name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("extension name must be a single path element: %s", name)
	}
	return nil
}
