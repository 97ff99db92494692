package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/tacogips/lox-syntax-install/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for TOML configuration files.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
// Keys missing from the file keep their default values; unknown keys are rejected.
func (l *FileLoader) Load(path string) (*Config, error) {
	debug.Debug("[config] Loading configuration: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "unknown configuration keys", errors.New(strict.String()))
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
	}

	debug.Debug("[config] Configuration loaded: %s", path)
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if err := ValidateExtensionName(config.Extension.Name); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "extension.name", err.Error())
	}
	if strings.TrimSpace(config.Extension.SourceDir) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "extension.source_dir", "source directory is required")
	}
	if config.Prompt.MaxAttempts < 1 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "prompt.max_attempts", "max attempts must be at least 1")
	}
	templates := []struct {
		field string
		value string
	}{
		{"platforms.windows", config.Platforms.Windows},
		{"platforms.linux", config.Platforms.Linux},
		{"platforms.macos", config.Platforms.MacOS},
	}
	for _, tmpl := range templates {
		if strings.TrimSpace(tmpl.value) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", tmpl.field, "extensions path template is required")
		}
	}
	return nil
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		if xdg.Home == "" {
			return "", fmt.Errorf("failed to get home directory")
		}
		if len(path) == 1 {
			return xdg.Home, nil
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(xdg.Home, path[2:]), nil
		}
	}

	// Make absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
