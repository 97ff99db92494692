package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under XDG base directories.
	AppDirName = "lox-syntax"
	// ConfigFileName is the configuration file name.
	ConfigFileName = "config.toml"

	// DefaultExtensionName is the installed extension directory name.
	DefaultExtensionName = "lox-syntax"
	// DefaultSourceDir is the bundled asset directory, relative to the working directory.
	DefaultSourceDir = "lox-syntax"
	// DefaultExtensionsTemplate is the per-user VS Code extensions directory.
	// VS Code uses the same layout under the home directory on every platform.
	DefaultExtensionsTemplate = "~/.vscode/extensions"
	// DefaultMaxAttempts is the retry budget for each prompt.
	DefaultMaxAttempts = 10
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Extension: ExtensionConfig{
			Name:      DefaultExtensionName,
			SourceDir: DefaultSourceDir,
		},
		Platforms: PlatformsConfig{
			Windows: DefaultExtensionsTemplate,
			Linux:   DefaultExtensionsTemplate,
			MacOS:   DefaultExtensionsTemplate,
		},
		Prompt: PromptConfig{
			MaxAttempts: DefaultMaxAttempts,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/lox-syntax/config.toml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
