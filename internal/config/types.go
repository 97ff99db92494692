package config

// Config represents the installer configuration.
type Config struct {
	// Extension describes what gets installed.
	Extension ExtensionConfig `toml:"extension"`
	// Platforms holds one extensions-directory template per operating system.
	Platforms PlatformsConfig `toml:"platforms"`
	// Prompt configures interactive prompting.
	Prompt PromptConfig `toml:"prompt"`
	// Output configuration for display.
	Output OutputConfig `toml:"output"`
}

// ExtensionConfig represents the bundled extension settings.
type ExtensionConfig struct {
	// Name is the directory name created inside the editor extensions directory.
	Name string `toml:"name"`
	// SourceDir is the bundled asset directory copied verbatim.
	SourceDir string `toml:"source_dir"`
}

// PlatformsConfig holds extensions-directory templates.
// A leading "~" is replaced by the user's home directory.
type PlatformsConfig struct {
	Windows string `toml:"windows"`
	Linux   string `toml:"linux"`
	MacOS   string `toml:"macos"`
}

// PromptConfig represents prompt settings.
type PromptConfig struct {
	// MaxAttempts bounds both the OS menu and the overwrite confirmation.
	MaxAttempts int `toml:"max_attempts"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `toml:"color"`
}
