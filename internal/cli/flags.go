package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagSource  = "source"
	FlagDryRun  = "dry-run"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescConfig  = "Path to config file (default $XDG_CONFIG_HOME/lox-syntax/config.toml)"
	DescSource  = "Extension source directory (overrides extension.source_dir)"
	DescDryRun  = "Show what would be installed without writing files"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
