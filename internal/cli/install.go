package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/tacogips/lox-syntax-install/internal/config"
	"github.com/tacogips/lox-syntax-install/internal/debug"
	"github.com/tacogips/lox-syntax-install/internal/installer"
)

func runInstall(cmd *cobra.Command, args []string) error {
	debug.DebugSection("[cli] Install start")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Output.Color {
		applyNoColor(true)
	}

	sourceDir := cfg.Extension.SourceDir
	if globalSourceDir != "" {
		sourceDir = globalSourceDir
	}
	sourceDir, err = resolveSourceDir(sourceDir)
	if err != nil {
		return err
	}
	debug.DebugValue("[cli] Source directory", sourceDir)

	printHeader("Lox syntax highlighting installer")

	prompter := newPrompter(cmd.InOrStdin(), stdout)
	targets := installer.TargetsFromConfig(cfg.Platforms)

	idx, err := installer.SelectTarget(prompter, targets, cfg.Prompt.MaxAttempts)
	if err != nil {
		return err
	}
	target := targets[idx]
	debug.DebugValue("[cli] Target", fmt.Sprintf("%s (%s)", target.Platform, target.Template))

	result, err := installer.New(nil).Install(cmd.Context(), installer.Options{
		Target:        target,
		Home:          xdg.Home,
		SourceDir:     sourceDir,
		ExtensionName: cfg.Extension.Name,
		Overwrite:     installer.OverwriteAsk,
		Confirm:       installer.PromptConfirmer(prompter, cfg.Prompt.MaxAttempts),
		DryRun:        globalDryRun,
	})
	if err != nil {
		return err
	}

	reportResult(cfg.Extension.Name, result)
	return nil
}

// loadConfig reads --config when given (it must exist) or the default
// config file when present, then validates the result.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if globalConfigPath != "" {
		cfg, err = loader.Load(globalConfigPath)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return nil, err
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSourceDir expands dir and, for relative paths that do not exist
// under the working directory, falls back to the directory holding the
// executable so a bundled asset directory is found wherever the installer
// is run from.
func resolveSourceDir(dir string) (string, error) {
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(dir) || strings.HasPrefix(dir, "~") {
		return expanded, nil
	}
	if _, err := os.Stat(expanded); err == nil {
		return expanded, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return expanded, nil
	}
	bundled := filepath.Join(filepath.Dir(exe), dir)
	if _, err := os.Stat(bundled); err == nil {
		debug.Debug("[cli] Using source directory next to executable: %s", bundled)
		return bundled, nil
	}
	return expanded, nil
}

func reportResult(name string, result *installer.Result) {
	switch result.Status {
	case installer.StatusDeclined:
		// The user already answered; nothing else to say.
		return

	case installer.StatusDryRun:
		printInfo("[DRY RUN] Would install:")
		printInfo(fmt.Sprintf("  Source:      %s", result.Source))
		printInfo(fmt.Sprintf("  Destination: %s", result.Destination))
		if result.Existed {
			printWarning("An installation already exists and would need confirmation to be replaced")
		}
		printInfo("")
		printInfo(fmt.Sprintf("[DRY RUN] Files to copy (%d):", len(result.Files)))
		for _, file := range result.Files {
			printMuted(fmt.Sprintf("  - %s", file))
		}
		printInfo("")
		printInfo("No files written (dry run).")

	default:
		verb := "Installed"
		if result.Status == installer.StatusReplaced {
			verb = "Reinstalled"
		}
		printSuccess(fmt.Sprintf("%s %s to %s", verb, name, result.Destination))
		printMuted(fmt.Sprintf("  %d files, %d directories, %s",
			result.FilesCopied, result.DirsCreated, formatBytes(result.BytesCopied)))
		printInfo("Restart your editor to load the extension.")
	}
}
