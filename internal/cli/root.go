package cli

import (
	"os"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/spf13/cobra"

	"github.com/tacogips/lox-syntax-install/internal/debug"
	"github.com/tacogips/lox-syntax-install/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigPath string
	globalSourceDir  string
	globalDryRun     bool
)

// rootCmd represents the installer command
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lox-syntax-install",
		Short: "Install Lox syntax highlighting into VS Code",
		Long: `lox-syntax-install copies the bundled Lox syntax-highlighting extension
into your editor's per-user extensions directory.

The installer asks for your operating system, checks that the extensions
directory exists, and asks before replacing an existing installation.

Path templates, the extension name and the prompt retry budget can be
changed in $XDG_CONFIG_HOME/lox-syntax/config.toml.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.SetDebug(globalDebug)
			applyNoColor(globalNoColor)
		},
		RunE: runInstall,
	}

	cmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	cmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	cmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	cmd.Flags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)
	cmd.Flags().StringVar(&globalSourceDir, FlagSource, "", DescSource)
	cmd.Flags().BoolVar(&globalDryRun, FlagDryRun, false, DescDryRun)

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// applyNoColor propagates the color setting to every output channel.
func applyNoColor(disable bool) {
	globalNoColor = disable
	debug.SetNoColor(disable)
	core.DisableColor = disable
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := execute(rootCmd); code != 0 {
		os.Exit(code)
	}
}

// execute runs cmd and returns the process exit status. It is the only
// place that turns an error into a status.
func execute(cmd *cobra.Command) int {
	setOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := cmd.Execute(); err != nil {
		printError(err)
		return 1
	}
	return 0
}
