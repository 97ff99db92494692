package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output writers, replaced per command run.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Styles
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func setOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// styled renders text with style unless color is disabled
func styled(style lipgloss.Style, text string) string {
	if globalNoColor {
		return text
	}
	return style.Render(text)
}

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printMuted prints secondary detail lines
func printMuted(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, styled(mutedStyle, msg))
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", styled(successStyle, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", styled(warningStyle, "⚠"), msg)
}

// printError prints an error message to stderr. Errors are never suppressed.
func printError(err error) {
	fmt.Fprintf(stderr, "%s %v\n", styled(errorStyle, "Error:"), err)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", styled(headerStyle, "=== "+title+" ==="))
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
