package installer

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tacogips/lox-syntax-install/internal/config"
)

// HomePlaceholder marks the user's home directory at the start of a path template.
const HomePlaceholder = "~"

// Platform is an operating system offered in the selection menu.
type Platform int

const (
	Windows Platform = iota
	Linux
	MacOS
)

// String returns the menu label for the platform.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "Windows"
	case Linux:
		return "Linux"
	case MacOS:
		return "macOS"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// CurrentPlatform returns the platform matching the running binary, if any.
func CurrentPlatform() (Platform, bool) {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) (Platform, bool) {
	switch goos {
	case "windows":
		return Windows, true
	case "linux":
		return Linux, true
	case "darwin":
		return MacOS, true
	default:
		return 0, false
	}
}

// Target pairs a platform with its extensions-directory template.
type Target struct {
	Platform Platform
	Template string
}

// TargetsFromConfig returns the menu targets in fixed order: Windows, Linux, macOS.
func TargetsFromConfig(cfg config.PlatformsConfig) []Target {
	return []Target{
		{Platform: Windows, Template: cfg.Windows},
		{Platform: Linux, Template: cfg.Linux},
		{Platform: MacOS, Template: cfg.MacOS},
	}
}

// ResolveTemplate expands a leading home placeholder against home and
// returns a cleaned absolute path. Only "~" and "~/..." are understood;
// "~user" forms are rejected.
func ResolveTemplate(template, home string) (string, error) {
	template = strings.TrimSpace(template)
	if template == "" {
		return "", newInstallError(PreconditionFailed, "extensions path template is empty", "", nil)
	}

	if !strings.HasPrefix(template, HomePlaceholder) {
		abs, err := filepath.Abs(filepath.FromSlash(template))
		if err != nil {
			return "", newInstallError(PreconditionFailed, "failed to resolve extensions path", template, err)
		}
		return abs, nil
	}

	if home == "" {
		return "", newInstallError(PreconditionFailed, "home directory could not be determined", template, nil)
	}

	rest := template[len(HomePlaceholder):]
	if rest == "" {
		return filepath.Clean(home), nil
	}
	if rest[0] != '/' && rest[0] != '\\' {
		return "", newInstallError(PreconditionFailed, "unsupported home placeholder in template", template, nil)
	}

	rest = strings.ReplaceAll(rest[1:], `\`, "/")
	return filepath.Join(home, filepath.FromSlash(rest)), nil
}
