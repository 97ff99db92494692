package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/lox-syntax-install/internal/config"
	"github.com/tacogips/lox-syntax-install/internal/installer"
)

// runFlow performs the interactive flow: OS menu, then install with prompted confirmation.
func runFlow(t *testing.T, input, home, source string) (*installer.Result, *consolePrompter, error) {
	t.Helper()
	cfg := config.DefaultConfig()
	p := newConsolePrompter(input)

	targets := installer.TargetsFromConfig(cfg.Platforms)
	idx, err := installer.SelectTarget(p, targets, cfg.Prompt.MaxAttempts)
	if err != nil {
		return nil, p, err
	}

	result, err := installer.New(nil).Install(context.Background(), installer.Options{
		Target:        targets[idx],
		Home:          home,
		SourceDir:     source,
		ExtensionName: cfg.Extension.Name,
		Overwrite:     installer.OverwriteAsk,
		Confirm:       installer.PromptConfirmer(p, cfg.Prompt.MaxAttempts),
	})
	return result, p, err
}

// TestInstall_FreshInstallMirrorsSource installs into an empty extensions directory.
func TestInstall_FreshInstallMirrorsSource(t *testing.T) {
	source := fixtureDir(t, "lox-syntax")

	for _, choice := range []string{"1", "2", "3"} {
		t.Run("os "+choice, func(t *testing.T) {
			home, extDir := newHome(t)

			result, _, err := runFlow(t, choice+"\n", home, source)
			if err != nil {
				t.Fatalf("install failed: %v", err)
			}
			if result.Status != installer.StatusInstalled {
				t.Errorf("expected installed, got %s", result.Status)
			}

			dest := filepath.Join(extDir, "lox-syntax")
			if result.Destination != dest {
				t.Errorf("expected destination %s, got %s", dest, result.Destination)
			}
			equalTrees(t, snapshot(t, source), snapshot(t, dest))
		})
	}
}

// TestInstall_ReplaceExisting confirms overwrite of an older installation.
func TestInstall_ReplaceExisting(t *testing.T) {
	source := fixtureDir(t, "lox-syntax")
	home, extDir := newHome(t)
	dest := filepath.Join(extDir, "lox-syntax")

	if err := os.MkdirAll(filepath.Join(dest, "old"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dest, "old", "grammar.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	result, p, err := runFlow(t, "2\nyes\n", home, source)
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if result.Status != installer.StatusReplaced {
		t.Errorf("expected replaced, got %s", result.Status)
	}
	if p.asked != 2 {
		t.Errorf("expected 2 prompts, got %d", p.asked)
	}
	if _, err := os.Stat(filepath.Join(dest, "old")); !os.IsNotExist(err) {
		t.Errorf("stale directory should be removed, stat err: %v", err)
	}
	equalTrees(t, snapshot(t, source), snapshot(t, dest))
}

// TestInstall_DeclineKeepsExisting leaves the installed files alone.
func TestInstall_DeclineKeepsExisting(t *testing.T) {
	source := fixtureDir(t, "lox-syntax")

	for _, input := range []string{"2\nn\n", "2\n" + strings.Repeat("later\n", 10)} {
		home, extDir := newHome(t)
		dest := filepath.Join(extDir, "lox-syntax")
		if err := os.MkdirAll(dest, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dest, "package.json"), []byte(`{"version": "0.0.1"}`), 0644); err != nil {
			t.Fatal(err)
		}
		before := snapshot(t, dest)

		result, _, err := runFlow(t, input, home, source)
		if err != nil {
			t.Fatalf("install failed: %v", err)
		}
		if result.Status != installer.StatusDeclined {
			t.Errorf("expected declined, got %s", result.Status)
		}
		equalTrees(t, before, snapshot(t, dest))
	}
}

// TestInstall_SelectionExhausted never touches the filesystem.
func TestInstall_SelectionExhausted(t *testing.T) {
	source := fixtureDir(t, "lox-syntax")
	home, extDir := newHome(t)

	_, p, err := runFlow(t, strings.Repeat("7\n", 10)+"2\n", home, source)
	if !installer.IsType(err, installer.SelectionExhausted) {
		t.Fatalf("expected selection exhausted, got %v", err)
	}
	if p.asked != config.DefaultMaxAttempts {
		t.Errorf("expected %d prompts, got %d", config.DefaultMaxAttempts, p.asked)
	}

	entries, err := os.ReadDir(extDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("extensions directory should stay empty, found %d entries", len(entries))
	}
}

// TestInstall_MissingExtensionsDirectory aborts before copying.
func TestInstall_MissingExtensionsDirectory(t *testing.T) {
	source := fixtureDir(t, "lox-syntax")
	home := t.TempDir()

	_, _, err := runFlow(t, "2\n", home, source)
	if !installer.IsType(err, installer.PreconditionFailed) {
		t.Fatalf("expected precondition failure, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".vscode")); !os.IsNotExist(err) {
		t.Errorf("installer must not create the extensions directory")
	}
}
