package integration

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fixtureDir returns the absolute path of a fixture extension.
func fixtureDir(t *testing.T, name string) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("../fixtures", name))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}
	return dir
}

// newHome creates a fake home directory with an empty VS Code extensions directory.
func newHome(t *testing.T) (home, extDir string) {
	t.Helper()
	home = t.TempDir()
	extDir = filepath.Join(home, ".vscode", "extensions")
	if err := os.MkdirAll(extDir, 0755); err != nil {
		t.Fatalf("failed to create extensions directory: %v", err)
	}
	return home, extDir
}

// snapshot maps every file under root (slash-separated, relative) to its content.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}
	return files
}

func equalTrees(t *testing.T, want, got map[string]string) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("file count mismatch: want %d, got %d (%v)", len(want), len(got), keys(got))
	}
	for path, content := range want {
		gotContent, ok := got[path]
		if !ok {
			t.Errorf("missing file %s", path)
			continue
		}
		if gotContent != content {
			t.Errorf("content mismatch for %s", path)
		}
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// consolePrompter feeds scripted lines the way piped stdin would.
type consolePrompter struct {
	r     *bufio.Reader
	notes []string
	asked int
}

func newConsolePrompter(input string) *consolePrompter {
	return &consolePrompter{r: bufio.NewReader(strings.NewReader(input))}
}

func (p *consolePrompter) Ask(message string) (string, error) {
	p.asked++
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *consolePrompter) Notify(message string) {
	p.notes = append(p.notes, message)
}
