package installer

import (
	"io"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers Ask calls from a fixed list and records everything.
type scriptedPrompter struct {
	answers []string
	asked   []string
	notes   []string
}

func (s *scriptedPrompter) Ask(message string) (string, error) {
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Notify(message string) {
	s.notes = append(s.notes, message)
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

var sampleExtension = map[string]string{
	"package.json":                 `{"name": "lox-syntax", "contributes": {"languages": [{"id": "lox"}]}}`,
	"language-configuration.json":  `{"comments": {"lineComment": "//"}}`,
	"syntaxes/lox.tmLanguage.json": `{"scopeName": "source.lox"}`,
	"README.md":                    "# Lox syntax\n",
}

func writeTree(t *testing.T, fs afero.Fs, root string, files map[string]string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

// readTree returns every file under root keyed by slash-separated relative path.
func readTree(t *testing.T, fs afero.Fs, root string) map[string]string {
	t.Helper()
	files, err := ListFiles(fs, root)
	require.NoError(t, err)

	tree := make(map[string]string, len(files))
	for _, rel := range files {
		data, err := afero.ReadFile(fs, filepath.Join(root, filepath.FromSlash(rel)))
		require.NoError(t, err)
		tree[rel] = string(data)
	}
	return tree
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
