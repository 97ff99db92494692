package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := newLinePrompter(strings.NewReader("2\r\n yes \nlast"), &out)

	answer, err := p.Ask("Select OS")
	require.NoError(t, err)
	assert.Equal(t, "2", answer)

	answer, err = p.Ask("Overwrite?")
	require.NoError(t, err)
	assert.Equal(t, " yes ", answer, "trimming is left to the parser")

	answer, err = p.Ask("Again")
	require.NoError(t, err)
	assert.Equal(t, "last", answer, "final line without newline is accepted")

	_, err = p.Ask("Past the end")
	assert.True(t, errors.Is(err, io.EOF))

	p.Notify("done")
	assert.Contains(t, out.String(), "Select OS: \n")
	assert.True(t, strings.HasSuffix(out.String(), "done\n"))
}

func TestNewPrompter_NonTerminal(t *testing.T) {
	p := newPrompter(strings.NewReader(""), io.Discard)
	_, ok := p.(*linePrompter)
	assert.True(t, ok, "non-file input must use the line prompter")

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	p = newPrompter(f, io.Discard)
	_, ok = p.(*linePrompter)
	assert.True(t, ok, "regular files are not terminals")
}

func TestResolveSourceDir(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveSourceDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lox-syntax"), 0755))

	got, err = resolveSourceDir("lox-syntax")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "lox-syntax", filepath.Base(got))

	// A relative path that exists nowhere still resolves, so the
	// installer can report it.
	got, err = resolveSourceDir("missing-assets")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
