package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/tacogips/lox-syntax-install/internal/installer"
)

// newPrompter returns a survey-backed prompter when in is an interactive
// terminal and a plain line reader otherwise.
func newPrompter(in io.Reader, out io.Writer) installer.Prompter {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		if w, ok := out.(*os.File); ok {
			return &surveyPrompter{in: f, out: w}
		}
	}
	return newLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// surveyPrompter asks questions with survey's line editor.
type surveyPrompter struct {
	in  *os.File
	out *os.File
}

// Ask prompts for a single line of input.
func (p *surveyPrompter) Ask(message string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message + ":",
	}
	if err := survey.AskOne(prompt, &answer, survey.WithStdio(p.in, p.out, p.out)); err != nil {
		return "", err
	}
	return answer, nil
}

// Notify prints one line.
func (p *surveyPrompter) Notify(message string) {
	fmt.Fprintln(p.out, message)
}

// linePrompter reads answers line by line, for piped input.
type linePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{r: bufio.NewReader(in), out: out}
}

// Ask prints message and reads one line. A final line without a newline
// is accepted; reading past the end of input returns io.EOF. Piped input is
// not echoed, so the prompt line is always terminated here.
func (p *linePrompter) Ask(message string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", message)

	line, err := p.r.ReadString('\n')
	fmt.Fprintln(p.out)
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Notify prints one line.
func (p *linePrompter) Notify(message string) {
	fmt.Fprintln(p.out, message)
}
