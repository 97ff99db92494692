package installer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tacogips/lox-syntax-install/internal/debug"
)

// Prompter is the console seam used by the selection and confirmation loops.
type Prompter interface {
	// Ask shows message and returns one line of user input.
	Ask(message string) (string, error)
	// Notify shows an informational line.
	Notify(message string)
}

// Confirmer decides whether an existing installation at dest may be replaced.
type Confirmer func(dest string) (bool, error)

const (
	selectMessage  = "Select OS"
	confirmMessage = "Overwrite the existing installation? [y/n]"

	// MsgRetriesExceeded is reported when the OS menu runs out of attempts.
	MsgRetriesExceeded = "retry attempts exceeded"
)

var errNotANumber = errors.New("invalid input, enter a number")

// ParseSelection parses a 1-based menu choice and returns the zero-based index.
func ParseSelection(input string, count int) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errNotANumber
	}
	if num < 1 || num > count {
		return 0, fmt.Errorf("invalid input, enter a number in the range 1 to %d", count)
	}
	return num - 1, nil
}

// ParseConfirmation accepts y, yes, n and no in any case.
func ParseConfirmation(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.New("invalid input, enter y or n")
	}
}

// SelectTarget shows the OS menu and returns the zero-based index of the
// chosen target. Invalid answers are reported and re-asked up to maxAttempts
// times in total; after that a SelectionExhausted error is returned.
func SelectTarget(p Prompter, targets []Target, maxAttempts int) (int, error) {
	if len(targets) == 0 {
		return 0, newInstallError(InvalidOptions, "no platforms to choose from", "", nil)
	}
	if maxAttempts < 1 {
		return 0, newInstallError(InvalidOptions, "max attempts must be at least 1", "", nil)
	}

	current, known := CurrentPlatform()

	p.Notify("Type the corresponding number to choose Operating System:")
	for i, t := range targets {
		line := fmt.Sprintf("   %d. %s", i+1, t.Platform)
		if known && t.Platform == current {
			line += " (detected)"
		}
		p.Notify(line)
	}
	p.Notify("")

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		answer, err := p.Ask(selectMessage)
		if err != nil {
			return 0, newInstallError(PromptFailed, "failed to read OS selection", "", err)
		}

		idx, err := ParseSelection(answer, len(targets))
		if err != nil {
			debug.Debug("[installer] Rejected selection %q (attempt %d/%d)", answer, attempt, maxAttempts)
			p.Notify(err.Error())
			continue
		}

		debug.Debug("[installer] Selected %s", targets[idx].Platform)
		return idx, nil
	}

	return 0, newInstallError(SelectionExhausted, MsgRetriesExceeded, "", nil)
}

// ConfirmOverwrite asks whether the installation at dest may be replaced.
// Running out of attempts counts as a decline.
func ConfirmOverwrite(p Prompter, dest string, maxAttempts int) (bool, error) {
	p.Notify(fmt.Sprintf("An installation already exists at %s", dest))

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		answer, err := p.Ask(confirmMessage)
		if err != nil {
			return false, newInstallError(PromptFailed, "failed to read overwrite confirmation", dest, err)
		}

		ok, err := ParseConfirmation(answer)
		if err != nil {
			debug.Debug("[installer] Rejected confirmation %q (attempt %d/%d)", answer, attempt, maxAttempts)
			p.Notify(err.Error())
			continue
		}
		return ok, nil
	}

	p.Notify(MsgRetriesExceeded + ", keeping the existing installation")
	return false, nil
}

// PromptConfirmer adapts ConfirmOverwrite to a Confirmer.
func PromptConfirmer(p Prompter, maxAttempts int) Confirmer {
	return func(dest string) (bool, error) {
		return ConfirmOverwrite(p, dest, maxAttempts)
	}
}
