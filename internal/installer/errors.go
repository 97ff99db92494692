package installer

import (
	"errors"
	"fmt"
)

// InstallErrorType categorizes installer errors.
type InstallErrorType int

const (
	// InvalidOptions indicates the caller passed inconsistent options.
	InvalidOptions InstallErrorType = iota
	// SelectionExhausted indicates the OS menu ran out of attempts.
	SelectionExhausted
	// PreconditionFailed indicates a missing or non-directory source or destination.
	PreconditionFailed
	// PromptFailed indicates input could not be read at all.
	PromptFailed
	// RemoveFailed indicates the existing installation could not be removed.
	RemoveFailed
	// CopyFailed indicates the recursive copy failed part way.
	CopyFailed
)

// String returns a short name for the error type.
func (t InstallErrorType) String() string {
	switch t {
	case InvalidOptions:
		return "invalid options"
	case SelectionExhausted:
		return "selection exhausted"
	case PreconditionFailed:
		return "precondition failed"
	case PromptFailed:
		return "prompt failed"
	case RemoveFailed:
		return "remove failed"
	case CopyFailed:
		return "copy failed"
	default:
		return "unknown"
	}
}

// InstallError represents installer-specific errors.
type InstallError struct {
	// Type categorizes the error.
	Type InstallErrorType
	// Message is the error message.
	Message string
	// Path is the filesystem path related to the error (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *InstallError) Unwrap() error {
	return e.Cause
}

// newInstallError creates a new InstallError.
func newInstallError(typ InstallErrorType, message, path string, cause error) *InstallError {
	return &InstallError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// IsType reports whether err is, or wraps, an InstallError of the given type.
func IsType(err error, typ InstallErrorType) bool {
	var ie *InstallError
	return errors.As(err, &ie) && ie.Type == typ
}
