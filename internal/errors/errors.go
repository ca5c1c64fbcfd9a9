// Package errors provides the error kinds surfaced by the paper-templates CLI
// and maps each kind to a process exit code.
package errors

import (
	"errors"
	"fmt"
)

// Kind represents the category of an error, which determines the CLI exit code.
type Kind int

const (
	// KindInvalidArgs represents invalid input arguments.
	// CLI exit code: 2
	KindInvalidArgs Kind = iota

	// KindNotFound represents a missing template directory or file.
	// CLI exit code: 3
	KindNotFound

	// KindManifest represents a package manifest that is missing or malformed.
	// CLI exit code: 4
	KindManifest

	// KindConfig represents an unreadable or unwritable configuration file.
	// CLI exit code: 5
	KindConfig

	// KindGeneral represents a general error that doesn't fit other categories.
	// CLI exit code: 1
	KindGeneral
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgs:
		return "InvalidArgs"
	case KindNotFound:
		return "NotFound"
	case KindManifest:
		return "Manifest"
	case KindConfig:
		return "Config"
	case KindGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindInvalidArgs:
		return 2
	case KindNotFound:
		return 3
	case KindManifest:
		return 4
	case KindConfig:
		return 5
	default:
		return 1
	}
}

// Error represents a structured error with kind, message, cause, and optional details.
type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	Details    map[string]any
	Suggestion string // Optional suggestion for resolving the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CLIExitCode returns the appropriate CLI exit code for this error.
func (e *Error) CLIExitCode() int {
	return e.Kind.ExitCode()
}

// WithDetails adds details to the error and returns it for chaining.
func (e *Error) WithDetails(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds a suggestion to the error and returns it for chaining.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// Constructor functions

// NotFound creates an error for missing template directories or files.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgs creates an error for invalid arguments.
func InvalidArgs(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgs, Message: fmt.Sprintf(format, args...)}
}

// Manifest creates an error for a missing or malformed package manifest.
func Manifest(format string, args ...any) *Error {
	return &Error{Kind: KindManifest, Message: fmt.Sprintf(format, args...)}
}

// General creates a general error.
func General(format string, args ...any) *Error {
	return &Error{Kind: KindGeneral, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a specific kind and message.
func Wrap(err error, kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// WrapManifest wraps a manifest read failure.
func WrapManifest(err error, format string, args ...any) *Error {
	return Wrap(err, KindManifest, format, args...)
}

// WrapConfig wraps a configuration failure.
func WrapConfig(err error, format string, args ...any) *Error {
	return Wrap(err, KindConfig, format, args...)
}

// GetKind extracts the Kind from an error chain, returning KindGeneral if
// no *Error is found.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneral
}

// GetCLIExitCode extracts the CLI exit code from an error.
func GetCLIExitCode(err error) int {
	return GetKind(err).ExitCode()
}

// Is returns true if the error is of the specified kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
