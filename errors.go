package templates

import (
	"errors"
	"fmt"
)

// Sentinel errors. All use prefix "templates:"; match with errors.Is/errors.As.
var (
	ErrManifestRead    = errors.New("templates: cannot read package manifest")
	ErrUnknownCategory = errors.New("templates: unknown template category")
)

// ManifestReadError reports a manifest that is missing, unreadable or malformed.
// errors.Is(err, ErrManifestRead) holds for every ManifestReadError.
type ManifestReadError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("templates: manifest %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ManifestReadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrManifestRead.
func (e *ManifestReadError) Is(target error) bool { return target == ErrManifestRead }

var _ error = (*ManifestReadError)(nil)
