package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// Error kinds shared by every layer. Concrete errors are marked with one of these
// so handlers can classify them with Is / Kind.
var (
	ErrValidation   = errors.New("kind: validation error")
	ErrNotFound     = errors.New("kind: not found")
	ErrForbidden    = errors.New("kind: forbidden")
	ErrInvalidState = errors.New("kind: invalid state")

	// specialization of ErrInvalidState; Sentinel callers mark both
	ErrDuplicateRequest = errors.New("kind: duplicate request")
)

// Sentinel defines a new error marked with every given kind. The outer stack
// layer keeps the sentinel's own identity distinct from the kinds it carries,
// so Is(err, sentinel) does not match unrelated errors of the same kind.
func Sentinel(msg string, kinds ...error) error {
	err := errors.New(msg)
	for _, k := range kinds {
		err = Mark(err, k)
	}
	return cr.WithStackDepth(err, 1)
}

// Operation errors
var (
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
