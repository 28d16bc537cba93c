package jsonext

import (
	"errors"
	"fmt"
)

// ErrUnsupportedKind is returned when decoding JSON that is not a null, string
// or integer scalar.
var ErrUnsupportedKind = errors.New("unsupported json kind")

// Error is the error type used by the package.
// It wraps the original error and adds a message.
type Error struct {
	message string
	err     error
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.message, e.err.Error())
}

// Unwrap implements the errors.Wrapper interface.
func (e *Error) Unwrap() error {
	return e.err
}

func newError(message string, err error) error {
	var jsonextErr *Error
	if errors.As(err, &jsonextErr) {
		return err
	}
	return &Error{message: message, err: err}
}
