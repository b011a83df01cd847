package core

import (
	"errors"
	"fmt"
)

// ErrValidation marks malformed input. It is always raised locally,
// before any store call, so invalid requests never reach the backend.
var ErrValidation = errors.New("validation failed")

// ErrBlobDeleteFailed marks a delete that was aborted because the
// referenced blob could not be removed; the metadata row is untouched.
var ErrBlobDeleteFailed = errors.New("failed to delete stored file")

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
