package model

import (
	"errors"
	"fmt"
)

// ExitError represents an exit status that should reach main instead of
// terminating the program in place. It lets the controller report the exit
// code while deferred cleanup (the instance lock) still runs.
type ExitError struct {
	Code ExitCode
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %v", e.Code.String(), e.Err)
}

// Unwrap exposes the underlying error.
func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewExitError constructs an ExitError with the provided code and cause.
func NewExitError(code ExitCode, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFromError extracts an ExitCode from the provided error. A nil error
// is NoError. If the error is an ExitError or a bare ExitCode, its code is
// returned. Otherwise UnknownError is returned together with the original
// error for logging.
func ExitCodeFromError(err error) (ExitCode, error) {
	if err == nil {
		return NoError, nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.Err
	}
	var code ExitCode
	if errors.As(err, &code) {
		return code, nil
	}
	return UnknownError, err
}
