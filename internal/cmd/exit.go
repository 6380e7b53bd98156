package cmd

import (
	"errors"
)

// Exit codes
const (
	ExitFound    = 0
	ExitNotFound = 1
	ExitFailure  = 2
)

// ErrNotFound is returned when the search finished without a match
var ErrNotFound = errors.New("file not found")

// reportedError marks an error the command already logged
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func reported(err error) error {
	return &reportedError{err: err}
}

// IsReported reports whether err was already written to the user
func IsReported(err error) bool {
	var target *reportedError
	return errors.As(err, &target)
}

// ExitCode maps the result of executing the root command to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitFound
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}
