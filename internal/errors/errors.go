package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitUser covers invalid input, failed validation and bad configuration.
	ExitUser = 1
	// ExitSystem covers I/O and environment failures.
	ExitSystem = 2
)

var (
	// ErrNotFound indicates a file or directory that does not exist.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration or catalog validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrUnsupportedFormat indicates a record file extension with no decoder.
	ErrUnsupportedFormat = crdb.New("unsupported file format")

	// ErrValidationFailed indicates a record was checked and has violations.
	// Commands report the violations themselves before returning it.
	ErrValidationFailed = crdb.New("validation failed")

	// ErrUnknownCategory indicates a category filter outside the enumerated set.
	ErrUnknownCategory = crdb.New("unknown category")
)

// Helpers re-exported from cockroachdb/errors.
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	WithHint = crdb.WithHint
	Is       = crdb.Is
	As       = crdb.As
)

// ExitError attaches a process exit code and an optional suggestion to an error.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError wraps err with code and no suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError wraps err with ExitUser.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError wraps err with ExitSystem.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError wraps a configuration or catalog failure with ExitUser and
// points the user at the effective settings.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: munconf config show")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// CodeOf returns the exit code carried by err. Errors without an ExitError
// in their chain map to ExitSystem; nil maps to ExitSuccess.
func CodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// SuggestionOf returns the text to print under an error: the ExitError
// suggestion when there is one, otherwise any hints attached with WithHint.
func SuggestionOf(err error) string {
	var exitErr *ExitError
	if crdb.As(err, &exitErr) && exitErr.Suggestion != "" {
		return exitErr.Suggestion
	}
	return crdb.FlattenHints(err)
}

// Reported reports whether err only signals a failure whose details were
// already written to the output.
func Reported(err error) bool {
	return crdb.Is(err, ErrValidationFailed)
}
