// Package errors is the single errors import for munconf.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors,
// defines the sentinels commands and libraries test for, and carries process
// exit codes through [ExitError]:
//
//	if errors.Is(err, errors.ErrUnknownCategory) {
//	    // list the valid categories
//	}
//
// Exit codes are ExitSuccess (0), ExitUser (1) for bad input, failed
// validation or configuration, and ExitSystem (2) for I/O failures. Errors
// that carry no ExitError map to ExitSystem in [CodeOf].
package errors
