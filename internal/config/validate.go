package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thoreinstein/munconf/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a version other than 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidOutput indicates an output format other than text or json.
	ErrInvalidOutput = errors.New("output must be text or json")

	// ErrNegativeDuration indicates a duration below zero.
	ErrNegativeDuration = errors.New("duration must not be negative")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or one error per offending field.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{Field: "version", Value: strconv.Itoa(cfg.Version), Err: ErrUnsupportedVersion})
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		errs = append(errs, &FieldError{Field: "output", Value: cfg.Output, Err: ErrInvalidOutput})
	}

	if cfg.WatchDebounce < 0 {
		errs = append(errs, &FieldError{Field: "watch_debounce", Value: cfg.WatchDebounce.String(), Err: ErrNegativeDuration})
	}

	if err := validatePath(cfg.CatalogFile); err != nil {
		errs = append(errs, &FieldError{Field: "catalog_file", Value: cfg.CatalogFile, Err: err})
	}
	if err := validatePath(cfg.FAQDir); err != nil {
		errs = append(errs, &FieldError{Field: "faq_dir", Value: cfg.FAQDir, Err: err})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths mean "use default"
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError ties a validation failure to the config key that caused it.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
