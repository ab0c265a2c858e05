package config

import (
	"errors"
	"fmt"
)

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoRoot is returned when the scan root is empty.
	ErrNoRoot = errors.New("no root specified: provide a directory to scan")

	// ErrInvalidLimit is returned when the rank limit is not positive.
	ErrInvalidLimit = errors.New("invalid limit: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyAllowlistEntry is returned when the allowlist contains an empty name.
	ErrEmptyAllowlistEntry = errors.New("invalid allowlist: empty macro name")

	// ErrAllowlistCase is the sentinel wrapped by AllowlistCaseError.
	ErrAllowlistCase = errors.New("invalid allowlist: names must be lower-case")
)

// AllowlistCaseError reports an allowlist entry that can never match,
// because macro names are lower-cased before they are compared.
type AllowlistCaseError struct {
	Name string
}

// Error implements error.
func (e *AllowlistCaseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrAllowlistCase, e.Name)
}

// Unwrap returns ErrAllowlistCase.
func (e *AllowlistCaseError) Unwrap() error {
	return ErrAllowlistCase
}
