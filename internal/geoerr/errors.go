// Package geoerr defines the error kinds reported by the zone geometry engine.
//
// Every failure surfaced by the geo, sequence and clockboard packages is an
// *Error carrying one of two codes:
//   - InvalidInput: the caller supplied malformed arguments
//   - NumericDegeneracy: a computation produced NaN or Inf
//
// Errors are reported before any output is produced; there is no partial
// result on failure.
package geoerr

import (
	"errors"
	"fmt"
)

// Code categorizes engine errors.
type Code string

const (
	// InvalidInput indicates malformed coordinates, distances, segment counts
	// or sequence lengths.
	InvalidInput Code = "INVALID_INPUT"

	// NumericDegeneracy indicates a computation yielded NaN or Infinity.
	NumericDegeneracy Code = "NUMERIC_DEGENERACY"
)

// Error is a structured engine error.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Field names the offending input (e.g. "center.lat", "distances[2]").
	Field string

	// Message is a human-readable description.
	Message string

	// Details contains additional context.
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Invalid creates an InvalidInput error for field.
func Invalid(field, format string, args ...any) *Error {
	return &Error{
		Code:    InvalidInput,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Degenerate creates a NumericDegeneracy error for field.
func Degenerate(field, format string, args ...any) *Error {
	return &Error{
		Code:    NumericDegeneracy,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns e with key=value added to its details.
func (e *Error) WithDetail(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInput error.
func IsInvalidInput(err error) bool {
	return hasCode(err, InvalidInput)
}

// IsNumericDegeneracy reports whether err is (or wraps) a NumericDegeneracy error.
func IsNumericDegeneracy(err error) bool {
	return hasCode(err, NumericDegeneracy)
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

func hasCode(err error, code Code) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}
