// Package errors carries the failure codes gfret reports on the command line
// and over HTTP.
//
// Measurement checks distinguish three cases. INVALID_MEASUREMENT rejects a
// scale, nut width or bridge spacing that is not a usable number.
// INVALID_COUNT rejects a fret count of zero or above the supported maximum.
// INVALID_GEOMETRY rejects measurements that are individually valid but
// describe no board, such as a bridge spacing wider than the nut by more
// than twice the scale length.
//
// Reading a board back from a rendered SVG fails with NO_METADATA when the
// document has no embedded description, and otherwise with MISSING_FIELD,
// MALFORMED_NUMBER or MALFORMED_HANDEDNESS naming the offending field.
//
// [IsValidation] groups the codes above together with the option codes
// (INVALID_FORMAT, INVALID_UNITS, INVALID_COLOR, INVALID_FONT and
// INVALID_INPUT); the server answers them with 400. FILE_NOT_FOUND maps to
// 404, UNSUPPORTED (no PNG converter installed) to 501 and INTERNAL_ERROR
// to 500.
//
//	err := errors.New(errors.ErrCodeInvalidGeometry, "bridge %.2f too wide for scale %.2f", b, s)
//	if errors.Is(err, errors.ErrCodeInvalidGeometry) {
//	    // reject the instrument
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidMeasurement Code = "INVALID_MEASUREMENT"
	ErrCodeInvalidCount       Code = "INVALID_COUNT"
	ErrCodeInvalidGeometry    Code = "INVALID_GEOMETRY"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidUnits       Code = "INVALID_UNITS"
	ErrCodeInvalidColor       Code = "INVALID_COLOR"
	ErrCodeInvalidFont        Code = "INVALID_FONT"

	// Metadata errors, raised when re-reading a rendered document
	ErrCodeNoMetadata          Code = "NO_METADATA"
	ErrCodeMissingField        Code = "MISSING_FIELD"
	ErrCodeMalformedNumber     Code = "MALFORMED_NUMBER"
	ErrCodeMalformedHandedness Code = "MALFORMED_HANDEDNESS"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err carries one of the validation codes.
// The HTTP API maps these to 400 responses.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidMeasurement, ErrCodeInvalidCount,
		ErrCodeInvalidGeometry, ErrCodeInvalidFormat, ErrCodeInvalidUnits,
		ErrCodeInvalidColor, ErrCodeInvalidFont,
		ErrCodeNoMetadata, ErrCodeMissingField, ErrCodeMalformedNumber,
		ErrCodeMalformedHandedness:
		return true
	}
	return false
}
