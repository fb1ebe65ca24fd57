package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateFinite rejects NaN and infinite measurements.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidMeasurement, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidatePositive rejects measurements that are not strictly positive.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidMeasurement, "%s must be greater than zero, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative rejects negative measurements. Zero is accepted.
func ValidateNonNegative(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidMeasurement, "%s cannot be negative, got %g", name, v)
	}
	return nil
}

// ValidateProgram validates the name of an external viewer program.
//
// Validation rules:
//   - Name cannot be empty or only whitespace
//   - No null bytes or control characters
//   - No shell metacharacters (the program is executed directly, never via a shell)
func ValidateProgram(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "viewer program cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "viewer program contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, ";|&`$<>") {
		return New(ErrCodeInvalidInput, "viewer program contains shell metacharacters: %q", name)
	}

	return nil
}
