// Package fault defines the error taxonomy shared by every stage of the chart
// pipeline. Each failure is exactly one of three kinds: the caller supplied a
// bad birth moment, a numeric stage produced a non-finite value, or a static
// reference table is defective. None of them is retryable.
package fault

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the typed errors below.
var (
	// ErrMalformedDate indicates a civil date that is not YYYY-MM-DD.
	ErrMalformedDate = errors.New("malformed date")
	// ErrMalformedTime indicates a civil time that is not HH:MM or HH:MM:SS.
	ErrMalformedTime = errors.New("malformed time")
	// ErrUnknownZone indicates a timezone that is neither an offset nor a known IANA name.
	ErrUnknownZone = errors.New("unknown timezone")
	// ErrOutOfRange indicates an instant outside the supported calendar range.
	ErrOutOfRange = errors.New("outside supported calendar range")
	// ErrNonFinite indicates a NaN or infinite intermediate value.
	ErrNonFinite = errors.New("non-finite value")
	// ErrTableGap indicates a reference table that is missing an entry.
	ErrTableGap = errors.New("reference table gap")
	// ErrDuplicateEntry indicates a reference table that lists an entry twice.
	ErrDuplicateEntry = errors.New("duplicate reference table entry")
)

// ValidationError reports a malformed or out-of-range birth moment.
type ValidationError struct {
	Field string // input field name, e.g. "date" or "timezone"
	Value string
	Err   error
}

// Error returns the field, offending value, and cause.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CalculationError reports a non-finite value produced while computing a
// body position. It aborts the whole chart.
type CalculationError struct {
	Body     string
	Quantity string // "longitude", "latitude", "distance" or "speed"
	Value    float64
	Err      error
}

// Error returns the body, quantity, and value that failed.
func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s %s = %v: %v", e.Body, e.Quantity, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel for use with errors.Is.
func (e *CalculationError) Unwrap() error {
	return e.Err
}

// ConsistencyError reports a defect in a static reference table. It signals
// a programming error, never a user-facing condition.
type ConsistencyError struct {
	Table  string
	Detail string
	Err    error
}

// Error returns the table name and a description of the defect.
func (e *ConsistencyError) Error() string {
	return e.Table + ": " + e.Detail + ": " + e.Err.Error()
}

// Unwrap returns the underlying sentinel for use with errors.Is.
func (e *ConsistencyError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
