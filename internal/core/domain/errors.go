package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// Serving Errors
// ============================================================================

var (
	// ErrModelLoad marks a failure to load the artifact bundle. Fatal at
	// startup: a process that cannot load its model must not accept
	// prediction traffic.
	ErrModelLoad = errors.New("model artifact load failed")

	// ErrMetadataUnavailable degrades the metrics routes only; prediction
	// routes are unaffected.
	ErrMetadataUnavailable = errors.New("model metadata not available")

	// ErrModelNotReady is returned when a prediction is requested before a
	// successful load or after a failed one.
	ErrModelNotReady = errors.New("model is not ready to serve")

	// ErrInference marks a classifier failure on already-validated input.
	// Validation guarantees the vector shape, so hitting this is a
	// programming-contract violation, not a user error.
	ErrInference = errors.New("inference failed")
)

// ============================================================================
// Validation Errors
// ============================================================================

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error returns the human-readable reason for the rejection.
func (e FieldError) Error() string {
	return e.Reason
}

// ValidationError collects every field that failed validation for one
// request. Handlers surface it inline rather than as a server failure.
type ValidationError struct {
	Fields []FieldError
}

// Error joins the per-field reasons into one message, mirroring how the
// form surface reports them.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	reasons := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		reasons[i] = f.Reason
	}
	return strings.Join(reasons, ", ")
}

// Has reports whether the named field is among the failures.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NewFieldError builds a FieldError with a formatted reason.
func NewFieldError(field string, value interface{}, format string, args ...interface{}) FieldError {
	return FieldError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Value:  value,
	}
}
