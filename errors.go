package validation

import (
	"fmt"
)

// Conventional error codes. The vocabulary is open: validators are free to
// introduce their own codes, these exist only so common failures look the
// same across independent implementations.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeRequired         = "REQUIRED"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeOutOfRange       = "OUT_OF_RANGE"
)

// Error is the structured failure shape shared by every validation operation.
// Warnings reuse the same shape; a Report segregates them from errors.
type Error struct {
	// Code classifies the failure. Open vocabulary, see the Code* constants.
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
	// Field locates the failing value (field name or path), when known.
	Field string `json:"field,omitempty"`
	// Expected and Actual carry the values involved in the failure, when known.
	Expected any `json:"expected,omitempty"`
	Actual   any `json:"actual,omitempty"`
	// Rule references the rule that was violated, when one applies.
	Rule *Rule `json:"rule,omitempty"`
	// Context carries free-form detail for consumers.
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates an Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithField returns e with the field locator set.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// WithValues returns e with the expected and actual values set.
func (e *Error) WithValues(expected, actual any) *Error {
	e.Expected = expected
	e.Actual = actual
	return e
}

// WithRule returns e with a reference to the violated rule.
func (e *Error) WithRule(r *Rule) *Error {
	e.Rule = r
	return e
}

// WithContext returns e with one context entry added.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
