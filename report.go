package validation

// Meta carries the bookkeeping a validation run attaches to its Report.
type Meta struct {
	// ValidatorID identifies the validator that produced the report.
	ValidatorID string `json:"validatorId"`
	// ExecutionTimeMS is the measured run duration in milliseconds.
	// Zero means the run was not timed.
	ExecutionTimeMS int64 `json:"executionTime,omitempty"`
	// RulesApplied lists the identifiers of the rules applied, in order.
	RulesApplied []string `json:"rulesApplied,omitempty"`
}

// Report is the full validation result shape consumers exchange and persist.
// A valid report carries output data and no errors; an invalid one carries at
// least one error and no data. Warnings are non-blocking and may appear on
// either, segregated from errors.
type Report[T any] struct {
	Valid bool `json:"isValid"`
	// Data is the validated output. Present iff Valid.
	Data *T `json:"data,omitempty"`
	// Errors and Warnings keep their insertion order.
	Errors   []Error `json:"errors"`
	Warnings []Error `json:"warnings"`
	Meta     Meta    `json:"metadata"`
}

// ValidReport creates a Report for a successful validation of data.
func ValidReport[T any](data T, meta Meta) Report[T] {
	return Report[T]{
		Valid:    true,
		Data:     &data,
		Errors:   []Error{},
		Warnings: []Error{},
		Meta:     meta,
	}
}

// InvalidReport creates a Report for a failed validation.
func InvalidReport[T any](meta Meta, errs ...Error) Report[T] {
	return Report[T]{
		Valid:    false,
		Errors:   errs,
		Warnings: []Error{},
		Meta:     meta,
	}
}

// AddWarning appends a non-blocking warning to the report.
func (r *Report[T]) AddWarning(w Error) {
	r.Warnings = append(r.Warnings, w)
}
