package validation

import (
	"github.com/codechu/flow-core-validation/core"
)

// Predicate decides whether validation applies to input. It must be free of
// required side effects.
type Predicate[T any] func(ctx Context, input T) (bool, error)

// Conditional is the conditional-application contract: validation gated on a
// predicate. When the predicate is false the input passes through unchanged
// as a success, which is why conditional validators are shape-preserving.
//
// Implementations need not literally call ShouldValidate from
// ValidateConditionally, but observable behavior must be identical to
// evaluating the predicate first.
type Conditional[T any] interface {
	// ID returns the stable identifier of the conditional validator.
	ID() string

	// Name returns the human-readable name.
	Name() string

	// ShouldValidate evaluates the predicate for input.
	ShouldValidate(ctx Context, input T) (bool, error)

	// ValidateConditionally validates input when the predicate holds and
	// passes it through unchanged otherwise.
	ValidateConditionally(ctx Context, input T) core.Result[T]
}

// When pairs pred with v into a Conditional.
//
// Example:
//
//	trimNonEmpty := validation.When("trim-non-empty", "Trim non-empty input",
//		func(_ validation.Context, s string) (bool, error) { return s != "", nil },
//		trimValidator,
//	)
func When[T any](id, name string, pred Predicate[T], v Validator[T, T]) Conditional[T] {
	return &conditional[T]{id: id, name: name, pred: pred, validator: v}
}

type conditional[T any] struct {
	id        string
	name      string
	pred      Predicate[T]
	validator Validator[T, T]
}

func (c *conditional[T]) ID() string   { return c.id }
func (c *conditional[T]) Name() string { return c.name }

func (c *conditional[T]) ShouldValidate(ctx Context, input T) (bool, error) {
	return c.pred(ctx, input)
}

func (c *conditional[T]) ValidateConditionally(ctx Context, input T) core.Result[T] {
	apply, err := c.pred(ctx, input)
	if err != nil {
		return core.Fail[T](err)
	}
	if !apply {
		return core.Ok(input)
	}
	return c.validator.Validate(ctx, input)
}
