package validationtest

import (
	validation "github.com/codechu/flow-core-validation"
	"github.com/codechu/flow-core-validation/core"
)

// Spy wraps a validator and records how it is invoked. Spy is not safe for
// concurrent use; tests drive it from a single goroutine.
type Spy[In, Out any] struct {
	wrapped validation.Validator[In, Out]

	// Calls is the number of times Validate has been invoked.
	Calls int
	// LastInput is the input of the most recent invocation.
	LastInput In
}

// NewSpy wraps v in a Spy.
func NewSpy[In, Out any](v validation.Validator[In, Out]) *Spy[In, Out] {
	return &Spy[In, Out]{wrapped: v}
}

func (s *Spy[In, Out]) ID() string   { return s.wrapped.ID() }
func (s *Spy[In, Out]) Name() string { return s.wrapped.Name() }

func (s *Spy[In, Out]) Validate(ctx validation.Context, input In) core.Result[Out] {
	s.Calls++
	s.LastInput = input
	return s.wrapped.Validate(ctx, input)
}
