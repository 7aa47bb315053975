package validation

import (
	"github.com/codechu/flow-core-validation/core"
)

// Validator is the single-unit validation contract. A validator consumes an
// input value and the validation Context and produces either a success with
// an output value or a failure with a structured *Error. Expected failure is
// a return value, never a panic.
//
// Input and output types are independent: a shape-preserving validator uses
// the same type for both. Side effects through the context (logging, shared
// data, history) are permitted but not required.
type Validator[In, Out any] interface {
	// ID returns the stable identifier of the validator.
	ID() string

	// Name returns the human-readable validator name.
	Name() string

	// Validate checks input and returns exactly one of success-with-output
	// or failure-with-error. Timeout enforcement is not the validator's
	// concern; see Options.TimeoutMS.
	Validate(ctx Context, input In) core.Result[Out]
}

// Describer is the optional capability of carrying a description.
// Validators, schemas, and pipelines may implement it independently.
type Describer interface {
	Description() string
}

// Func is the standalone function-typed validation signature. It lets plain
// functions participate wherever a validation step is expected.
type Func[In, Out any] func(ctx Context, input In) core.Result[Out]

// New adapts fn into a Validator with the given identity.
//
// Example:
//
//	trim := validation.New("trim", "Trim whitespace",
//		func(_ validation.Context, s string) core.Result[string] {
//			return core.Ok(strings.TrimSpace(s))
//		},
//	)
func New[In, Out any](id, name string, fn Func[In, Out]) Validator[In, Out] {
	return &funcValidator[In, Out]{id: id, name: name, fn: fn}
}

// Describe wraps v with the Describer capability.
func Describe[In, Out any](v Validator[In, Out], description string) Validator[In, Out] {
	return &describedValidator[In, Out]{Validator: v, description: description}
}

type funcValidator[In, Out any] struct {
	id   string
	name string
	fn   Func[In, Out]
}

func (v *funcValidator[In, Out]) ID() string   { return v.id }
func (v *funcValidator[In, Out]) Name() string { return v.name }

func (v *funcValidator[In, Out]) Validate(ctx Context, input In) core.Result[Out] {
	return v.fn(ctx, input)
}

type describedValidator[In, Out any] struct {
	Validator[In, Out]
	description string
}

func (v *describedValidator[In, Out]) Description() string { return v.description }
