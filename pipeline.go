package validation

import (
	"github.com/codechu/flow-core-validation/core"
)

// PipelineInfo describes a pipeline's composition at the moment of the call.
type PipelineInfo struct {
	ValidatorCount int      `json:"validatorCount"`
	ValidatorIDs   []string `json:"validatorIds"`
}

// Pipeline is the composition contract: an ordered composition of validators
// where each stage's output feeds the next stage's input.
//
// Invariants every implementation must hold:
//   - execution order equals attachment order;
//   - the first failing stage's failure is returned unchanged and no later
//     stage runs; this is tighter than any collect-all-errors mode an engine
//     may offer elsewhere;
//   - Info reflects the pipeline's current composition, not a snapshot taken
//     at construction time.
type Pipeline[In, Out any] interface {
	// ValidatePipeline runs the attached validators in attachment order.
	ValidatePipeline(ctx Context, input In) core.Result[Out]

	// Info returns the current validator count and identifiers in
	// attachment order.
	Info() PipelineInfo
}

// Chain is the reference Pipeline implementation. A Chain[In, Out] runs its
// stages in attachment order and short-circuits on the first failure.
//
// Shape-preserving validators are attached with the Add method, which mutates
// the chain in place. Attaching a validator with a different output type
// reshapes the chain's type and therefore cannot be a method in Go; use the
// package-level Append function, which returns the reshaped chain.
type Chain[In, Out any] struct {
	ids  []string
	exec func(Context, In) core.Result[Out]
}

// NewChain creates an empty shape-preserving chain. Validating against an
// empty chain succeeds with the input unchanged.
func NewChain[T any]() *Chain[T, T] {
	return &Chain[T, T]{
		exec: func(_ Context, input T) core.Result[T] {
			return core.Ok(input)
		},
	}
}

// ChainOf creates a chain whose first stage is v.
func ChainOf[In, Out any](v Validator[In, Out]) *Chain[In, Out] {
	return &Chain[In, Out]{
		ids:  []string{v.ID()},
		exec: v.Validate,
	}
}

// Add appends a shape-preserving validator and returns the same chain for
// chaining calls.
func (c *Chain[In, Out]) Add(v Validator[Out, Out]) *Chain[In, Out] {
	prev := c.exec
	c.exec = func(ctx Context, input In) core.Result[Out] {
		res := prev(ctx, input)
		out, ok := res.Value()
		if !ok {
			return res
		}
		return v.Validate(ctx, out)
	}
	c.ids = append(c.ids, v.ID())
	return c
}

// Append attaches v to c, reshaping the pipeline's output type to v's output
// type. The returned chain owns the combined composition; c itself is left
// unchanged and should not be mutated afterwards.
func Append[In, Mid, Out any](c *Chain[In, Mid], v Validator[Mid, Out]) *Chain[In, Out] {
	ids := make([]string, len(c.ids), len(c.ids)+1)
	copy(ids, c.ids)

	prev := c.exec
	return &Chain[In, Out]{
		ids: append(ids, v.ID()),
		exec: func(ctx Context, input In) core.Result[Out] {
			res := prev(ctx, input)
			mid, ok := res.Value()
			if !ok {
				// Retyping the wrapper; the failure itself propagates as-is.
				return core.Fail[Out](res.Err())
			}
			return v.Validate(ctx, mid)
		},
	}
}

// ValidatePipeline implements Pipeline.
func (c *Chain[In, Out]) ValidatePipeline(ctx Context, input In) core.Result[Out] {
	return c.exec(ctx, input)
}

// Info implements Pipeline. The returned identifier slice is a copy.
func (c *Chain[In, Out]) Info() PipelineInfo {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return PipelineInfo{
		ValidatorCount: len(c.ids),
		ValidatorIDs:   ids,
	}
}
