package async

import (
	"context"

	validation "github.com/codechu/flow-core-validation"
	"github.com/codechu/flow-core-validation/core"
)

// Validate runs v against input in its own goroutine and returns a Future for
// its result. The Future fails only if ctx is canceled before v starts;
// validation failure arrives as a failed core.Result.
func Validate[In, Out any](ctx validation.Context, v validation.Validator[In, Out], input In) *Future[core.Result[Out]] {
	return Run(ctx, input, func(_ context.Context, in In) (core.Result[Out], error) {
		return v.Validate(ctx, in), nil
	})
}

// ValidatePipeline runs p against input in its own goroutine and returns a
// Future for its result.
func ValidatePipeline[In, Out any](ctx validation.Context, p validation.Pipeline[In, Out], input In) *Future[core.Result[Out]] {
	return Run(ctx, input, func(_ context.Context, in In) (core.Result[Out], error) {
		return p.ValidatePipeline(ctx, in), nil
	})
}
