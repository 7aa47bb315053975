package validationtest

import (
	validation "github.com/codechu/flow-core-validation"
	"github.com/codechu/flow-core-validation/core"
)

// Pass returns a shape-preserving validator that always succeeds with its
// input unchanged.
func Pass[T any](id string) validation.Validator[T, T] {
	return validation.New(id, id, func(_ validation.Context, input T) core.Result[T] {
		return core.Ok(input)
	})
}

// Fail returns a shape-preserving validator that always fails with err.
func Fail[T any](id string, err *validation.Error) validation.Validator[T, T] {
	return validation.New(id, id, func(_ validation.Context, _ T) core.Result[T] {
		return core.Fail[T](err)
	})
}
