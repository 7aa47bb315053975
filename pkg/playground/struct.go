package playground

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	validation "github.com/codechu/flow-core-validation"
	"github.com/codechu/flow-core-validation/core"
)

// StructValidator validates struct values of type T against their
// go-playground struct tags. It implements validation.Validator[T, T].
type StructValidator[T any] struct {
	id     string
	name   string
	engine *validator.Validate
}

// Struct creates a StructValidator with its own engine instance.
func Struct[T any](id, name string) *StructValidator[T] {
	return &StructValidator[T]{
		id:     id,
		name:   name,
		engine: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterValidation registers a custom tag on the underlying engine.
func (s *StructValidator[T]) RegisterValidation(tag string, fn validator.Func) error {
	return s.engine.RegisterValidation(tag, fn)
}

func (s *StructValidator[T]) ID() string   { return s.id }
func (s *StructValidator[T]) Name() string { return s.name }

// Validate checks input's struct tags. Tag failures are mapped onto the
// structured Error shape: the first field error becomes the failure, with
// every field message preserved in the error context.
func (s *StructValidator[T]) Validate(ctx validation.Context, input T) core.Result[T] {
	err := s.engine.StructCtx(ctx, input)
	if err == nil {
		return core.Ok(input)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		// InvalidValidationError: T was not a struct or was nil.
		return core.Fail[T](validation.NewError(validation.CodeValidationFailed, err.Error()))
	}

	first := fieldErrs[0]
	verr := validation.NewError(tagCode(first.Tag()), first.Error()).
		WithField(first.Namespace()).
		WithValues(first.Param(), first.Value()).
		WithRule(&validation.Rule{
			ID:   first.Tag(),
			Name: first.Tag(),
			Type: validation.RuleTypeFormat,
		})

	if len(fieldErrs) > 1 {
		rest := make([]string, 0, len(fieldErrs)-1)
		for _, fe := range fieldErrs[1:] {
			rest = append(rest, fe.Error())
		}
		verr.WithContext("additionalErrors", rest)
	}

	return core.Fail[T](verr)
}

// tagCode maps a go-playground tag onto an error code in the open vocabulary.
func tagCode(tag string) string {
	switch tag {
	case "required":
		return validation.CodeRequired
	case "min", "max", "gte", "gt", "lte", "lt", "len":
		return validation.CodeOutOfRange
	default:
		return "TAG_" + strings.ToUpper(tag)
	}
}
