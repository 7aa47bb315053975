package playground_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/codechu/flow-core-validation"
	"github.com/codechu/flow-core-validation/core"
	"github.com/codechu/flow-core-validation/pkg/playground"
)

type signupForm struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=18"`
}

func newCtx() validation.Context {
	return validation.NewContext(core.NewContext(context.Background()))
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	v := playground.Struct[signupForm]("signup-form", "Signup form")
	assert.Equal(t, "signup-form", v.ID())
	assert.Equal(t, "Signup form", v.Name())

	form := signupForm{Email: "alice@example.com", Age: 30}
	res := v.Validate(newCtx(), form)

	out, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, form, out)
}

func TestStruct_TagFailureMapsToError(t *testing.T) {
	t.Parallel()

	v := playground.Struct[signupForm]("signup-form", "Signup form")

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		res := v.Validate(newCtx(), signupForm{Age: 30})
		require.False(t, res.OK())

		var verr *validation.Error
		require.ErrorAs(t, res.Err(), &verr)
		assert.Equal(t, validation.CodeRequired, verr.Code)
		assert.Contains(t, verr.Field, "Email")
		require.NotNil(t, verr.Rule)
		assert.Equal(t, "required", verr.Rule.ID)
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()
		res := v.Validate(newCtx(), signupForm{Email: "alice@example.com", Age: 12})
		require.False(t, res.OK())

		var verr *validation.Error
		require.ErrorAs(t, res.Err(), &verr)
		assert.Equal(t, validation.CodeOutOfRange, verr.Code)
		assert.Equal(t, "18", verr.Expected)
		assert.Equal(t, 12, verr.Actual)
	})

	t.Run("multiple failures keep the rest in context", func(t *testing.T) {
		t.Parallel()
		res := v.Validate(newCtx(), signupForm{})
		require.False(t, res.OK())

		var verr *validation.Error
		require.ErrorAs(t, res.Err(), &verr)
		rest, ok := verr.Context["additionalErrors"].([]string)
		require.True(t, ok)
		assert.Len(t, rest, 1)
	})

	t.Run("unknown tag gets open-vocabulary code", func(t *testing.T) {
		t.Parallel()
		res := v.Validate(newCtx(), signupForm{Email: "not-an-email", Age: 30})
		require.False(t, res.OK())

		var verr *validation.Error
		require.ErrorAs(t, res.Err(), &verr)
		assert.Equal(t, "TAG_EMAIL", verr.Code)
	})
}

func TestStruct_ComposesAsValidator(t *testing.T) {
	t.Parallel()

	// The bridge satisfies the Validator contract and chains like any other.
	var v validation.Validator[signupForm, signupForm] = playground.Struct[signupForm]("signup-form", "Signup form")

	chain := validation.ChainOf(v)
	res := chain.ValidatePipeline(newCtx(), signupForm{Email: "alice@example.com", Age: 21})
	assert.True(t, res.OK())
}

func TestStruct_RegisterValidation(t *testing.T) {
	t.Parallel()

	type form struct {
		Code string `validate:"ticket"`
	}

	v := playground.Struct[form]("form", "Form")
	err := v.RegisterValidation("ticket", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) == 6
	})
	require.NoError(t, err)

	assert.True(t, v.Validate(newCtx(), form{Code: "ABC123"}).OK())
	assert.False(t, v.Validate(newCtx(), form{Code: "nope"}).OK())
}
