package validationtest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/codechu/flow-core-validation"
	"github.com/codechu/flow-core-validation/core"
	"github.com/codechu/flow-core-validation/validationtest"
)

func newCtx() validation.Context {
	return validation.NewContext(core.NewContext(context.Background()))
}

func TestSpy_RecordsInvocations(t *testing.T) {
	t.Parallel()

	spy := validationtest.NewSpy(validationtest.Pass[string]("inner"))
	assert.Equal(t, "inner", spy.ID())
	assert.Equal(t, 0, spy.Calls)

	res := spy.Validate(newCtx(), "first")
	assert.True(t, res.OK())
	assert.Equal(t, 1, spy.Calls)
	assert.Equal(t, "first", spy.LastInput)

	spy.Validate(newCtx(), "second")
	assert.Equal(t, 2, spy.Calls)
	assert.Equal(t, "second", spy.LastInput)
}

func TestPassAndFail(t *testing.T) {
	t.Parallel()

	res := validationtest.Pass[int]("ok").Validate(newCtx(), 7)
	out, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, 7, out)

	failure := validation.NewError(validation.CodeValidationFailed, "no")
	res = validationtest.Fail[int]("nope", failure).Validate(newCtx(), 7)
	require.False(t, res.OK())

	var verr *validation.Error
	require.ErrorAs(t, res.Err(), &verr)
	assert.Same(t, failure, verr)
}
