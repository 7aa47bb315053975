package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/codechu/flow-core-validation"
	"github.com/codechu/flow-core-validation/core"
)

// userSchema is a hand-written Schema implementation proving the contract is
// satisfiable without any engine behind it.
type userSchema struct{}

func (userSchema) ID() string      { return "user-schema" }
func (userSchema) Name() string    { return "User schema" }
func (userSchema) Version() string { return "1.2.0" }

func (userSchema) ValidateSchema(_ validation.Context, input map[string]any) core.Result[map[string]any] {
	name, ok := input["name"].(string)
	if !ok || name == "" {
		return core.Fail[map[string]any](
			validation.NewError(validation.CodeRequired, "name is required").WithField("name"),
		)
	}
	return core.Ok(input)
}

func (userSchema) Rules() map[string]any {
	return map[string]any{
		"name": map[string]any{"type": "string", "required": true},
		"age":  map[string]any{"type": "number", "min": 0},
	}
}

func TestSchema_ContractConformance(t *testing.T) {
	t.Parallel()

	var s validation.Schema[map[string]any, map[string]any] = userSchema{}

	assert.Equal(t, "user-schema", s.ID())
	assert.Equal(t, "User schema", s.Name())
	assert.Equal(t, "1.2.0", s.Version())

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		res := s.ValidateSchema(newCtx(), map[string]any{"name": "alice"})
		out, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, "alice", out["name"])
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		res := s.ValidateSchema(newCtx(), map[string]any{})
		require.False(t, res.OK())

		var verr *validation.Error
		require.ErrorAs(t, res.Err(), &verr)
		assert.Equal(t, validation.CodeRequired, verr.Code)
		assert.Equal(t, "name", verr.Field)
	})
}

func TestSchema_RulesSnapshot(t *testing.T) {
	t.Parallel()

	var s validation.Schema[map[string]any, map[string]any] = userSchema{}

	rules := s.Rules()
	require.Contains(t, rules, "name")
	require.Contains(t, rules, "age")

	// The caller owns the returned map; mutating it must not leak back.
	rules["name"] = "clobbered"
	assert.IsType(t, map[string]any{}, s.Rules()["name"])
}

func TestRenderRules(t *testing.T) {
	t.Parallel()

	doc, err := validation.RenderRules(userSchema{}.Rules())
	require.NoError(t, err)

	assert.Contains(t, doc, "name:")
	assert.Contains(t, doc, "required: true")
	assert.Contains(t, doc, "type: string")
}
