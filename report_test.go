package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/codechu/flow-core-validation"
)

func TestReport_ValidReport(t *testing.T) {
	t.Parallel()

	report := validation.ValidReport("output", validation.Meta{
		ValidatorID:     "v1",
		ExecutionTimeMS: 12,
		RulesApplied:    []string{"required", "type"},
	})

	assert.True(t, report.Valid)
	require.NotNil(t, report.Data)
	assert.Equal(t, "output", *report.Data)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestReport_InvalidReport(t *testing.T) {
	t.Parallel()

	report := validation.InvalidReport[string](
		validation.Meta{ValidatorID: "v1"},
		validation.Error{Code: validation.CodeRequired, Message: "missing"},
	)

	assert.False(t, report.Valid)
	assert.Nil(t, report.Data, "data must be absent when invalid")
	require.Len(t, report.Errors, 1)
	assert.Equal(t, validation.CodeRequired, report.Errors[0].Code)
}

func TestReport_WarningsAreSegregated(t *testing.T) {
	t.Parallel()

	report := validation.ValidReport(map[string]any{"name": "alice"}, validation.Meta{ValidatorID: "v1"})
	report.AddWarning(validation.Error{Code: "DEPRECATED_FIELD", Message: "nickname is deprecated", Field: "nickname"})
	report.AddWarning(validation.Error{Code: "DEPRECATED_FIELD", Message: "alias is deprecated", Field: "alias"})

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	require.Len(t, report.Warnings, 2)
	assert.Equal(t, "nickname", report.Warnings[0].Field)
	assert.Equal(t, "alias", report.Warnings[1].Field)
}

func TestReport_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := validation.Report[map[string]any]{
		Valid: true,
		Data:  &map[string]any{"name": "alice", "age": float64(30)},
		Errors: []validation.Error{},
		Warnings: []validation.Error{{
			Code:    "DEPRECATED_FIELD",
			Message: "nickname is deprecated",
			Field:   "nickname",
		}},
		Meta: validation.Meta{
			ValidatorID:     "user-schema",
			ExecutionTimeMS: 42,
			RulesApplied:    []string{"required", "type:string", "max-len"},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded validation.Report[map[string]any]
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Structural equality: no field loss through serialization.
	assert.Equal(t, original, decoded)
}

func TestReport_ErrorRoundTripKeepsDetail(t *testing.T) {
	t.Parallel()

	rule := &validation.Rule{
		ID:     "range",
		Name:   "Range",
		Type:   validation.RuleTypeRange,
		Params: map[string]any{"min": float64(0), "max": float64(10)},
	}

	original := validation.Report[int]{
		Valid: false,
		Errors: []validation.Error{{
			Code:     validation.CodeOutOfRange,
			Message:  "value out of range",
			Field:    "age",
			Expected: "0..10",
			Actual:   float64(99),
			Rule:     rule,
			Context:  map[string]any{"source": "form"},
		}},
		Warnings: []validation.Error{},
		Meta:     validation.Meta{ValidatorID: "age", RulesApplied: []string{"range"}},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded validation.Report[int]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
