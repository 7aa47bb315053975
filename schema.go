package validation

import (
	"github.com/codechu/flow-core-validation/core"

	"gopkg.in/yaml.v3"
)

// Schema is the schema-validation contract: a validation unit that also
// carries a version tag and can describe its rules as a plain mapping.
//
// Schema is deliberately not a Validator subtype; implementations that want
// both shapes implement both interfaces.
type Schema[In, Out any] interface {
	// ID returns the stable identifier of the schema.
	ID() string

	// Name returns the human-readable schema name.
	Name() string

	// Version returns the schema version tag.
	Version() string

	// ValidateSchema checks input against the schema and returns exactly one
	// of success-with-output or failure-with-error.
	ValidateSchema(ctx Context, input In) core.Result[Out]

	// Rules renders the schema's rule metadata as an open mapping.
	// The call is synchronous and side-effect-free; callers own the returned
	// map and may mutate it. How rules are represented internally is the
	// implementation's business.
	Rules() map[string]any
}

// RenderRules marshals a schema's rule mapping to YAML, for documentation
// and tooling output.
//
//	doc, err := validation.RenderRules(schema.Rules())
func RenderRules(rules map[string]any) (string, error) {
	out, err := yaml.Marshal(rules)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
