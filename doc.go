// Package validation defines the type-level contracts through which pluggable
// validation units integrate into a flow-core execution context.
//
// The package is a contract set, not a validation engine: it declares the
// shapes implementers must satisfy and the data exchanged between them, and
// ships only the minimal reference pieces (Chain, When, the rule Builder)
// needed to make those shapes composable and testable in Go. Real validation
// logic (schema checking, constraint evaluation, error aggregation) belongs
// to the implementations plugged in behind these interfaces.
//
// # Contracts
//
//   - Validator[In, Out]: a named unit that checks/transforms a value and
//     reports success or structured failure through core.Result.
//   - Schema[In, Out]: a validation unit carrying a version tag and
//     inspectable rule metadata.
//   - Pipeline[In, Out]: an ordered composition executed in attachment
//     order, short-circuiting on the first failure.
//   - Conditional[T]: validation gated on a predicate; a false predicate
//     passes the input through unchanged.
//   - Builder[In, Out]: fluent accumulation of rule declarations producing
//     a finished validator.
//
// Data shapes: Error (structured failure, open code vocabulary), Rule
// (metadata only), Report (full result with errors, warnings, and metadata),
// Context (execution context extended with shared data, history, and
// options), Options (advisory configuration).
//
// # Design
//
// Each contract is an independent, minimal interface rather than a subtype of
// one validator supertype; optional capabilities (Describer, Ruled) are
// separate interfaces. Operations that reshape a composition's output type
// (Append, Custom) are package-level generic functions because Go methods
// cannot introduce type parameters.
//
// Expected failure is data: validators return a failed core.Result carrying a
// *Error, they do not panic, and pipelines propagate the first failure upward
// unchanged.
//
// # Basic Usage
//
//	base := core.NewContext(context.Background())
//	ctx := validation.NewContext(base)
//
//	trim := validation.New("trim", "Trim whitespace",
//		func(_ validation.Context, s string) core.Result[string] {
//			return core.Ok(strings.TrimSpace(s))
//		},
//	)
//	nonEmpty := validation.NewBuilder[string]("non-empty", "Non-empty string").
//		Required().
//		Build()
//
//	pipeline := validation.ChainOf(trim).Add(nonEmpty)
//	res := pipeline.ValidatePipeline(ctx, "  hello  ")
//	if out, ok := res.Value(); ok {
//		fmt.Println(out) // "hello"
//	}
package validation
