// Package playground adapts go-playground/validator struct validation into
// the flow-core Validator contract.
//
// The contract set deliberately ships no validation engine; this package is
// the seam for plugging in a real one. Struct returns a shape-preserving
// validator that checks struct tags (`validate:"required,email"` and friends)
// and reports failures through the standard structured Error shape, so
// tag-based validation composes with chains, conditionals, and builders like
// any other validator.
//
//	type SignupForm struct {
//		Email string `validate:"required,email"`
//		Age   int    `validate:"gte=18"`
//	}
//
//	v := playground.Struct[SignupForm]("signup-form", "Signup form")
//	res := v.Validate(ctx, form)
package playground
