// Package core defines the execution seam shared by every flow-core contract:
// the base execution context and the binary result convention.
//
// Context extends context.Context with a stable execution identifier and a
// structured logger, so any unit participating in a flow can correlate its log
// records and look up request-scoped values without knowing who scheduled it.
//
// Result is the uniform return shape for operations whose expected failure is
// data, not a panic: a Result[T] is either Ok with a value of T, or Fail with
// an error describing what went wrong. Never both, never neither.
//
//	res := core.Ok(42)
//	if v, ok := res.Value(); ok {
//		fmt.Println(v)
//	}
//
//	res = core.Fail[int](errors.New("out of range"))
//	if err := res.Err(); err != nil {
//		// handle failure
//	}
//
// Both shapes are consumed by the validation contracts in the root package;
// they carry no validation-specific knowledge themselves.
package core
