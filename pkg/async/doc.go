// Package async provides Future-based helpers for callers who want the
// promise shape of validation: start a validation now, collect its result
// later.
//
// The validation contracts themselves are blocking and context-aware; this
// package wraps them. Validate and ValidatePipeline start the given unit in
// its own goroutine and immediately return a *Future whose eventual value is
// the unit's core.Result. The caller can wait with Await, bound the wait with
// AwaitWithTimeout, or poll with IsComplete.
//
// A Future fails (Await returns a non-nil error) only when the computation
// itself could not run to completion: the context was canceled before it
// started, or the wait timed out. Expected validation failure is not a Future
// error: it arrives as a failed core.Result, exactly as in the synchronous
// form.
//
// # Usage
//
//	fut := async.Validate(ctx, emailValidator, input)
//	// do other work …
//	res, err := fut.Await()
//	if err != nil {
//		// canceled before the validator ran
//	}
//	if out, ok := res.Value(); ok {
//		// validated output
//	}
package async
