package core

import (
	"encoding/json"
	"errors"
)

// ErrNoValue is returned by Unwrap when a failed Result is unwrapped and the
// failure carried a nil error. It guards against Results constructed with
// Fail(nil) still reading as successful.
var ErrNoValue = errors.New("core: result holds no value")

// Result is the binary result convention used by every flow operation:
// a Result[T] is either Ok with a value of T, or Fail with an error.
// The zero value is a failure with no error detail.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail creates a failed Result carrying err.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNoValue
	}
	return Result[T]{err: err}
}

// OK reports whether the Result is a success.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the carried value and whether the Result is a success.
// This is the safe way to extract the value.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// MustValue returns the carried value, panicking on a failed Result.
// Use only when success has already been established.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic("core: MustValue called on failed result: " + r.err.Error())
	}
	return r.value
}

// Err returns the carried error, or nil for a successful Result.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

// Unwrap converts the Result into Go's conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// resultJSON is the wire form of Result. Exactly one of value/error is set.
type resultJSON[T any] struct {
	OK    bool   `json:"ok"`
	Value *T     `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// MarshalJSON encodes the Result preserving the success/failure split.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := resultJSON[T]{OK: r.ok}
	if r.ok {
		out.Value = &r.value
	} else {
		out.Error = r.err.Error()
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a Result encoded by MarshalJSON. Failed results are
// reconstructed with an opaque error carrying the original message.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var in resultJSON[T]
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.OK {
		var value T
		if in.Value != nil {
			value = *in.Value
		}
		*r = Ok(value)
		return nil
	}

	if in.Error == "" {
		*r = Fail[T](ErrNoValue)
		return nil
	}
	*r = Fail[T](errors.New(in.Error))
	return nil
}
