package validation

import (
	"github.com/codechu/flow-core-validation/core"
)

// Context is the execution context validators run against. It extends the
// base execution context with validation-scoped shared data, an append-only
// history of validation attempts, and the recognized options block.
//
// Neither Data nor History is guarded by locking here: the contracts leave
// concurrent mutation safety to the host execution environment.
type Context interface {
	core.Context

	// Data returns the mutable key-to-value store shared across validators
	// in this execution.
	Data() *Data

	// History returns the append-only log of validation attempts.
	History() *History

	// Options returns the configuration block for this execution.
	Options() Options
}

// Data is the mutable validation-scoped key-to-value store.
type Data struct {
	values map[string]any
}

// Set stores value under key, replacing any previous value.
func (d *Data) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	d.values[key] = value
}

// Get returns the value stored under key, or nil.
func (d *Data) Get(key string) any {
	return d.values[key]
}

// Has reports whether key is present.
func (d *Data) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Delete removes key.
func (d *Data) Delete(key string) {
	delete(d.values, key)
}

// Len returns the number of stored entries.
func (d *Data) Len() int { return len(d.values) }

// DataValue retrieves a typed value from the store.
// Returns the zero value of T if the key is absent or holds a different type.
func DataValue[T any](d *Data, key string) T {
	val, _ := d.Get(key).(T)
	return val
}

// ContextOption configures NewContext.
type ContextOption func(*validationContext)

// WithOptions sets the options block for the context.
func WithOptions(opts Options) ContextOption {
	return func(c *validationContext) {
		c.options = opts
	}
}

// WithData seeds the shared data store with the given entries.
func WithData(values map[string]any) ContextOption {
	return func(c *validationContext) {
		for k, v := range values {
			c.data.Set(k, v)
		}
	}
}

// NewContext wraps a base execution context into a validation Context with an
// empty data store, an empty history, and default options.
//
// Example:
//
//	base := core.NewContext(context.Background())
//	ctx := validation.NewContext(base,
//		validation.WithOptions(validation.Options{StopOnFirstError: true}),
//	)
func NewContext(parent core.Context, opts ...ContextOption) Context {
	c := &validationContext{
		Context: parent,
		options: DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// validationContext is the default Context implementation.
type validationContext struct {
	core.Context

	data    Data
	history History
	options Options
}

func (c *validationContext) Data() *Data { return &c.data }

func (c *validationContext) History() *History { return &c.history }

func (c *validationContext) Options() Options { return c.options }
