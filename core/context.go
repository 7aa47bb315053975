package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Context is the base execution context every flow unit runs against.
// It embeds context.Context for cancellation and value propagation, and adds
// execution identity plus a structured logger shared across the execution.
type Context interface {
	context.Context

	// ExecutionID returns the stable identifier of this execution.
	// Two calls on the same Context always return the same value.
	ExecutionID() string

	// StartedAt returns the time this execution context was created.
	StartedAt() time.Time

	// Logger returns the logger bound to this execution.
	// It is never nil; implementations fall back to slog.Default.
	Logger() *slog.Logger
}

// ContextOption configures NewContext.
type ContextOption func(*executionContext)

// WithExecutionID overrides the generated execution identifier.
// Empty values are ignored to keep the identifier stable and non-empty.
func WithExecutionID(id string) ContextOption {
	return func(c *executionContext) {
		if id != "" {
			c.executionID = id
		}
	}
}

// WithLogger sets the logger bound to the execution. Nil loggers are ignored.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *executionContext) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewContext wraps parent into an execution Context. A fresh execution
// identifier is generated unless WithExecutionID is supplied.
//
// Example:
//
//	ctx := core.NewContext(context.Background(),
//		core.WithLogger(slog.Default()),
//	)
//	ctx.Logger().Info("execution started", "execution_id", ctx.ExecutionID())
func NewContext(parent context.Context, opts ...ContextOption) Context {
	if parent == nil {
		parent = context.Background()
	}

	c := &executionContext{
		Context:     parent,
		executionID: uuid.NewString(),
		startedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// executionContext is the default Context implementation.
type executionContext struct {
	context.Context

	executionID string
	startedAt   time.Time
	logger      *slog.Logger
}

func (c *executionContext) ExecutionID() string { return c.executionID }

func (c *executionContext) StartedAt() time.Time { return c.startedAt }

func (c *executionContext) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// ContextKey is a collision-free key for context values.
// It should be created as a package-level variable.
type ContextKey struct{ name string }

// NewContextKey creates a new context key.
// The name should be unique within your application.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// String returns the key name for debugging.
func (k *ContextKey) String() string { return k.name }

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not present or has a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK retrieves a typed value from the context and reports whether
// it was present with the expected type.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
