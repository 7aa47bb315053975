package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/codechu/flow-core-validation/core"
)

// Check evaluates a declared rule against a value. It returns nil when the
// rule holds and a structured *Error otherwise.
type Check[T any] func(value T) *Error

// Builder is the fluent validator-building contract. Each mutator returns a
// builder so calls chain; Build is terminal and produces a validator that
// enforces every accumulated declaration in order. Build never drops a
// declared rule and is safe to call once per builder.
//
// Attaching a custom validator with a different output type reshapes the
// builder's type and therefore cannot be a method in Go; use the
// package-level Custom function.
type Builder[In, Out any] interface {
	// Required declares that the current output value must be present
	// (non-zero; strings must contain non-whitespace).
	Required() Builder[In, Out]

	// Type declares that the current output value must match the named type
	// tag ("string", "number", "bool", "array", "object", ...). Open
	// vocabulary; unknown names are compared against the value's reflected
	// kind and type name. The check matters for dynamically typed payloads
	// (Out = any); for a concrete Out it holds by construction.
	Type(name string) Builder[In, Out]

	// Rule declares an arbitrary rule with its metadata and check.
	Rule(r Rule, check Check[Out]) Builder[In, Out]

	// Build produces the finished validator.
	Build() Validator[In, Out]
}

// NewBuilder creates a Builder for shape-preserving validation of T.
//
// Example:
//
//	v := validation.NewBuilder[any]("user.name", "User name").
//		Required().
//		Type("string").
//		Build()
func NewBuilder[T any](id, name string) Builder[T, T] {
	return &builder[T, T]{
		id:   id,
		name: name,
		base: func(_ Context, input T) core.Result[T] {
			return core.Ok(input)
		},
	}
}

// Custom attaches v to b, reshaping the builder's output type to v's output
// type. Declarations made before the call are preserved; declarations made
// after it apply to the new output type.
func Custom[In, Mid, Out any](b Builder[In, Mid], v Validator[Mid, Out]) Builder[In, Out] {
	prev := b.Build()

	rules := []Rule{{
		ID:   v.ID(),
		Name: v.Name(),
		Type: RuleTypeCustom,
	}}
	if ruled, ok := prev.(Ruled); ok {
		rules = append(ruled.Rules(), rules...)
	}

	return &builder[In, Out]{
		id:    prev.ID(),
		name:  prev.Name(),
		rules: rules,
		base: func(ctx Context, input In) core.Result[Out] {
			res := prev.Validate(ctx, input)
			mid, ok := res.Value()
			if !ok {
				return core.Fail[Out](res.Err())
			}
			return v.Validate(ctx, mid)
		},
	}
}

// Ruled is the optional capability of exposing declared rule metadata.
// Validators produced by a Builder implement it.
type Ruled interface {
	Rules() []Rule
}

type stage[T any] struct {
	rule  Rule
	check Check[T]
}

type builder[In, Out any] struct {
	id     string
	name   string
	rules  []Rule
	stages []stage[Out]
	base   func(Context, In) core.Result[Out]
}

func (b *builder[In, Out]) Required() Builder[In, Out] {
	rule := Rule{ID: "required", Name: "required", Type: RuleTypeRequired}
	return b.Rule(rule, func(value Out) *Error {
		if isMissing(value) {
			return NewError(CodeRequired, "value is required")
		}
		return nil
	})
}

func (b *builder[In, Out]) Type(name string) Builder[In, Out] {
	rule := Rule{
		ID:     "type",
		Name:   "type",
		Type:   RuleTypeType,
		Params: map[string]any{"type": name},
	}
	return b.Rule(rule, func(value Out) *Error {
		if matchesType(name, value) {
			return nil
		}
		return NewError(CodeTypeMismatch, fmt.Sprintf("expected value of type %q", name)).
			WithValues(name, describeType(value))
	})
}

func (b *builder[In, Out]) Rule(r Rule, check Check[Out]) Builder[In, Out] {
	b.rules = append(b.rules, r)
	b.stages = append(b.stages, stage[Out]{rule: r, check: check})
	return b
}

func (b *builder[In, Out]) Build() Validator[In, Out] {
	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)
	stages := make([]stage[Out], len(b.stages))
	copy(stages, b.stages)
	base := b.base

	return &builtValidator[In, Out]{
		id:    b.id,
		name:  b.name,
		rules: rules,
		fn: func(ctx Context, input In) core.Result[Out] {
			res := base(ctx, input)
			out, ok := res.Value()
			if !ok {
				return res
			}
			for i := range stages {
				if err := stages[i].check(out); err != nil {
					if err.Rule == nil {
						err.Rule = &stages[i].rule
					}
					return core.Fail[Out](err)
				}
			}
			return core.Ok(out)
		},
	}
}

type builtValidator[In, Out any] struct {
	id    string
	name  string
	rules []Rule
	fn    func(Context, In) core.Result[Out]
}

func (v *builtValidator[In, Out]) ID() string    { return v.id }
func (v *builtValidator[In, Out]) Name() string  { return v.name }
func (v *builtValidator[In, Out]) Rules() []Rule { return v.rules }

func (v *builtValidator[In, Out]) Validate(ctx Context, input In) core.Result[Out] {
	return v.fn(ctx, input)
}

// isMissing reports whether value counts as absent for the required rule:
// untyped nil, nil pointers/interfaces, whitespace-only strings, empty
// collections, and other zero values.
func isMissing(value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isMissing(rv.Elem().Interface())
	default:
		return rv.IsZero()
	}
}

// matchesType reports whether value matches the named type tag.
func matchesType(name string, value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return false
	}
	if rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		return matchesType(name, rv.Elem().Interface())
	}

	kind := rv.Kind()
	switch strings.ToLower(name) {
	case "string":
		return kind == reflect.String
	case "bool", "boolean":
		return kind == reflect.Bool
	case "int", "integer":
		return isIntKind(kind)
	case "float", "double":
		return kind == reflect.Float32 || kind == reflect.Float64
	case "number":
		return isIntKind(kind) || kind == reflect.Float32 || kind == reflect.Float64
	case "array", "slice", "list":
		return kind == reflect.Slice || kind == reflect.Array
	case "map":
		return kind == reflect.Map
	case "object":
		return kind == reflect.Map || kind == reflect.Struct
	default:
		return name == kind.String() || name == reflect.TypeOf(value).String()
	}
}

func isIntKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func describeType(value any) string {
	t := reflect.TypeOf(value)
	if t == nil {
		return "nil"
	}
	return t.String()
}
