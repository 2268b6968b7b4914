package validator

import (
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/memo"
)

// DefaultCacheSize is a reasonable bound to pass to WithCacheSize.
const DefaultCacheSize = 1024

// Derived property names of the aggregate state.
const (
	PropertyValidateError = "validateError"
	PropertyIsValid       = "isValid"
)

type memoKey struct {
	typ     reflect.Type
	ptr     uintptr
	binding uint64
}

// Validator derives error state for objects described by a Schema.
//
// By default every read evaluates the rules again. WithCacheSize enables
// memoization per object (pointers and maps only): a result is recomputed on
// the next read after the field value changes, and for rules with a Custom or
// Before function after any top-level field of the owner changes. The check
// is shallow. Writes below the top level of the owner, or state a Custom reads
// from outside the owner, are not seen until Invalidate is called.
type Validator struct {
	schema    *Schema
	evaluator *Evaluator
	memo      *memo.Store[memoKey, *ValidationError]
	cacheSize int
	logger    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithEvaluator sets the rule evaluator. Nil is ignored.
func WithEvaluator(e *Evaluator) Option {
	return func(v *Validator) {
		if e != nil {
			v.evaluator = e
		}
	}
}

// WithCacheSize enables memoization with a table of n entries. Zero or a
// negative size keeps it disabled.
func WithCacheSize(n int) Option {
	return func(v *Validator) {
		v.cacheSize = n
	}
}

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New binds a Validator to schema. Panics if schema is nil.
func New(schema *Schema, opts ...Option) *Validator {
	if schema == nil {
		panic("validator: nil schema")
	}

	v := &Validator{
		schema:    schema,
		evaluator: defaultEvaluator,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.cacheSize > 0 {
		v.memo = memo.New[memoKey, *ValidationError](v.cacheSize)
	}

	v.logger.Debug("validator bound",
		logger.Schema(schema.Name()),
		slog.Any("properties", schema.Names()),
	)
	return v
}

// Schema returns the schema the validator was built from.
func (v *Validator) Schema() *Schema {
	return v.schema
}

// FieldError returns the current error message of field on obj, or "".
// Undeclared fields report "".
func (v *Validator) FieldError(obj any, field string) string {
	b, ok := v.schema.Lookup(field)
	if !ok {
		return ""
	}
	if verr := v.resolve(obj, b); verr != nil {
		return verr.Message
	}
	return ""
}

// ValidateError returns the message of the first failing field in registry
// order, or "" when every field passes.
func (v *Validator) ValidateError(obj any) string {
	for _, b := range v.schema.Fields() {
		if verr := v.resolve(obj, b); verr != nil {
			return verr.Message
		}
	}
	return ""
}

// IsValid reports whether no field of obj currently fails.
func (v *Validator) IsValid(obj any) bool {
	return v.ValidateError(obj) == ""
}

// Property reads a derived property by name: "validateError", "isValid" or a
// per-field name such as "validateErrorAge". It returns ErrUnknownField for
// anything else.
func (v *Validator) Property(obj any, name string) (any, error) {
	switch name {
	case PropertyValidateError:
		return v.ValidateError(obj), nil
	case PropertyIsValid:
		return v.IsValid(obj), nil
	}

	for _, b := range v.schema.Fields() {
		if b.Property == name {
			if verr := v.resolve(obj, b); verr != nil {
				return verr.Message, nil
			}
			return "", nil
		}
	}
	return nil, ErrUnknownField
}

// Errors returns the first error of every failing field in registry order.
func (v *Validator) Errors(obj any) ValidationErrors {
	var errs ValidationErrors
	for _, b := range v.schema.Fields() {
		if verr := v.resolve(obj, b); verr != nil {
			errs.Add(*verr)
		}
	}
	return errs
}

// Validate returns ValidationErrors when any field fails, nil otherwise.
func (v *Validator) Validate(obj any) error {
	if errs := v.Errors(obj); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// Invalidate drops every memoized result for obj.
func (v *Validator) Invalidate(obj any) {
	if v.memo == nil {
		return
	}
	typ, ptr, ok := identity(obj)
	if !ok {
		return
	}
	v.memo.InvalidateFunc(func(k memoKey) bool {
		return k.typ == typ && k.ptr == ptr
	})
}

func (v *Validator) resolve(obj any, b FieldBinding) *ValidationError {
	value := fieldValue(obj, b.Field)
	compute := func() *ValidationError {
		verr := v.evaluator.EvaluateError(b.Field, value, obj, b.Rules)
		if verr != nil {
			verr.Property = b.Property
		}
		return verr
	}

	typ, ptr, ok := identity(obj)
	if v.memo == nil || !ok {
		return compute()
	}

	// Every bind gets a fresh id, so redeclared rules never read a result
	// cached for the rules they replaced.
	key := memoKey{typ: typ, ptr: ptr, binding: b.id}
	verr, recomputed := v.memo.Resolve(key, dependencies(obj, value, b.Rules), compute)
	if recomputed {
		v.logger.Debug("field error recomputed",
			logger.Schema(v.schema.Name()),
			logger.Property(b.Property),
			logger.Valid(verr == nil),
		)
	}
	return verr
}

// dependencies builds the snapshot a memoized field result depends on.
func dependencies(obj, value any, rules []Rule) any {
	for _, r := range rules {
		if r.Custom != nil || r.Before != nil {
			return []any{snapshot(value), snapshot(obj)}
		}
	}
	return snapshot(value)
}
