// Package validator provides declarative field validation with derived,
// memoized error state.
//
// Rules are attached to named fields of a Schema. A Validator built from the
// schema reports, for any object, the error of each field, the first error
// across the whole object and an overall validity flag.
//
// # Rules
//
// A Rule is one validation clause: a list of built-in constraints, or a
// Custom function that decides the outcome alone. Rules are evaluated in
// declaration order and evaluation stops at the first violation
// ("first match wins"):
//
//	rules := []validator.Rule{
//		validator.Required(true),
//		validator.Lengths(2, 32).WithMessage("name must be 2-32 characters"),
//		validator.Type(predicate.Email),
//	}
//	msg := validator.Evaluate("email", "ann", nil, rules)
//	// msg == "email is typeof isEmail"
//
// Built-in constraints:
//
//   - required: nil or "" when the parameter is true
//   - max, min: value greater than / less than the parameter
//   - pattern: non-empty value not matching a regular expression
//   - lengths: non-empty value whose length is outside a [min, max] pair
//   - type: non-empty value rejected by a named predicate (package predicate);
//     names with no registered predicate never fail
//
// When a rule has no Message the constraint's template is used, for example
// "age max value is 10" or "name is required".
//
// A Before transform rewrites the value before the constraints of its rule see
// it. A transform returning a falsy value (nil, false, 0, NaN or "") is
// discarded and the original value is checked instead, so a transform that
// maps "  " to "" does not make a required rule fail.
//
// # Schemas
//
// Schemas replace class decorators with explicit registration:
//
//	var Person = validator.NewSchema("person").
//		Field("name", validator.Required(true)).
//		Field("age", validator.Max(10).WithMessage("too big"))
//
//	var Employee = Person.Extend("employee").
//		Field("email", validator.Type(predicate.Email))
//
// Every field gets a derived property name built from its field name, such as
// "validateErrorAge". An extended schema sees its ancestors' fields first, then
// its own; it never writes into the parent's registry, so siblings stay
// isolated. Declaring the same field twice replaces its rules in place.
//
// Define returns a reusable Annotator for the same rules:
//
//	required := validator.Define(validator.Required(true))
//	required.Annotate(Person, "name")
//
// # Derived state
//
//	v := validator.New(Employee)
//	v.FieldError(&p, "age")  // "too big" or ""
//	v.ValidateError(&p)      // first failing field's message or ""
//	v.IsValid(&p)            // ValidateError(&p) == ""
//	v.Property(&p, "validateErrorAge")
//
// Objects may be pointers to structs (fields resolve by Go name, then json
// tag, then case-insensitively, including promoted fields) or maps with string
// keys. Missing fields read as nil.
//
// Results are computed on every read unless WithCacheSize enables
// memoization. Memoized results are keyed by object identity and recomputed
// lazily on the next read after the watched value changes. The snapshot is
// one level deep: replacing a value or writing into a top-level slice or map
// is detected, mutation further down is not. Call Invalidate after such
// writes, or leave memoization off when rules read nested or external state.
//
// # Error Handling
//
// Validation failures are values, never panics. Errors and Validate return
// ValidationErrors, which implements error and matches ErrValidationFailed via
// errors.Is. Programmer errors (nil schema, empty field name, a regular
// expression that does not compile, an unknown constraint Kind) panic.
package validator
