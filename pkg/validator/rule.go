package validator

import (
	"fmt"
	"regexp"
	"slices"
)

// Kind identifies a built-in constraint.
type Kind uint8

const (
	KindRequired Kind = iota + 1
	KindMax
	KindMin
	KindPattern
	KindLengths
	KindType
)

var kindNames = map[Kind]string{
	KindRequired: "required",
	KindMax:      "max",
	KindMin:      "min",
	KindPattern:  "pattern",
	KindLengths:  "lengths",
	KindType:     "type",
}

// String returns the rule key of the kind, e.g. "required".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a rule key back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// CustomFunc validates a field by itself. It receives the field name, the current
// value and the object owning the field, and returns an error message or "".
type CustomFunc func(field string, value any, owner any) string

// TransformFunc maps a value before the built-in constraints look at it.
type TransformFunc func(value any) any

// Constraint pairs a built-in constraint kind with its parameter.
type Constraint struct {
	Kind  Kind
	Param any
}

// Rule is one validation clause.
//
// When Custom is set it decides the outcome alone and the constraints are
// ignored. Otherwise every constraint is checked in order against the value
// (passed through Before first, if set) and the first violation produces
// Message, or the kind's templated message when Message is empty.
type Rule struct {
	Message     string
	Custom      CustomFunc
	Before      TransformFunc
	Constraints []Constraint
}

func constraint(kind Kind, param any) Rule {
	return Rule{Constraints: []Constraint{{Kind: kind, Param: param}}}
}

// Required fails on nil or empty-string values when required is true.
func Required(required bool) Rule {
	return constraint(KindRequired, required)
}

// Max fails when the value is greater than limit.
func Max(limit any) Rule {
	return constraint(KindMax, limit)
}

// Min fails when the value is less than limit.
func Min(limit any) Rule {
	return constraint(KindMin, limit)
}

// Pattern fails when a non-empty value does not match re.
func Pattern(re *regexp.Regexp) Rule {
	return constraint(KindPattern, re)
}

// MatchString is Pattern with a regular expression compiled from expr.
// Panics if expr does not compile.
func MatchString(expr string) Rule {
	return Pattern(regexp.MustCompile(expr))
}

// Lengths fails when a non-empty value has a length outside [min, max].
func Lengths(min, max int) Rule {
	return constraint(KindLengths, []int{min, max})
}

// Type fails when a non-empty value does not satisfy the named predicate.
// Names without a registered predicate never fail.
func Type(name string) Rule {
	return constraint(KindType, name)
}

// Custom returns a rule decided entirely by fn.
func Custom(fn CustomFunc) Rule {
	return Rule{Custom: fn}
}

// WithMessage returns a copy of r reporting msg on violation.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

// WithBefore returns a copy of r that transforms the value with fn first.
func (r Rule) WithBefore(fn TransformFunc) Rule {
	r.Before = fn
	return r
}

// And returns a copy of r with extra constraints checked after the existing ones.
func (r Rule) And(constraints ...Constraint) Rule {
	r.Constraints = append(slices.Clone(r.Constraints), constraints...)
	return r
}
