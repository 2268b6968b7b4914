package validator

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/dmitrymomot/fieldcheck/pkg/predicate"
)

// Evaluator turns a value and an ordered rule list into an error message.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	predicates predicate.Lookup
	templates  map[Kind]MessageFunc
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithPredicates sets the lookup used by the type constraint.
// Nil lookups are ignored.
func WithPredicates(l predicate.Lookup) EvaluatorOption {
	return func(e *Evaluator) {
		if l != nil {
			e.predicates = l
		}
	}
}

// WithTemplates replaces the message table. Kinds missing from t fall back to
// "<field> has error".
func WithTemplates(t map[Kind]MessageFunc) EvaluatorOption {
	return func(e *Evaluator) {
		e.templates = maps.Clone(t)
	}
}

// NewEvaluator returns an Evaluator using the default predicate registry and
// message templates unless overridden.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		predicates: predicate.Default(),
		templates:  defaultTemplates,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Evaluate checks value against rules with the default Evaluator.
// It returns the first violation's message, or "" when every rule passes.
func Evaluate(field string, value, owner any, rules []Rule) string {
	return defaultEvaluator.Evaluate(field, value, owner, rules)
}

// Evaluate returns the message of the first violated rule, or "".
func (e *Evaluator) Evaluate(field string, value, owner any, rules []Rule) string {
	if verr := e.EvaluateError(field, value, owner, rules); verr != nil {
		return verr.Message
	}
	return ""
}

// EvaluateError is Evaluate returning the full error, or nil when valid.
//
// Rules run in order and evaluation stops at the first rule that reports a
// problem. A rule with Custom set ends evaluation with whatever Custom returns,
// even "". A Before transform whose result is falsy is discarded and the
// original value is checked instead.
func (e *Evaluator) EvaluateError(field string, value, owner any, rules []Rule) *ValidationError {
	for _, rule := range rules {
		if rule.Custom != nil {
			msg := rule.Custom(field, value, owner)
			if msg == "" {
				return nil
			}
			return &ValidationError{
				Field:          field,
				Message:        msg,
				TranslationKey: "validation.custom",
				TranslationValues: map[string]any{
					"field": field,
				},
			}
		}

		effective := value
		if rule.Before != nil {
			if transformed := rule.Before(value); !isFalsy(transformed) {
				effective = transformed
			}
		}

		for _, c := range rule.Constraints {
			if e.violates(c, effective) {
				return e.newError(field, rule, c)
			}
		}
	}
	return nil
}

func (e *Evaluator) violates(c Constraint, value any) bool {
	switch c.Kind {
	case KindRequired:
		return isEmpty(value) && !isFalsy(c.Param)

	case KindMax:
		cmp, ok := compare(value, c.Param)
		return ok && cmp > 0

	case KindMin:
		cmp, ok := compare(value, c.Param)
		return ok && cmp < 0

	case KindPattern:
		re, ok := c.Param.(*regexp.Regexp)
		if !ok || re == nil || isEmpty(value) {
			return false
		}
		return !re.MatchString(stringify(value))

	case KindLengths:
		lo, hi, ok := pair(c.Param)
		if !ok || isEmpty(value) {
			return false
		}
		n, ok := length(value)
		if !ok || n == 0 {
			return false
		}
		return float64(n) < lo || float64(n) > hi

	case KindType:
		name, ok := c.Param.(string)
		if !ok || isEmpty(value) {
			return false
		}
		fn, found := e.predicates.Lookup(name)
		if !found {
			return false
		}
		return !fn(stringify(value))
	}

	panic(fmt.Sprintf("validator: unknown constraint kind %v", c.Kind))
}

func (e *Evaluator) newError(field string, rule Rule, c Constraint) *ValidationError {
	msg := rule.Message
	if msg == "" {
		if tmpl, ok := e.templates[c.Kind]; ok && tmpl != nil {
			msg = tmpl(field, c.Param)
		}
	}
	if msg == "" {
		msg = fallbackMessage(field)
	}

	return &ValidationError{
		Field:          field,
		Message:        msg,
		Kind:           c.Kind,
		TranslationKey: "validation." + c.Kind.String(),
		TranslationValues: map[string]any{
			"field": field,
			"value": c.Param,
		},
	}
}
