package validator

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/fieldcheck/pkg/casing"
)

// ErrorPropertyPrefix starts the name of every derived per-field error property.
const ErrorPropertyPrefix = "validateError"

// ErrorProperty returns the derived property name exposing field's error,
// e.g. "age" becomes "validateErrorAge".
func ErrorProperty(field string) string {
	return casing.Camel(ErrorPropertyPrefix, field)
}

// FieldBinding ties a declared field to its rules and derived property name.
type FieldBinding struct {
	Field    string
	Property string
	Rules    []Rule
	// Schema is the schema that declared the binding.
	Schema *Schema

	id uint64
}

var bindingSeq atomic.Uint64

// Schema is the ordered field registry of one type definition.
//
// A schema created with Extend inherits its parent's fields without sharing
// storage: bindings added to the child never become visible on the parent or
// on sibling schemas, while fields added to an ancestor show up in every
// descendant.
type Schema struct {
	name   string
	parent *Schema

	mu     sync.RWMutex
	fields []FieldBinding
}

// NewSchema creates an empty root schema.
func NewSchema(name string) *Schema {
	return &Schema{name: name}
}

// Extend creates an empty schema inheriting every field of s.
func (s *Schema) Extend(name string) *Schema {
	return &Schema{name: name, parent: s}
}

// Name returns the name the schema was created with.
func (s *Schema) Name() string {
	return s.name
}

// Parent returns the schema s extends, or nil for a root schema.
func (s *Schema) Parent() *Schema {
	return s.parent
}

// Field declares rules for field and returns s for chaining.
func (s *Schema) Field(field string, rules ...Rule) *Schema {
	Define(rules...).Annotate(s, field)
	return s
}

// Own returns the bindings declared directly on s, in declaration order.
func (s *Schema) Own() []FieldBinding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.fields)
}

// Fields returns the merged registry: ancestors first, each in declaration
// order. A field redeclared by a descendant keeps its original position and
// takes the descendant's rules.
func (s *Schema) Fields() []FieldBinding {
	var chain []*Schema
	for cur := s; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}

	var merged []FieldBinding
	index := make(map[string]int)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, b := range chain[i].Own() {
			if pos, ok := index[b.Property]; ok {
				merged[pos] = b
				continue
			}
			index[b.Property] = len(merged)
			merged = append(merged, b)
		}
	}
	return merged
}

// Names returns the derived property names in registry order.
func (s *Schema) Names() []string {
	fields := s.Fields()
	names := make([]string, len(fields))
	for i, b := range fields {
		names[i] = b.Property
	}
	return names
}

// Lookup finds a binding by field name or derived property name.
func (s *Schema) Lookup(name string) (FieldBinding, bool) {
	for _, b := range s.Fields() {
		if b.Field == name || b.Property == name {
			return b, true
		}
	}
	return FieldBinding{}, false
}

// bind appends a binding to the own registry, or replaces the rules of an
// existing binding for the same property.
func (s *Schema) bind(field string, rules []Rule) {
	b := FieldBinding{
		Field:    field,
		Property: ErrorProperty(field),
		Rules:    rules,
		Schema:   s,
		id:       bindingSeq.Add(1),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fields {
		if s.fields[i].Property == b.Property {
			s.fields[i] = b
			return
		}
	}
	s.fields = append(s.fields, b)
}

// Annotator attaches a rule list to a field of a schema.
type Annotator func(s *Schema, field string)

// Define captures rules and returns an Annotator binding them to fields.
// The rule list is copied, so later changes to the caller's slice have no effect.
func Define(rules ...Rule) Annotator {
	rules = slices.Clone(rules)
	return func(s *Schema, field string) {
		if s == nil {
			panic("validator: nil schema")
		}
		if field == "" {
			panic("validator: empty field name")
		}
		s.bind(field, rules)
	}
}

// Annotate binds the captured rules to field on s.
func (a Annotator) Annotate(s *Schema, field string) {
	a(s, field)
}
