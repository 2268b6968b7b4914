package schemafile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type document struct {
	Schemas []schemaDoc `yaml:"schemas"`
}

type schemaDoc struct {
	Name    string     `yaml:"name"`
	Extends string     `yaml:"extends"`
	Fields  []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name  string      `yaml:"name"`
	Rules []yaml.Node `yaml:"rules"`
}

// Option configures the loader.
type Option func(*loader)

// WithCustom makes fn available to rules as `custom: <name>`.
func WithCustom(name string, fn validator.CustomFunc) Option {
	return func(l *loader) {
		if name != "" && fn != nil {
			l.customs[name] = fn
		}
	}
}

// WithTransform makes fn available to rules as `before: <name>`,
// replacing a built-in transform of the same name.
func WithTransform(name string, fn validator.TransformFunc) Option {
	return func(l *loader) {
		if name != "" && fn != nil {
			l.transforms[name] = fn
		}
	}
}

type loader struct {
	customs    map[string]validator.CustomFunc
	transforms map[string]validator.TransformFunc
}

// Set holds the schemas of one document by name.
type Set struct {
	schemas map[string]*validator.Schema
	order   []string
}

// Schema returns the schema declared under name.
func (s *Set) Schema(name string) (*validator.Schema, bool) {
	sc, ok := s.schemas[name]
	return sc, ok
}

// Names returns the schema names in declaration order.
func (s *Set) Names() []string {
	return slices.Clone(s.order)
}

// LoadFile reads and parses the document at path.
func LoadFile(path string, opts ...Option) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses a schema document from r.
func Load(r io.Reader, opts ...Option) (*Set, error) {
	l := &loader{
		customs:    make(map[string]validator.CustomFunc),
		transforms: defaultTransforms(),
	}
	for _, opt := range opts {
		opt(l)
	}

	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if len(doc.Schemas) == 0 {
		return nil, fmt.Errorf("%w: no schemas declared", ErrInvalidDocument)
	}

	set := &Set{schemas: make(map[string]*validator.Schema, len(doc.Schemas))}
	for _, sd := range doc.Schemas {
		schema, err := l.buildSchema(set, sd)
		if err != nil {
			return nil, err
		}
		set.schemas[sd.Name] = schema
		set.order = append(set.order, sd.Name)
	}
	return set, nil
}

func (l *loader) buildSchema(set *Set, sd schemaDoc) (*validator.Schema, error) {
	if sd.Name == "" {
		return nil, fmt.Errorf("%w: schema without a name", ErrInvalidDocument)
	}
	if _, exists := set.schemas[sd.Name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSchema, sd.Name)
	}

	var schema *validator.Schema
	if sd.Extends != "" {
		parent, ok := set.schemas[sd.Extends]
		if !ok {
			return nil, fmt.Errorf("%w: %q extends %q", ErrUnknownParent, sd.Name, sd.Extends)
		}
		schema = parent.Extend(sd.Name)
	} else {
		schema = validator.NewSchema(sd.Name)
	}

	for _, fd := range sd.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("%w: schema %q has a field without a name", ErrInvalidDocument, sd.Name)
		}

		rules := make([]validator.Rule, 0, len(fd.Rules))
		for i := range fd.Rules {
			rule, err := l.buildRule(&fd.Rules[i])
			if err != nil {
				return nil, fmt.Errorf("schema %q field %q: %w", sd.Name, fd.Name, err)
			}
			rules = append(rules, rule)
		}
		schema.Field(fd.Name, rules...)
	}
	return schema, nil
}

func (l *loader) buildRule(node *yaml.Node) (validator.Rule, error) {
	var rule validator.Rule
	if node.Kind != yaml.MappingNode {
		return rule, fmt.Errorf("%w: rule must be a mapping (line %d)", ErrInvalidRule, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		case "message":
			if err := value.Decode(&rule.Message); err != nil {
				return rule, fmt.Errorf("%w: message (line %d): %w", ErrInvalidRule, value.Line, err)
			}

		case "before":
			fn, ok := l.transforms[value.Value]
			if !ok {
				return rule, fmt.Errorf("%w: %q (line %d)", ErrUnknownTransform, value.Value, value.Line)
			}
			rule.Before = fn

		case "custom":
			fn, ok := l.customs[value.Value]
			if !ok {
				return rule, fmt.Errorf("%w: %q (line %d)", ErrUnknownCustom, value.Value, value.Line)
			}
			rule.Custom = fn

		default:
			kind, ok := validator.ParseKind(key.Value)
			if !ok {
				return rule, fmt.Errorf("%w: %q (line %d)", ErrUnknownKey, key.Value, key.Line)
			}
			param, err := decodeParam(kind, value)
			if err != nil {
				return rule, err
			}
			rule.Constraints = append(rule.Constraints, validator.Constraint{Kind: kind, Param: param})
		}
	}
	return rule, nil
}

func decodeParam(kind validator.Kind, node *yaml.Node) (any, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s %s (line %d)", ErrInvalidRule, kind, fmt.Sprintf(format, args...), node.Line)
	}

	switch kind {
	case validator.KindRequired:
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, invalid("expects a boolean")
		}
		return b, nil

	case validator.KindMax, validator.KindMin:
		if node.Kind != yaml.ScalarNode {
			return nil, invalid("expects a scalar")
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, invalid("cannot be decoded: %v", err)
		}
		return v, nil

	case validator.KindPattern:
		re, err := regexp.Compile(node.Value)
		if node.Kind != yaml.ScalarNode || err != nil {
			return nil, invalid("expects a regular expression")
		}
		return re, nil

	case validator.KindLengths:
		var bounds []float64
		if err := node.Decode(&bounds); err != nil || len(bounds) != 2 {
			return nil, invalid("expects [min, max]")
		}
		return bounds, nil

	case validator.KindType:
		if node.Kind != yaml.ScalarNode || node.Value == "" {
			return nil, invalid("expects a predicate name")
		}
		return node.Value, nil
	}

	return nil, invalid("is not supported")
}
