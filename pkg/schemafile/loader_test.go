package schemafile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/schemafile"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestLoadFile(t *testing.T) {
	set, err := schemafile.LoadFile("testdata/people.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"person", "employee"}, set.Names())

	employee, ok := set.Schema("employee")
	require.True(t, ok)
	assert.Equal(t, []string{
		"validateErrorName",
		"validateErrorAge",
		"validateErrorEmail",
		"validateErrorCode",
	}, employee.Names())

	v := validator.New(employee)

	t.Run("valid document", func(t *testing.T) {
		doc := map[string]any{"name": "Ann", "age": 30, "email": "ann@example.com", "code": "ABC-123"}
		assert.True(t, v.IsValid(doc))
	})

	t.Run("registry order decides the aggregate", func(t *testing.T) {
		doc := map[string]any{"name": "", "age": 200, "email": "nope"}
		assert.Equal(t, "name is required", v.ValidateError(doc))
	})

	t.Run("templated and literal messages", func(t *testing.T) {
		doc := map[string]any{"name": "A", "age": 200, "email": "nope", "code": "abc"}
		errs := v.Errors(doc)
		assert.Equal(t, "name.length must be in [2,32]", errs.Get("name"))
		assert.Equal(t, "age looks wrong", errs.Get("age"))
		assert.Equal(t, "email is typeof isEmail", errs.Get("email"))
		assert.Equal(t, "code must look like ABC-123", errs.Get("code"))
	})

	t.Run("before transform from file", func(t *testing.T) {
		doc := map[string]any{"name": "  Ann  ", "email": "ann@example.com"}
		assert.Empty(t, v.FieldError(doc, "name"))
	})

	t.Run("parent schema is unaffected", func(t *testing.T) {
		person, _ := set.Schema("person")
		assert.Equal(t, []string{"validateErrorName", "validateErrorAge"}, person.Names())
	})
}

func TestLoad_KeyOrder(t *testing.T) {
	doc := `
schemas:
  - name: s
    fields:
      - name: n
        rules:
          - max: 10
            min: 20
`
	set, err := schemafile.Load(strings.NewReader(doc))
	require.NoError(t, err)

	s, _ := set.Schema("s")
	b, ok := s.Lookup("n")
	require.True(t, ok)
	require.Len(t, b.Rules, 1)
	require.Len(t, b.Rules[0].Constraints, 2)
	assert.Equal(t, validator.KindMax, b.Rules[0].Constraints[0].Kind)
	assert.Equal(t, validator.KindMin, b.Rules[0].Constraints[1].Kind)

	// Every value violates one of the two; max is checked first.
	v := validator.New(s)
	assert.Equal(t, "n min value is 20", v.FieldError(map[string]any{"n": 5}, "n"))
	assert.Equal(t, "n max value is 10", v.FieldError(map[string]any{"n": 30}, "n"))
}

func TestLoad_JSON(t *testing.T) {
	doc := `{"schemas":[{"name":"s","fields":[{"name":"id","rules":[{"type":"isUUID"}]}]}]}`
	set, err := schemafile.Load(strings.NewReader(doc))
	require.NoError(t, err)

	s, _ := set.Schema("s")
	v := validator.New(s)
	assert.Equal(t, "id is typeof isUUID", v.ValidateError(map[string]any{"id": "123"}))
	assert.True(t, v.IsValid(map[string]any{"id": "550e8400-e29b-41d4-a716-446655440000"}))
}

func TestLoad_Customs(t *testing.T) {
	doc := `
schemas:
  - name: signup
    fields:
      - name: confirm
        rules:
          - custom: matchesPassword
      - name: handle
        rules:
          - before: strip-at
            lengths: [3, 8]
`
	matches := func(field string, value any, owner any) string {
		if value != owner.(map[string]any)["password"] {
			return field + " must match password"
		}
		return ""
	}
	stripAt := func(v any) any { return strings.TrimPrefix(v.(string), "@") }

	set, err := schemafile.Load(strings.NewReader(doc),
		schemafile.WithCustom("matchesPassword", matches),
		schemafile.WithTransform("strip-at", stripAt),
	)
	require.NoError(t, err)

	s, _ := set.Schema("signup")
	v := validator.New(s)

	assert.Equal(t, "confirm must match password", v.ValidateError(map[string]any{"password": "a", "confirm": "b", "handle": "@abc"}))
	assert.True(t, v.IsValid(map[string]any{"password": "a", "confirm": "a", "handle": "@abc"}))
	assert.Equal(t, "handle.length must be in [3,8]", v.FieldError(map[string]any{"handle": "@ab"}, "handle"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", ``, schemafile.ErrInvalidDocument},
		{"no schemas", `schemas: []`, schemafile.ErrInvalidDocument},
		{"malformed yaml", `schemas: [`, schemafile.ErrInvalidDocument},
		{"unnamed schema", `schemas: [{fields: []}]`, schemafile.ErrInvalidDocument},
		{"unnamed field", `schemas: [{name: s, fields: [{rules: []}]}]`, schemafile.ErrInvalidDocument},
		{"duplicate schema", `schemas: [{name: s}, {name: s}]`, schemafile.ErrDuplicateSchema},
		{"unknown parent", `schemas: [{name: s, extends: base}]`, schemafile.ErrUnknownParent},
		{"parent declared later", `schemas: [{name: s, extends: base}, {name: base}]`, schemafile.ErrUnknownParent},
		{"unknown key", `schemas: [{name: s, fields: [{name: f, rules: [{between: 1}]}]}]`, schemafile.ErrUnknownKey},
		{"unknown transform", `schemas: [{name: s, fields: [{name: f, rules: [{before: reverse}]}]}]`, schemafile.ErrUnknownTransform},
		{"unknown custom", `schemas: [{name: s, fields: [{name: f, rules: [{custom: nope}]}]}]`, schemafile.ErrUnknownCustom},
		{"rule not a mapping", `schemas: [{name: s, fields: [{name: f, rules: [required]}]}]`, schemafile.ErrInvalidRule},
		{"required not bool", `schemas: [{name: s, fields: [{name: f, rules: [{required: maybe}]}]}]`, schemafile.ErrInvalidRule},
		{"max not scalar", `schemas: [{name: s, fields: [{name: f, rules: [{max: [1]}]}]}]`, schemafile.ErrInvalidRule},
		{"bad pattern", `schemas: [{name: s, fields: [{name: f, rules: [{pattern: "("}]}]}]`, schemafile.ErrInvalidRule},
		{"lengths not a pair", `schemas: [{name: s, fields: [{name: f, rules: [{lengths: [1, 2, 3]}]}]}]`, schemafile.ErrInvalidRule},
		{"empty type", `schemas: [{name: s, fields: [{name: f, rules: [{type: ""}]}]}]`, schemafile.ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schemafile.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := schemafile.LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoad_UnknownTypeIsAllowed(t *testing.T) {
	doc := `schemas: [{name: s, fields: [{name: f, rules: [{type: isSomethingElse}]}]}]`
	set, err := schemafile.Load(strings.NewReader(doc))
	require.NoError(t, err)

	s, _ := set.Schema("s")
	assert.True(t, validator.New(s).IsValid(map[string]any{"f": "anything"}))
}
