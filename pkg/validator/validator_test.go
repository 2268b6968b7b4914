package validator_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type person struct {
	Name string
	Age  int
}

type address struct {
	City string
}

type customer struct {
	Name string
	Addr *address
}

var memoized = validator.WithCacheSize(validator.DefaultCacheSize)

func cityRequired(_ string, _ any, owner any) string {
	if c := owner.(*customer); c.Addr == nil || c.Addr.City == "" {
		return "city needed"
	}
	return ""
}

func personSchema() *validator.Schema {
	return validator.NewSchema("person").
		Field("name", validator.Required(true)).
		Field("age", validator.Max(10).WithMessage("too big"))
}

func TestValidator_FieldError(t *testing.T) {
	v := validator.New(personSchema())

	t.Run("required name", func(t *testing.T) {
		assert.Equal(t, "name is required", v.FieldError(&person{Name: ""}, "name"))
		assert.Empty(t, v.FieldError(&person{Name: "Ann"}, "name"))
	})

	t.Run("max age with message", func(t *testing.T) {
		assert.Equal(t, "too big", v.FieldError(&person{Age: 15}, "age"))
		assert.Empty(t, v.FieldError(&person{Age: 5}, "age"))
	})

	t.Run("undeclared field", func(t *testing.T) {
		assert.Empty(t, v.FieldError(&person{}, "email"))
	})

	t.Run("first rule short-circuits", func(t *testing.T) {
		s := validator.NewSchema("score").Field("score", validator.Required(true), validator.Min(0))
		doc := map[string]any{}
		assert.Equal(t, "score is required", validator.New(s).FieldError(doc, "score"))
	})
}

func TestValidator_Aggregate(t *testing.T) {
	v := validator.New(personSchema())

	t.Run("first failing field in registry order", func(t *testing.T) {
		p := &person{Name: "", Age: 5}
		assert.Equal(t, "name is required", v.ValidateError(p))
		assert.False(t, v.IsValid(p))
	})

	t.Run("later field when earlier passes", func(t *testing.T) {
		p := &person{Name: "Ann", Age: 50}
		assert.Equal(t, "too big", v.ValidateError(p))
		assert.False(t, v.IsValid(p))
	})

	t.Run("valid object", func(t *testing.T) {
		p := &person{Name: "Ann", Age: 5}
		assert.Empty(t, v.ValidateError(p))
		assert.True(t, v.IsValid(p))
	})

	t.Run("schema without fields is valid", func(t *testing.T) {
		empty := validator.New(validator.NewSchema("empty"))
		assert.True(t, empty.IsValid(&person{}))
	})
}

func TestValidator_Inheritance(t *testing.T) {
	a := validator.NewSchema("A").Field("x", validator.Required(true))
	b := a.Extend("B").Field("y", validator.Required(true))
	c := a.Extend("C")

	doc := map[string]any{"x": "set", "y": ""}

	assert.Equal(t, "y is required", validator.New(b).ValidateError(doc))
	assert.True(t, validator.New(c).IsValid(doc))
	assert.True(t, validator.New(a).IsValid(doc))

	missingX := map[string]any{"y": "set"}
	assert.Equal(t, "x is required", validator.New(b).ValidateError(missingX))
	assert.Equal(t, "x is required", validator.New(c).ValidateError(missingX))
}

func TestValidator_Property(t *testing.T) {
	v := validator.New(personSchema())
	p := &person{Name: "", Age: 15}

	got, err := v.Property(p, "validateErrorAge")
	require.NoError(t, err)
	assert.Equal(t, "too big", got)

	got, err = v.Property(p, validator.PropertyValidateError)
	require.NoError(t, err)
	assert.Equal(t, "name is required", got)

	got, err = v.Property(p, validator.PropertyIsValid)
	require.NoError(t, err)
	assert.Equal(t, false, got)

	got, err = v.Property(&person{Name: "Ann"}, "validateErrorName")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = v.Property(p, "validateErrorEmail")
	assert.ErrorIs(t, err, validator.ErrUnknownField)
}

func TestValidator_Errors(t *testing.T) {
	v := validator.New(personSchema())

	t.Run("collects first error per field", func(t *testing.T) {
		errs := v.Errors(&person{Age: 15})
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"name", "age"}, errs.Fields())
		assert.Equal(t, "too big", errs.Get("age"))
		assert.Equal(t, "validateErrorAge", errs[1].Property)
	})

	t.Run("validate returns typed error", func(t *testing.T) {
		err := v.Validate(&person{Age: 15})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, "validation failed: name: name is required; age: too big", err.Error())

		verrs := validator.ExtractValidationErrors(err)
		assert.True(t, verrs.Has("name"))
	})

	t.Run("validate returns nil when valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&person{Name: "Ann", Age: 1}))
	})
}

func TestValidator_FieldAccess(t *testing.T) {
	type Base struct {
		ID string `json:"id"`
	}
	type account struct {
		Base
		Email    string  `json:"email_address"`
		Nickname *string `json:"nickname,omitempty"`
		secret   string
	}

	s := validator.NewSchema("account").
		Field("id", validator.Required(true)).
		Field("email_address", validator.Required(true)).
		Field("nickname", validator.Lengths(2, 5)).
		Field("secret", validator.Required(true))
	v := validator.New(s)

	long := "abcdefgh"
	a := &account{Base: Base{ID: "1"}, Email: "a@b.co", Nickname: &long, secret: "x"}

	assert.Empty(t, v.FieldError(a, "id"), "promoted field by json tag")
	assert.Empty(t, v.FieldError(a, "email_address"), "json tag")
	assert.Equal(t, "nickname.length must be in [2,5]", v.FieldError(a, "nickname"), "pointer is followed")
	assert.Equal(t, "secret is required", v.FieldError(a, "secret"), "unexported fields read as missing")

	t.Run("struct passed by value", func(t *testing.T) {
		assert.Empty(t, v.FieldError(*a, "email_address"))
	})

	t.Run("nil object", func(t *testing.T) {
		var missing *account
		assert.Equal(t, "id is required", v.ValidateError(missing))
		assert.Equal(t, "id is required", v.ValidateError(nil))
	})
}

func TestValidator_Memoization(t *testing.T) {
	t.Run("recomputes only after the field changes", func(t *testing.T) {
		calls := 0
		s := validator.NewSchema("counter").Field("name", validator.Custom(func(_ string, value any, _ any) string {
			calls++
			if value == "" {
				return "empty"
			}
			return ""
		}))
		v := validator.New(s, memoized)
		p := &person{}

		assert.Equal(t, "empty", v.FieldError(p, "name"))
		assert.Equal(t, "empty", v.FieldError(p, "name"))
		assert.Equal(t, 1, calls)

		p.Name = "Ann"
		assert.Empty(t, v.FieldError(p, "name"))
		assert.Equal(t, 2, calls)

		assert.True(t, v.IsValid(p))
		assert.Equal(t, 2, calls)
	})

	t.Run("custom rules see changes to other fields", func(t *testing.T) {
		s := validator.NewSchema("range").Field("Age", validator.Custom(func(_ string, value any, owner any) string {
			if owner.(*person).Name == "kid" && value.(int) > 12 {
				return "too old for a kid"
			}
			return ""
		}))
		v := validator.New(s, memoized)
		p := &person{Name: "adult", Age: 30}

		assert.True(t, v.IsValid(p))
		p.Name = "kid"
		assert.Equal(t, "too old for a kid", v.ValidateError(p))
	})

	t.Run("in place map writes are seen", func(t *testing.T) {
		v := validator.New(validator.NewSchema("doc").Field("name", validator.Required(true)), memoized)
		doc := map[string]any{"name": ""}

		assert.False(t, v.IsValid(doc))
		doc["name"] = "Ann"
		assert.True(t, v.IsValid(doc))
	})

	t.Run("invalidate forces recompute", func(t *testing.T) {
		calls := 0
		s := validator.NewSchema("counter").Field("name", validator.Custom(func(string, any, any) string {
			calls++
			return ""
		}))
		v := validator.New(s, memoized)
		p := &person{}

		v.FieldError(p, "name")
		v.Invalidate(p)
		v.FieldError(p, "name")
		assert.Equal(t, 2, calls)
	})

	t.Run("on demand by default", func(t *testing.T) {
		calls := 0
		s := validator.NewSchema("counter").Field("name", validator.Custom(func(string, any, any) string {
			calls++
			return ""
		}))
		v := validator.New(s)
		p := &person{}

		v.FieldError(p, "name")
		v.FieldError(p, "name")
		v.Invalidate(p)
		assert.Equal(t, 2, calls)
	})

	t.Run("nested writes need invalidate", func(t *testing.T) {
		s := validator.NewSchema("customer").Field("Name", validator.Custom(cityRequired))
		v := validator.New(s, memoized)
		c := &customer{Name: "Ann", Addr: &address{}}

		assert.Equal(t, "city needed", v.ValidateError(c))
		c.Addr.City = "Paris"
		assert.Equal(t, "city needed", v.ValidateError(c))
		v.Invalidate(c)
		assert.Empty(t, v.ValidateError(c))
	})

	t.Run("redeclared rules are not served from cache", func(t *testing.T) {
		s := validator.NewSchema("person").Field("name", validator.Required(true))
		v := validator.New(s, memoized)
		p := &person{Name: "Ann"}

		assert.True(t, v.IsValid(p))
		s.Field("name", validator.Lengths(5, 10))
		assert.Equal(t, "name.length must be in [5,10]", v.ValidateError(p))
	})

	t.Run("objects are cached independently", func(t *testing.T) {
		v := validator.New(personSchema(), memoized)
		a, b := &person{Name: "Ann"}, &person{}

		assert.True(t, v.IsValid(a))
		assert.False(t, v.IsValid(b))
		assert.True(t, v.IsValid(a))
	})
}

func TestValidator_NestedCustomReads(t *testing.T) {
	s := validator.NewSchema("customer").Field("Name", validator.Custom(cityRequired))
	v := validator.New(s)
	c := &customer{Name: "Ann", Addr: &address{}}

	assert.Equal(t, "city needed", v.ValidateError(c))
	c.Addr.City = "Paris"
	assert.Empty(t, v.ValidateError(c))
	assert.True(t, v.IsValid(c))

	external := "closed"
	s.Field("Addr", validator.Custom(func(string, any, any) string {
		if external == "closed" {
			return "registration closed"
		}
		return ""
	}))
	assert.Equal(t, "registration closed", v.ValidateError(c))
	external = "open"
	assert.True(t, v.IsValid(c))
}

func TestValidator_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := validator.New(personSchema(), memoized, validator.WithLogger(logger))
	v.IsValid(&person{Name: "Ann"})

	out := buf.String()
	assert.Contains(t, out, "validator bound")
	assert.Contains(t, out, "schema=person")
	assert.Contains(t, out, "field error recomputed")
	assert.Contains(t, out, "property=validateErrorName")
}

func TestNew_PanicsOnNilSchema(t *testing.T) {
	assert.Panics(t, func() { validator.New(nil) })
}

func TestValidationErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.True(t, errs.IsEmpty())
		assert.Equal(t, "validation failed", errs.Error())
		assert.Empty(t, errs.Get("x"))
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "a", Message: "bad"})

		wrapped := errors.Join(errors.New("context"), errs)
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("unrelated errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("x")))
		assert.False(t, validator.IsValidationError(errors.New("x")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
