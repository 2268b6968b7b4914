package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/predicate"
)

func TestBuiltinPredicates(t *testing.T) {
	tests := []struct {
		name  string
		fn    predicate.Func
		valid []string
		bad   []string
	}{
		{
			name:  "ascii",
			fn:    predicate.IsAscii,
			valid: []string{"hello", "a-b_c 1!"},
			bad:   []string{"", "héllo", "日本"},
		},
		{
			name:  "base64",
			fn:    predicate.IsBase64,
			valid: []string{"SGVsbG8=", "SGVsbG8gV29ybGQ=", "YWJj"},
			bad:   []string{"", "SGVsbG8", "not base64!", "===="},
		},
		{
			name:  "boolean",
			fn:    predicate.IsBoolean,
			valid: []string{"true", "false", "1", "0"},
			bad:   []string{"", "yes", "TRUE", "2"},
		},
		{
			name:  "credit card",
			fn:    predicate.IsCreditCard,
			valid: []string{"4111111111111111", "4111 1111 1111 1111", "5555-5555-5555-4444", "378282246310005"},
			bad:   []string{"", "4111111111111112", "1234", "abcd efgh ijkl mnop"},
		},
		{
			name:  "currency",
			fn:    predicate.IsCurrency,
			valid: []string{"$1,234.56", "1234", "-10", "$0.99"},
			bad:   []string{"", "1,23", "$1.2", "abc"},
		},
		{
			name:  "data uri",
			fn:    predicate.IsDataURI,
			valid: []string{"data:,Hello", "data:text/plain;base64,SGVsbG8=", "data:image/png;base64,iVBORw0KGgo="},
			bad:   []string{"", "http://example.com", "data:text/plain"},
		},
		{
			name:  "decimal",
			fn:    predicate.IsDecimal,
			valid: []string{"1", "-1.5", ".5", "+3.14"},
			bad:   []string{"", ".", "1.", "1e5", "abc"},
		},
		{
			name:  "email",
			fn:    predicate.IsEmail,
			valid: []string{"ann@example.com", "first.last+tag@sub.example.org"},
			bad:   []string{"", "ann", "ann@localhost", "Ann <ann@example.com>", "ann@example.", "ann@.com"},
		},
		{
			name:  "float",
			fn:    predicate.IsFloat,
			valid: []string{"1", "1.5", "-0.25", ".5", "5.", "1e10", "-2.5E-3"},
			bad:   []string{"", ".", "-", "e5", "1.2.3", "abc"},
		},
		{
			name:  "hex color",
			fn:    predicate.IsHexColor,
			valid: []string{"#fff", "#FFFFFF", "ffffff", "#ffff", "#ffffff80"},
			bad:   []string{"", "#ff", "#fffff", "#ggg"},
		},
		{
			name:  "hexadecimal",
			fn:    predicate.IsHexadecimal,
			valid: []string{"ff", "0xFF", "0h1a", "deadBEEF"},
			bad:   []string{"", "0x", "xyz"},
		},
		{
			name:  "ip",
			fn:    predicate.IsIP,
			valid: []string{"127.0.0.1", "::1", "2001:db8::68"},
			bad:   []string{"", "256.0.0.1", "localhost"},
		},
		{
			name:  "int",
			fn:    predicate.IsInt,
			valid: []string{"0", "42", "-7", "+3"},
			bad:   []string{"", "01", "1.5", "abc"},
		},
		{
			name:  "json",
			fn:    predicate.IsJSON,
			valid: []string{`{}`, `{"a":1}`, `[1,2,3]`, ` {"nested":{"b":[true]}} `},
			bad:   []string{"", "1", "true", `"str"`, `{bad}`},
		},
		{
			name:  "mac address",
			fn:    predicate.IsMACAddress,
			valid: []string{"00:1A:2B:3C:4D:5E", "00-1a-2b-3c-4d-5e", "001a.2b3c.4d5e"},
			bad:   []string{"", "00:1A:2B:3C:4D", "zz:zz:zz:zz:zz:zz"},
		},
		{
			name:  "numeric",
			fn:    predicate.IsNumeric,
			valid: []string{"0", "-12", "3.14", ".5"},
			bad:   []string{"", "1.", "abc", "1e5"},
		},
		{
			name:  "url",
			fn:    predicate.IsURL,
			valid: []string{"https://example.com", "http://example.com/path?q=1", "example.com/path", "http://127.0.0.1:8080"},
			bad:   []string{"", "not a url", "http://", "localhost", "http://example."},
		},
		{
			name:  "uuid",
			fn:    predicate.IsUUID,
			valid: []string{"550e8400-e29b-41d4-a716-446655440000", "00000000-0000-0000-0000-000000000000"},
			bad:   []string{"", "550e8400e29b41d4a716446655440000", "550e8400-e29b-41d4-a716-44665544000g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.valid {
				assert.True(t, tt.fn(v), "expected %q to be valid", v)
			}
			for _, v := range tt.bad {
				assert.False(t, tt.fn(v), "expected %q to be invalid", v)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Run("default registry holds every builtin", func(t *testing.T) {
		names := predicate.Default().Names()
		assert.Len(t, names, 18)
		assert.Contains(t, names, predicate.Email)
		assert.Contains(t, names, predicate.UUID)
		assert.IsIncreasing(t, names)
	})

	t.Run("lookup unknown name", func(t *testing.T) {
		fn, ok := predicate.NewDefaultRegistry().Lookup("isNothing")
		assert.False(t, ok)
		assert.Nil(t, fn)
	})

	t.Run("register custom predicate", func(t *testing.T) {
		r := predicate.NewRegistry()
		r.Register("isShort", func(s string) bool { return len(s) < 4 })

		fn, ok := r.Lookup("isShort")
		assert.True(t, ok)
		assert.True(t, fn("abc"))
		assert.False(t, fn("abcd"))
	})

	t.Run("register replaces existing", func(t *testing.T) {
		r := predicate.NewDefaultRegistry()
		r.Register(predicate.Int, func(string) bool { return false })

		fn, _ := r.Lookup(predicate.Int)
		assert.False(t, fn("42"))
	})

	t.Run("clone is independent", func(t *testing.T) {
		r := predicate.NewRegistry()
		c := r.Clone()
		c.Register("isX", func(string) bool { return true })

		_, ok := r.Lookup("isX")
		assert.False(t, ok)
	})

	t.Run("register panics on invalid input", func(t *testing.T) {
		r := predicate.NewRegistry()
		assert.Panics(t, func() { r.Register("", func(string) bool { return true }) })
		assert.Panics(t, func() { r.Register("isX", nil) })
	})
}
