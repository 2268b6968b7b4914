package predicate

import (
	"slices"
	"sync"
)

// Func reports whether value satisfies the predicate.
type Func func(value string) bool

// Lookup resolves a predicate by name.
type Lookup interface {
	Lookup(name string) (Func, bool)
}

// Names of the built-in predicates.
const (
	Ascii       = "isAscii"
	Base64      = "isBase64"
	Boolean     = "isBoolean"
	CreditCard  = "isCreditCard"
	Currency    = "isCurrency"
	DataURI     = "isDataURI"
	Decimal     = "isDecimal"
	Email       = "isEmail"
	Float       = "isFloat"
	HexColor    = "isHexColor"
	Hexadecimal = "isHexadecimal"
	IP          = "isIP"
	Int         = "isInt"
	JSON        = "isJSON"
	MACAddress  = "isMACAddress"
	Numeric     = "isNumeric"
	URL         = "isURL"
	UUID        = "isUUID"
)

var builtins = map[string]Func{
	Ascii:       IsAscii,
	Base64:      IsBase64,
	Boolean:     IsBoolean,
	CreditCard:  IsCreditCard,
	Currency:    IsCurrency,
	DataURI:     IsDataURI,
	Decimal:     IsDecimal,
	Email:       IsEmail,
	Float:       IsFloat,
	HexColor:    IsHexColor,
	Hexadecimal: IsHexadecimal,
	IP:          IsIP,
	Int:         IsInt,
	JSON:        IsJSON,
	MACAddress:  IsMACAddress,
	Numeric:     IsNumeric,
	URL:         IsURL,
	UUID:        IsUUID,
}

// Registry is a concurrency-safe name to predicate mapping.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

var defaultRegistry = NewDefaultRegistry()

// Default returns the shared registry holding the built-in predicates.
func Default() *Registry {
	return defaultRegistry
}

// Register adds fn to the shared registry under name.
func Register(name string, fn Func) {
	defaultRegistry.Register(name, fn)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// NewDefaultRegistry returns a registry pre-filled with the built-in predicates.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for name, fn := range builtins {
		r.funcs[name] = fn
	}
	return r
}

// Register adds or replaces the predicate stored under name.
// Panics on an empty name or nil fn: both are programmer errors.
func (r *Registry) Register(name string, fn Func) {
	if name == "" {
		panic("predicate: empty name")
	}
	if fn == nil {
		panic("predicate: nil func for " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	for name, fn := range r.funcs {
		c.funcs[name] = fn
	}
	return c
}
