package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// DefaultMaxBodyBytes caps the size of a validated document.
const DefaultMaxBodyBytes = 1 << 20

// Catalog resolves schemas by name. *schemafile.Set implements it.
type Catalog interface {
	Schema(name string) (*validator.Schema, bool)
	Names() []string
}

// CheckFunc reports whether a dependency is ready.
type CheckFunc func(context.Context) error

// Option configures the API.
type Option func(*API)

// WithLogger sets the request logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithValidatorOptions passes options to every validator the API builds.
// Memoization stays off regardless.
func WithValidatorOptions(opts ...validator.Option) Option {
	return func(a *API) {
		a.validatorOpts = append(a.validatorOpts, opts...)
	}
}

// WithMaxBodyBytes limits request bodies. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodyBytes = n
		}
	}
}

// WithReadinessChecks turns /health into a readiness probe.
func WithReadinessChecks(checks ...CheckFunc) Option {
	return func(a *API) {
		for _, c := range checks {
			if c != nil {
				a.checks = append(a.checks, c)
			}
		}
	}
}

// API serves validation requests for the schemas of a Catalog.
type API struct {
	catalog       Catalog
	logger        *slog.Logger
	validatorOpts []validator.Option
	maxBodyBytes  int64
	checks        []CheckFunc

	mu         sync.Mutex
	validators map[string]*validator.Validator
}

// New returns an API over catalog. Panics on a nil catalog.
func New(catalog Catalog, opts ...Option) *API {
	if catalog == nil {
		panic("api: nil catalog")
	}
	a := &API{
		catalog:      catalog,
		logger:       logger.Discard(),
		maxBodyBytes: DefaultMaxBodyBytes,
		validators:   make(map[string]*validator.Validator),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router returns the chi router serving the API.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", a.health)
	r.Route("/schemas", func(r chi.Router) {
		r.Get("/", a.listSchemas)
		r.Get("/{name}", a.describeSchema)
		r.Post("/{name}/validate", a.validate)
	})
	return r
}

// validatorFor returns the validator bound to the named schema, creating
// it on first use. Request documents are fresh maps, so validators always
// run without memoization.
func (a *API) validatorFor(name string) (*validator.Validator, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if v, ok := a.validators[name]; ok {
		return v, true
	}
	schema, ok := a.catalog.Schema(name)
	if !ok {
		return nil, false
	}
	opts := append([]validator.Option{validator.WithLogger(a.logger)}, a.validatorOpts...)
	opts = append(opts, validator.WithCacheSize(0))
	v := validator.New(schema, opts...)
	a.validators[name] = v
	return v, true
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.logger.InfoContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
