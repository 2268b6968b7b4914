package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	if len(a.checks) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
		return
	}
	for _, check := range a.checks {
		if err := check(r.Context()); err != nil {
			a.logger.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (a *API) listSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"schemas": a.catalog.Names()})
}

func (a *API) describeSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	schema, ok := a.catalog.Schema(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", ErrSchemaNotFound, name))
		return
	}

	parent := ""
	if p := schema.Parent(); p != nil {
		parent = p.Name()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"schema":     schema.Name(),
		"extends":    parent,
		"properties": schema.Names(),
	})
}

func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := a.validatorFor(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", ErrSchemaNotFound, name))
		return
	}

	obj, err := decodeObject(r, a.maxBodyBytes)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUnsupportedMediaType) {
			status = http.StatusUnsupportedMediaType
		}
		writeError(w, status, err)
		return
	}

	res := newResult(name, v.Errors(obj))
	a.logger.DebugContext(r.Context(), "document validated",
		logger.Schema(name),
		logger.Valid(res.Valid),
		logger.Count(len(res.Errors)),
	)
	writeJSON(w, http.StatusOK, res)
}
