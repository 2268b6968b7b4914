package api

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// FieldError is one failing field in a validation answer.
type FieldError struct {
	Field    string `json:"field"`
	Property string `json:"property"`
	Message  string `json:"message"`
	Kind     string `json:"kind"`
}

// Result is the body of a validation answer.
type Result struct {
	Schema string       `json:"schema"`
	Valid  bool         `json:"valid"`
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors"`
}

type errorBody struct {
	Error string `json:"error"`
}

func newResult(schema string, errs validator.ValidationErrors) Result {
	res := Result{
		Schema: schema,
		Valid:  errs.IsEmpty(),
		Errors: make([]FieldError, 0, len(errs)),
	}
	for _, e := range errs {
		res.Errors = append(res.Errors, FieldError{
			Field:    e.Field,
			Property: e.Property,
			Message:  e.Message,
			Kind:     kindName(e.Kind),
		})
	}
	if len(errs) > 0 {
		res.Error = errs[0].Message
	}
	return res
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// Custom rules leave Kind unset.
func kindName(k validator.Kind) string {
	if k == 0 {
		return "custom"
	}
	return k.String()
}
