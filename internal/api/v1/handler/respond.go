package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends the error envelope used across the API: {"detail": ...}.
// detail is either a string or a field->message map.
func writeError(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

// validationDetail turns validator errors into a field->message map keyed by
// json field name.
func validationDetail(err error) any {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			detail[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
		return detail
	}
	return err.Error()
}

// boolFilter reads a tri-state boolean query parameter. An absent parameter
// filters to true, an explicitly empty one disables the filter, anything else
// must parse as a boolean.
func boolFilter(r *http.Request, key string) (*bool, error) {
	q := r.URL.Query()
	if !q.Has(key) {
		t := true
		return &t, nil
	}
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
