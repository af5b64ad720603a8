package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"catalogo-3d/models"
)

// writeJSON encodes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// writeError maps an error to its status code and a JSON {"error": ...} body.
// ValidationError -> 400, ErrNotFound -> 404, anything else -> 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if models.IsValidation(err) {
		status = http.StatusBadRequest
	} else if errors.Is(err, models.ErrNotFound) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeJSON decodes a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return models.NewValidationError("invalid request body: " + err.Error())
	}
	return nil
}
