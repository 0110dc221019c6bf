package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arvyax/wellness-sessions/internal/services"
)

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors services.ValidationErrors `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeValidationErrors writes the 400 per-field error body and reports
// whether err actually was a validation error.
func writeValidationErrors(w http.ResponseWriter, err error) bool {
	var verrs services.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: verrs})
	return true
}
