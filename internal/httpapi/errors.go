package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"croprecd/internal/predict"
	"croprecd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode()
	}
	var ve *predict.ValidationError
	switch {
	case predict.IsNotLoaded(err):
		return http.StatusServiceUnavailable
	case errors.As(err, &ve):
		if ve.Strict {
			return http.StatusBadRequest
		}
		return http.StatusUnprocessableEntity
	case predict.IsUnknownCategory(err), predict.IsBatchTooLarge(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError translates err and writes it. Validation errors carry
// their individual messages as details.
func writeServiceError(w http.ResponseWriter, err error) int {
	status := statusFor(err)
	var ve *predict.ValidationError
	if errors.As(err, &ve) {
		msg := "Invalid input parameters"
		if ve.Strict {
			msg = "Validation failed"
		}
		writeJSONError(w, status, msg, ve.Messages...)
		return status
	}
	writeJSONError(w, status, err.Error())
	return status
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string, details ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status, Details: details})
}

// writeJSON writes v with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
