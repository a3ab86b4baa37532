package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"garments-api/internal/domain/apperr"
)

// envelope is embedded in every response body.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ok(message string) envelope {
	return envelope{Success: true, Message: message}
}

type idResponse struct {
	envelope
	ID string `json:"id"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err under op and writes the matching error envelope. Expected
// failures echo their own message; anything else answers with fallback.
func (h *Handlers) fail(w http.ResponseWriter, op string, err error, fallback string, args ...any) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.InternalError(op+": failed", err, args...)
		writeError(w, status, fallback)
		return
	}
	h.log.BusinessError(op+": rejected", err, args...)
	writeError(w, status, apperr.PublicMessage(err, fallback))
}
