package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourorg/pitchpoint/internal/domain"
)

// errorResponse is the uniform error envelope: {success:false, message}.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the domain error taxonomy onto HTTP status codes.
// Anything unrecognized is a 500 with a generic message so internal
// details never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	var (
		validation *domain.ValidationError
		conflict   *domain.ConflictError
		notFound   *domain.NotFoundError
		authErr    *domain.AuthError
		delivery   *domain.DeliveryError
	)

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: validation.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: conflict.Error()})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: notFound.Error()})
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: authErr.Error()})
	case errors.As(err, &delivery):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "failed to send confirmation email"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}
