package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/notification"
)

// ReserveRequest represents an event reservation
type ReserveRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Startup string `json:"startup"`
	Role    string `json:"role"`
}

// ReserveHandler handles event spot reservations. The confirmation email
// is synchronous and checked: success is only reported once the provider
// has accepted the message.
type ReserveHandler struct {
	mailer *notification.Mailer
	logger *slog.Logger
}

// NewReserveHandler creates a new reserve handler
func NewReserveHandler(mailer *notification.Mailer, logger *slog.Logger) *ReserveHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ReserveHandler{
		mailer: mailer,
		logger: logger,
	}
}

// ServeHTTP handles POST /reserve
func (h *ReserveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode reserve request", slog.String("error", err.Error()))
		writeBadRequest(w, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, domain.NewMissingFieldError("name"))
		return
	}
	if req.Email == "" {
		writeError(w, domain.NewMissingFieldError("email"))
		return
	}

	if err := h.mailer.SendReservationConfirmation(r.Context(), req.Name, req.Email); err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("reservation confirmed",
		slog.String("email", req.Email),
		slog.String("startup", req.Startup),
		slog.String("role", req.Role),
	)

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
