package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/security/audit"
	"github.com/yourorg/pitchpoint/internal/security/middleware"
	"github.com/yourorg/pitchpoint/internal/service"
)

// PitchHandler handles pitch submission, browsing and review
type PitchHandler struct {
	pitchService *service.PitchService
	auditLogger  *audit.Logger
	logger       *slog.Logger
}

// NewPitchHandler creates a new pitch handler
func NewPitchHandler(pitchService *service.PitchService, auditLogger *audit.Logger, logger *slog.Logger) *PitchHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PitchHandler{
		pitchService: pitchService,
		auditLogger:  auditLogger,
		logger:       logger,
	}
}

// Submit handles POST /api/submit-pitch. Whatever status the client sends
// is discarded; the stored pitch is always pending.
func (h *PitchHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitPitchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("failed to decode pitch submission", slog.String("error", err.Error()))
		writeBadRequest(w, "invalid request body")
		return
	}

	pitch, err := h.pitchService.Submit(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"pitch":   pitch,
	})
}

// List handles GET /api/pitches?status= for both the admin review queue
// and the public browse view. The response is a bare array.
func (h *PitchHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	pitches, err := h.pitchService.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}

	if pitches == nil {
		pitches = []*domain.Pitch{}
	}
	writeJSON(w, http.StatusOK, pitches)
}

// TransitionRequest carries the target review status
type TransitionRequest struct {
	Status string `json:"status"`
}

// Transition handles PUT /api/pitches/{id}. Requires Bearer auth.
func (h *PitchHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode transition request", slog.String("error", err.Error()))
		writeBadRequest(w, "invalid request body")
		return
	}

	claims := middleware.GetClaimsFromContext(r.Context())
	userID, username := "", ""
	if claims != nil {
		userID, username = claims.UserID, claims.Username
	}

	if err := h.pitchService.Transition(r.Context(), id, req.Status); err != nil {
		if h.auditLogger != nil {
			h.auditLogger.LogTransition(r.Context(), userID, username, id, req.Status, "denied")
		}
		writeError(w, err)
		return
	}

	if h.auditLogger != nil {
		h.auditLogger.LogTransition(r.Context(), userID, username, id, req.Status, "applied")
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
