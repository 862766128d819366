package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/service"
)

// LeadsHandler handles the lead-capture collections: investments,
// community leads, mentor contacts, contact messages and demo
// registrations. All follow the same create/list-by-recency contract.
type LeadsHandler struct {
	leadService *service.LeadService
	logger      *slog.Logger
}

// NewLeadsHandler creates a new leads handler
func NewLeadsHandler(leadService *service.LeadService, logger *slog.Logger) *LeadsHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &LeadsHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// CreateInvestment handles POST /api/invest
func (h *LeadsHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var inv domain.Investment
	if !h.decode(w, r, &inv) {
		return
	}

	if err := h.leadService.CreateInvestment(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Investment saved successfully!",
	})
}

// ListInvestments handles GET /api/investments
func (h *LeadsHandler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	items, err := h.leadService.ListInvestments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*domain.Investment{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateCommunityLead handles POST /api/community
func (h *LeadsHandler) CreateCommunityLead(w http.ResponseWriter, r *http.Request) {
	var lead domain.CommunityLead
	if !h.decode(w, r, &lead) {
		return
	}

	if err := h.leadService.CreateCommunityLead(r.Context(), &lead); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Community request saved successfully!",
	})
}

// ListCommunityLeads handles GET /api/community-leads
func (h *LeadsHandler) ListCommunityLeads(w http.ResponseWriter, r *http.Request) {
	items, err := h.leadService.ListCommunityLeads(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*domain.CommunityLead{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateMentorContact handles POST /api/mentor-contact
func (h *LeadsHandler) CreateMentorContact(w http.ResponseWriter, r *http.Request) {
	var mc domain.MentorContact
	if !h.decode(w, r, &mc) {
		return
	}

	if err := h.leadService.CreateMentorContact(r.Context(), &mc); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ListMentorContacts handles GET /api/leads
func (h *LeadsHandler) ListMentorContacts(w http.ResponseWriter, r *http.Request) {
	items, err := h.leadService.ListMentorContacts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*domain.MentorContact{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateContactMessage handles POST /api/contact
func (h *LeadsHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !h.decode(w, r, &msg) {
		return
	}

	if err := h.leadService.CreateContactMessage(r.Context(), &msg); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ListContactMessages handles GET /api/contact
func (h *LeadsHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	items, err := h.leadService.ListContactMessages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*domain.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateDemoRegistration handles POST /api/demo-register
func (h *LeadsHandler) CreateDemoRegistration(w http.ResponseWriter, r *http.Request) {
	var reg domain.DemoRegistration
	if !h.decode(w, r, &reg) {
		return
	}

	if err := h.leadService.CreateDemoRegistration(r.Context(), &reg); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Demo registered successfully",
	})
}

// ListDemoRegistrations handles GET /api/demo-registrations
func (h *LeadsHandler) ListDemoRegistrations(w http.ResponseWriter, r *http.Request) {
	items, err := h.leadService.ListDemoRegistrations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*domain.DemoRegistration{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *LeadsHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Warn("failed to decode lead request",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeBadRequest(w, "invalid request body")
		return false
	}
	return true
}
