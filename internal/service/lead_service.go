package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/observability/metrics"
	"github.com/yourorg/pitchpoint/pkg/cache"
)

// LeadService implements the shared lead-capture contract: validate the
// collection's required fields, persist with the collection's timestamp,
// and list newest first. List reads go through a short-lived in-process
// cache that is dropped on every create.
type LeadService struct {
	investments   domain.InvestmentRepository
	community     domain.CommunityLeadRepository
	mentors       domain.MentorContactRepository
	contacts      domain.ContactMessageRepository
	registrations domain.DemoRegistrationRepository
	cache         *cache.Cache
	cacheTTL      time.Duration
	logger        *slog.Logger
}

// LeadRepositories bundles the five collection repositories.
type LeadRepositories struct {
	Investments   domain.InvestmentRepository
	Community     domain.CommunityLeadRepository
	Mentors       domain.MentorContactRepository
	Contacts      domain.ContactMessageRepository
	Registrations domain.DemoRegistrationRepository
}

// NewLeadService creates a new lead-capture service
func NewLeadService(repos LeadRepositories, listCache *cache.Cache, cacheTTL time.Duration, logger *slog.Logger) *LeadService {
	if logger == nil {
		logger = slog.Default()
	}

	return &LeadService{
		investments:   repos.Investments,
		community:     repos.Community,
		mentors:       repos.Mentors,
		contacts:      repos.Contacts,
		registrations: repos.Registrations,
		cache:         listCache,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// CreateInvestment validates and stores an investment inquiry.
func (s *LeadService) CreateInvestment(ctx context.Context, inv *domain.Investment) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"startupName", inv.StartupName},
		{"name", inv.Name},
		{"email", inv.Email},
	} {
		if f.value == "" {
			metrics.ObserveLeadCapture("investments", "invalid")
			return domain.NewMissingFieldError(f.name)
		}
	}
	if inv.Amount <= 0 {
		metrics.ObserveLeadCapture("investments", "invalid")
		return &domain.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	return s.create(ctx, "investments", func() error {
		return s.investments.Create(ctx, inv)
	})
}

// ListInvestments returns investment inquiries newest first.
func (s *LeadService) ListInvestments(ctx context.Context) ([]*domain.Investment, error) {
	if cached, ok := s.cached("investments"); ok {
		return cached.([]*domain.Investment), nil
	}
	items, err := s.investments.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store("investments", items)
	return items, nil
}

// CreateCommunityLead validates and stores a community join request.
func (s *LeadService) CreateCommunityLead(ctx context.Context, lead *domain.CommunityLead) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", lead.Name},
		{"email", lead.Email},
		{"reason", lead.Reason},
	} {
		if f.value == "" {
			metrics.ObserveLeadCapture("community", "invalid")
			return domain.NewMissingFieldError(f.name)
		}
	}

	return s.create(ctx, "community", func() error {
		return s.community.Create(ctx, lead)
	})
}

// ListCommunityLeads returns community leads newest first.
func (s *LeadService) ListCommunityLeads(ctx context.Context) ([]*domain.CommunityLead, error) {
	if cached, ok := s.cached("community"); ok {
		return cached.([]*domain.CommunityLead), nil
	}
	items, err := s.community.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store("community", items)
	return items, nil
}

// CreateMentorContact validates and stores a mentor contact request.
func (s *LeadService) CreateMentorContact(ctx context.Context, mc *domain.MentorContact) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", mc.Name},
		{"email", mc.Email},
		{"profession", mc.Profession},
		{"goal", mc.Goal},
	} {
		if f.value == "" {
			metrics.ObserveLeadCapture("mentor_contacts", "invalid")
			return domain.NewMissingFieldError(f.name)
		}
	}

	return s.create(ctx, "mentor_contacts", func() error {
		return s.mentors.Create(ctx, mc)
	})
}

// ListMentorContacts returns mentor contact requests newest first.
func (s *LeadService) ListMentorContacts(ctx context.Context) ([]*domain.MentorContact, error) {
	if cached, ok := s.cached("mentor_contacts"); ok {
		return cached.([]*domain.MentorContact), nil
	}
	items, err := s.mentors.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store("mentor_contacts", items)
	return items, nil
}

// CreateContactMessage validates and stores a contact-form message.
func (s *LeadService) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", msg.Name},
		{"email", msg.Email},
		{"subject", msg.Subject},
		{"message", msg.Message},
	} {
		if f.value == "" {
			metrics.ObserveLeadCapture("contact_messages", "invalid")
			return domain.NewMissingFieldError(f.name)
		}
	}

	return s.create(ctx, "contact_messages", func() error {
		return s.contacts.Create(ctx, msg)
	})
}

// ListContactMessages returns contact messages newest first.
func (s *LeadService) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	if cached, ok := s.cached("contact_messages"); ok {
		return cached.([]*domain.ContactMessage), nil
	}
	items, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store("contact_messages", items)
	return items, nil
}

// CreateDemoRegistration validates and stores a demo day registration.
func (s *LeadService) CreateDemoRegistration(ctx context.Context, reg *domain.DemoRegistration) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"founderName", reg.FounderName},
		{"email", reg.Email},
		{"startupName", reg.StartupName},
		{"industry", reg.Industry},
		{"demoDescription", reg.DemoDescription},
	} {
		if f.value == "" {
			metrics.ObserveLeadCapture("demo_registrations", "invalid")
			return domain.NewMissingFieldError(f.name)
		}
	}

	return s.create(ctx, "demo_registrations", func() error {
		return s.registrations.Create(ctx, reg)
	})
}

// ListDemoRegistrations returns demo registrations newest first.
func (s *LeadService) ListDemoRegistrations(ctx context.Context) ([]*domain.DemoRegistration, error) {
	if cached, ok := s.cached("demo_registrations"); ok {
		return cached.([]*domain.DemoRegistration), nil
	}
	items, err := s.registrations.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store("demo_registrations", items)
	return items, nil
}

func (s *LeadService) create(ctx context.Context, collection string, insert func() error) error {
	if err := insert(); err != nil {
		metrics.ObserveLeadCapture(collection, "error")
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(collection + ":")
	}
	metrics.ObserveLeadCapture(collection, "success")
	s.logger.Info("lead captured", slog.String("collection", collection))
	return nil
}

func (s *LeadService) cached(collection string) (interface{}, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(collection + ":list")
}

func (s *LeadService) store(collection string, items interface{}) {
	if s.cache == nil {
		return
	}
	s.cache.Set(collection+":list", items, s.cacheTTL)
}
