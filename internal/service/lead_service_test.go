package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/pkg/cache"
)

type memInvestmentRepo struct {
	items []*domain.Investment
	seq   int
}

func (m *memInvestmentRepo) Create(_ context.Context, inv *domain.Investment) error {
	m.seq++
	inv.ID = fmt.Sprintf("inv-%d", m.seq)
	inv.CreatedAt = time.Now()
	m.items = append([]*domain.Investment{inv}, m.items...)
	return nil
}

func (m *memInvestmentRepo) List(_ context.Context) ([]*domain.Investment, error) {
	return m.items, nil
}

type memCommunityRepo struct {
	items []*domain.CommunityLead
}

func (m *memCommunityRepo) Create(_ context.Context, lead *domain.CommunityLead) error {
	lead.ID = fmt.Sprintf("cl-%d", len(m.items)+1)
	lead.JoinedAt = time.Now()
	m.items = append([]*domain.CommunityLead{lead}, m.items...)
	return nil
}

func (m *memCommunityRepo) List(_ context.Context) ([]*domain.CommunityLead, error) {
	return m.items, nil
}

type memMentorRepo struct {
	items []*domain.MentorContact
}

func (m *memMentorRepo) Create(_ context.Context, mc *domain.MentorContact) error {
	mc.ID = fmt.Sprintf("mc-%d", len(m.items)+1)
	mc.CreatedAt = time.Now()
	m.items = append([]*domain.MentorContact{mc}, m.items...)
	return nil
}

func (m *memMentorRepo) List(_ context.Context) ([]*domain.MentorContact, error) {
	return m.items, nil
}

type memContactRepo struct {
	items []*domain.ContactMessage
}

func (m *memContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	msg.ID = fmt.Sprintf("cm-%d", len(m.items)+1)
	msg.SubmittedAt = time.Now()
	m.items = append([]*domain.ContactMessage{msg}, m.items...)
	return nil
}

func (m *memContactRepo) List(_ context.Context) ([]*domain.ContactMessage, error) {
	return m.items, nil
}

type memDemoRepo struct {
	items []*domain.DemoRegistration
}

func (m *memDemoRepo) Create(_ context.Context, reg *domain.DemoRegistration) error {
	reg.ID = fmt.Sprintf("dr-%d", len(m.items)+1)
	reg.RegisteredAt = time.Now()
	m.items = append([]*domain.DemoRegistration{reg}, m.items...)
	return nil
}

func (m *memDemoRepo) List(_ context.Context) ([]*domain.DemoRegistration, error) {
	return m.items, nil
}

func newTestLeadService() (*LeadService, *memInvestmentRepo) {
	invRepo := &memInvestmentRepo{}
	repos := LeadRepositories{
		Investments:   invRepo,
		Community:     &memCommunityRepo{},
		Mentors:       &memMentorRepo{},
		Contacts:      &memContactRepo{},
		Registrations: &memDemoRepo{},
	}
	return NewLeadService(repos, cache.New(), time.Minute, nil), invRepo
}

func TestCreateInvestmentValidation(t *testing.T) {
	s, repo := newTestLeadService()

	err := s.CreateInvestment(context.Background(), &domain.Investment{
		Name: "Pat", Email: "pat@example.com", Amount: 5000,
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "startupName" {
		t.Fatalf("expected missing startupName error, got %v", err)
	}

	err = s.CreateInvestment(context.Background(), &domain.Investment{
		StartupName: "Acme", Name: "Pat", Email: "pat@example.com", Amount: 0,
	})
	if !errors.As(err, &verr) || verr.Field != "amount" {
		t.Fatalf("expected amount validation error, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("invalid investments must not be persisted")
	}

	if err := s.CreateInvestment(context.Background(), &domain.Investment{
		StartupName: "Acme", Name: "Pat", Email: "pat@example.com", Amount: 5000,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(repo.items) != 1 || repo.items[0].ID == "" {
		t.Fatalf("expected persisted investment with assigned id")
	}
}

func TestListInvestmentsCacheInvalidatedOnCreate(t *testing.T) {
	s, _ := newTestLeadService()
	ctx := context.Background()

	first := &domain.Investment{StartupName: "Acme", Name: "Pat", Email: "pat@example.com", Amount: 100}
	if err := s.CreateInvestment(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Prime the list cache
	items, err := s.ListInvestments(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 investment, got %d", len(items))
	}

	second := &domain.Investment{StartupName: "Globex", Name: "Sam", Email: "sam@example.com", Amount: 200}
	if err := s.CreateInvestment(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, err = s.ListInvestments(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("create must invalidate the cached listing, got %d items", len(items))
	}
	if items[0].StartupName != "Globex" {
		t.Fatalf("expected newest first, got %q", items[0].StartupName)
	}
}

func TestCreateCommunityLeadValidation(t *testing.T) {
	s, _ := newTestLeadService()

	err := s.CreateCommunityLead(context.Background(), &domain.CommunityLead{
		Name: "Pat", Email: "pat@example.com",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "reason" {
		t.Fatalf("expected missing reason error, got %v", err)
	}

	if err := s.CreateCommunityLead(context.Background(), &domain.CommunityLead{
		Name: "Pat", Email: "pat@example.com", Reason: "networking",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
}

func TestCreateMentorContactValidation(t *testing.T) {
	s, _ := newTestLeadService()

	err := s.CreateMentorContact(context.Background(), &domain.MentorContact{
		Name: "Pat", Email: "pat@example.com", Goal: "fundraising",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "profession" {
		t.Fatalf("expected missing profession error, got %v", err)
	}
}

func TestCreateContactMessageValidation(t *testing.T) {
	s, _ := newTestLeadService()

	err := s.CreateContactMessage(context.Background(), &domain.ContactMessage{
		Name: "Pat", Email: "pat@example.com", Subject: "Hello",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "message" {
		t.Fatalf("expected missing message error, got %v", err)
	}
}

func TestCreateDemoRegistrationValidation(t *testing.T) {
	s, _ := newTestLeadService()

	err := s.CreateDemoRegistration(context.Background(), &domain.DemoRegistration{
		FounderName: "Pat", Email: "pat@example.com", StartupName: "Acme", Industry: "fintech",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "demoDescription" {
		t.Fatalf("expected missing demoDescription error, got %v", err)
	}

	if err := s.CreateDemoRegistration(context.Background(), &domain.DemoRegistration{
		FounderName: "Pat", Email: "pat@example.com", StartupName: "Acme",
		Industry: "fintech", DemoDescription: "Live payments demo",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
}
