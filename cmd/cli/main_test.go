package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/service"
)

type stubPitchRepo struct {
	created *domain.Pitch
}

func (s *stubPitchRepo) Create(_ context.Context, p *domain.Pitch) error {
	p.ID = "p-1"
	p.Status = domain.StatusPending
	p.SubmittedAt = time.Now()
	s.created = p
	return nil
}

func (s *stubPitchRepo) GetByID(context.Context, string) (*domain.Pitch, error) {
	return nil, &domain.NotFoundError{Resource: "pitch"}
}

func (s *stubPitchRepo) List(context.Context, string) ([]*domain.Pitch, error) {
	return nil, nil
}

func (s *stubPitchRepo) UpdateStatus(context.Context, string, string, bool) error {
	return nil
}

func (s *stubPitchRepo) CountByStatus(context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

// The payload the submit command sends must pass the API's own validation.
func TestPitchPayloadMatchesSubmitSchema(t *testing.T) {
	payload := pitchPayload(
		"Acme Robotics", "Jane Smith", "jane@acmerobotics.com", "555-0100",
		"robotics", "seed", "1M", "4",
		"Warehouse robots", "Picking is slow", "Autonomous pickers",
		"3PL warehouses", "RaaS subscription", "manual labor",
	)

	for _, field := range requiredPitchFields {
		if payload[field] == "" {
			t.Fatalf("payload missing required field %q", field)
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var input service.SubmitPitchInput
	if err := json.Unmarshal(data, &input); err != nil {
		t.Fatalf("unmarshal into submit input: %v", err)
	}

	repo := &stubPitchRepo{}
	svc := service.NewPitchService(repo, nil, 0, nil)
	pitch, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("payload rejected by submit validation: %v", err)
	}
	if pitch.CompanyName != "Acme Robotics" || pitch.BusinessModel != "RaaS subscription" {
		t.Fatalf("payload fields did not carry through: %+v", pitch)
	}
}
