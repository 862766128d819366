package domain

import (
	"context"
	"time"
)

// Pitch statuses. A pitch starts pending; accepted and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three pitch statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Pitch represents a founder's submitted startup proposal
type Pitch struct {
	ID               string    `json:"id"`
	CompanyName      string    `json:"company_name"`
	FounderName      string    `json:"founder_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Industry         string    `json:"industry"`
	Stage            string    `json:"stage"`
	FundingAmount    string    `json:"funding_amount,omitempty"`
	TeamSize         string    `json:"team_size,omitempty"`
	PitchSummary     string    `json:"pitch_summary"`
	ProblemStatement string    `json:"problem_statement"`
	Solution         string    `json:"solution"`
	TargetMarket     string    `json:"target_market"`
	BusinessModel    string    `json:"business_model"`
	Competition      string    `json:"competition,omitempty"`
	Status           string    `json:"status"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// PitchRepository defines data access for pitches
type PitchRepository interface {
	Create(ctx context.Context, pitch *Pitch) error
	GetByID(ctx context.Context, id string) (*Pitch, error)
	// List returns pitches newest first, filtered by status when status != "".
	List(ctx context.Context, status string) ([]*Pitch, error)
	// UpdateStatus overwrites the status of an existing pitch. When
	// fromPending is true the update only applies to pending pitches and
	// a terminal pitch yields a ConflictError.
	UpdateStatus(ctx context.Context, id, status string, fromPending bool) error
	// CountByStatus returns the number of pitches in each status.
	CountByStatus(ctx context.Context) (map[string]int, error)
}
