package domain

import (
	"context"
	"time"
)

// Lead-capture entities: append-only records whose only operations are
// create and list-by-recency. Wire names match the original public API.

// Investment is an investor's commitment inquiry for a startup
type Investment struct {
	ID          string    `json:"id"`
	StartupName string    `json:"startupName"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Amount      float64   `json:"amount"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommunityLead is a request to join the founder/mentor community
type CommunityLead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization,omitempty"`
	Reason       string    `json:"reason"`
	JoinedAt     time.Time `json:"joined_at"`
}

// MentorContact is a founder's request to reach a mentor
type MentorContact struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Profession string    `json:"profession"`
	Goal       string    `json:"goal"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ContactMessage is a generic contact-form submission
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// DemoRegistration is a founder's registration for a demo day slot
type DemoRegistration struct {
	ID              string    `json:"id"`
	FounderName     string    `json:"founderName"`
	Email           string    `json:"email"`
	StartupName     string    `json:"startupName"`
	Industry        string    `json:"industry"`
	DemoDescription string    `json:"demoDescription"`
	RegisteredAt    time.Time `json:"registeredAt"`
}

// InvestmentRepository defines data access for investments
type InvestmentRepository interface {
	Create(ctx context.Context, inv *Investment) error
	List(ctx context.Context) ([]*Investment, error)
}

// CommunityLeadRepository defines data access for community leads
type CommunityLeadRepository interface {
	Create(ctx context.Context, lead *CommunityLead) error
	List(ctx context.Context) ([]*CommunityLead, error)
}

// MentorContactRepository defines data access for mentor contacts
type MentorContactRepository interface {
	Create(ctx context.Context, mc *MentorContact) error
	List(ctx context.Context) ([]*MentorContact, error)
}

// ContactMessageRepository defines data access for contact messages
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context) ([]*ContactMessage, error)
}

// DemoRegistrationRepository defines data access for demo registrations
type DemoRegistrationRepository interface {
	Create(ctx context.Context, reg *DemoRegistration) error
	List(ctx context.Context) ([]*DemoRegistration, error)
}
