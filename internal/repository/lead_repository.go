package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yourorg/pitchpoint/internal/domain"
)

// Lead-capture repositories. Each collection is append-only: insert with a
// server-side timestamp, list newest first. They share a connection but not
// a table, so there is no cross-collection atomicity to manage.

// PostgresInvestmentRepository implements domain.InvestmentRepository
type PostgresInvestmentRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresInvestmentRepository(db *sql.DB, logger *slog.Logger) *PostgresInvestmentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresInvestmentRepository{db: db, logger: logger}
}

func (r *PostgresInvestmentRepository) Create(ctx context.Context, inv *domain.Investment) error {
	inv.ID = uuid.NewString()

	query := `
		INSERT INTO investments (id, startup_name, name, email, amount, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		inv.ID, inv.StartupName, inv.Name, inv.Email, inv.Amount, inv.Message,
	).Scan(&inv.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create investment", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

func (r *PostgresInvestmentRepository) List(ctx context.Context) ([]*domain.Investment, error) {
	query := `
		SELECT id, startup_name, name, email, amount, message, created_at
		FROM investments
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var items []*domain.Investment
	for rows.Next() {
		inv := &domain.Investment{}
		if err := rows.Scan(&inv.ID, &inv.StartupName, &inv.Name, &inv.Email, &inv.Amount, &inv.Message, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

// PostgresCommunityLeadRepository implements domain.CommunityLeadRepository
type PostgresCommunityLeadRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresCommunityLeadRepository(db *sql.DB, logger *slog.Logger) *PostgresCommunityLeadRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCommunityLeadRepository{db: db, logger: logger}
}

func (r *PostgresCommunityLeadRepository) Create(ctx context.Context, lead *domain.CommunityLead) error {
	lead.ID = uuid.NewString()

	query := `
		INSERT INTO community_leads (id, name, email, organization, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING joined_at
	`

	err := r.db.QueryRowContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Organization, lead.Reason,
	).Scan(&lead.JoinedAt)
	if err != nil {
		r.logger.Error("failed to create community lead", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create community lead: %w", err)
	}
	return nil
}

func (r *PostgresCommunityLeadRepository) List(ctx context.Context) ([]*domain.CommunityLead, error) {
	query := `
		SELECT id, name, email, organization, reason, joined_at
		FROM community_leads
		ORDER BY joined_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list community leads: %w", err)
	}
	defer rows.Close()

	var items []*domain.CommunityLead
	for rows.Next() {
		lead := &domain.CommunityLead{}
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Organization, &lead.Reason, &lead.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community lead: %w", err)
		}
		items = append(items, lead)
	}
	return items, rows.Err()
}

// PostgresMentorContactRepository implements domain.MentorContactRepository
type PostgresMentorContactRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresMentorContactRepository(db *sql.DB, logger *slog.Logger) *PostgresMentorContactRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMentorContactRepository{db: db, logger: logger}
}

func (r *PostgresMentorContactRepository) Create(ctx context.Context, mc *domain.MentorContact) error {
	mc.ID = uuid.NewString()

	query := `
		INSERT INTO mentor_contacts (id, name, email, profession, goal, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		mc.ID, mc.Name, mc.Email, mc.Profession, mc.Goal, mc.Message,
	).Scan(&mc.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create mentor contact", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create mentor contact: %w", err)
	}
	return nil
}

func (r *PostgresMentorContactRepository) List(ctx context.Context) ([]*domain.MentorContact, error) {
	query := `
		SELECT id, name, email, profession, goal, message, created_at
		FROM mentor_contacts
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentor contacts: %w", err)
	}
	defer rows.Close()

	var items []*domain.MentorContact
	for rows.Next() {
		mc := &domain.MentorContact{}
		if err := rows.Scan(&mc.ID, &mc.Name, &mc.Email, &mc.Profession, &mc.Goal, &mc.Message, &mc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mentor contact: %w", err)
		}
		items = append(items, mc)
	}
	return items, rows.Err()
}

// PostgresContactMessageRepository implements domain.ContactMessageRepository
type PostgresContactMessageRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresContactMessageRepository(db *sql.DB, logger *slog.Logger) *PostgresContactMessageRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresContactMessageRepository{db: db, logger: logger}
}

func (r *PostgresContactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.ID = uuid.NewString()

	query := `
		INSERT INTO contact_messages (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING submitted_at
	`

	err := r.db.QueryRowContext(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.SubmittedAt)
	if err != nil {
		r.logger.Error("failed to create contact message", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *PostgresContactMessageRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, submitted_at
		FROM contact_messages
		ORDER BY submitted_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var items []*domain.ContactMessage
	for rows.Next() {
		msg := &domain.ContactMessage{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		items = append(items, msg)
	}
	return items, rows.Err()
}

// PostgresDemoRegistrationRepository implements domain.DemoRegistrationRepository
type PostgresDemoRegistrationRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresDemoRegistrationRepository(db *sql.DB, logger *slog.Logger) *PostgresDemoRegistrationRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresDemoRegistrationRepository{db: db, logger: logger}
}

func (r *PostgresDemoRegistrationRepository) Create(ctx context.Context, reg *domain.DemoRegistration) error {
	reg.ID = uuid.NewString()

	query := `
		INSERT INTO demo_registrations (id, founder_name, email, startup_name, industry, demo_description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING registered_at
	`

	err := r.db.QueryRowContext(ctx, query,
		reg.ID, reg.FounderName, reg.Email, reg.StartupName, reg.Industry, reg.DemoDescription,
	).Scan(&reg.RegisteredAt)
	if err != nil {
		r.logger.Error("failed to create demo registration", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create demo registration: %w", err)
	}
	return nil
}

func (r *PostgresDemoRegistrationRepository) List(ctx context.Context) ([]*domain.DemoRegistration, error) {
	query := `
		SELECT id, founder_name, email, startup_name, industry, demo_description, registered_at
		FROM demo_registrations
		ORDER BY registered_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list demo registrations: %w", err)
	}
	defer rows.Close()

	var items []*domain.DemoRegistration
	for rows.Next() {
		reg := &domain.DemoRegistration{}
		if err := rows.Scan(&reg.ID, &reg.FounderName, &reg.Email, &reg.StartupName, &reg.Industry, &reg.DemoDescription, &reg.RegisteredAt); err != nil {
			return nil, fmt.Errorf("failed to scan demo registration: %w", err)
		}
		items = append(items, reg)
	}
	return items, rows.Err()
}
