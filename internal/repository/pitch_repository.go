package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yourorg/pitchpoint/internal/domain"
)

// PostgresPitchRepository implements domain.PitchRepository using PostgreSQL
type PostgresPitchRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresPitchRepository creates a new pitch repository
func NewPostgresPitchRepository(db *sql.DB, logger *slog.Logger) *PostgresPitchRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPitchRepository{
		db:     db,
		logger: logger,
	}
}

const pitchColumns = `id, company_name, founder_name, email, phone, industry, stage,
	funding_amount, team_size, pitch_summary, problem_statement, solution,
	target_market, business_model, competition, status, submitted_at`

// Create inserts a new pitch. The ID is assigned here; status and
// submitted_at come back from the database defaults.
func (r *PostgresPitchRepository) Create(ctx context.Context, pitch *domain.Pitch) error {
	pitch.ID = uuid.NewString()

	query := `
		INSERT INTO pitches (id, company_name, founder_name, email, phone, industry,
			stage, funding_amount, team_size, pitch_summary, problem_statement,
			solution, target_market, business_model, competition, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING status, submitted_at
	`

	err := r.db.QueryRowContext(ctx, query,
		pitch.ID,
		pitch.CompanyName,
		pitch.FounderName,
		pitch.Email,
		pitch.Phone,
		pitch.Industry,
		pitch.Stage,
		pitch.FundingAmount,
		pitch.TeamSize,
		pitch.PitchSummary,
		pitch.ProblemStatement,
		pitch.Solution,
		pitch.TargetMarket,
		pitch.BusinessModel,
		pitch.Competition,
		domain.StatusPending,
	).Scan(&pitch.Status, &pitch.SubmittedAt)

	if err != nil {
		r.logger.Error("failed to create pitch",
			slog.String("company", pitch.CompanyName),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to create pitch: %w", err)
	}

	return nil
}

// GetByID retrieves a pitch by ID
func (r *PostgresPitchRepository) GetByID(ctx context.Context, id string) (*domain.Pitch, error) {
	pitch := &domain.Pitch{}

	query := `SELECT ` + pitchColumns + ` FROM pitches WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pitch.ID,
		&pitch.CompanyName,
		&pitch.FounderName,
		&pitch.Email,
		&pitch.Phone,
		&pitch.Industry,
		&pitch.Stage,
		&pitch.FundingAmount,
		&pitch.TeamSize,
		&pitch.PitchSummary,
		&pitch.ProblemStatement,
		&pitch.Solution,
		&pitch.TargetMarket,
		&pitch.BusinessModel,
		&pitch.Competition,
		&pitch.Status,
		&pitch.SubmittedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "pitch", ID: id}
		}
		r.logger.Error("failed to get pitch by id",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to get pitch: %w", err)
	}

	return pitch, nil
}

// List returns pitches newest first, optionally filtered by status
func (r *PostgresPitchRepository) List(ctx context.Context, status string) ([]*domain.Pitch, error) {
	query := `SELECT ` + pitchColumns + ` FROM pitches`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list pitches",
			slog.String("status", status),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to list pitches: %w", err)
	}
	defer rows.Close()

	var pitches []*domain.Pitch
	for rows.Next() {
		pitch := &domain.Pitch{}
		err := rows.Scan(
			&pitch.ID,
			&pitch.CompanyName,
			&pitch.FounderName,
			&pitch.Email,
			&pitch.Phone,
			&pitch.Industry,
			&pitch.Stage,
			&pitch.FundingAmount,
			&pitch.TeamSize,
			&pitch.PitchSummary,
			&pitch.ProblemStatement,
			&pitch.Solution,
			&pitch.TargetMarket,
			&pitch.BusinessModel,
			&pitch.Competition,
			&pitch.Status,
			&pitch.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pitch: %w", err)
		}
		pitches = append(pitches, pitch)
	}

	return pitches, rows.Err()
}

// UpdateStatus overwrites the review status of a pitch. With fromPending
// set, terminal pitches are left untouched and reported as a conflict.
func (r *PostgresPitchRepository) UpdateStatus(ctx context.Context, id, status string, fromPending bool) error {
	query := `UPDATE pitches SET status = $1 WHERE id = $2`
	args := []interface{}{status, id}
	if fromPending {
		query += ` AND status = $3`
		args = append(args, domain.StatusPending)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update pitch status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if fromPending {
			// Distinguish a missing pitch from one already decided.
			if _, err := r.GetByID(ctx, id); err != nil {
				return err
			}
			return &domain.ConflictError{Resource: "pitch", Field: "status"}
		}
		return &domain.NotFoundError{Resource: "pitch", ID: id}
	}

	return nil
}

// CountByStatus returns the number of pitches per review status
func (r *PostgresPitchRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM pitches GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count pitches: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
