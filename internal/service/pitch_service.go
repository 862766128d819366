package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/featureflags"
	"github.com/yourorg/pitchpoint/internal/infrastructure/redis"
	"github.com/yourorg/pitchpoint/internal/observability/metrics"
)

// ListingCache is the slice of the Redis client the read side needs.
// A nil cache disables caching entirely.
type ListingCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// SubmitPitchInput carries the founder-supplied fields of a submission.
// Any client-supplied status is ignored: a new pitch is always pending.
type SubmitPitchInput struct {
	CompanyName      string `json:"company_name"`
	FounderName      string `json:"founder_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Industry         string `json:"industry"`
	Stage            string `json:"stage"`
	FundingAmount    string `json:"funding_amount"`
	TeamSize         string `json:"team_size"`
	PitchSummary     string `json:"pitch_summary"`
	ProblemStatement string `json:"problem_statement"`
	Solution         string `json:"solution"`
	TargetMarket     string `json:"target_market"`
	BusinessModel    string `json:"business_model"`
	Competition      string `json:"competition"`
}

// PitchService owns the pitch lifecycle: submission, browsing, and the
// pending -> accepted/rejected review decision.
type PitchService struct {
	pitchRepo domain.PitchRepository
	cache     ListingCache
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewPitchService creates a new pitch lifecycle service
func NewPitchService(pitchRepo domain.PitchRepository, cache ListingCache, cacheTTL time.Duration, logger *slog.Logger) *PitchService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PitchService{
		pitchRepo: pitchRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Submit validates a founder submission and persists it with status pending.
func (s *PitchService) Submit(ctx context.Context, input SubmitPitchInput) (*domain.Pitch, error) {
	// Required fields are checked in declaration order so the error always
	// names the first missing one.
	required := []struct {
		name  string
		value string
	}{
		{"company_name", input.CompanyName},
		{"founder_name", input.FounderName},
		{"email", input.Email},
		{"industry", input.Industry},
		{"stage", input.Stage},
		{"pitch_summary", input.PitchSummary},
		{"problem_statement", input.ProblemStatement},
		{"solution", input.Solution},
		{"target_market", input.TargetMarket},
		{"business_model", input.BusinessModel},
	}
	for _, f := range required {
		if f.value == "" {
			metrics.ObservePitchSubmission("invalid")
			return nil, domain.NewMissingFieldError(f.name)
		}
	}

	pitch := &domain.Pitch{
		CompanyName:      input.CompanyName,
		FounderName:      input.FounderName,
		Email:            input.Email,
		Phone:            input.Phone,
		Industry:         input.Industry,
		Stage:            input.Stage,
		FundingAmount:    input.FundingAmount,
		TeamSize:         input.TeamSize,
		PitchSummary:     input.PitchSummary,
		ProblemStatement: input.ProblemStatement,
		Solution:         input.Solution,
		TargetMarket:     input.TargetMarket,
		BusinessModel:    input.BusinessModel,
		Competition:      input.Competition,
	}

	if err := s.pitchRepo.Create(ctx, pitch); err != nil {
		metrics.ObservePitchSubmission("error")
		return nil, err
	}

	s.invalidateListings(ctx)
	metrics.ObservePitchSubmission("success")

	s.logger.Info("pitch submitted",
		slog.String("pitch_id", pitch.ID),
		slog.String("company", pitch.CompanyName),
		slog.String("industry", pitch.Industry),
	)

	return pitch, nil
}

// List returns pitches newest first. An empty filter returns everything;
// otherwise the filter must be a valid status.
func (s *PitchService) List(ctx context.Context, statusFilter string) ([]*domain.Pitch, error) {
	if statusFilter != "" && !domain.ValidStatus(statusFilter) {
		return nil, &domain.ValidationError{Field: "status", Reason: "must be pending, accepted or rejected"}
	}

	cacheKey := listingCacheKey(statusFilter)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
			var pitches []*domain.Pitch
			if err := json.Unmarshal([]byte(raw), &pitches); err == nil {
				return pitches, nil
			}
		} else if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("pitch cache read failed", slog.String("error", err.Error()))
		}
	}

	pitches, err := s.pitchRepo.List(ctx, statusFilter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(pitches); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(data), s.cacheTTL); err != nil {
				s.logger.Warn("pitch cache write failed", slog.String("error", err.Error()))
			}
		}
	}

	return pitches, nil
}

// Transition applies an admin review decision. Target must be accepted or
// rejected; transitioning back to pending is never permitted. Re-deciding
// an already terminal pitch is allowed (last write wins) unless the
// STRICT_TRANSITIONS flag is on.
func (s *PitchService) Transition(ctx context.Context, id, target string) error {
	if target != domain.StatusAccepted && target != domain.StatusRejected {
		metrics.ObservePitchTransition(target, "invalid")
		return &domain.ValidationError{Field: "status", Reason: "must be accepted or rejected"}
	}

	fromPending := featureflags.Enabled(featureflags.StrictTransitions)

	if err := s.pitchRepo.UpdateStatus(ctx, id, target, fromPending); err != nil {
		metrics.ObservePitchTransition(target, "error")
		return err
	}

	s.invalidateListings(ctx)
	metrics.ObservePitchTransition(target, "success")

	s.logger.Info("pitch status changed",
		slog.String("pitch_id", id),
		slog.String("status", target),
	)

	return nil
}

// CountByStatus exposes the per-status totals for the stats worker.
func (s *PitchService) CountByStatus(ctx context.Context) (map[string]int, error) {
	return s.pitchRepo.CountByStatus(ctx)
}

func (s *PitchService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys := []string{
		listingCacheKey(""),
		listingCacheKey(domain.StatusPending),
		listingCacheKey(domain.StatusAccepted),
		listingCacheKey(domain.StatusRejected),
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("pitch cache invalidation failed", slog.String("error", err.Error()))
	}
}

func listingCacheKey(status string) string {
	if status == "" {
		return "pitches:all"
	}
	return "pitches:" + status
}
