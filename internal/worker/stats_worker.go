package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/observability/metrics"
)

// StatsWorker periodically refreshes the pitches-by-status gauges from the
// store so dashboards stay close to the truth between scrapes.
type StatsWorker struct {
	pitchRepo domain.PitchRepository
	logger    *slog.Logger
	interval  time.Duration
}

// NewStatsWorker creates a new stats worker
func NewStatsWorker(pitchRepo domain.PitchRepository, logger *slog.Logger, interval time.Duration) *StatsWorker {
	return &StatsWorker{
		pitchRepo: pitchRepo,
		logger:    logger,
		interval:  interval,
	}
}

// Start begins the refresh loop. It runs until ctx is cancelled.
func (w *StatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("stats worker started", slog.Duration("interval", w.interval))

	// Prime the gauges once at startup rather than waiting a full tick.
	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stats worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsWorker) refresh(ctx context.Context) {
	counts, err := w.pitchRepo.CountByStatus(ctx)
	if err != nil {
		w.logger.Error("failed to count pitches by status",
			slog.String("error", err.Error()),
		)
		return
	}

	for _, status := range []string{domain.StatusPending, domain.StatusAccepted, domain.StatusRejected} {
		metrics.SetPitchesByStatus(status, counts[status])
	}
}
