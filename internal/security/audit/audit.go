package audit

import (
	"context"
	"log/slog"
	"time"
)

// Logger records admin review actions to the structured log so every
// status decision is attributable to a user.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (al *Logger) LogAction(ctx context.Context, userID, username, action, resource, resourceID, status string) {
	al.logger.Info("audit",
		slog.String("action", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("user_id", userID),
		slog.String("username", username),
		slog.String("status", status),
		slog.Time("timestamp", time.Now()),
	)
}

// LogTransition records a pitch review decision.
func (al *Logger) LogTransition(ctx context.Context, userID, username, pitchID, target, status string) {
	al.LogAction(ctx, userID, username, "transition:"+target, "pitch", pitchID, status)
}
