package audit

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Recorder appends rows to the logs table as a side effect of mutating
// API calls.
type Recorder struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewRecorder returns a new Recorder.
func NewRecorder(pool *pgxpool.Pool, logger *slog.Logger) *Recorder {
	return &Recorder{pool: pool, logger: logger}
}

// Record inserts a log row. The audit trail is deliberately not part of the
// caller's write: a failure here is warned to the operator log and never
// fails the request.
func (r *Recorder) Record(ctx context.Context, userID int64, action, details string) {
	if r == nil || r.pool == nil {
		return
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO logs (user_id, action, details) VALUES ($1, $2, $3)`, userID, action, details)
	if err != nil && r.logger != nil {
		r.logger.Warn("audit record failed", slog.String("action", action), slog.Any("error", err))
	}
}
