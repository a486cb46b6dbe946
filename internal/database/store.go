package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for database operations.
// Methods should accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveFeedback inserts a new feedback report.
	SaveFeedback(ctx context.Context, feedback *Feedback) error

	// RecentFeedback retrieves the most recent 'limit' feedback reports, newest first.
	RecentFeedback(ctx context.Context, limit int) ([]Feedback, error)

	// DeleteFeedbackBefore removes feedback reports created before the cutoff.
	// Returns the number of rows removed.
	DeleteFeedbackBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveFeedback inserts a new feedback report.
func (s *sqlxStore) SaveFeedback(ctx context.Context, feedback *Feedback) error {
	if feedback == nil {
		return fmt.Errorf("cannot save nil feedback")
	}
	if feedback.UserID == 0 {
		return fmt.Errorf("feedback must have a non-zero user_id")
	}
	if feedback.Content == "" {
		return fmt.Errorf("feedback must have non-empty content")
	}

	feedback.CreatedAt = time.Now().UTC()

	query := `INSERT INTO feedback (created_at, chat_id, user_id, username, content)
	          VALUES (:created_at, :chat_id, :user_id, :username, :content)`

	if _, err := s.db.NamedExecContext(ctx, query, feedback); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save feedback",
			"chat_id", feedback.ChatID, "user_id", feedback.UserID, "error", err)
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	s.logger.DebugContext(ctx, "Saved feedback report",
		"chat_id", feedback.ChatID, "user_id", feedback.UserID)
	return nil
}

// RecentFeedback retrieves the most recent 'limit' feedback reports, newest first.
func (s *sqlxStore) RecentFeedback(ctx context.Context, limit int) ([]Feedback, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	var reports []Feedback
	query := `SELECT id, created_at, chat_id, user_id, username, content
	          FROM feedback ORDER BY created_at DESC, id DESC LIMIT ?`

	if err := s.db.SelectContext(ctx, &reports, query, limit); err != nil {
		s.logger.ErrorContext(ctx, "Failed to query recent feedback", "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to query recent feedback: %w", err)
	}

	return reports, nil
}

// DeleteFeedbackBefore removes feedback reports created before the cutoff.
func (s *sqlxStore) DeleteFeedbackBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete old feedback", "cutoff", cutoff, "error", err)
		return 0, fmt.Errorf("failed to delete old feedback: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed feedback rows: %w", err)
	}

	if removed > 0 {
		s.logger.InfoContext(ctx, "Removed old feedback reports", "count", removed, "cutoff", cutoff)
	}
	return removed, nil
}

// RunSQLMaintenance performs database maintenance tasks like VACUUM.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	for _, stmt := range []string{"VACUUM", "ANALYZE"} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("maintenance statement %s failed: %w", stmt, err)
		}
	}
	s.logger.InfoContext(ctx, "SQL maintenance completed")
	return nil
}
