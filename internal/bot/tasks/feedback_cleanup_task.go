package tasks

import (
	"context"
	"fmt"
	"time"
)

// feedbackRetention is how long stored feedback reports are kept. Reports are
// forwarded to the admin on arrival; the stored copy is a safety net, not an
// archive.
const feedbackRetention = 90 * 24 * time.Hour

// newFeedbackCleanupTask creates the scheduled task that prunes feedback
// reports older than the retention window.
func newFeedbackCleanupTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "feedback_cleanup")

	return func(ctx context.Context) error {
		cutoff := time.Now().UTC().Add(-feedbackRetention)
		log.InfoContext(ctx, "Starting feedback cleanup task...", "cutoff", cutoff)

		removed, err := deps.Store.DeleteFeedbackBefore(ctx, cutoff)
		if err != nil {
			log.ErrorContext(ctx, "Feedback cleanup task failed", "error", err)
			return fmt.Errorf("feedback cleanup failed: %w", err)
		}

		log.InfoContext(ctx, "Feedback cleanup task completed", "removed", removed)
		return nil
	}
}
