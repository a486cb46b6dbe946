package handlers

import (
	"context"
	"fmt"
	"strings"
)

// reportsLimit caps how many stored feedback reports /reports returns.
const reportsLimit = 10

// NewReportsHandler returns a handler for the admin-only /reports command,
// which lists the most recent stored feedback reports.
func NewReportsHandler(deps HandlerDeps) HandlerFunc {
	return reportsHandler{deps}.Handle
}

type reportsHandler struct {
	deps HandlerDeps
}

func (h reportsHandler) Handle(ctx context.Context, b MessageSender, ev Event) {
	log := h.deps.Logger.With("handler", "reports")

	log.InfoContext(ctx, "Handling /reports command", "chat_id", ev.ChatID)

	reports, err := h.deps.Store.RecentFeedback(ctx, reportsLimit)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load feedback reports", "error", err)
		sendReply(ctx, b, log, ev.ChatID, h.deps.Config.Messages.GeneralError, nil)
		return
	}

	if len(reports) == 0 {
		sendReply(ctx, b, log, ev.ChatID, "No feedback reports stored.", nil)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Last %d feedback reports:\n\n", len(reports))
	for _, r := range reports {
		name := r.Username
		if name == "" {
			name = fmt.Sprintf("user %d", r.UserID)
		}
		fmt.Fprintf(&sb, "%s — %s (chat %d):\n%s\n\n",
			r.CreatedAt.Format("2006-01-02 15:04"), name, r.ChatID, r.Content)
	}

	sendReply(ctx, b, log, ev.ChatID, strings.TrimSpace(sb.String()), nil)
}
