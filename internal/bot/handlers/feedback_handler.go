package handlers

import (
	"context"

	"github.com/edgard/calcbot/internal/database"
)

// NewFeedbackHandler returns a handler for the /feedback command.
func NewFeedbackHandler(deps HandlerDeps) HandlerFunc {
	return feedbackHandler{deps}.Handle
}

// feedbackHandler acknowledges the sender and forwards the report to the
// admin chat. Reports are persisted first so they are not lost if the admin
// chat is unreachable.
type feedbackHandler struct {
	deps HandlerDeps
}

func (h feedbackHandler) Handle(ctx context.Context, b MessageSender, ev Event) {
	log := h.deps.Logger.With("handler", "feedback")

	if ev.Args == "" {
		log.InfoContext(ctx, "Feedback command without text", "chat_id", ev.ChatID, "user", senderName(ev.Sender))
		sendReply(ctx, b, log, ev.ChatID, h.deps.Config.Messages.ProvideFeedback, nil)
		return
	}

	log.InfoContext(ctx, "Handling /feedback command", "chat_id", ev.ChatID, "user", senderName(ev.Sender))

	report := &database.Feedback{
		ChatID:  ev.ChatID,
		Content: ev.Args,
	}
	if ev.Sender != nil {
		report.UserID = ev.Sender.ID
		report.Username = ev.Sender.Username
	}
	if err := h.deps.Store.SaveFeedback(ctx, report); err != nil {
		log.ErrorContext(ctx, "Failed to persist feedback report", "error", err, "chat_id", ev.ChatID)
		// The forward below still carries the report to the admin.
	}

	link := launchLink(h.deps.Config, "")
	sendReply(ctx, b, log, ev.ChatID, h.deps.Config.Messages.FeedbackThanks, launchKeyboard(link))

	sendReply(ctx, b, log, h.deps.Config.Telegram.AdminChatID, buildFeedbackForward(ev), nil)
}
