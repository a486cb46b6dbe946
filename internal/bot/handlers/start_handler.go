package handlers

import (
	"context"
)

// NewStartHandler returns a handler for the /start command.
func NewStartHandler(deps HandlerDeps) HandlerFunc {
	return startHandler{deps}.Handle
}

// startHandler processes the /start command using injected dependencies.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b MessageSender, ev Event) {
	log := h.deps.Logger.With("handler", "start")

	log.InfoContext(ctx, "Greeting new user", "chat_id", ev.ChatID, "user", senderName(ev.Sender))

	link := launchLink(h.deps.Config, "")
	sendReply(ctx, b, log, ev.ChatID, h.deps.Config.Messages.Welcome, launchKeyboard(link))
}
