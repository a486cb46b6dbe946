package handlers

import (
	"context"
)

// NewHelpHandler returns a handler for the /help command.
func NewHelpHandler(deps HandlerDeps) HandlerFunc {
	return helpHandler{deps}.Handle
}

// helpHandler processes the /help command using injected dependencies.
type helpHandler struct {
	deps HandlerDeps
}

func (h helpHandler) Handle(ctx context.Context, b MessageSender, ev Event) {
	log := h.deps.Logger.With("handler", "help")

	log.InfoContext(ctx, "Handling /help command", "chat_id", ev.ChatID, "user", senderName(ev.Sender))

	link := launchLink(h.deps.Config, "")
	sendReply(ctx, b, log, ev.ChatID, h.deps.Config.Messages.Help, launchKeyboard(link))
}
