package handlers

import (
	"context"
)

// NewCalcHandler returns a handler for the /calc command.
func NewCalcHandler(deps HandlerDeps) HandlerFunc {
	return calcHandler{deps}.Handle
}

// calcHandler processes the /calc command using injected dependencies.
type calcHandler struct {
	deps HandlerDeps
}

func (h calcHandler) Handle(ctx context.Context, b MessageSender, ev Event) {
	log := h.deps.Logger.With("handler", "calc")

	log.InfoContext(ctx, "Handling /calc command", "chat_id", ev.ChatID, "user", senderName(ev.Sender))

	link := launchLink(h.deps.Config, "")
	sendReply(ctx, b, log, ev.ChatID, h.deps.Config.Messages.CalcPrompt, launchKeyboard(link))
}
