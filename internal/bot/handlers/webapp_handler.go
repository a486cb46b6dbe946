package handlers

import (
	"context"
)

// NewWebAppDataHandler returns the handler for calculator Web App payloads.
func NewWebAppDataHandler(deps HandlerDeps) HandlerFunc {
	return webAppDataHandler{deps}.Handle
}

// webAppDataHandler replies with the calculation history newest-first and a
// launch keyboard seeded with the last computed value.
type webAppDataHandler struct {
	deps HandlerDeps
}

func (h webAppDataHandler) Handle(ctx context.Context, b MessageSender, ev Event) {
	log := h.deps.Logger.With("handler", "web_app_data")

	log.InfoContext(ctx, "Received calculator history", "chat_id", ev.ChatID, "user", senderName(ev.Sender))

	body, resumeValue := buildWebAppReply(ev.Payload)
	link := launchLink(h.deps.Config, resumeValue)
	sendReply(ctx, b, log, ev.ChatID, body, launchKeyboard(link))
}

// NewWebAppOpenedHandler returns the handler for Web App session notifications.
func NewWebAppOpenedHandler(deps HandlerDeps) HandlerFunc {
	return webAppOpenedHandler{deps}.Handle
}

// webAppOpenedHandler logs the session start. No reply is sent; the user is
// inside the Web App at this point.
type webAppOpenedHandler struct {
	deps HandlerDeps
}

func (h webAppOpenedHandler) Handle(ctx context.Context, _ MessageSender, ev Event) {
	h.deps.Logger.With("handler", "web_app_opened").
		InfoContext(ctx, "Web App session opened", "chat_id", ev.ChatID, "user", senderName(ev.Sender))
}
