package handlers

import (
	"context"
)

// AdminOnly creates a middleware that restricts a handler to the configured
// admin. AdminChatID is the admin's private chat id, which Telegram defines
// as equal to their user id, so the sender's user id is compared against it.
// Other senders get a silent drop with a warning log; replying would only
// advertise the command's existence.
func AdminOnly(deps HandlerDeps) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, b MessageSender, ev Event) {
			if ev.Sender == nil || ev.Sender.ID != deps.Config.Telegram.AdminChatID {
				deps.Logger.WarnContext(ctx, "Unauthorized admin command attempt",
					"command", ev.Command, "chat_id", ev.ChatID, "user", senderName(ev.Sender))
				return
			}
			next(ctx, b, ev)
		}
	}
}
