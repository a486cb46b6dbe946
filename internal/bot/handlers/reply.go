package handlers

import (
	"context"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/calcbot/internal/calc"
	"github.com/edgard/calcbot/internal/config"
)

// MessageSender is the subset of the Telegram client handlers use to deliver
// replies. *bot.Bot satisfies it; tests substitute a recording fake.
type MessageSender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
}

// launchLink builds the launch link from the configured calculator settings.
func launchLink(cfg *config.Config, resumeValue string) calc.LaunchLink {
	return calc.BuildLaunchLink(cfg.Calculator.URL, cfg.Calculator.ButtonCaption, resumeValue)
}

// launchKeyboard renders a launch link as a one-time reply keyboard with a
// single Web App button. The keyboard button is the only launch mechanism that
// delivers web_app_data back to the bot.
func launchKeyboard(link calc.LaunchLink) models.ReplyMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{
					Text:   link.Label,
					WebApp: &models.WebAppInfo{URL: link.URL},
				},
			},
		},
		OneTimeKeyboard: true,
		ResizeKeyboard:  true,
	}
}

// buildWebAppReply turns the raw oldest-first history payload into the
// newest-first reply body and the resume value for the next launch. The value
// is extracted from the raw payload, where the newest result is the suffix.
func buildWebAppReply(payload string) (body, resumeValue string) {
	body = calc.ReverseLines(payload)
	resumeValue, _ = calc.ExtractLastNumber(payload)
	return body, resumeValue
}

// buildFeedbackForward formats the message forwarded to the admin chat,
// attributing the report to its sender.
func buildFeedbackForward(ev Event) string {
	return fmt.Sprintf("Feedback from %s, chat_id:%d:\n%s", senderName(ev.Sender), ev.ChatID, ev.Args)
}

// senderName returns a human-readable identity for logs and admin forwards.
func senderName(user *models.User) string {
	if user == nil {
		return "unknown"
	}
	if user.Username != "" {
		return "@" + user.Username
	}
	return user.FirstName
}

// sendReply sends a single reply, logging delivery failures instead of
// retrying or surfacing them to the sender.
func sendReply(ctx context.Context, b MessageSender, log *slog.Logger, chatID int64, text string, markup models.ReplyMarkup) {
	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}
}
