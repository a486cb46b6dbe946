// Package telegram handles the construction and setup of the Telegram bot client.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", token[:8]+"...")
	return b, nil
}

// SetupCommands registers the user-facing command menu with Telegram. The
// admin-only /reports command is deliberately left out of the public menu.
func SetupCommands(ctx context.Context, b *bot.Bot, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	commands := []models.BotCommand{
		{Command: "start", Description: "Start the bot and show the calculator button"},
		{Command: "help", Description: "Show available commands"},
		{Command: "calc", Description: "Show the keyboard button to call the web calculator"},
		{Command: "feedback", Description: "Send a message to the admin"},
	}

	ok, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: commands})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	if !ok {
		return fmt.Errorf("telegram rejected the bot command list")
	}

	log.Info("Registered bot command menu", "count", len(commands))
	return nil
}
