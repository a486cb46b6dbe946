package handlers

import (
	"log/slog"

	"github.com/edgard/calcbot/internal/config"
	"github.com/edgard/calcbot/internal/database"
)

// HandlerDeps provides dependencies for Telegram event handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Store  database.Store
}
