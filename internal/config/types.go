// Package config provides configuration loading and validation for calcbot.
// Values come from defaults, an optional config.yaml, and BOT_* environment
// variables, and are frozen into an immutable Config struct at startup.
package config

import (
	"github.com/go-telegram/bot/models"
)

// Config holds the full application configuration. It is loaded once in main
// and passed by pointer into the components that need it; nothing mutates it
// after load except BotInfo, which is filled in right after the first GetMe.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
	Messages   MessagesConfig   `mapstructure:"messages"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
}

// LoggerConfig controls log level, output format, and an optional file sink.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
	File  string `mapstructure:"file"`
}

// TelegramConfig holds the bot credentials and the administrative recipient.
// AdminChatID is where /feedback reports are forwarded; the process refuses to
// start without it. It must be the admin's PRIVATE chat with the bot, whose id
// equals the admin's user id — the admin-only command guard compares sender
// user ids against this value, so a group chat id here would lock the admin
// out. BotInfo is populated at runtime from GetMe.
type TelegramConfig struct {
	Token       string       `mapstructure:"token"         validate:"required"`
	AdminChatID int64        `mapstructure:"admin_chat_id" validate:"required"`
	BotInfo     *models.User `mapstructure:"-"`
}

// CalculatorConfig describes the external Web App surface. The URL must carry
// no query string; the launch link appends ?value=<n> itself.
type CalculatorConfig struct {
	URL           string `mapstructure:"url"            validate:"required,url"`
	ButtonCaption string `mapstructure:"button_caption" validate:"required"`
}

// MessagesConfig holds the user-facing reply texts.
type MessagesConfig struct {
	Welcome         string `mapstructure:"welcome"          validate:"required"`
	Help            string `mapstructure:"help"             validate:"required"`
	CalcPrompt      string `mapstructure:"calc_prompt"      validate:"required"`
	FeedbackThanks  string `mapstructure:"feedback_thanks"  validate:"required"`
	ProvideFeedback string `mapstructure:"provide_feedback" validate:"required"`
	GeneralError    string `mapstructure:"general_error"    validate:"required"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SchedulerConfig maps task names to their schedules. Task names must match
// the keys registered in the tasks package.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a single scheduled task with a cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}
