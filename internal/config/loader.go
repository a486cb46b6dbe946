package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration from:
// 1. Default values
// 2. The YAML file at configPath (optional)
// 3. BOT_* environment variables
//
// Validation failures are startup-time fatal: a bot without a token, admin
// chat, or calculator URL cannot do its job, so the error is surfaced here
// rather than on first use.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Required keys carry no defaults, so viper does not know them yet;
	// bind them explicitly or env-only deployments are invisible to Unmarshal.
	v.MustBindEnv("telegram.token")
	v.MustBindEnv("telegram.admin_chat_id")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		// Missing config file is fine, defaults plus environment apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", DefaultLogJSON)
	v.SetDefault("logger.file", "")

	v.SetDefault("calculator.url", DefaultCalculatorURL)
	v.SetDefault("calculator.button_caption", DefaultButtonCaption)

	v.SetDefault("database.path", DefaultDBPath)

	v.SetDefault("messages.welcome", DefaultMsgWelcome)
	v.SetDefault("messages.help", DefaultMsgHelp)
	v.SetDefault("messages.calc_prompt", DefaultMsgCalcPrompt)
	v.SetDefault("messages.feedback_thanks", DefaultMsgFeedbackThanks)
	v.SetDefault("messages.provide_feedback", DefaultMsgProvideFeedback)
	v.SetDefault("messages.general_error", DefaultMsgGeneralError)

	v.SetDefault("scheduler.tasks.feedback_cleanup.enabled", true)
	v.SetDefault("scheduler.tasks.feedback_cleanup.schedule", DefaultFeedbackCleanupSchedule)
	v.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.sql_maintenance.schedule", DefaultSQLMaintenanceSchedule)
}
