package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/edgard/calcbot/internal/config"
)

// Environment-only deployment: no config file, credentials from BOT_* variables.
func TestLoadConfigFromEnvironmentOnly(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123456:ABCDEF")
	t.Setenv("BOT_TELEGRAM_ADMIN_CHAT_ID", "42")

	missingFile := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := config.LoadConfig(missingFile)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}

	if cfg.Telegram.Token != "123456:ABCDEF" {
		t.Errorf("Telegram.Token = %q, want env value", cfg.Telegram.Token)
	}
	if cfg.Telegram.AdminChatID != 42 {
		t.Errorf("Telegram.AdminChatID = %d, want 42", cfg.Telegram.AdminChatID)
	}

	// Optional keys still come from defaults.
	if cfg.Calculator.URL != config.DefaultCalculatorURL {
		t.Errorf("Calculator.URL = %q, want default %q", cfg.Calculator.URL, config.DefaultCalculatorURL)
	}
	if cfg.Messages.Welcome != config.DefaultMsgWelcome {
		t.Errorf("Messages.Welcome = %q, want default", cfg.Messages.Welcome)
	}
}

func TestLoadConfigEnvOverridesOptionalKey(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123456:ABCDEF")
	t.Setenv("BOT_TELEGRAM_ADMIN_CHAT_ID", "42")
	t.Setenv("BOT_CALCULATOR_URL", "https://calculator.example.com")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}

	if cfg.Calculator.URL != "https://calculator.example.com" {
		t.Errorf("Calculator.URL = %q, want env override", cfg.Calculator.URL)
	}
}

// A bot without credentials cannot run; validation must reject at startup.
func TestLoadConfigMissingCredentialsFails(t *testing.T) {
	// Blank out any ambient credentials; empty values still fail "required".
	t.Setenv("BOT_TELEGRAM_TOKEN", "")
	t.Setenv("BOT_TELEGRAM_ADMIN_CHAT_ID", "")

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want validation failure")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("error = %v, want validation failure", err)
	}
}
