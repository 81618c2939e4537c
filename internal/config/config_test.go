package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.City != "Winnipeg" {
		t.Errorf("City = %q, want Winnipeg", cfg.City)
	}
	if cfg.Categories != "tech" {
		t.Errorf("Categories = %q, want tech", cfg.Categories)
	}
	if cfg.PeriodDays != 30 {
		t.Errorf("PeriodDays = %d, want 30", cfg.PeriodDays)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.TestMode {
		t.Error("TestMode = true, want false")
	}
	if cfg.NotifyConfigured() {
		t.Error("NotifyConfigured() = true without token and chat ID")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "env-chat")
	t.Setenv("CITY", "Brandon")
	t.Setenv("PERIOD_DAYS", "14")
	t.Setenv("TEST_MODE", "TRUE")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BotToken != "env-token" {
		t.Errorf("BotToken = %q, want env-token", cfg.BotToken)
	}
	if cfg.ChatID != "env-chat" {
		t.Errorf("ChatID = %q, want env-chat", cfg.ChatID)
	}
	if cfg.City != "Brandon" {
		t.Errorf("City = %q, want Brandon", cfg.City)
	}
	if cfg.PeriodDays != 14 {
		t.Errorf("PeriodDays = %d, want 14", cfg.PeriodDays)
	}
	if !cfg.TestMode {
		t.Error("TestMode = false, want true for TEST_MODE=TRUE")
	}
	if !cfg.NotifyConfigured() {
		t.Error("NotifyConfigured() = false with token and chat ID set")
	}
}

func TestLoad_FileSeedsAndEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("bot_token: file-token\nchat_id: file-chat\ncity: Selkirk\nschedule: \"0 9 * * 1\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BotToken != "env-token" {
		t.Errorf("BotToken = %q, want env override env-token", cfg.BotToken)
	}
	if cfg.ChatID != "file-chat" {
		t.Errorf("ChatID = %q, want file-chat", cfg.ChatID)
	}
	if cfg.City != "Selkirk" {
		t.Errorf("City = %q, want Selkirk", cfg.City)
	}
	if cfg.Schedule != "0 9 * * 1" {
		t.Errorf("Schedule = %q, want 0 9 * * 1", cfg.Schedule)
	}
	// Values the file does not mention keep their defaults.
	if cfg.PeriodDays != 30 {
		t.Errorf("PeriodDays = %d, want default 30", cfg.PeriodDays)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() with missing file succeeded, want error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("bot_token: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with invalid YAML succeeded, want error")
	}
}

func TestLoad_InvalidPeriodFallsBack(t *testing.T) {
	t.Setenv("PERIOD_DAYS", "not-a-number")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PeriodDays != 30 {
		t.Errorf("PeriodDays = %d, want default 30 for unparsable env", cfg.PeriodDays)
	}
}
