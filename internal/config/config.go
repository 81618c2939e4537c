// Package config holds runtime configuration for the tech events notifier.
//
// Configuration is read once per invocation: an optional YAML file seeds the
// values and environment variables override it, so container deployments can
// run with env alone. Nothing here is persisted.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for one invocation.
type Config struct {
	BotToken   string `yaml:"bot_token"`
	ChatID     string `yaml:"chat_id"`
	TestMode   bool   `yaml:"test_mode"`
	City       string `yaml:"city"`
	Categories string `yaml:"categories"`
	PeriodDays int    `yaml:"period_days"`

	// Serve-mode settings.
	Listen   string `yaml:"listen"`
	Schedule string `yaml:"schedule"`
}

// Defaults returns a Config with documented default values.
func Defaults() Config {
	return Config{
		City:       "Winnipeg",
		Categories: "tech",
		PeriodDays: 30,
		Listen:     ":8080",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.PeriodDays <= 0 {
		cfg.PeriodDays = 30
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	c.BotToken = getEnv("TELEGRAM_BOT_TOKEN", c.BotToken)
	c.ChatID = getEnv("TELEGRAM_CHAT_ID", c.ChatID)
	c.City = getEnv("CITY", c.City)
	c.Categories = getEnv("CATEGORIES", c.Categories)
	c.Listen = getEnv("LISTEN_ADDR", c.Listen)
	c.Schedule = getEnv("NOTIFY_SCHEDULE", c.Schedule)
	c.PeriodDays = getEnvInt("PERIOD_DAYS", c.PeriodDays)

	if val := os.Getenv("TEST_MODE"); val != "" {
		c.TestMode = strings.EqualFold(val, "true")
	}
}

// NotifyConfigured reports whether delivery is possible at all.
func (c Config) NotifyConfigured() bool {
	return c.BotToken != "" && c.ChatID != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
