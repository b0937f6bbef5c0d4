package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken      string
	PracticumEndpoint   string
	TelegramToken       string
	TelegramChatID      int64
	PollInterval        time.Duration
	LogLevel            string
	Environment         string
	CronSpecDailyDigest string
}

// Load reads configuration from environment variables and .env file (if present).
// A missing credential is a startup failure; callers are expected to abort.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = defaultEndpoint
	}

	intervalStr := os.Getenv("POLL_INTERVAL")
	if intervalStr == "" {
		cfg.PollInterval = 600 * time.Second // Default: 10 minutes between polls
	} else {
		cfg.PollInterval, err = time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
		}
		if cfg.PollInterval <= 0 {
			return nil, fmt.Errorf("POLL_INTERVAL must be positive, got %s", cfg.PollInterval)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecDailyDigest = os.Getenv("CRON_SPEC_DAILY_DIGEST")
	if cfg.CronSpecDailyDigest == "" {
		cfg.CronSpecDailyDigest = "0 9 * * *" // Default: 9 AM daily
	}

	return cfg, nil
}
