package config

import (
	"errors"
	"log/slog"
	"os"
	"time"
)

type Config struct {
	AppLogLevel   slog.Level
	DebugMode     bool
	DebugDataPath string
	HunterAPIKey  string
	HunterAPIHost string
	HTTPTimeout   time.Duration
}

func New() (*Config, error) {
	cfg := Config{
		DebugMode:     os.Getenv("APP_DEBUG_MODE") == "true",
		DebugDataPath: os.Getenv("APP_DEBUG_DATA_PATH"),
		AppLogLevel:   slog.LevelInfo,
		HunterAPIKey:  os.Getenv("APP_HUNTER_API_KEY"),
		HunterAPIHost: os.Getenv("APP_HUNTER_API_HOST"),
		HTTPTimeout:   30 * time.Second,
	}

	if levelStr := os.Getenv("APP_LOG_LEVEL"); levelStr != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelStr)); err == nil {
			cfg.AppLogLevel = level
		}
	}

	if cfg.HunterAPIHost == "" {
		cfg.HunterAPIHost = "https://api.hunter.io"
	}

	if timeoutStr := os.Getenv("APP_HTTP_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			cfg.HTTPTimeout = timeout
		} else {
			slog.Warn("invalid APP_HTTP_TIMEOUT, using default", "value", timeoutStr, "default", "30s")
		}
	}

	// deprecated
	if cfg.HunterAPIKey == "" && os.Getenv("HUNTER_API_KEY") != "" {
		cfg.HunterAPIKey = os.Getenv("HUNTER_API_KEY")
		slog.Warn("deprecated env var used", "old", "HUNTER_API_KEY", "new", "APP_HUNTER_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and valid
func (c *Config) Validate() error {
	if c.HunterAPIKey == "" {
		return errors.New("APP_HUNTER_API_KEY is required")
	}

	if c.HTTPTimeout <= 0 {
		return errors.New("APP_HTTP_TIMEOUT must be positive")
	}

	return nil
}
