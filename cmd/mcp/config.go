package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/imagegen/client"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	LogLevel string // debug, info, warn, error

	// API Keys
	OpenAIKey    string
	StabilityKey string

	// Endpoints
	OpenAIBaseURL    string
	StabilityBaseURL string
	LocalURL         string

	ProbeTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		LogLevel:         getEnvOrDefault("IMAGEGEN_LOG_LEVEL", "info"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		StabilityKey:     os.Getenv("STABILITY_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		StabilityBaseURL: getEnvOrDefault("STABILITY_BASE_URL", "https://api.stability.ai"),
		LocalURL:         getEnvOrDefault("AUTOMATIC1111_URL", "http://127.0.0.1:7860"),
		ProbeTimeout:     getEnvDurationOrDefault("IMAGEGEN_PROBE_TIMEOUT", client.DefaultProbeTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
// No API key is required: the local backend needs none.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("IMAGEGEN_PROBE_TIMEOUT must be positive")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
}

// ClientConfig converts the loaded configuration into a client.Config.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		APIKeys: client.APIKeys{
			OpenAI:    c.OpenAIKey,
			Stability: c.StabilityKey,
		},
		OpenAIBaseURL:    c.OpenAIBaseURL,
		StabilityBaseURL: c.StabilityBaseURL,
		LocalURL:         c.LocalURL,
		ProbeTimeout:     c.ProbeTimeout,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
