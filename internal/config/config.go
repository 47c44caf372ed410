package config

import (
	"fmt"
	"time"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port    string
	BaseURL string // fully-qualified prefix for generated short links
}

// TelegramConfig holds messaging backend configuration
type TelegramConfig struct {
	Token        string // bot credential; may be empty, flagged at startup
	APIURL       string
	PollTimeout  time.Duration // server-side long-poll wait
	RetryBackoff time.Duration // wait between fetch attempts after a failure
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
	JSON  bool
}

// New creates a new config with the given parameters
func New(port, baseURL, token, apiURL string, pollTimeout, retryBackoff time.Duration, logLevel string, logJSON bool) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    port,
			BaseURL: baseURL,
		},
		Telegram: TelegramConfig{
			Token:        token,
			APIURL:       apiURL,
			PollTimeout:  pollTimeout,
			RetryBackoff: retryBackoff,
		},
		Logging: LoggingConfig{
			Level: logLevel,
			JSON:  logJSON,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values. A missing bot token is not a
// validation error: startup must survive it, the caller just logs it.
func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Server.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	if c.Telegram.APIURL == "" {
		return fmt.Errorf("telegram API URL cannot be empty")
	}

	if c.Telegram.PollTimeout <= 0 {
		return fmt.Errorf("poll timeout must be positive, got: %v", c.Telegram.PollTimeout)
	}

	if c.Telegram.RetryBackoff <= 0 {
		return fmt.Errorf("retry backoff must be positive, got: %v", c.Telegram.RetryBackoff)
	}

	return nil
}
