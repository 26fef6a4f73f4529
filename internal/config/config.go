package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Run cadence values recognized by the scheduler. Anything else
// normalizes to daily.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Email delivery.
	EmailUser  string `envconfig:"EMAIL_USER"`
	EmailPass  string `envconfig:"EMAIL_PASS"`
	EmailTo    string `envconfig:"EMAIL_TO"`
	SMTPServer string `envconfig:"SMTP_SERVER" default:"smtp.gmail.com"`
	SMTPPort   int    `envconfig:"SMTP_PORT" default:"587"`

	// Scheduling.
	Frequency    string        `envconfig:"EMAIL_FREQUENCY" default:"daily"`
	SendTime     string        `envconfig:"SEND_TIME" default:"07:00"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"60s"`

	// Data sources.
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	WebcamURL    string        `envconfig:"WEBCAM_URL" default:"https://coastalcams.cawthron.org.nz/current.jpg"`

	// Process.
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads configuration from environment variables, applying defaults
// where unset. Credentials may legitimately be absent; the mailer logs and
// skips delivery in that case rather than failing startup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP_PORT: %d", cfg.SMTPPort)
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %s", cfg.FetchTimeout)
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: %s", cfg.PollInterval)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %s", cfg.ShutdownTimeout)
	}

	// Unrecognized cadence values fall back to daily rather than erroring,
	// so a typo degrades to more frequent updates instead of none.
	cfg.Frequency = strings.ToLower(strings.TrimSpace(cfg.Frequency))
	if cfg.Frequency != FrequencyDaily && cfg.Frequency != FrequencyWeekly {
		cfg.Frequency = FrequencyDaily
	}

	return &cfg, nil
}

// EmailConfigured reports whether all credentials needed for delivery are set.
func (c *Config) EmailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != "" && c.EmailTo != ""
}
