package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.EmailUser)
	assert.Empty(t, cfg.EmailPass)
	assert.Empty(t, cfg.EmailTo)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPServer)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, FrequencyDaily, cfg.Frequency)
	assert.Equal(t, "07:00", cfg.SendTime)
	assert.Equal(t, 60*time.Second, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "https://coastalcams.cawthron.org.nz/current.jpg", cfg.WebcamURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.EmailConfigured())
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("EMAIL_USER", "spearo@example.com")
	t.Setenv("EMAIL_PASS", "app-token")
	t.Setenv("EMAIL_TO", "me@example.com")
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_FREQUENCY", "weekly")
	t.Setenv("SEND_TIME", "06:30")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("WEBCAM_URL", "https://cams.example.com/latest.jpg")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "spearo@example.com", cfg.EmailUser)
	assert.Equal(t, "app-token", cfg.EmailPass)
	assert.Equal(t, "me@example.com", cfg.EmailTo)
	assert.Equal(t, "smtp.example.com", cfg.SMTPServer)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, FrequencyWeekly, cfg.Frequency)
	assert.Equal(t, "06:30", cfg.SendTime)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "https://cams.example.com/latest.jpg", cfg.WebcamURL)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.EmailConfigured())
}

func TestLoad_UnrecognizedFrequencyFallsBackToDaily(t *testing.T) {
	t.Setenv("EMAIL_FREQUENCY", "fortnightly")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FrequencyDaily, cfg.Frequency)
}

func TestLoad_FrequencyNormalized(t *testing.T) {
	t.Setenv("EMAIL_FREQUENCY", "  Weekly ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FrequencyWeekly, cfg.Frequency)
}

func TestLoad_InvalidSMTPPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "0s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "-10s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL")
}

func TestLoad_PartialCredentialsNotConfigured(t *testing.T) {
	t.Setenv("EMAIL_USER", "spearo@example.com")
	t.Setenv("EMAIL_TO", "me@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.EmailConfigured())
}
