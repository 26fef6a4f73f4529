// Package smtp delivers the composed update email over STARTTLS SMTP.
package smtp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"spearo/internal/config"
	"spearo/internal/observability"
)

// Mailer sends plain-text mail using username/password login. One attempt
// per message; retrying is the next scheduled run's job.
type Mailer struct {
	host    string
	port    int
	user    string
	pass    string
	to      string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewMailer creates a Mailer from configuration.
func NewMailer(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Mailer {
	return &Mailer{
		host:    cfg.SMTPServer,
		port:    cfg.SMTPPort,
		user:    cfg.EmailUser,
		pass:    cfg.EmailPass,
		to:      cfg.EmailTo,
		logger:  logger,
		metrics: metrics,
	}
}

// Send delivers one message. With incomplete credentials it logs and skips
// without error, so an unconfigured process still runs and rates. Delivery
// failures count toward metrics and are returned for the caller to log.
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	if m.user == "" || m.pass == "" || m.to == "" {
		m.logger.Warn("email credentials not configured, skipping delivery")
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.user); err != nil {
		m.metrics.EmailFailures.Inc()
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		m.metrics.EmailFailures.Inc()
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.user),
		mail.WithPassword(m.pass),
	)
	if err != nil {
		m.metrics.EmailFailures.Inc()
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.metrics.EmailFailures.Inc()
		return fmt.Errorf("send email: %w", err)
	}

	m.metrics.EmailsSent.Inc()
	m.logger.Info("update email sent", "to", m.to, "subject", subject)
	return nil
}
