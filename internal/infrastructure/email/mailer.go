// Package email sends transactional mail for the sign-in gate
package email

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// SMTPMailer delivers verification mail over SMTP
type SMTPMailer struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

var _ outbound.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg *config.Config, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg.Email,
		logger: logger.Named("smtp-mailer"),
	}
}

// SendVerification mails an email verification link
func (m *SMTPMailer) SendVerification(ctx context.Context, to, token string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromAddress, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Verify your Demmi email address")
	msg.SetBody("text/html", verificationBody(m.cfg.BaseURL, token))

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUsername, m.cfg.SMTPPassword)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}

	m.logger.Info("Verification mail sent", zap.String("to", to))
	return nil
}

func verificationBody(baseURL, token string) string {
	link := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", baseURL, token)
	return fmt.Sprintf(
		`<p>Welcome to Demmi!</p>
<p>Please confirm your email address by clicking the link below:</p>
<p><a href=%q>Verify my email</a></p>
<p>The link expires in 24 hours. If you did not create this account you can ignore this mail.</p>`,
		link,
	)
}

// LogMailer records outgoing mail in the log instead of sending it.
// Used in development when no SMTP host is configured.
type LogMailer struct {
	logger *zap.Logger
}

var _ outbound.Mailer = (*LogMailer)(nil)

// NewLogMailer creates a mailer that only logs
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("log-mailer")}
}

// SendVerification logs the verification token instead of mailing it
func (m *LogMailer) SendVerification(ctx context.Context, to, token string) error {
	m.logger.Info("Verification mail (not sent, no SMTP host configured)",
		zap.String("to", to),
		zap.String("token", token),
	)
	return nil
}

// NewMailer selects the SMTP mailer when a host is configured and the
// logging mailer otherwise
func NewMailer(cfg *config.Config, logger *zap.Logger) outbound.Mailer {
	if cfg.Email.SMTPHost == "" {
		return NewLogMailer(logger)
	}
	return NewSMTPMailer(cfg, logger)
}
