package mailer

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/widyatama/credential-service/pkg/constant"
)

// Mailer delivers verification emails over SMTP. It implements
// domain.VerificationSender.
type Mailer struct {
	config *mailerConfig
	dialer *gomail.Dialer
}

// NewMailer creates a Mailer from SMTP_* environment variables.
func NewMailer(logger *zerolog.Logger) *Mailer {
	cfg := newMailerConfig(logger)

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate mailer configuration")
	}

	dialer := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
	)

	return &Mailer{
		config: cfg,
		dialer: dialer,
	}
}

// SendVerification emails the verification link to the given address.
func (m *Mailer) SendVerification(email, username, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", constant.VerificationEmailSubject)
	msg.SetBody("text/plain", plainBody(username, link))
	msg.AddAlternative("text/html", htmlBody(username, link))

	return m.dialer.DialAndSend(msg)
}

func plainBody(username, link string) string {
	return fmt.Sprintf("Hi %s,\n\nPlease verify your email by clicking the following link: %s\n", username, link)
}

func htmlBody(username, link string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Please verify your email by clicking the following link: <a href=%q>%s</a></p>`,
		username, link, link)
}

// mailerConfig holds SMTP configuration for sending emails.
type mailerConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

func newMailerConfig(logger *zerolog.Logger) *mailerConfig {
	cfg, err := env.ParseAs[mailerConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	return &cfg
}

func (c *mailerConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}
