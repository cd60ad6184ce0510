package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationBodies(t *testing.T) {
	link := "https://app.example.com/verify-email?token=abc123"

	plain := plainBody("alice", link)
	assert.Contains(t, plain, "alice")
	assert.Contains(t, plain, link)

	html := htmlBody("alice", link)
	assert.Contains(t, html, "alice")
	assert.Contains(t, html, `href="`+link+`"`)
}

func TestMailerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     mailerConfig
		wantErr string
	}{
		{
			name: "valid",
			cfg: mailerConfig{
				Host: "smtp.example.com",
				Port: 587,
				From: "no-reply@example.com",
			},
		},
		{
			name:    "missing host",
			cfg:     mailerConfig{Port: 587, From: "no-reply@example.com"},
			wantErr: "SMTP_HOST",
		},
		{
			name:    "missing port",
			cfg:     mailerConfig{Host: "smtp.example.com", From: "no-reply@example.com"},
			wantErr: "SMTP_PORT",
		},
		{
			name:    "missing from",
			cfg:     mailerConfig{Host: "smtp.example.com", Port: 587},
			wantErr: "SMTP_FROM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
