package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"dalal-market/internal/config"
	"dalal-market/internal/models"

	"gopkg.in/gomail.v2"
)

// EmailChannel mails inquiries to the admin address over SMTP
type EmailChannel struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	switch strings.ToLower(cfg.Encryption) {
	case "ssl":
		dialer.SSL = true
		dialer.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	case "tls", "starttls":
		dialer.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	}
	return &EmailChannel{cfg: cfg, dialer: dialer}
}

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Enabled() bool {
	return e.cfg.Host != "" && e.cfg.Port != 0 && e.cfg.SenderEmail != "" && e.cfg.AdminEmail != ""
}

func (e *EmailChannel) Send(ctx context.Context, inquiry models.Inquiry) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.SenderEmail)
	m.SetHeader("To", e.cfg.AdminEmail)
	m.SetHeader("Subject", "New Inquiry from "+inquiry.Name)
	m.SetBody("text/plain", FormatInquiry(inquiry))

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- e.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("email sending cancelled or timed out: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}
