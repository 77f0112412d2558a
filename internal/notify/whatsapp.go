package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dalal-market/internal/config"
	"dalal-market/internal/models"
)

// WhatsAppChannel posts inquiries to a WhatsApp Business style HTTP API
type WhatsAppChannel struct {
	cfg    config.WhatsAppConfig
	client *http.Client
}

func NewWhatsAppChannel(cfg config.WhatsAppConfig) *WhatsAppChannel {
	return &WhatsAppChannel{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type whatsAppMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func (w *WhatsAppChannel) Name() string { return "whatsapp" }

func (w *WhatsAppChannel) Enabled() bool {
	return w.cfg.Enabled && w.cfg.APIURL != "" && w.cfg.APIToken != "" && w.cfg.PhoneNumber != ""
}

// Send succeeds only on a 2xx response
func (w *WhatsAppChannel) Send(ctx context.Context, inquiry models.Inquiry) error {
	payload, err := json.Marshal(whatsAppMessage{To: w.cfg.PhoneNumber, Body: FormatInquiry(inquiry)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send whatsapp: status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
