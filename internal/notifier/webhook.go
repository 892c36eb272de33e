package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type event struct {
	Kind   string `json:"kind"`
	TeamID int64  `json:"team_id"`
}

// Webhook POSTs change events as JSON to a configured endpoint.
type Webhook struct {
	client  *http.Client
	url     string
	headers map[string]string
}

// WebhookOption configures Webhook.
type WebhookOption func(*Webhook)

// WithClient sets the HTTP client (default: 5s timeout).
func WithClient(c *http.Client) WebhookOption {
	return func(w *Webhook) {
		w.client = c
	}
}

// WithHeader sets a header sent on every request (e.g. Authorization).
func WithHeader(key, value string) WebhookOption {
	return func(w *Webhook) {
		if w.headers == nil {
			w.headers = make(map[string]string)
		}
		w.headers[key] = value
	}
}

// NewWebhook returns a Notifier that POSTs events to url.
func NewWebhook(url string, opts ...WebhookOption) *Webhook {
	w := &Webhook{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NotifyMembershipChanged implements Notifier.
func (w *Webhook) NotifyMembershipChanged(ctx context.Context, teamID int64) error {
	return w.post(ctx, event{Kind: "membership_changed", TeamID: teamID})
}

// NotifySessionChanged implements Notifier.
func (w *Webhook) NotifySessionChanged(ctx context.Context, teamID int64) error {
	return w.post(ctx, event{Kind: "session_changed", TeamID: teamID})
}

func (w *Webhook) post(ctx context.Context, ev event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

var _ Notifier = (*Webhook)(nil)
