package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// WebhookClient forwards a submission payload to an external analytics sink.
// The sink's response body is never interpreted; only transport and status
// failures are reported so the caller can log them.
type WebhookClient interface {
	Send(ctx context.Context, payload map[string]interface{}) error
}

type webhookClient struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

func NewWebhookClient(url string, timeout time.Duration, logger zerolog.Logger) WebhookClient {
	return &webhookClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *webhookClient) Send(ctx context.Context, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification sink returned status %d", resp.StatusCode)
	}

	c.logger.Debug().
		Str("url", c.url).
		Int("status", resp.StatusCode).
		Msg("Notification delivered")

	return nil
}
