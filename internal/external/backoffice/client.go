// Package backoffice posts completed orders to the back-office order webhook.
package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"challengecart/internal/fulfillment"
)

var _ fulfillment.BackofficeSender = (*Client)(nil)

type Client struct {
	WebhookURL string
	HTTP       *http.Client
}

func New(webhookURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		WebhookURL: webhookURL,
		HTTP:       httpClient,
	}
}

func (c *Client) SendOrder(ctx context.Context, p fulfillment.OrderPayload) error {
	j, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal order payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebhookURL, bytes.NewReader(j))
	if err != nil {
		return fmt.Errorf("create order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http order request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("back office %s: %s", resp.Status, string(raw))
	}
	return nil
}
