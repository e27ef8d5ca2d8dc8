// Package insight posts purchase events to the marketing analytics backend.
package insight

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

var _ fulfillment.InsightTracker = (*Client)(nil)

type Client struct {
	URL    string
	APIKey string
	HTTP   *http.Client
}

func New(url, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		URL:    url,
		APIKey: apiKey,
		HTTP:   httpClient,
	}
}

func (c *Client) Track(ctx context.Context, ev fulfillment.PurchaseEvent) error {
	j, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal purchase event: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(j))
	if err != nil {
		return fmt.Errorf("create track request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http track request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("insight backend %s: %s", resp.Status, string(raw))
	}
	return nil
}
