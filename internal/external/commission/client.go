// Package commission reports conversions to the affiliate commission network.
package commission

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"challengecart/internal/fulfillment"

	"github.com/google/go-querystring/query"
)

var _ fulfillment.ConversionTracker = (*Client)(nil)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    httpClient,
	}
}

// conversionParams is the network's pixel-style query contract.
type conversionParams struct {
	AffiliateID string  `url:"aff_id"`
	OrderNumber string  `url:"order_id"`
	Amount      float64 `url:"amount"`
	Currency    string  `url:"currency"`
	CouponCode  string  `url:"coupon,omitempty"`
}

func (c *Client) TrackConversion(ctx context.Context, conv fulfillment.Conversion) error {
	params, err := query.Values(conversionParams{
		AffiliateID: conv.AffiliateID,
		OrderNumber: conv.OrderNumber,
		Amount:      conv.Amount,
		Currency:    conv.Currency,
		CouponCode:  conv.CouponCode,
	})
	if err != nil {
		return fmt.Errorf("encode conversion params: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/conversions?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create conversion request: %w", err)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http conversion request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("commission network %s: %s", resp.Status, string(raw))
	}
	return nil
}
