package fulfillment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"challengecart/internal/domain/mapping"
	"challengecart/internal/domain/order"
	"challengecart/pkg/logger"
)

// Vendor-shaped payload for the back-office order-creation webhook.
type OrderPayload struct {
	ID       string     `json:"id"`
	Status   string     `json:"status"`
	Currency string     `json:"currency"`
	Total    string     `json:"total"`
	Billing  Billing    `json:"billing"`
	Lines    []LineItem `json:"line_items"`
	FeeLines []FeeLine  `json:"fee_lines,omitempty"`
	MetaData []MetaKV   `json:"meta_data,omitempty"`
}

type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
}

type LineItem struct {
	Name        string `json:"name"`
	ProductID   int64  `json:"product_id"`
	VariationID int64  `json:"variation_id"`
	Total       string `json:"total"`
}

type FeeLine struct {
	MetaData []MetaKV `json:"meta_data"`
}

type MetaKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BackofficeSender posts the assembled order to the back-office system.
type BackofficeSender interface {
	SendOrder(ctx context.Context, p OrderPayload) error
}

// BackofficeStep assembles and posts the back-office order-creation webhook
// for completed orders. Product and variation IDs come from the mapping
// resolver; an unresolved mapping produces a flagged zero-ID line item
// rather than blocking confirmation.
type BackofficeStep struct {
	sender   BackofficeSender
	resolver *mapping.Resolver
	addOns   mapping.Repo
	log      *logger.Logger
}

func NewBackofficeStep(sender BackofficeSender, resolver *mapping.Resolver, addOns mapping.Repo, log *logger.Logger) *BackofficeStep {
	return &BackofficeStep{sender: sender, resolver: resolver, addOns: addOns, log: log}
}

func (s *BackofficeStep) Name() string { return "backoffice" }

func (s *BackofficeStep) Run(ctx context.Context, o order.Order) Result {
	if o.Status != order.StatusCompleted {
		return Skipped("order not completed")
	}

	res, err := s.resolver.Resolve(ctx, mapping.ResolveInput{
		ProgramID:     o.ProgramID,
		TierID:        o.TierID,
		AccountSize:   o.AccountSize,
		PlatformSlug:  o.PlatformSlug,
		PurchaseType:  o.PurchaseType,
		AccountFunded: o.AccountFunded(),
	})
	if err != nil {
		return Failed(fmt.Errorf("resolve product mapping: %w", err))
	}

	payload, err := s.buildPayload(ctx, o, res)
	if err != nil {
		return Failed(err)
	}

	if err := s.sender.SendOrder(ctx, payload); err != nil {
		return Failed(fmt.Errorf("send back-office order: %w", err))
	}

	detail := "order created"
	if res.Zero() {
		detail = "order created with unresolved product mapping"
	}
	return Sent(detail)
}

func (s *BackofficeStep) buildPayload(ctx context.Context, o order.Order, res mapping.Resolution) (OrderPayload, error) {
	payload := OrderPayload{
		ID:       o.OrderNumber,
		Status:   "processing",
		Currency: o.Currency,
		// The back office bills the purchase price; the order total may
		// include presentation-only adjustments.
		Total: formatAmount(o.PurchasePrice),
		Billing: Billing{
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Address1:  o.Address1,
			City:      o.City,
			State:     o.State,
			Postcode:  o.Postcode,
			Country:   o.Country,
			Email:     o.Email,
		},
		Lines: []LineItem{{
			Name:        lineItemName(o),
			ProductID:   res.ProductID,
			VariationID: res.VariationID,
			Total:       formatAmount(o.PurchasePrice),
		}},
	}

	for _, sel := range o.AddOns {
		key, err := s.addOns.AddOnKey(ctx, sel.AddOnID)
		if err != nil {
			// A stale add-on reference degrades to a dropped fee line, not a
			// lost order.
			s.log.WarnContext(ctx, "add-on key not resolved",
				"order_number", o.OrderNumber, "add_on_id", sel.AddOnID, "error", err)
			continue
		}
		payload.FeeLines = append(payload.FeeLines, FeeLine{MetaData: []MetaKV{
			{Key: "addon_key", Value: key},
			{Key: "addon_percentage", Value: formatAmount(sel.Percentage)},
		}})
	}

	if o.PurchaseType == order.PurchaseReset || o.PurchaseType == order.PurchaseActivation {
		if accountID, ok := o.Metadata.String(order.MetaAccountID); ok && accountID != "" {
			payload.MetaData = append(payload.MetaData, MetaKV{Key: "account_id", Value: accountID})
		}
	}

	return payload, nil
}

func lineItemName(o order.Order) string {
	parts := []string{o.AccountSize, o.PlatformSlug}
	if o.PurchaseType != order.PurchaseOriginal {
		parts = append(parts, string(o.PurchaseType))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
