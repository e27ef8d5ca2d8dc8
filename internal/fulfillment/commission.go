package fulfillment

import (
	"context"
	"fmt"
	"time"

	"challengecart/internal/domain/order"

	"github.com/google/uuid"
)

// Conversion is what the commission network receives for an eligible order.
type Conversion struct {
	AffiliateID string
	OrderNumber string
	Amount      float64
	Currency    string
	CouponCode  string
}

// ConversionTracker posts a conversion to the commission network.
type ConversionTracker interface {
	TrackConversion(ctx context.Context, conv Conversion) error
}

// AttributionSource answers when the customer's most recent attributed order
// was created, ignoring the excluded order. Nil means the customer has no
// prior attribution.
type AttributionSource interface {
	LastAttributedAt(ctx context.Context, email string, excludeOrderID uuid.UUID) (*time.Time, error)
}

// CommissionStep reports completed original-purchase orders carrying a
// referring-partner marker to the commission network. Returning customers
// are eligible only within the rolling attribution window measured from
// their most recent previously-attributed order.
type CommissionStep struct {
	tracker     ConversionTracker
	attribution AttributionSource
	window      time.Duration
}

func NewCommissionStep(tracker ConversionTracker, attribution AttributionSource, window time.Duration) *CommissionStep {
	return &CommissionStep{tracker: tracker, attribution: attribution, window: window}
}

func (s *CommissionStep) Name() string { return "commission" }

func (s *CommissionStep) Run(ctx context.Context, o order.Order) Result {
	if o.Status != order.StatusCompleted {
		return Skipped("order not completed")
	}
	if o.PurchaseType != order.PurchaseOriginal {
		return Skipped(fmt.Sprintf("purchase type %s not commissionable", o.PurchaseType))
	}

	affiliateID, ok := o.AffiliateID()
	if !ok {
		return Skipped("no referring partner")
	}

	// The order at hand is already committed as completed, so it must not
	// count as its own prior attribution.
	lastAt, err := s.attribution.LastAttributedAt(ctx, o.Email, o.ID)
	if err != nil {
		return Failed(fmt.Errorf("look up attribution history: %w", err))
	}
	if lastAt != nil && time.Since(*lastAt) > s.window {
		return Skipped("customer outside attribution window")
	}

	err = s.tracker.TrackConversion(ctx, Conversion{
		AffiliateID: affiliateID,
		OrderNumber: o.OrderNumber,
		Amount:      o.PurchasePrice,
		Currency:    o.Currency,
		CouponCode:  o.DiscountCode,
	})
	if err != nil {
		return Failed(fmt.Errorf("track conversion: %w", err))
	}
	return Sent(fmt.Sprintf("conversion tracked for affiliate %s", affiliateID))
}
