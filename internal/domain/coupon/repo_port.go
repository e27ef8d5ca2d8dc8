package coupon

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo_port.go -destination=mock_repo.go -package=coupon

// Repo is the coupon store.
type Repo interface {
	// FindAutoApply returns active auto-apply coupons whose validity window
	// contains now.
	FindAutoApply(ctx context.Context, now time.Time) ([]Coupon, error)

	// GetByCode looks a coupon up by its upper-cased code.
	GetByCode(ctx context.Context, code string) (Coupon, error)
}

// UsageLedger counts redemptions against the (coupon, customer) ledger.
type UsageLedger interface {
	CountTotal(ctx context.Context, couponID uuid.UUID) (int, error)
	CountByCustomer(ctx context.Context, couponID uuid.UUID, email string) (int, error)
}

// AttributionSource answers which affiliate first referred a customer.
// First attribution is sticky across the customer's lifetime.
type AttributionSource interface {
	FirstAffiliate(ctx context.Context, email string) (*string, error)
}
