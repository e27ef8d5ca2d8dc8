package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo_port.go -destination=mock_repo.go -package=order

// Repo is the order storage port. All mutations are single atomic updates;
// the pipeline deliberately avoids multi-step transactions (see the price
// guard and the dispatch ledger for the compensating mechanisms).
type Repo interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (Order, error)

	// UpdateStatus applies a status transition and records the gateway
	// transaction id in one statement. Last write wins.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, transactionID string) error

	// HealMetadataPrice overwrites the metadata price copy with the corrected
	// value and the correction marker, as a single jsonb merge.
	HealMetadataPrice(ctx context.Context, id uuid.UUID, c PriceCorrection) error

	// LastAttributedAt returns the creation time of the customer's most
	// recent completed order carrying a referring-partner marker, or nil.
	// The order identified by excludeOrderID never counts; the caller asks
	// about history, not about the order it is currently processing.
	LastAttributedAt(ctx context.Context, email string, excludeOrderID uuid.UUID) (*time.Time, error)

	// FirstAffiliate returns the affiliate of the customer's earliest
	// attributed order, or nil when no attribution exists yet.
	FirstAffiliate(ctx context.Context, email string) (*string, error)
}
