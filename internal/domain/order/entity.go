package order

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Status is the internal order status. The gateway's wider vocabulary is
// collapsed into this enum by MapGatewayStatus.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

var AvailableStatuses = []Status{StatusPending, StatusCompleted, StatusFailed, StatusCancelled}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid order status")
}

// Terminal reports whether the order has reached a settled payment outcome.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type PurchaseType string

const (
	PurchaseOriginal   PurchaseType = "original"
	PurchaseReset      PurchaseType = "reset"
	PurchaseActivation PurchaseType = "activation"
)

// AddOnSelection is an ordered add-on reference with its price percentage.
type AddOnSelection struct {
	AddOnID    uuid.UUID `json:"add_on_id"`
	Percentage float64   `json:"percentage"`
}

// Metadata is the order's open key/value bag. It stages legacy fields not yet
// promoted to columns (the denormalized totalPrice copy among them); dispatch
// idempotency markers live in the integration-outcome ledger, not here.
type Metadata map[string]any

// Well-known metadata keys.
const (
	MetaTotalPrice    = "totalPrice"
	MetaOriginalPrice = "originalPrice"
	MetaPriceFixedAt  = "priceFixedAt"
	MetaPriceFixedBy  = "priceFixedBy"
	MetaAffiliateID   = "affiliateId"
	MetaAccountFunded = "accountFunded"
	MetaAccountID     = "accountId"
)

// Float64 reads a numeric metadata value. Legacy writers stored numbers both
// as JSON numbers and as strings; both are accepted.
func (m Metadata) Float64(key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func (m Metadata) String(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

func (m Metadata) Bool(key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1" || v == "yes"
	default:
		return false
	}
}

// Order is the canonical purchase record.
type Order struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`

	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`

	PurchasePrice float64 `json:"purchase_price"`
	TotalPrice    float64 `json:"total_price"`
	Currency      string  `json:"currency"`
	DiscountCode  string  `json:"discount_code,omitempty"`

	PurchaseType    PurchaseType `json:"purchase_type"`
	IsInAppPurchase bool         `json:"is_in_app_purchase"`

	ProgramID    uuid.UUID        `json:"program_id"`
	PlatformSlug string           `json:"platform_slug"`
	AccountSize  string           `json:"account_size"`
	TierID       *uuid.UUID       `json:"tier_id,omitempty"`
	AddOns       []AddOnSelection `json:"selected_add_ons,omitempty"`

	Status        Status   `json:"status"`
	TransactionID string   `json:"transaction_id,omitempty"`
	Metadata      Metadata `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AffiliateID returns the referring-partner marker, if any.
func (o *Order) AffiliateID() (string, bool) {
	s, ok := o.Metadata.String(MetaAffiliateID)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// AccountFunded reports whether the underlying account was already funded,
// which selects the funded-reset product on reset orders.
func (o *Order) AccountFunded() bool {
	return o.Metadata.Bool(MetaAccountFunded)
}
