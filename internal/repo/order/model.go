package order_repo

import (
	"encoding/json"
	"fmt"
	"time"

	"challengecart/internal/domain/order"

	"github.com/google/uuid"
)

// orderRow is the scan target. jsonb columns arrive as raw bytes and are
// decoded in toDomain; nullable text columns scan through pointers.
type orderRow struct {
	ID          uuid.UUID
	OrderNumber string

	Email     string
	FirstName string
	LastName  string
	Address1  string
	City      string
	State     string
	Postcode  string
	Country   string

	PurchasePrice float64
	TotalPrice    float64
	Currency      string
	DiscountCode  *string

	PurchaseType    string
	IsInAppPurchase bool

	ProgramID    uuid.UUID
	PlatformSlug string
	AccountSize  string
	TierID       *uuid.UUID
	AddOns       []byte

	Status        string
	TransactionID *string
	Metadata      []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m orderRow) toDomain() (order.Order, error) {
	status, err := order.NewStatus(m.Status)
	if err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", m.OrderNumber, err)
	}

	var addOns []order.AddOnSelection
	if len(m.AddOns) > 0 {
		if err := json.Unmarshal(m.AddOns, &addOns); err != nil {
			return order.Order{}, fmt.Errorf("decode add_ons for %s: %w", m.OrderNumber, err)
		}
	}

	var metadata order.Metadata
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return order.Order{}, fmt.Errorf("decode metadata for %s: %w", m.OrderNumber, err)
		}
	}

	o := order.Order{
		ID:              m.ID,
		OrderNumber:     m.OrderNumber,
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Address1:        m.Address1,
		City:            m.City,
		State:           m.State,
		Postcode:        m.Postcode,
		Country:         m.Country,
		PurchasePrice:   m.PurchasePrice,
		TotalPrice:      m.TotalPrice,
		Currency:        m.Currency,
		PurchaseType:    order.PurchaseType(m.PurchaseType),
		IsInAppPurchase: m.IsInAppPurchase,
		ProgramID:       m.ProgramID,
		PlatformSlug:    m.PlatformSlug,
		AccountSize:     m.AccountSize,
		TierID:          m.TierID,
		AddOns:          addOns,
		Status:          status,
		Metadata:        metadata,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.DiscountCode != nil {
		o.DiscountCode = *m.DiscountCode
	}
	if m.TransactionID != nil {
		o.TransactionID = *m.TransactionID
	}
	return o, nil
}
