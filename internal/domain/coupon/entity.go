// Package coupon implements coupon validation and the pre-purchase
// auto-apply resolver.
package coupon

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusScheduled Status = "scheduled"
	StatusInactive  Status = "inactive"
)

type RestrictionType string

const (
	RestrictionAll       RestrictionType = "all"
	RestrictionWhitelist RestrictionType = "whitelist"
	RestrictionBlacklist RestrictionType = "blacklist"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// SizeOverride replaces the base discount value for one account size.
type SizeOverride struct {
	AccountSize   string  `json:"account_size"`
	DiscountValue float64 `json:"discount_value"`
}

type Coupon struct {
	ID     uuid.UUID
	Code   string // stored upper-case; input is matched case-insensitively
	Status Status

	RestrictionType RestrictionType
	ProgramIDs      []uuid.UUID
	AffiliateID     *string

	DiscountType  DiscountType
	DiscountValue float64
	SizeOverrides []SizeOverride

	AutoApply          bool
	AutoApplyPriority  int
	PreventManualEntry bool
	AutoApplyMessage   string

	TotalUsageLimit *int
	UsagePerUser    *int

	ValidFrom time.Time
	ValidTo   *time.Time // nil means never expires
}

// InWindow reports whether now falls inside the validity window.
func (c *Coupon) InWindow(now time.Time) bool {
	if now.Before(c.ValidFrom) {
		return false
	}
	return c.ValidTo == nil || !now.After(*c.ValidTo)
}

// AppliesToProgram evaluates the restriction list for a program.
func (c *Coupon) AppliesToProgram(programID uuid.UUID) bool {
	switch c.RestrictionType {
	case RestrictionWhitelist:
		return slices.Contains(c.ProgramIDs, programID)
	case RestrictionBlacklist:
		return !slices.Contains(c.ProgramIDs, programID)
	default:
		return true
	}
}

// DiscountFor computes the discount amount for an order, honoring the
// per-account-size override list. Account sizes compare case-insensitively.
func (c *Coupon) DiscountFor(accountSize string, orderAmount float64) float64 {
	value := c.DiscountValue
	for _, o := range c.SizeOverrides {
		if strings.EqualFold(o.AccountSize, accountSize) {
			value = o.DiscountValue
			break
		}
	}

	var discount float64
	if c.DiscountType == DiscountPercentage {
		discount = orderAmount * value / 100
	} else {
		discount = value
	}
	if discount > orderAmount {
		discount = orderAmount
	}
	return discount
}
