// Package mapping resolves the abstract (program, tier, platform,
// order-type) tuple into concrete back-office product and variation IDs.
package mapping

import "github.com/google/uuid"

// ProductMapping is globally scoped configuration: at most one mapping per
// (program, tier, platform) key. Legacy rows predate tier IDs and carry an
// AccountSizeKey instead of a TierID.
type ProductMapping struct {
	ID           uuid.UUID
	ProgramID    uuid.UUID
	TierID       *uuid.UUID
	PlatformSlug string

	// AccountSizeKey is set on legacy rows only: a sanitized account-size
	// slug matched by suffix.
	AccountSizeKey string

	ProductID   int64
	VariationID int64

	ResetFeeProductID         int64
	ResetFeeFundedProductID   int64
	ResetFeeFundedVariationID int64
	ActivationProductID       int64
}

// Tier is a program tier. Labels are free text entered by operators and are
// only ever compared after normalization.
type Tier struct {
	ID    uuid.UUID
	Label string
}

// Resolution is the resolver's outcome. A zero resolution is legal: the
// order proceeds with a flagged line item rather than blocking confirmation.
type Resolution struct {
	ProductID   int64
	VariationID int64
}

func (r Resolution) Zero() bool {
	return r.ProductID == 0 && r.VariationID == 0
}
