package order

import (
	"math"
	"time"
)

// priceTolerance is one currency minor unit. The root and metadata copies of
// the total are written by independent code paths; rounding drift up to one
// minor unit is expected, anything beyond it is a divergence to heal.
const priceTolerance = 0.01

// PriceCorrection records a healed divergence between the root total and its
// denormalized metadata copy.
type PriceCorrection struct {
	Previous  float64
	Corrected float64
	FixedAt   time.Time
	FixedBy   string
}

// ReconcilePrice compares the root totalPrice with the metadata copy. On
// divergence beyond the tolerance the root value wins: the metadata copy is
// overwritten in place and stamped with the correction marker. Returns nil
// when nothing needed healing. The guard never aborts processing.
func ReconcilePrice(o *Order, now time.Time, fixedBy string) *PriceCorrection {
	metaTotal, ok := o.Metadata.Float64(MetaTotalPrice)
	if !ok {
		return nil
	}
	if math.Abs(o.TotalPrice-metaTotal) <= priceTolerance {
		return nil
	}

	fixedAt := now.UTC()
	if o.Metadata == nil {
		o.Metadata = Metadata{}
	}
	o.Metadata[MetaTotalPrice] = o.TotalPrice
	o.Metadata[MetaPriceFixedAt] = fixedAt.Format(time.RFC3339)
	o.Metadata[MetaPriceFixedBy] = fixedBy

	return &PriceCorrection{
		Previous:  metaTotal,
		Corrected: o.TotalPrice,
		FixedAt:   fixedAt,
		FixedBy:   fixedBy,
	}
}
