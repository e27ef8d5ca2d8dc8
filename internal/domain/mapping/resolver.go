package mapping

import (
	"context"
	"fmt"
	"strings"

	"challengecart/internal/domain/anomaly"
	"challengecart/internal/domain/order"
	"challengecart/pkg/logger"

	"github.com/google/uuid"
)

// ResolveInput carries everything the resolver needs from the order.
type ResolveInput struct {
	ProgramID     uuid.UUID
	TierID        *uuid.UUID
	AccountSize   string
	PlatformSlug  string
	PurchaseType  order.PurchaseType
	AccountFunded bool
}

type Resolver struct {
	repo      Repo
	anomalies anomaly.Sink
	log       *logger.Logger
}

func NewResolver(repo Repo, anomalies anomaly.Sink, log *logger.Logger) *Resolver {
	return &Resolver{repo: repo, anomalies: anomalies, log: log}
}

// Resolve walks the fallback chain and stops at the first success:
//
//  1. derive the tier from the account size when the order carries none;
//  2. exact (program, tier, platform) lookup;
//  3. legacy platform + sanitized account-size suffix lookup;
//  4. zero IDs, logged; never fatal, fulfillment proceeds flagged.
//
// The error return covers repository failures only; an unresolvable mapping
// is not an error.
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) (Resolution, error) {
	tierID := in.TierID
	if tierID == nil && in.AccountSize != "" {
		derived, err := r.deriveTier(ctx, in.ProgramID, in.AccountSize)
		if err != nil {
			return Resolution{}, err
		}
		tierID = derived
	}

	if tierID != nil {
		m, err := r.repo.GetMapping(ctx, in.ProgramID, *tierID, in.PlatformSlug)
		if err != nil {
			return Resolution{}, fmt.Errorf("get mapping: %w", err)
		}
		if m != nil {
			return m.resolutionFor(in.PurchaseType, in.AccountFunded), nil
		}
	}

	m, err := r.legacyLookup(ctx, in.PlatformSlug, in.AccountSize)
	if err != nil {
		return Resolution{}, err
	}
	if m != nil {
		return m.resolutionFor(in.PurchaseType, in.AccountFunded), nil
	}

	r.log.WarnContext(ctx, "no product mapping resolved",
		"program_id", in.ProgramID,
		"platform_slug", in.PlatformSlug,
		"account_size", in.AccountSize,
		"purchase_type", in.PurchaseType)
	if err := r.anomalies.Report(ctx, anomaly.New(anomaly.KindMappingUnresolved, "", map[string]any{
		"program_id":    in.ProgramID.String(),
		"platform_slug": in.PlatformSlug,
		"account_size":  in.AccountSize,
		"purchase_type": string(in.PurchaseType),
	})); err != nil {
		r.log.ErrorContext(ctx, "anomaly not indexed", "error", err)
	}
	return Resolution{}, nil
}

// deriveTier matches the order's account size against the program's tier
// labels after normalizing both sides. Tier labels are free text; a literal
// comparison would miss "$100,000" vs "100000".
func (r *Resolver) deriveTier(ctx context.Context, programID uuid.UUID, accountSize string) (*uuid.UUID, error) {
	tiers, err := r.repo.ListTiers(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}

	want := NormalizeAccountSize(accountSize)
	for _, t := range tiers {
		if NormalizeAccountSize(t.Label) == want {
			id := t.ID
			return &id, nil
		}
	}
	return nil, nil
}

// legacyLookup supports mappings created before tier IDs existed: keyed by
// platform plus a sanitized account-size slug, matched by suffix.
func (r *Resolver) legacyLookup(ctx context.Context, platformSlug, accountSize string) (*ProductMapping, error) {
	if accountSize == "" {
		return nil, nil
	}

	mappings, err := r.repo.ListLegacyByPlatform(ctx, platformSlug)
	if err != nil {
		return nil, fmt.Errorf("list legacy mappings: %w", err)
	}

	sanitized := SanitizeAccountSize(accountSize)
	for i := range mappings {
		key := mappings[i].AccountSizeKey
		if key != "" && strings.HasSuffix(key, sanitized) {
			return &mappings[i], nil
		}
	}
	return nil, nil
}

// resolutionFor branches on the purchase type. A reset-specific variation
// override takes precedence over the mapping's default variation.
func (m *ProductMapping) resolutionFor(pt order.PurchaseType, funded bool) Resolution {
	switch pt {
	case order.PurchaseReset:
		if funded && m.ResetFeeFundedProductID != 0 {
			variation := m.VariationID
			if m.ResetFeeFundedVariationID != 0 {
				variation = m.ResetFeeFundedVariationID
			}
			return Resolution{ProductID: m.ResetFeeFundedProductID, VariationID: variation}
		}
		if m.ResetFeeProductID != 0 {
			return Resolution{ProductID: m.ResetFeeProductID, VariationID: m.VariationID}
		}
		return Resolution{ProductID: m.ProductID, VariationID: m.VariationID}
	case order.PurchaseActivation:
		if m.ActivationProductID != 0 {
			return Resolution{ProductID: m.ActivationProductID, VariationID: m.VariationID}
		}
		return Resolution{ProductID: m.ProductID, VariationID: m.VariationID}
	default:
		return Resolution{ProductID: m.ProductID, VariationID: m.VariationID}
	}
}
