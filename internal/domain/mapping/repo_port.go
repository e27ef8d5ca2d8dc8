package mapping

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo_port.go -destination=mock_repo.go -package=mapping

var ErrAddOnNotFound = errors.New("add-on not found")

// Repo is the mapping configuration store.
type Repo interface {
	// GetMapping returns the mapping at the exact key, or nil when absent.
	// Absence is legal and handled by the resolver's fallback chain.
	GetMapping(ctx context.Context, programID, tierID uuid.UUID, platformSlug string) (*ProductMapping, error)

	// ListTiers returns the program's tiers for account-size derivation.
	ListTiers(ctx context.Context, programID uuid.UUID) ([]Tier, error)

	// ListLegacyByPlatform returns pre-tier mappings for the platform.
	ListLegacyByPlatform(ctx context.Context, platformSlug string) ([]ProductMapping, error)

	// AddOnKey resolves an add-on reference to its canonical key.
	AddOnKey(ctx context.Context, addOnID uuid.UUID) (string, error)
}
