package driving

import (
	"context"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

// AllowlistService runs whitelist modes against the active stores.
type AllowlistService interface {
	// Run parses mode and reconciles every active store origin.
	// An unrecognised mode returns domain.ErrInvalidMode without any remote call.
	// Per-item failures are reported in the Report, not returned.
	Run(ctx context.Context, mode string) (*domain.Report, error)

	// DesiredOrigins returns the normalised origins of the active stores.
	DesiredOrigins(ctx context.Context) ([]domain.LocalOrigin, error)
}

// StoreService manages the storefronts whose origins are whitelisted.
type StoreService interface {
	// List returns all stores in enumeration order.
	List(ctx context.Context) ([]domain.Store, error)

	// Add validates and saves a new store.
	// Returns domain.ErrAlreadyExists if the ID is taken.
	Add(ctx context.Context, store domain.Store) error

	// SetActive enables or disables a store.
	SetActive(ctx context.Context, id string, active bool) error
}
