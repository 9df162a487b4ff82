package driven

import (
	"context"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

// StoreRepository enumerates and persists storefronts.
type StoreRepository interface {
	// ListActive returns active stores in enumeration order
	// (sort order, then insertion order).
	ListActive(ctx context.Context) ([]domain.Store, error)

	// List returns all stores in enumeration order.
	List(ctx context.Context) ([]domain.Store, error)

	// Get retrieves a store by ID. Returns domain.ErrNotFound if missing.
	Get(ctx context.Context, id string) (*domain.Store, error)

	// Save stores or updates a store.
	Save(ctx context.Context, store domain.Store) error

	// SetActive toggles whether a store's origin is managed.
	// Returns domain.ErrNotFound if missing.
	SetActive(ctx context.Context, id string, active bool) error
}
