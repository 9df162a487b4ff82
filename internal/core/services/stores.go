package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driving"
)

// Ensure StoreService implements the interface.
var _ driving.StoreService = (*StoreService)(nil)

// StoreService manages storefront records.
type StoreService struct {
	stores driven.StoreRepository
}

// NewStoreService creates a new store service.
func NewStoreService(stores driven.StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

// List returns all stores in enumeration order.
func (s *StoreService) List(ctx context.Context) ([]domain.Store, error) {
	if s.stores == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.stores.List(ctx)
}

// Add validates and saves a new store.
func (s *StoreService) Add(ctx context.Context, store domain.Store) error {
	if s.stores == nil {
		return domain.ErrNotImplemented
	}
	if err := store.Validate(); err != nil {
		return err
	}
	// Check if already exists
	existing, err := s.stores.Get(ctx, store.ID)
	if err == nil && existing != nil {
		return domain.ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.stores.Save(ctx, store)
}

// SetActive enables or disables a store.
func (s *StoreService) SetActive(ctx context.Context, id string, active bool) error {
	if s.stores == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.stores.SetActive(ctx, id, active)
}
