package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driving"
)

// Ensure AllowlistService implements the interface.
var _ driving.AllowlistService = (*AllowlistService)(nil)

// AllowlistService reconciles the active store origins with Adyen.
type AllowlistService struct {
	stores     driven.StoreRepository
	reconciler *Reconciler
}

// NewAllowlistService creates a new allowlist service.
func NewAllowlistService(stores driven.StoreRepository, reconciler *Reconciler) *AllowlistService {
	return &AllowlistService{
		stores:     stores,
		reconciler: reconciler,
	}
}

// Run parses mode and reconciles every active store origin.
func (s *AllowlistService) Run(ctx context.Context, mode string) (*domain.Report, error) {
	m, err := domain.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	if s.reconciler == nil {
		return nil, domain.ErrNotImplemented
	}

	var desired []domain.LocalOrigin
	if m != domain.ModeList {
		desired, err = s.DesiredOrigins(ctx)
		if err != nil {
			return nil, err
		}
	}

	return s.reconciler.Reconcile(ctx, m, desired), nil
}

// DesiredOrigins returns the normalised origins of the active stores.
func (s *AllowlistService) DesiredOrigins(ctx context.Context) ([]domain.LocalOrigin, error) {
	if s.stores == nil {
		return nil, domain.ErrNotImplemented
	}

	stores, err := s.stores.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active stores: %w", err)
	}

	origins := make([]domain.LocalOrigin, 0, len(stores))
	for _, store := range stores {
		origins = append(origins, domain.NewLocalOrigin(store))
	}
	return origins, nil
}
