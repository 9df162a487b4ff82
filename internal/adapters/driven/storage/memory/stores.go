package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
)

// Ensure StoreRepository implements the interface.
var _ driven.StoreRepository = (*StoreRepository)(nil)

// StoreRepository is an in-memory implementation of driven.StoreRepository.
// Enumeration order is sort order, then insertion order.
type StoreRepository struct {
	mu     sync.RWMutex
	stores map[string]domain.Store
	order  []string
}

// NewStoreRepository creates a new in-memory store repository.
func NewStoreRepository(stores ...domain.Store) *StoreRepository {
	r := &StoreRepository{
		stores: make(map[string]domain.Store),
	}
	for _, s := range stores {
		r.put(s)
	}
	return r
}

func (r *StoreRepository) put(store domain.Store) {
	if _, ok := r.stores[store.ID]; !ok {
		r.order = append(r.order, store.ID)
	}
	r.stores[store.ID] = store
}

// Save stores or updates a store.
func (r *StoreRepository) Save(_ context.Context, store domain.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(store)
	return nil
}

// Get retrieves a store by ID.
func (r *StoreRepository) Get(_ context.Context, id string) (*domain.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &store, nil
}

// SetActive toggles whether a store's origin is managed.
func (r *StoreRepository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[id]
	if !ok {
		return domain.ErrNotFound
	}
	store.Active = active
	r.stores[id] = store
	return nil
}

// List returns all stores in enumeration order.
func (r *StoreRepository) List(_ context.Context) ([]domain.Store, error) {
	return r.list(false), nil
}

// ListActive returns active stores in enumeration order.
func (r *StoreRepository) ListActive(_ context.Context) ([]domain.Store, error) {
	return r.list(true), nil
}

func (r *StoreRepository) list(activeOnly bool) []domain.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Store, 0, len(r.order))
	for _, id := range r.order {
		s := r.stores[id]
		if activeOnly && !s.Active {
			continue
		}
		result = append(result, s)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortOrder < result[j].SortOrder
	})
	return result
}
