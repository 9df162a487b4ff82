package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
)

// storeRepository implements driven.StoreRepository.
type storeRepository struct {
	store *Store
}

var _ driven.StoreRepository = (*storeRepository)(nil)

const storeColumns = `id, code, name, base_url, is_active, sort_order`

// Save stores or updates a store. Updates keep the original rowid.
func (r *storeRepository) Save(ctx context.Context, store domain.Store) error {
	now := time.Now().UTC()
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO stores (id, code, name, base_url, is_active, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			code = excluded.code,
			name = excluded.name,
			base_url = excluded.base_url,
			is_active = excluded.is_active,
			sort_order = excluded.sort_order,
			updated_at = excluded.updated_at
	`, store.ID, store.Code, store.Name, store.BaseURL, store.Active, store.SortOrder, now, now)
	if err != nil {
		return fmt.Errorf("saving store: %w", err)
	}
	return nil
}

// Get retrieves a store by ID.
func (r *storeRepository) Get(ctx context.Context, id string) (*domain.Store, error) {
	row := r.store.db.QueryRowContext(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = ?`, id)

	store, err := scanStore(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning store: %w", err)
	}
	return &store, nil
}

// SetActive toggles whether a store's origin is managed.
func (r *storeRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.store.db.ExecContext(ctx,
		`UPDATE stores SET is_active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating store: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all stores in enumeration order.
func (r *storeRepository) List(ctx context.Context) ([]domain.Store, error) {
	return r.query(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY sort_order, rowid`)
}

// ListActive returns active stores in enumeration order.
func (r *storeRepository) ListActive(ctx context.Context) ([]domain.Store, error) {
	return r.query(ctx, `SELECT `+storeColumns+` FROM stores WHERE is_active = 1 ORDER BY sort_order, rowid`)
}

func (r *storeRepository) query(ctx context.Context, query string) ([]domain.Store, error) {
	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStore(row rowScanner) (domain.Store, error) {
	var s domain.Store
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.BaseURL, &s.Active, &s.SortOrder)
	return s, err
}
