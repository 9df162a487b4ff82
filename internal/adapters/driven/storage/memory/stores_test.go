package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

func TestNewStoreRepository(t *testing.T) {
	repo := NewStoreRepository()
	require.NotNil(t, repo)
	assert.NotNil(t, repo.stores)
}

func TestStoreRepository_Save_Success(t *testing.T) {
	repo := NewStoreRepository()
	ctx := context.Background()

	err := repo.Save(ctx, domain.Store{
		ID:      "1",
		Code:    "default",
		Name:    "Main Website",
		BaseURL: "https://shop.example.com/",
		Active:  true,
	})
	require.NoError(t, err)

	saved, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "default", saved.Code)
	assert.Equal(t, "Main Website", saved.Name)
	assert.Equal(t, "https://shop.example.com/", saved.BaseURL)
	assert.True(t, saved.Active)
}

func TestStoreRepository_Save_UpdateKeepsPosition(t *testing.T) {
	repo := NewStoreRepository(
		domain.Store{ID: "1", BaseURL: "https://a.test", Active: true},
		domain.Store{ID: "2", BaseURL: "https://b.test", Active: true},
	)
	ctx := context.Background()

	err := repo.Save(ctx, domain.Store{ID: "1", BaseURL: "https://a2.test", Active: true})
	require.NoError(t, err)

	stores, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "1", stores[0].ID)
	assert.Equal(t, "https://a2.test", stores[0].BaseURL)
}

func TestStoreRepository_Get_NotFound(t *testing.T) {
	repo := NewStoreRepository()

	_, err := repo.Get(context.Background(), "nonexistent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreRepository_ListActive_OrderAndFilter(t *testing.T) {
	repo := NewStoreRepository(
		domain.Store{ID: "3", BaseURL: "https://c.test", Active: true, SortOrder: 10},
		domain.Store{ID: "1", BaseURL: "https://a.test", Active: true},
		domain.Store{ID: "2", BaseURL: "https://b.test", Active: false},
		domain.Store{ID: "4", BaseURL: "https://d.test", Active: true},
	)

	stores, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	ids := make([]string, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"1", "4", "3"}, ids)
}

func TestStoreRepository_SetActive(t *testing.T) {
	repo := NewStoreRepository(domain.Store{ID: "1", BaseURL: "https://a.test", Active: true})
	ctx := context.Background()

	require.NoError(t, repo.SetActive(ctx, "1", false))
	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, repo.SetActive(ctx, "missing", true), domain.ErrNotFound)
}

func TestStoreRepository_Concurrency(t *testing.T) {
	repo := NewStoreRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = repo.Save(ctx, domain.Store{ID: string(rune('a' + id)), BaseURL: "https://x.test", Active: true})
			_, _ = repo.ListActive(ctx)
		}(i)
	}
	wg.Wait()

	stores, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stores, 20)
}
