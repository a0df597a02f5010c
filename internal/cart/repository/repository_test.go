package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/internal/cart/domain"
	"github.com/adielbeauty/storefront/internal/cart/storage"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
)

func TestSlotRepositoryMissingSlotsAreEmpty(t *testing.T) {
	repo := NewSlotRepository(storage.NewMemoryStorage())

	cart, err := repo.LoadCart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cart)

	wishlist, err := repo.LoadWishlist(context.Background())
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestSlotRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTracingRepository(NewSlotRepository(storage.NewMemoryStorage()))

	items := []domain.CartItem{
		{Product: catalog.Product{ID: "a", Name: "A", Price: 10}, Quantity: 2},
		{Product: catalog.Product{ID: "b", Name: "B", Price: 7.5}, Quantity: 1},
	}
	require.NoError(t, repo.SaveCart(ctx, items))
	require.NoError(t, repo.SaveWishlist(ctx, nil))

	got, err := repo.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	wishlist, err := repo.LoadWishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestSlotRepositoryReadsLegacyPriceStrings(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStorage()
	require.NoError(t, s.SetItem(ctx, domain.SlotCart, `[{"id":"avon-lipsticks","name":"Avon Lipsticks","price":"$10","quantity":3}]`))

	items, err := NewSlotRepository(s).LoadCart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 30.0, items[0].LineTotal().Float64())
}

func TestSlotRepositoryCorruptSlotIsAnError(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStorage()
	require.NoError(t, s.SetItem(ctx, domain.SlotWishlist, `{not json`))

	_, err := NewTracingRepository(NewSlotRepository(s)).LoadWishlist(ctx)
	assert.Error(t, err)
}
