package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adielbeauty/storefront/internal/cart/domain"
	"github.com/adielbeauty/storefront/internal/cart/storage"
)

// SlotRepository stores the cart and wishlist as JSON arrays in two storage slots
type SlotRepository struct {
	storage storage.LocalStorage
}

// NewSlotRepository creates a repository over the given storage
func NewSlotRepository(s storage.LocalStorage) *SlotRepository {
	return &SlotRepository{storage: s}
}

// LoadCart reads the cart slot. A missing slot is an empty cart.
func (r *SlotRepository) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := r.load(ctx, domain.SlotCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadWishlist reads the wishlist slot. A missing slot is an empty wishlist.
func (r *SlotRepository) LoadWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := r.load(ctx, domain.SlotWishlist, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart overwrites the cart slot
func (r *SlotRepository) SaveCart(ctx context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	return r.save(ctx, domain.SlotCart, items)
}

// SaveWishlist overwrites the wishlist slot
func (r *SlotRepository) SaveWishlist(ctx context.Context, items []domain.WishlistItem) error {
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return r.save(ctx, domain.SlotWishlist, items)
}

func (r *SlotRepository) load(ctx context.Context, slot string, v interface{}) error {
	raw, err := r.storage.GetItem(ctx, slot)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", slot, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", slot, err)
	}
	return nil
}

func (r *SlotRepository) save(ctx context.Context, slot string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", slot, err)
	}
	if err := r.storage.SetItem(ctx, slot, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", slot, err)
	}
	return nil
}
