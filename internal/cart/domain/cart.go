package domain

import (
	"context"

	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/pkg/money"
)

// Storage slot names
const (
	SlotCart     = "cart"
	SlotWishlist = "wishlist"
)

// CartItem is a product in the cart with a quantity of at least 1
type CartItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price times quantity
func (i CartItem) LineTotal() money.Amount {
	return i.Price.Times(i.Quantity)
}

// WishlistItem is a product the customer saved for later
type WishlistItem struct {
	catalog.Product
}

// StateRepository persists the two collections of one browsing session.
// Load returns empty collections for missing slots; a decode failure is an error.
type StateRepository interface {
	LoadCart(ctx context.Context) ([]CartItem, error)
	LoadWishlist(ctx context.Context) ([]WishlistItem, error)
	SaveCart(ctx context.Context, items []CartItem) error
	SaveWishlist(ctx context.Context, items []WishlistItem) error
}

// NoticeKind classifies an acknowledgment
type NoticeKind string

// Notice kinds
const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)

// Notice is a user-visible acknowledgment of an action
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
}

// Notifier receives acknowledgments
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}
