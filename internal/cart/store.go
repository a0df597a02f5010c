// Package cart owns a browsing session's shopping cart and wishlist.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/adielbeauty/storefront/internal/cart/domain"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/pkg/logger"
	"github.com/adielbeauty/storefront/pkg/money"
)

var cartOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_cart_operations_total",
		Help: "Total number of cart and wishlist mutations",
	},
	[]string{"operation"},
)

// Store is the single authoritative cart and wishlist of one session.
// Every mutation writes both collections to the repository.
type Store struct {
	mu       sync.Mutex
	cart     []domain.CartItem
	wishlist []domain.WishlistItem
	repo     domain.StateRepository
	notifier domain.Notifier
}

// NewStore rehydrates the collections from repo. A missing or unreadable slot
// starts empty and is logged; it is never reported to the caller.
func NewStore(ctx context.Context, repo domain.StateRepository, notifier domain.Notifier) *Store {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	s := &Store{
		repo:     repo,
		notifier: notifier,
	}

	cart, err := repo.LoadCart(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Error loading cart, starting empty")
		cart = nil
	}
	s.cart = sanitizeCart(cart)

	wishlist, err := repo.LoadWishlist(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Error loading wishlist, starting empty")
		wishlist = nil
	}
	s.wishlist = sanitizeWishlist(wishlist)

	return s
}

// sanitizeCart drops entries a hand-edited or stale slot could contain
func sanitizeCart(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" || item.Quantity <= 0 || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

func sanitizeWishlist(items []domain.WishlistItem) []domain.WishlistItem {
	out := make([]domain.WishlistItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

// AddToCart increments the quantity of an existing entry or appends a new one
func (s *Store) AddToCart(ctx context.Context, product catalog.Product) {
	if product.ID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.cartIndex(product.ID); i >= 0 {
		s.cart[i].Quantity++
	} else {
		s.cart = append(s.cart, domain.CartItem{Product: product, Quantity: 1})
	}

	s.persist(ctx, "add_to_cart")
	s.notifier.Notify(ctx, domain.Notice{
		Kind:        domain.NoticeSuccess,
		Title:       "Added to Cart",
		Description: fmt.Sprintf("%s has been added to your cart.", product.Name),
	})
}

// RemoveFromCart removes the entry if present
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	if productID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID string) {
	if i := s.cartIndex(productID); i >= 0 {
		s.cart = append(s.cart[:i], s.cart[i+1:]...)
	}

	s.persist(ctx, "remove_from_cart")
	s.notifier.Notify(ctx, domain.Notice{
		Kind:        domain.NoticeInfo,
		Title:       "Removed from Cart",
		Description: "Item has been removed from your cart.",
	})
}

// UpdateCartItemQuantity sets an absolute quantity. Zero or less removes the
// entry; an id that is not in the cart is ignored.
func (s *Store) UpdateCartItemQuantity(ctx context.Context, productID string, quantity int) {
	if productID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(ctx, productID)
		return
	}

	i := s.cartIndex(productID)
	if i < 0 {
		return
	}
	s.cart[i].Quantity = quantity
	s.persist(ctx, "update_quantity")
}

// ToggleWishlist adds the product when absent and removes it when present.
// It reports whether the product is in the wishlist afterwards.
func (s *Store) ToggleWishlist(ctx context.Context, product catalog.Product) bool {
	if product.ID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.wishlistIndex(product.ID); i >= 0 {
		s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
		s.persist(ctx, "wishlist_remove")
		s.notifier.Notify(ctx, domain.Notice{
			Kind:        domain.NoticeInfo,
			Title:       "Removed from Wishlist",
			Description: fmt.Sprintf("%s has been removed from your wishlist.", product.Name),
		})
		return false
	}

	s.wishlist = append(s.wishlist, domain.WishlistItem{Product: product})
	s.persist(ctx, "wishlist_add")
	s.notifier.Notify(ctx, domain.Notice{
		Kind:        domain.NoticeSuccess,
		Title:       "Added to Wishlist",
		Description: fmt.Sprintf("%s has been added to your wishlist.", product.Name),
	})
	return true
}

// IsInWishlist reports wishlist membership
func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlistIndex(productID) >= 0
}

// Cart returns a snapshot of the cart
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Wishlist returns a snapshot of the wishlist
func (s *Store) Wishlist() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.WishlistItem, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// CartTotal sums price times quantity over the cart
func (s *Store) CartTotal() money.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total money.Amount
	for _, item := range s.cart {
		total += item.LineTotal()
	}
	return total
}

// CartItemCount sums the quantities in the cart
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart in one step. The wishlist is kept.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []domain.CartItem{}
	s.persist(ctx, "clear")
}

// RemoveOrdered subtracts ordered quantities from the cart, keyed by product id.
// Entries added or topped up after the order was taken stay behind.
func (s *Store) RemoveOrdered(ctx context.Context, ordered map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		item.Quantity -= ordered[item.ID]
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.persist(ctx, "remove_ordered")
}

func (s *Store) cartIndex(id string) int {
	for i, item := range s.cart {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) wishlistIndex(id string) int {
	for i, item := range s.wishlist {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// persist writes both slots. Failures are logged and the in-memory state stands.
func (s *Store) persist(ctx context.Context, operation string) {
	cartOperations.WithLabelValues(operation).Inc()

	if err := s.repo.SaveCart(ctx, s.cart); err != nil {
		logger.Error(ctx).Err(err).Str("operation", operation).Msg("Failed to persist cart")
	}
	if err := s.repo.SaveWishlist(ctx, s.wishlist); err != nil {
		logger.Error(ctx).Err(err).Str("operation", operation).Msg("Failed to persist wishlist")
	}
}
