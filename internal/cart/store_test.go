package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/internal/cart/domain"
	"github.com/adielbeauty/storefront/internal/cart/repository"
	"github.com/adielbeauty/storefront/internal/cart/storage"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
)

var (
	lipsticks = catalog.Product{ID: "avon-lipsticks", Name: "Avon Lipsticks", Brand: catalog.BrandAvon, Price: 10, Category: catalog.CategoryMakeup, Gender: catalog.GenderFemale}
	soap      = catalog.Product{ID: "avon-charcoal-soap", Name: "Avon Charcoal Soap", Brand: catalog.BrandAvon, Price: 5, Category: catalog.CategoryBodyCare, Gender: catalog.GenderUnisex}
	balm      = catalog.Product{ID: "amity-hill-balm", Name: "Amity Hill Balm", Brand: catalog.BrandAmity, Price: 7.5, Category: catalog.CategorySkincare, Gender: catalog.GenderUnisex}
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStorage, *NoticeQueue) {
	t.Helper()
	mem := storage.NewMemoryStorage()
	queue := NewNoticeQueue(nil)
	return NewStore(context.Background(), repository.NewSlotRepository(mem), queue), mem, queue
}

func TestAddToCartMergesEntries(t *testing.T) {
	ctx := context.Background()
	s, _, queue := newTestStore(t)

	s.AddToCart(ctx, lipsticks)
	s.AddToCart(ctx, lipsticks)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	notices := queue.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, "Added to Cart", notices[0].Title)
	assert.Equal(t, "Avon Lipsticks has been added to your cart.", notices[0].Description)
}

func TestCartTotals(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	s.AddToCart(ctx, lipsticks)
	s.UpdateCartItemQuantity(ctx, lipsticks.ID, 2)
	s.AddToCart(ctx, soap)
	s.UpdateCartItemQuantity(ctx, soap.ID, 3)

	assert.Equal(t, 35.0, s.CartTotal().Float64())
	assert.Equal(t, 5, s.CartItemCount())
}

func TestUpdateQuantityFloorRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		ctx := context.Background()
		s, _, _ := newTestStore(t)

		s.AddToCart(ctx, lipsticks)
		s.AddToCart(ctx, soap)
		s.UpdateCartItemQuantity(ctx, lipsticks.ID, qty)

		cart := s.Cart()
		require.Len(t, cart, 1, "quantity %d", qty)
		assert.Equal(t, soap.ID, cart[0].ID)
	}
}

func TestUpdateQuantityOnAbsentItemIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _, queue := newTestStore(t)

	s.UpdateCartItemQuantity(ctx, lipsticks.ID, 4)

	assert.Empty(t, s.Cart())
	assert.Empty(t, queue.Drain())
}

func TestRemoveAbsentItemIsNotAnError(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	s.AddToCart(ctx, soap)
	s.RemoveFromCart(ctx, lipsticks.ID)
	s.RemoveFromCart(ctx, "")

	assert.Len(t, s.Cart(), 1)
}

func TestToggleWishlistIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	s, _, queue := newTestStore(t)

	s.ToggleWishlist(ctx, soap)
	s.ToggleWishlist(ctx, balm)
	before := s.Wishlist()
	queue.Drain()

	assert.True(t, s.ToggleWishlist(ctx, lipsticks))
	assert.True(t, s.IsInWishlist(lipsticks.ID))
	assert.False(t, s.ToggleWishlist(ctx, lipsticks))
	assert.False(t, s.IsInWishlist(lipsticks.ID))

	assert.Equal(t, before, s.Wishlist())

	notices := queue.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, "Added to Wishlist", notices[0].Title)
	assert.Equal(t, "Removed from Wishlist", notices[1].Title)
}

func TestMalformedProductIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _, queue := newTestStore(t)

	s.AddToCart(ctx, catalog.Product{Name: "no id"})
	assert.False(t, s.ToggleWishlist(ctx, catalog.Product{}))

	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Wishlist())
	assert.Empty(t, queue.Drain())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	s.AddToCart(ctx, lipsticks)
	s.AddToCart(ctx, soap)
	s.AddToCart(ctx, balm)
	s.UpdateCartItemQuantity(ctx, soap.ID, 4)
	s.ToggleWishlist(ctx, balm)

	restarted := NewStore(ctx, repository.NewSlotRepository(mem), nil)

	before, after := s.Cart(), restarted.Cart()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Price, after[i].Price)
		assert.Equal(t, before[i].Quantity, after[i].Quantity)
	}
	assert.True(t, restarted.IsInWishlist(balm.ID))
}

func TestCorruptStorageStartsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.SetItem(ctx, domain.SlotCart, "not json"))
	require.NoError(t, mem.SetItem(ctx, domain.SlotWishlist, `[{"id":"x","name":"X","price":"$3"}]`))

	s := NewStore(ctx, repository.NewSlotRepository(mem), nil)

	assert.Empty(t, s.Cart())
	assert.True(t, s.IsInWishlist("x"))
}

func TestRehydrateDropsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.SetItem(ctx, domain.SlotCart, `[{"id":"a","price":1,"quantity":0},{"id":"b","price":2,"quantity":1},{"id":"b","price":2,"quantity":3}]`))

	s := NewStore(ctx, repository.NewSlotRepository(mem), nil)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "b", cart[0].ID)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestEveryMutationWritesBothSlots(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	s := NewStore(ctx, repository.NewSlotRepository(mem), nil)

	s.AddToCart(ctx, soap)

	_, err := mem.GetItem(ctx, domain.SlotCart)
	assert.NoError(t, err)
	wishlist, err := mem.GetItem(ctx, domain.SlotWishlist)
	assert.NoError(t, err)
	assert.Equal(t, "[]", wishlist)
}

type failingRepository struct{}

func (failingRepository) LoadCart(context.Context) ([]domain.CartItem, error) {
	return nil, errors.New("storage offline")
}

func (failingRepository) LoadWishlist(context.Context) ([]domain.WishlistItem, error) {
	return nil, errors.New("storage offline")
}

func (failingRepository) SaveCart(context.Context, []domain.CartItem) error {
	return errors.New("storage offline")
}

func (failingRepository) SaveWishlist(context.Context, []domain.WishlistItem) error {
	return errors.New("storage offline")
}

func TestFailedWritesKeepInMemoryState(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, failingRepository{}, nil)

	s.AddToCart(ctx, soap)
	assert.Equal(t, 1, s.CartItemCount())
}

func TestClearEmptiesCartOnly(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	s.AddToCart(ctx, soap)
	s.ToggleWishlist(ctx, balm)
	s.Clear(ctx)

	assert.Empty(t, s.Cart())
	assert.Zero(t, s.CartTotal())
	assert.True(t, s.IsInWishlist(balm.ID))

	raw, err := mem.GetItem(ctx, domain.SlotCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestRemoveOrderedSubtractsQuantities(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	s.AddToCart(ctx, soap)
	s.AddToCart(ctx, soap)
	s.AddToCart(ctx, soap)
	s.AddToCart(ctx, balm)
	s.ToggleWishlist(ctx, balm)

	s.RemoveOrdered(ctx, map[string]int{soap.ID: 2, balm.ID: 1, "gone": 4})

	require.Len(t, s.Cart(), 1)
	assert.Equal(t, soap.ID, s.Cart()[0].ID)
	assert.Equal(t, 1, s.Cart()[0].Quantity)
	assert.True(t, s.IsInWishlist(balm.ID))

	stored, err := repository.NewSlotRepository(mem).LoadCart(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].Quantity)
}
