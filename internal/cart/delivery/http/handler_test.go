package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/internal/cart/domain"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/checkout"
	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	"github.com/adielbeauty/storefront/internal/session"
	"github.com/adielbeauty/storefront/pkg/money"
)

type client struct {
	t      *testing.T
	router http.Handler
	sid    string
}

func newClient(t *testing.T) *client {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	reg, err := session.NewRegistry(8, session.Deps{
		Catalog:    c,
		Storage:    session.MemoryStorageFactory(64),
		Builder:    checkout.NewBuilder(nil),
		Dispatcher: dispatch.NewRouter(dispatch.Vendor{}),
	}, nil)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.Use(reg.Middleware)
	NewCartHandler(c, nil).RegisterRoutes(router)
	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body interface{}, out interface{}) int {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if c.sid != "" {
		req.Header.Set(session.HeaderName, c.sid)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	c.sid = rec.Header().Get(session.HeaderName)

	if out != nil {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

type cartResponse struct {
	Data CartView `json:"data"`
}

type wishlistResponse struct {
	Data WishlistView `json:"data"`
}

func TestCartFlow(t *testing.T) {
	c := newClient(t)

	var out cartResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart/items", map[string]string{"product_id": "avon-lipsticks"}, &out))
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart/items", map[string]string{"product_id": "avon-lipsticks"}, &out))

	require.Len(t, out.Data.Items, 1)
	assert.Equal(t, 2, out.Data.Items[0].Quantity)
	assert.Equal(t, 2, out.Data.ItemCount)
	require.Len(t, out.Data.Notices, 1)
	assert.Equal(t, "Added to Cart", out.Data.Notices[0].Title)

	lipsticks := out.Data.Items[0].Price
	assert.Equal(t, lipsticks.Times(2), out.Data.Total)

	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/api/cart/items/avon-lipsticks", map[string]int{"quantity": 5}, &out))
	assert.Equal(t, 5, out.Data.ItemCount)
	assert.Empty(t, out.Data.Notices)

	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/api/cart/items/avon-lipsticks", map[string]int{"quantity": 0}, &out))
	assert.Empty(t, out.Data.Items)
	assert.Equal(t, money.Amount(0), out.Data.Total)
	assert.Equal(t, "$0.00", out.Data.Display)
}

func TestRemoveCartItem(t *testing.T) {
	c := newClient(t)

	var out cartResponse
	c.do(http.MethodPost, "/api/cart/items", map[string]string{"product_id": "avon-charcoal-soap"}, &out)
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/cart/items/avon-charcoal-soap", nil, &out))

	assert.Empty(t, out.Data.Items)
	require.Len(t, out.Data.Notices, 1)
	assert.Equal(t, "Removed from Cart", out.Data.Notices[0].Title)
	assert.Equal(t, domain.NoticeInfo, out.Data.Notices[0].Kind)
}

func TestAddUnknownProduct(t *testing.T) {
	c := newClient(t)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/cart/items", map[string]string{"product_id": "nope"}, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/wishlist/toggle", map[string]string{"product_id": ""}, nil))
}

func TestWishlistToggle(t *testing.T) {
	c := newClient(t)

	var out wishlistResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/wishlist/toggle", map[string]string{"product_id": "amity-hill-balm"}, &out))
	require.NotNil(t, out.Data.InWishlist)
	assert.True(t, *out.Data.InWishlist)
	require.Len(t, out.Data.Items, 1)

	var member struct {
		Data map[string]bool `json:"data"`
	}
	c.do(http.MethodGet, "/api/wishlist/amity-hill-balm", nil, &member)
	assert.True(t, member.Data["in_wishlist"])

	out = wishlistResponse{}
	c.do(http.MethodPost, "/api/wishlist/toggle", map[string]string{"product_id": "amity-hill-balm"}, &out)
	assert.False(t, *out.Data.InWishlist)
	assert.Empty(t, out.Data.Items)
	require.Len(t, out.Data.Notices, 1)
	assert.Equal(t, "Removed from Wishlist", out.Data.Notices[0].Title)

	out = wishlistResponse{}
	c.do(http.MethodGet, "/api/wishlist", nil, &out)
	assert.Empty(t, out.Data.Items)
	assert.Nil(t, out.Data.InWishlist)
}
