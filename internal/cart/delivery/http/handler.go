package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adielbeauty/storefront/internal/cart"
	"github.com/adielbeauty/storefront/internal/cart/domain"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/session"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/money"
)

// CartHandler handles the session's cart and wishlist
type CartHandler struct {
	catalog *catalog.Catalog
	metrics *httpx.Metrics
}

// NewCartHandler creates a new cart handler
func NewCartHandler(c *catalog.Catalog, metrics *httpx.Metrics) *CartHandler {
	return &CartHandler{catalog: c, metrics: metrics}
}

// CartView is the cart as the client renders it
type CartView struct {
	Items     []domain.CartItem `json:"items"`
	Total     money.Amount      `json:"total"`
	Display   string            `json:"total_display"`
	ItemCount int               `json:"item_count"`
	Notices   []domain.Notice   `json:"notices"`
}

// WishlistView is the wishlist as the client renders it
type WishlistView struct {
	Items      []domain.WishlistItem `json:"items"`
	InWishlist *bool                 `json:"in_wishlist,omitempty"`
	Notices    []domain.Notice       `json:"notices"`
}

type productRequest struct {
	ProductID string `json:"product_id"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func cartView(store *cart.Store, notices *cart.NoticeQueue) CartView {
	total := store.CartTotal()
	return CartView{
		Items:     store.Cart(),
		Total:     total,
		Display:   total.Total(),
		ItemCount: store.CartItemCount(),
		Notices:   notices.Drain(),
	}
}

func (h *CartHandler) lookup(w http.ResponseWriter, r *http.Request) (catalog.Product, bool) {
	var req productRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return catalog.Product{}, false
	}
	p, ok := h.catalog.Lookup(req.ProductID)
	if !ok {
		httpx.RespondError(w, http.StatusNotFound, "Product not found")
	}
	return p, ok
}

// GetCart godoc
// @Summary Get the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} httpx.Response{data=CartView}
// @Router /api/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: cartView(s.Cart, s.Notices)})
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adding a product already in the cart increments its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body productRequest true "Product"
// @Success 200 {object} httpx.Response{data=CartView}
// @Failure 404 {object} httpx.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	s.Cart.AddToCart(r.Context(), p)
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: cartView(s.Cart, s.Notices)})
}

// UpdateItem godoc
// @Summary Set a cart line's quantity
// @Description A quantity of zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param id path string true "Product ID"
// @Param request body quantityRequest true "Quantity"
// @Success 200 {object} httpx.Response{data=CartView}
// @Router /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	var req quantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.Cart.UpdateCartItemQuantity(r.Context(), mux.Vars(r)["id"], req.Quantity)
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: cartView(s.Cart, s.Notices)})
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param id path string true "Product ID"
// @Success 200 {object} httpx.Response{data=CartView}
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	s.Cart.RemoveFromCart(r.Context(), mux.Vars(r)["id"])
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: cartView(s.Cart, s.Notices)})
}

// GetWishlist godoc
// @Summary Get the wishlist
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} httpx.Response{data=WishlistView}
// @Router /api/wishlist [get]
func (h *CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: WishlistView{
		Items:   s.Cart.Wishlist(),
		Notices: s.Notices.Drain(),
	}})
}

// ToggleWishlist godoc
// @Summary Add or remove a product from the wishlist
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body productRequest true "Product"
// @Success 200 {object} httpx.Response{data=WishlistView}
// @Failure 404 {object} httpx.Response
// @Router /api/wishlist/toggle [post]
func (h *CartHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	present := s.Cart.ToggleWishlist(r.Context(), p)
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: WishlistView{
		Items:      s.Cart.Wishlist(),
		InWishlist: &present,
		Notices:    s.Notices.Drain(),
	}})
}

// InWishlist godoc
// @Summary Wishlist membership
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param id path string true "Product ID"
// @Success 200 {object} httpx.Response{data=object{in_wishlist=bool}}
// @Router /api/wishlist/{id} [get]
func (h *CartHandler) InWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: map[string]bool{
		"in_wishlist": s.Cart.IsInWishlist(mux.Vars(r)["id"]),
	}})
}

// RegisterRoutes registers the cart and wishlist routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metrics.Wrap("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metrics.Wrap("/api/cart/items/{id}", h.UpdateItem)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{id}", h.metrics.Wrap("/api/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/wishlist", h.metrics.Wrap("/api/wishlist", h.GetWishlist)).Methods("GET")
	router.HandleFunc("/api/wishlist/toggle", h.metrics.Wrap("/api/wishlist/toggle", h.ToggleWishlist)).Methods("POST")
	router.HandleFunc("/api/wishlist/{id}", h.metrics.Wrap("/api/wishlist/{id}", h.InWishlist)).Methods("GET")
}
