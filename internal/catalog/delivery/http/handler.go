package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/catalog/filter"
	"github.com/adielbeauty/storefront/internal/session"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// CatalogHandler handles product browsing
type CatalogHandler struct {
	catalog *domain.Catalog
	metrics *httpx.Metrics
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c *domain.Catalog, metrics *httpx.Metrics) *CatalogHandler {
	return &CatalogHandler{catalog: c, metrics: metrics}
}

type commandRequest struct {
	Command string `json:"command" example:"filter_by_brand"`
	Value   string `json:"value,omitempty" example:"AVON"`
}

// Facets lists the selector options
type Facets struct {
	Categories []string        `json:"categories"`
	Brands     []string        `json:"brands"`
	Genders    []domain.Gender `json:"genders"`
}

// ListProducts godoc
// @Summary Products for the session's current selection
// @Tags Catalog
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} httpx.Response{data=filter.View}
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: s.Browser.View()})
}

// Dispatch godoc
// @Summary Change the catalog selection
// @Description Commands: show_all_products, filter_by_brand, show_featured, select_category, select_brand, select_gender, clear_filters
// @Tags Catalog
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body commandRequest true "Command"
// @Success 200 {object} httpx.Response{data=filter.View}
// @Failure 400 {object} httpx.Response
// @Router /api/products/commands [post]
func (h *CatalogHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	var req commandRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd, err := filter.ParseCommand(req.Command, req.Value)
	if err == nil {
		err = s.Browser.Dispatch(cmd)
	}
	if err != nil {
		logger.Debug(r.Context()).Err(err).Str("command", req.Command).Msg("Catalog command rejected")
		httpx.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: s.Browser.View()})
}

// GetProduct godoc
// @Summary Get a product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} httpx.Response{data=domain.Product}
// @Failure 404 {object} httpx.Response
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.Lookup(mux.Vars(r)["id"])
	if !ok {
		httpx.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: p})
}

// GetFacets godoc
// @Summary Selector options
// @Tags Catalog
// @Produce json
// @Success 200 {object} httpx.Response{data=Facets}
// @Router /api/catalog/facets [get]
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets := Facets{
		Categories: append([]string{filter.All}, domain.Categories...),
		Brands:     append([]string{filter.All}, domain.Brands...),
		Genders:    []domain.Gender{domain.GenderFemale, domain.GenderMale, domain.GenderUnisex},
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: facets})
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metrics.Wrap("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/commands", h.metrics.Wrap("/api/products/commands", h.Dispatch)).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metrics.Wrap("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/catalog/facets", h.metrics.Wrap("/api/catalog/facets", h.GetFacets)).Methods("GET")
}
