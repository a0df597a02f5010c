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

	"github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/catalog/filter"
	"github.com/adielbeauty/storefront/internal/checkout"
	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	"github.com/adielbeauty/storefront/internal/session"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	c, err := domain.Default()
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
	NewCatalogHandler(c, nil).RegisterRoutes(router)
	return router
}

type viewResponse struct {
	Success bool        `json:"success"`
	Data    filter.View `json:"data"`
	Error   string      `json:"error"`
}

func call(t *testing.T, router http.Handler, method, path, sid string, body interface{}) (*httptest.ResponseRecorder, viewResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if sid != "" {
		req.Header.Set(session.HeaderName, sid)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out viewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestListProductsStartsFeatured(t *testing.T) {
	router := newRouter(t)

	rec, out := call(t, router, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, filter.ViewFeatured, out.Data.Selection.ViewMode)
	assert.Equal(t, len(domain.FeaturedIDs), out.Data.Total)
	assert.False(t, out.Data.Empty)
}

func TestCommandsChangeSessionSelection(t *testing.T) {
	router := newRouter(t)

	rec, _ := call(t, router, http.MethodGet, "/api/products", "", nil)
	sid := rec.Header().Get(session.HeaderName)

	_, out := call(t, router, http.MethodPost, "/api/products/commands", sid, map[string]string{
		"command": "filter_by_brand", "value": domain.BrandAvon,
	})
	assert.Equal(t, filter.ViewAll, out.Data.Selection.ViewMode)
	assert.Equal(t, domain.BrandAvon, out.Data.Selection.Brand)
	for _, p := range out.Data.Products {
		assert.Equal(t, domain.BrandAvon, p.Brand)
	}

	_, out = call(t, router, http.MethodGet, "/api/products", sid, nil)
	assert.Equal(t, domain.BrandAvon, out.Data.Selection.Brand)

	_, out = call(t, router, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, filter.All, out.Data.Selection.Brand)
}

func TestRejectedCommand(t *testing.T) {
	router := newRouter(t)

	rec, out := call(t, router, http.MethodPost, "/api/products/commands", "", map[string]string{"command": "explode"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, out.Success)

	rec, _ = call(t, router, http.MethodPost, "/api/products/commands", "", map[string]string{
		"command": "select_brand", "value": "Unknown",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/avon-lipsticks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data domain.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "avon-lipsticks", out.Data.ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFacets(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/facets", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data Facets `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, filter.All, out.Data.Categories[0])
	assert.Len(t, out.Data.Categories, len(domain.Categories)+1)
	assert.Equal(t, []string{filter.All, domain.BrandAmity, domain.BrandAvon, domain.BrandArthurFord}, out.Data.Brands)
}
