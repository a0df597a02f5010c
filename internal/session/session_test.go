package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/internal/cart/storage"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/catalog/filter"
	"github.com/adielbeauty/storefront/internal/checkout"
	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	identitydomain "github.com/adielbeauty/storefront/internal/identity/domain"
	"github.com/adielbeauty/storefront/pkg/auth"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	return Deps{
		Catalog:    c,
		Storage:    MemoryStorageFactory(64),
		Builder:    checkout.NewBuilder(nil),
		Dispatcher: dispatch.NewRouter(dispatch.Vendor{Name: "Adiel Beauty", WhatsAppNumber: "263785389836", Email: "shop@example.com"}),
		Options:    checkout.Options{},
	}
}

type stubProfiles struct {
	identity *identitydomain.Identity
}

func (s stubProfiles) Handle(context.Context, uint) *identitydomain.Identity {
	return s.identity
}

func TestRegistryReusesSessions(t *testing.T) {
	reg, err := NewRegistry(4, testDeps(t), nil)
	require.NoError(t, err)

	ctx := context.Background()
	a := reg.Get(ctx, "a")
	assert.Same(t, a, reg.Get(ctx, "a"))
	assert.NotSame(t, a, reg.Get(ctx, "b"))
	assert.Equal(t, 2, reg.Len())
}

func TestEvictedSessionRehydratesCart(t *testing.T) {
	deps := testDeps(t)
	reg, err := NewRegistry(1, deps, nil)
	require.NoError(t, err)

	ctx := context.Background()
	product, ok := deps.Catalog.Lookup("avon-lipsticks")
	require.True(t, ok)

	first := reg.Get(ctx, "a")
	first.Cart.AddToCart(ctx, product)

	reg.Get(ctx, "b")
	again := reg.Get(ctx, "a")

	assert.NotSame(t, first, again)
	require.Len(t, again.Cart.Cart(), 1)
	assert.Equal(t, "avon-lipsticks", again.Cart.Cart()[0].ID)
}

func TestSignInSeedsGenderSelection(t *testing.T) {
	s := New(context.Background(), "a", testDeps(t))
	assert.Equal(t, catalog.GenderUnisex, s.Browser.Selection().Gender)

	s.Identity.Set(identitydomain.Identity{UserID: 1, Email: "tendai@example.com", Name: "Tendai", Gender: catalog.GenderMale})
	assert.Equal(t, catalog.GenderMale, s.Browser.Selection().Gender)
	assert.Equal(t, filter.ViewFeatured, s.Browser.Selection().ViewMode)

	s.Identity.Clear()
	assert.Equal(t, catalog.GenderMale, s.Browser.Selection().Gender)
}

func TestCheckoutSeesSessionIdentity(t *testing.T) {
	ctx := context.Background()
	deps := testDeps(t)
	s := New(ctx, "a", deps)

	product, _ := deps.Catalog.Lookup("avon-lipsticks")
	s.Cart.AddToCart(ctx, product)

	assert.Error(t, s.Checkout.Begin(ctx))

	s.Identity.Set(identitydomain.Identity{UserID: 7, Email: "rudo@example.com", Name: "Rudo", Gender: catalog.GenderFemale})
	assert.NoError(t, s.Checkout.Begin(ctx))
}

func TestMiddlewareIssuesSessionID(t *testing.T) {
	reg, err := NewRegistry(4, testDeps(t), nil)
	require.NoError(t, err)

	var seen *Session
	h := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderName, "not-a-uuid")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	issued := rec.Header().Get(HeaderName)
	_, err = uuid.Parse(issued)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, issued, seen.ID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderName, issued)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, issued, rec.Header().Get(HeaderName))
	assert.Equal(t, issued, seen.ID)
}

func TestMiddlewareRestoresIdentityFromToken(t *testing.T) {
	profile := &identitydomain.Identity{UserID: 9, Email: "chipo@example.com", Name: "Chipo", Gender: catalog.GenderFemale}
	reg, err := NewRegistry(4, testDeps(t), stubProfiles{identity: profile})
	require.NoError(t, err)

	token, err := auth.GenerateToken(9, "chipo@example.com", "Chipo")
	require.NoError(t, err)

	var seen *Session
	h := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	who := seen.Identity.Current()
	require.NotNil(t, who)
	assert.Equal(t, *profile, *who)
	assert.Equal(t, catalog.GenderFemale, seen.Browser.Selection().Gender)
}

func TestMiddlewareFallsBackToClaims(t *testing.T) {
	reg, err := NewRegistry(4, testDeps(t), stubProfiles{})
	require.NoError(t, err)

	token, err := auth.GenerateToken(3, "farai@example.com", "Farai")
	require.NoError(t, err)

	var seen *Session
	h := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	who := seen.Identity.Current()
	require.NotNil(t, who)
	assert.Equal(t, uint(3), who.UserID)
	assert.Equal(t, "Farai", who.Name)
}

func TestAnonymousReadsAreNotCached(t *testing.T) {
	reg, err := NewRegistry(2, testDeps(t), nil)
	require.NoError(t, err)

	ctx := context.Background()
	live := reg.Get(ctx, uuid.New().String())

	h := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 5; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, 1, reg.Len())
	assert.Same(t, live, reg.Get(ctx, live.ID))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, 2, reg.Len())
	assert.Same(t, live, reg.Get(ctx, live.ID))
}

func TestMemoryStorageFactoryIsBounded(t *testing.T) {
	factory := MemoryStorageFactory(2)
	ctx := context.Background()

	a := factory("a")
	require.NoError(t, a.SetItem(ctx, "cart", "[]"))
	assert.Same(t, a, factory("a"))

	factory("b")
	factory("c")

	fresh := factory("a")
	assert.NotSame(t, a, fresh)
	_, err := fresh.GetItem(ctx, "cart")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSignOutIgnoresEarlierTokens(t *testing.T) {
	reg, err := NewRegistry(4, testDeps(t), nil)
	require.NoError(t, err)

	token, err := auth.GenerateToken(3, "farai@example.com", "Farai")
	require.NoError(t, err)

	sid := uuid.New().String()
	var seen *Session
	h := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))
	send := func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderName, sid)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	send()
	require.NotNil(t, seen.Identity.Current())

	seen.Identity.SignOut()
	send()
	assert.Nil(t, seen.Identity.Current())
}
