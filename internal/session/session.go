// Package session binds the per-browser state of the storefront together:
// cart and wishlist, catalog selection, checkout flow and signed-in identity.
package session

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/redis/go-redis/v9"

	"github.com/adielbeauty/storefront/internal/cart"
	"github.com/adielbeauty/storefront/internal/cart/repository"
	"github.com/adielbeauty/storefront/internal/cart/storage"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/catalog/filter"
	"github.com/adielbeauty/storefront/internal/checkout"
	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	checkoutdomain "github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/internal/identity"
	identitydomain "github.com/adielbeauty/storefront/internal/identity/domain"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// Session is everything one browser owns on the server
type Session struct {
	ID       string
	Identity *identity.Session
	Cart     *cart.Store
	Notices  *cart.NoticeQueue
	Browser  *filter.Browser
	Checkout *checkout.Checkout
}

// StorageFactory returns the slot storage for a session id
type StorageFactory func(sessionID string) storage.LocalStorage

// RedisStorageFactory keeps each session's slots in Redis
func RedisStorageFactory(client *redis.Client, ttl time.Duration) StorageFactory {
	return func(sessionID string) storage.LocalStorage {
		return storage.NewRedisStorage(client, sessionID, ttl)
	}
}

// DefaultMemoryStorages bounds MemoryStorageFactory when no size is given
const DefaultMemoryStorages = 4096

// MemoryStorageFactory keeps slots in process memory, one storage per session id,
// holding at most size storages. Storages outlive registry eviction so a
// returning browser finds its cart; the least recently used are dropped first.
func MemoryStorageFactory(size int) StorageFactory {
	if size <= 0 {
		size = DefaultMemoryStorages
	}
	byID, err := lru.New(size)
	if err != nil {
		// lru.New fails only for a non-positive size
		panic(err)
	}

	var mu sync.Mutex
	return func(sessionID string) storage.LocalStorage {
		mu.Lock()
		defer mu.Unlock()

		if v, ok := byID.Get(sessionID); ok {
			return v.(*storage.MemoryStorage)
		}
		s := storage.NewMemoryStorage()
		byID.Add(sessionID, s)
		return s
	}
}

// Deps are the collaborators shared by every session
type Deps struct {
	Catalog    *catalog.Catalog
	Storage    StorageFactory
	Builder    *checkout.Builder
	Dispatcher dispatch.Dispatcher
	Publisher  checkout.EventPublisher
	Options    checkout.Options
}

// New assembles a session, rehydrating its cart and wishlist from storage
func New(ctx context.Context, id string, deps Deps) *Session {
	ident := identity.NewSession()
	notices := cart.NewNoticeQueue(cart.LogNotifier{})

	repo := repository.NewTracingRepository(repository.NewSlotRepository(deps.Storage(id)))
	store := cart.NewStore(ctx, repo, notices)
	browser := filter.NewBrowser(deps.Catalog, catalog.GenderUnisex)

	s := &Session{
		ID:       id,
		Identity: ident,
		Cart:     store,
		Notices:  notices,
		Browser:  browser,
		Checkout: checkout.NewCheckout(store, customers{ident}, deps.Builder, deps.Dispatcher, deps.Publisher, deps.Options),
	}

	ident.Watch(func(who *identitydomain.Identity) {
		if who == nil || !who.Gender.Valid() {
			return
		}
		if err := browser.Dispatch(filter.SelectGender{Gender: who.Gender}); err != nil {
			logger.Logger.Warn().Err(err).Str("session_id", id).Msg("Could not seed gender selection")
		}
	})

	return s
}

// customers exposes the session identity as a checkout customer
type customers struct {
	session *identity.Session
}

func (c customers) CurrentCustomer() *checkoutdomain.Customer {
	who := c.session.Current()
	if who == nil {
		return nil
	}
	return &checkoutdomain.Customer{
		UserID: who.UserID,
		Email:  who.Email,
		Name:   who.Name,
	}
}
