package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cataloghttp "github.com/adielbeauty/storefront/internal/catalog/delivery/http"
	carthttp "github.com/adielbeauty/storefront/internal/cart/delivery/http"
	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/checkout"
	checkouthttp "github.com/adielbeauty/storefront/internal/checkout/delivery/http"
	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	"github.com/adielbeauty/storefront/internal/contact"
	contacthttp "github.com/adielbeauty/storefront/internal/contact/delivery/http"
	contactdomain "github.com/adielbeauty/storefront/internal/contact/domain"
	contactrepo "github.com/adielbeauty/storefront/internal/contact/repository"
	"github.com/adielbeauty/storefront/internal/identity"
	identityhttp "github.com/adielbeauty/storefront/internal/identity/delivery/http"
	identitydomain "github.com/adielbeauty/storefront/internal/identity/domain"
	identityrepo "github.com/adielbeauty/storefront/internal/identity/repository"
	"github.com/adielbeauty/storefront/internal/identity/usecase/query"
	reviewhttp "github.com/adielbeauty/storefront/internal/review/delivery/http"
	reviewdomain "github.com/adielbeauty/storefront/internal/review/domain"
	reviewrepo "github.com/adielbeauty/storefront/internal/review/repository"
	"github.com/adielbeauty/storefront/internal/session"
	"github.com/adielbeauty/storefront/pkg/breaker"
	"github.com/adielbeauty/storefront/pkg/config"
	"github.com/adielbeauty/storefront/pkg/httpx"
)

// MetricsNamespace prefixes every storefront request metric
const MetricsNamespace = "storefront"

// Outbound circuit breaker tuning
const (
	RelayMaxFailures = 5
	RelayOpenTimeout = 30 * time.Second
)

// ProvideCatalog provides the fixed product catalog
func ProvideCatalog() (*catalog.Catalog, error) {
	return catalog.Default()
}

// ProvideMetrics provides the request metrics shared by every handler
func ProvideMetrics(reg prometheus.Registerer) *httpx.Metrics {
	return httpx.NewMetrics(MetricsNamespace, reg)
}

// Repositories

func ProvideUserRepository(db *gorm.DB) identitydomain.UserRepository {
	return identityrepo.NewTracingUserRepository(identityrepo.NewGormUserRepository(db))
}

func ProvideReviewRepository(db *gorm.DB) reviewdomain.ReviewRepository {
	return reviewrepo.NewTracingReviewRepository(reviewrepo.NewGormReviewRepository(db))
}

func ProvideSubscriberRepository(db *gorm.DB) contactdomain.SubscriberRepository {
	return contactrepo.NewGormSubscriberRepository(db)
}

// ProvideLimiter provides the sign-in limiter. A nil client keeps attempts in memory.
func ProvideLimiter(cfg config.Config, redisClient *redis.Client) identitydomain.AttemptLimiter {
	return identity.NewFallbackLimiter(redisClient, cfg.SignInMaxAttempts, cfg.SignInWindow)
}

// ProvideProfileLoader lets the session middleware restore identities from the user store
func ProvideProfileLoader(repo identitydomain.UserRepository) session.ProfileLoader {
	return query.NewGetProfileHandler(repo)
}

// ProvideStorageFactory keeps cart and wishlist state in Redis, or in process memory without it
func ProvideStorageFactory(cfg config.Config, redisClient *redis.Client) session.StorageFactory {
	if redisClient == nil {
		return session.MemoryStorageFactory(cfg.SessionCacheSize * 4)
	}
	return session.RedisStorageFactory(redisClient, cfg.StateTTL)
}

func ProvideBuilder() *checkout.Builder {
	return checkout.NewBuilder(nil)
}

func ProvideDispatcher(cfg config.Config) dispatch.Dispatcher {
	return dispatch.NewRouter(dispatch.Vendor{
		Name:           cfg.Vendor.Name,
		ContactName:    cfg.Vendor.ContactName,
		WhatsAppNumber: cfg.Vendor.WhatsAppNumber,
		Email:          cfg.Vendor.Email,
	})
}

func ProvideSessionDeps(
	cfg config.Config,
	c *catalog.Catalog,
	storage session.StorageFactory,
	builder *checkout.Builder,
	dispatcher dispatch.Dispatcher,
	publisher checkout.EventPublisher,
) session.Deps {
	return session.Deps{
		Catalog:    c,
		Storage:    storage,
		Builder:    builder,
		Dispatcher: dispatcher,
		Publisher:  publisher,
		Options: checkout.Options{
			ProcessingDelay: cfg.ProcessingDelay,
			CompletionDelay: cfg.CompletionDelay,
		},
	}
}

func ProvideRegistry(cfg config.Config, deps session.Deps, profiles session.ProfileLoader) (*session.Registry, error) {
	return session.NewRegistry(cfg.SessionCacheSize, deps, profiles)
}

// Contact

// ProvideMailer provides the EmailJS relay behind a circuit breaker
func ProvideMailer(cfg config.Config) contactdomain.Mailer {
	return contact.NewGuardedMailer(
		contact.NewRelay(cfg.EmailJS, nil),
		breaker.New("emailjs", RelayMaxFailures, RelayOpenTimeout),
	)
}

func ProvideContactService(cfg config.Config, mailer contactdomain.Mailer, subscribers contactdomain.SubscriberRepository) *contact.Service {
	return contact.NewService(mailer, subscribers, contact.Recipient{
		Name:  cfg.Vendor.ContactName,
		Email: cfg.Vendor.Email,
	})
}

// Handlers holds every HTTP handler the storefront serves
type Handlers struct {
	Catalog  *cataloghttp.CatalogHandler
	Cart     *carthttp.CartHandler
	Checkout *checkouthttp.CheckoutHandler
	Identity *identityhttp.IdentityHandler
	Review   *reviewhttp.ReviewHandler
	Contact  *contacthttp.ContactHandler
}

// ProvideHandlers provides all HTTP handlers
func ProvideHandlers(
	catalogHandler *cataloghttp.CatalogHandler,
	cartHandler *carthttp.CartHandler,
	checkoutHandler *checkouthttp.CheckoutHandler,
	identityHandler *identityhttp.IdentityHandler,
	reviewHandler *reviewhttp.ReviewHandler,
	contactHandler *contacthttp.ContactHandler,
) *Handlers {
	return &Handlers{
		Catalog:  catalogHandler,
		Cart:     cartHandler,
		Checkout: checkoutHandler,
		Identity: identityHandler,
		Review:   reviewHandler,
		Contact:  contactHandler,
	}
}
