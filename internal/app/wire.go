//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cataloghttp "github.com/adielbeauty/storefront/internal/catalog/delivery/http"
	carthttp "github.com/adielbeauty/storefront/internal/cart/delivery/http"
	"github.com/adielbeauty/storefront/internal/checkout"
	checkouthttp "github.com/adielbeauty/storefront/internal/checkout/delivery/http"
	contacthttp "github.com/adielbeauty/storefront/internal/contact/delivery/http"
	identityhttp "github.com/adielbeauty/storefront/internal/identity/delivery/http"
	reviewhttp "github.com/adielbeauty/storefront/internal/review/delivery/http"
	"github.com/adielbeauty/storefront/pkg/config"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideReviewRepository,
	ProvideSubscriberRepository,
)

var SessionSet = wire.NewSet(
	ProvideCatalog,
	ProvideStorageFactory,
	ProvideBuilder,
	ProvideDispatcher,
	ProvideSessionDeps,
	ProvideProfileLoader,
	ProvideRegistry,
)

var HandlerSet = wire.NewSet(
	ProvideMetrics,
	ProvideLimiter,
	ProvideMailer,
	ProvideContactService,
	cataloghttp.NewCatalogHandler,
	carthttp.NewCartHandler,
	checkouthttp.NewCheckoutHandler,
	identityhttp.NewIdentityHandler,
	reviewhttp.NewReviewHandler,
	contacthttp.NewContactHandler,
	ProvideHandlers,
)

var AllSet = wire.NewSet(
	RepositorySet,
	SessionSet,
	HandlerSet,
	NewServer,
)

// InitializeServer initializes the storefront with all dependencies.
// redisClient and publisher may be nil.
func InitializeServer(
	cfg config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	publisher checkout.EventPublisher,
	reg prometheus.Registerer,
) (*Server, error) {
	wire.Build(AllSet)
	return nil, nil
}
