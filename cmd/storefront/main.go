package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/adielbeauty/storefront/docs"
	"github.com/adielbeauty/storefront/internal/app"
	"github.com/adielbeauty/storefront/internal/checkout"
	contactdomain "github.com/adielbeauty/storefront/internal/contact/domain"
	identitydomain "github.com/adielbeauty/storefront/internal/identity/domain"
	reviewdomain "github.com/adielbeauty/storefront/internal/review/domain"
	"github.com/adielbeauty/storefront/kafka"
	"github.com/adielbeauty/storefront/pkg/auth"
	"github.com/adielbeauty/storefront/pkg/breaker"
	"github.com/adielbeauty/storefront/pkg/config"
	"github.com/adielbeauty/storefront/pkg/database"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
	"github.com/adielbeauty/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting storefront service")

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize tracer
	if cfg.EnableTracing {
		tp, err := tracing.InitTracer(tracing.Config{
			ServiceName:    cfg.ServiceName,
			JaegerEndpoint: cfg.JaegerURL,
		})
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(ctx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&identitydomain.User{}, &reviewdomain.Review{}, &contactdomain.Subscriber{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	// Connect to Redis, falling back to memory
	redisClient := connectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Kafka publisher is optional
	var publisher checkout.EventPublisher
	if cfg.KafkaEnabled {
		p, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, order events will not be published")
		} else {
			guarded := kafka.NewGuardedPublisher(p, breaker.New("kafka", app.RelayMaxFailures, app.RelayOpenTimeout))
			defer guarded.Close()
			publisher = guarded
		}
	}

	// Initialize server with Wire DI
	server, err := app.InitializeServer(cfg, db, redisClient, publisher, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	router := server.Router(httpx.MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: cfg.EnableTracing,
	})
	// Session-free routes
	server.RegisterHealthCheck(router, sqlDB, redisClient)
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{httpx.SessionHeader},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// connectRedis returns nil when Redis cannot be reached so state falls back to memory
func connectRedis(cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("addr", cfg.RedisAddr).
			Msg("Redis unavailable, keeping cart state and sign-in limits in memory")
		client.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
	return client
}
