package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adielbeauty/storefront/kafka"
	"github.com/adielbeauty/storefront/pkg/config"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
	"github.com/adielbeauty/storefront/pkg/tracing"
)

var (
	ordersReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_notifier_orders_received_total",
			Help: "Order events consumed, by channel and payment method",
		},
		[]string{"channel", "payment_method"},
	)

	orderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_order_value_dollars",
			Help:    "Grand total of dispatched orders",
			Buckets: []float64{5, 10, 20, 50, 100, 200, 500},
		},
	)
)

func main() {
	cfg := config.Load()
	cfg.ServiceName = getEnv("OTEL_SERVICE_NAME", "storefront-notifier")

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	if cfg.EnableTracing {
		tp, err := tracing.InitTracer(tracing.Config{
			ServiceName:    cfg.ServiceName,
			JaegerEndpoint: cfg.JaegerURL,
		})
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			defer tracing.Shutdown(context.Background(), tp)
		}
	}

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicOrderDispatched})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeOrderDispatched, handleOrderDispatched)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Message: "Notifier is healthy"})
	}).Methods("GET")

	port := getEnv("NOTIFIER_HTTP_PORT", "8081")
	srv := &http.Server{Addr: ":" + port, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Logger.Info().Str("port", port).Msg("Notifier HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)
}

func handleOrderDispatched(ctx context.Context, event kafka.OrderDispatchedEvent) error {
	ordersReceived.WithLabelValues(event.Channel, event.PaymentMethod).Inc()
	orderValue.Observe(event.Total)

	logger.Info(ctx).
		Str("order_id", event.OrderID).
		Str("customer_email", event.CustomerEmail).
		Str("channel", event.Channel).
		Str("payment_method", event.PaymentMethod).
		Int("item_count", event.ItemCount).
		Float64("total", event.Total).
		Msg("New order awaiting payment")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
