package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adielbeauty/storefront/pkg/database"
)

// Config holds the storefront service configuration
type Config struct {
	ServiceName   string
	Environment   string
	LogLevel      string
	HTTPPort      string
	CORSOrigins   []string
	JaegerURL     string
	EnableTracing bool

	Database database.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StateTTL      time.Duration

	KafkaBrokers []string
	KafkaEnabled bool
	KafkaGroupID string

	JWTSecret string
	TokenTTL  time.Duration

	SignInMaxAttempts int
	SignInWindow      time.Duration

	Vendor  VendorConfig
	EmailJS EmailJSConfig

	ProcessingDelay  time.Duration
	CompletionDelay  time.Duration
	SessionCacheSize int
}

// VendorConfig holds where orders are handed off to
type VendorConfig struct {
	Name           string
	ContactName    string
	Email          string
	WhatsAppNumber string
}

// EmailJSConfig holds the mail-relay credentials used by the contact form
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// IsDevelopment reports whether the service runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load loads the configuration from environment variables
func Load() Config {
	return Config{
		ServiceName:   getEnv("OTEL_SERVICE_NAME", "storefront-service"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		CORSOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		JaegerURL:     getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		EnableTracing: getEnvBool("TRACING_ENABLED", true),

		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefrontdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		StateTTL:      getEnvDuration("STATE_TTL", 30*24*time.Hour),

		KafkaBrokers: getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaEnabled: getEnvBool("KAFKA_ENABLED", true),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "storefront-notifier"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("JWT_TTL", 24*time.Hour),

		SignInMaxAttempts: getEnvInt("SIGNIN_MAX_ATTEMPTS", 5),
		SignInWindow:      getEnvDuration("SIGNIN_WINDOW", 15*time.Minute),

		Vendor: VendorConfig{
			Name:           getEnv("VENDOR_NAME", "Adiel Beauty"),
			ContactName:    getEnv("VENDOR_CONTACT_NAME", "Adiel"),
			Email:          getEnv("VENDOR_EMAIL", "paulineadiel@gmail.com"),
			WhatsAppNumber: getEnv("VENDOR_WHATSAPP", "263785389836"),
		},
		EmailJS: EmailJSConfig{
			Endpoint:   getEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:  getEnv("EMAILJS_SERVICE_ID", ""),
			TemplateID: getEnv("EMAILJS_TEMPLATE_ID", ""),
			PublicKey:  getEnv("EMAILJS_PUBLIC_KEY", ""),
		},

		ProcessingDelay:  getEnvDuration("CHECKOUT_PROCESSING_DELAY", 2*time.Second),
		CompletionDelay:  getEnvDuration("CHECKOUT_COMPLETION_DELAY", 3*time.Second),
		SessionCacheSize: getEnvInt("SESSION_CACHE_SIZE", 10000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
