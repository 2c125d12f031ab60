package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	GuestToken GuestTokenConfig
	Booking    BookingConfig
	Payment    PaymentConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Broker     BrokerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	File           string `envconfig:"LOG_FILE"` // empty disables the rotating file sink
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"10"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"7"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"28"`
}

// JWTConfig verifies staff tokens issued by the administration service.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type GuestTokenConfig struct {
	Secret string `envconfig:"GUEST_TOKEN_SECRET" required:"true"`
}

type BookingConfig struct {
	HoldTTLMinutes         int    `envconfig:"HOLD_TTL_MINUTES" default:"10"`
	HoldMaxTTLMinutes      int    `envconfig:"HOLD_MAX_TTL_MINUTES" default:"30"`
	TicketPriceCents       int64  `envconfig:"TICKET_PRICE_CENTS" default:"1000"`
	Currency               string `envconfig:"BOOKING_CURRENCY" default:"gbp"`
	DefaultGranularity     int    `envconfig:"AVAILABILITY_GRANULARITY_MINUTES" default:"60"`
	ReferenceCodeAttempts  int    `envconfig:"REFERENCE_CODE_ATTEMPTS" default:"5"`
	GuestTokenFallbackDays int    `envconfig:"GUEST_TOKEN_FALLBACK_DAYS" default:"7"`
}

type PaymentConfig struct {
	StripeSecretKey  string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	MerchantLocation string        `envconfig:"PAYMENT_MERCHANT_LOCATION" default:"main"`
	Timeout          time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"20s"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"` // empty disables caching and rate limiting
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"AVAILABILITY_CACHE_TTL" default:"5s"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl:holds"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"6s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
}

type BrokerConfig struct {
	URL                 string        `envconfig:"RABBITMQ_URL"` // empty disables publishing
	ReconciliationQueue string        `envconfig:"RECONCILIATION_QUEUE" default:"payments.reconciliation"`
	RelayInterval       time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"2s"`
	RelayBatchSize      int32         `envconfig:"OUTBOX_RELAY_BATCH_SIZE" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
	)
}

func (c *BookingConfig) HoldTTL() time.Duration {
	return time.Duration(c.HoldTTLMinutes) * time.Minute
}

func (c *BookingConfig) HoldMaxTTL() time.Duration {
	return time.Duration(c.HoldMaxTTLMinutes) * time.Minute
}

// LoadConfig reads .env when present; real environment variables win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-staff-secret",
			Duration: "1h",
		},
		GuestToken: GuestTokenConfig{
			Secret: "test-guest-secret",
		},
		Booking: BookingConfig{
			HoldTTLMinutes:         10,
			HoldMaxTTLMinutes:      30,
			TicketPriceCents:       1000,
			Currency:               "gbp",
			DefaultGranularity:     60,
			ReferenceCodeAttempts:  5,
			GuestTokenFallbackDays: 7,
		},
		Payment: PaymentConfig{
			StripeSecretKey:  "sk_test_dummy",
			MerchantLocation: "test",
			Timeout:          5 * time.Second,
		},
		Broker: BrokerConfig{
			ReconciliationQueue: "payments.reconciliation",
			RelayInterval:       time.Second,
			RelayBatchSize:      10,
		},
	}
}
