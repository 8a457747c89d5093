// Package config loads the process configuration from the environment.
// A .env file in the working directory is read first when present;
// variables already set in the environment take precedence.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/ethtracker/internal/pkg/validator"
)

// Config holds every setting of the tracker.
type Config struct {
	LogLevel         string          `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string          `envconfig:"SERVICE_NAME" default:"ethtracker" validate:"required"`
	TelemetryEnabled bool            `envconfig:"TELEMETRY_ENABLED" default:"false"`
	HTTPAddr         string          `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`
	ConnectAttempts  uint            `envconfig:"CONNECT_ATTEMPTS" default:"5" validate:"gte=1"`
	Telegram         TelegramConfig  `envconfig:"TELEGRAM"`
	Etherscan        EtherscanConfig `envconfig:"ETHERSCAN"`
	Database         DatabaseConfig  `envconfig:"DATABASE"`
	Redis            RedisConfig     `envconfig:"REDIS"`
	Kafka            KafkaConfig     `envconfig:"KAFKA"`
	Tracker          TrackerConfig   `envconfig:"TRACKER"`
}

// TelegramConfig configures the bot API client.
type TelegramConfig struct {
	BotToken      string `envconfig:"BOT_TOKEN" validate:"required"`
	APIEndpoint   string `envconfig:"API_ENDPOINT"`
	UpdateTimeout int    `envconfig:"UPDATE_TIMEOUT" default:"30" validate:"gte=0"`
}

// EtherscanConfig configures the ledger client.
type EtherscanConfig struct {
	APIKey      string        `envconfig:"API_KEY" validate:"required"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.etherscan.io/api" validate:"required,url"`
	ChainID     int64         `envconfig:"CHAIN_ID" default:"0" validate:"gte=0"`
	ExplorerURL string        `envconfig:"EXPLORER_URL" default:"https://etherscan.io" validate:"required,url"`
	RateLimit   float64       `envconfig:"RATE_LIMIT" default:"5" validate:"gte=0"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	RetryMax    int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
}

// DatabaseConfig configures the Postgres pool.
type DatabaseConfig struct {
	URL             string        `envconfig:"URL" validate:"required"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m" validate:"gte=0"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

// RedisConfig configures the optional seen cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `envconfig:"ADDR"`
	Username string        `envconfig:"USERNAME"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0" validate:"gte=0"`
	SeenTTL  time.Duration `envconfig:"SEEN_TTL" default:"24h" validate:"gt=0"`
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// KafkaConfig configures the optional event stream. No brokers disables it.
type KafkaConfig struct {
	Brokers []string `envconfig:"BROKERS" validate:"dive,required"`
	Topic   string   `envconfig:"TOPIC" default:"wallet-transactions" validate:"required"`
}

// Enabled reports whether at least one broker was configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// TrackerConfig configures the wallet pollers.
type TrackerConfig struct {
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"60s" validate:"gt=0"`
	RecoveryNotice bool          `envconfig:"RECOVERY_NOTICE" default:"true"`
}

// Load reads envFiles (".env" when none is given), then the environment,
// and validates the result. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
