package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Ledger history modes.
const (
	HistoryFull   = "full"
	HistoryRecent = "recent"
	HistoryOff    = "off"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Log      LogConfig      `mapstructure:"log"`
	Economy  EconomyConfig  `mapstructure:"economy"`
	Google   GoogleConfig   `mapstructure:"google"`
	Razorpay RazorpayConfig `mapstructure:"razorpay"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"` // "*" allows any origin
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrateOnStart  bool          `mapstructure:"migrate_on_start"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// MigrateURL returns the connection string in the form golang-migrate's pgx/v5 driver expects.
func (d DatabaseConfig) MigrateURL() string {
	return "pgx5" + strings.TrimPrefix(d.DSN(), "postgres")
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// EconomyConfig holds the tunable constants of the wallet ledger.
type EconomyConfig struct {
	ExchangeRate       int64  `mapstructure:"exchange_rate"` // gold per crystal
	UnlockCost         int64  `mapstructure:"unlock_cost"`   // crystals per test
	HistoryMode        string `mapstructure:"history_mode"`  // full, recent, off
	RecentHistoryLimit int    `mapstructure:"recent_history_limit"`
}

type GoogleConfig struct {
	ClientID            string `mapstructure:"client_id"`
	PlayPackageName     string `mapstructure:"play_package_name"`
	PlayCredentialsFile string `mapstructure:"play_credentials_file"`
	VerifyPurchases     bool   `mapstructure:"verify_purchases"`
}

type RazorpayConfig struct {
	KeyID     string        `mapstructure:"key_id"`
	KeySecret string        `mapstructure:"key_secret"`
	BaseURL   string        `mapstructure:"base_url"`
	Currency  string        `mapstructure:"currency"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	ProcessedPaymentTTL time.Duration `mapstructure:"processed_payment_ttl"`
	OrderTTL            time.Duration `mapstructure:"order_ttl"`
}

type JobsConfig struct {
	EconomySnapshot string `mapstructure:"economy_snapshot"` // cron spec, empty disables
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: QV_.
// Nested keys use underscore: QV_DATABASE_HOST, QV_ECONOMY_EXCHANGE_RATE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("QV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "quizvault")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrate_on_start", true)
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "720h")
	v.SetDefault("jwt.issuer", "quizvault")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("economy.exchange_rate", 100)
	v.SetDefault("economy.unlock_cost", 5)
	v.SetDefault("economy.history_mode", HistoryFull)
	v.SetDefault("economy.recent_history_limit", 10)
	v.SetDefault("google.client_id", "")
	v.SetDefault("google.play_package_name", "")
	v.SetDefault("google.play_credentials_file", "")
	v.SetDefault("google.verify_purchases", true)
	v.SetDefault("razorpay.key_id", "")
	v.SetDefault("razorpay.key_secret", "")
	v.SetDefault("razorpay.base_url", "https://api.razorpay.com/v1")
	v.SetDefault("razorpay.currency", "INR")
	v.SetDefault("razorpay.timeout", "10s")
	v.SetDefault("cache.processed_payment_ttl", "720h")
	v.SetDefault("cache.order_ttl", "24h")
	v.SetDefault("jobs.economy_snapshot", "@every 5m")
}

// Validate rejects settings the ledger cannot run with.
func (c *Config) Validate() error {
	if c.Economy.ExchangeRate <= 0 {
		return fmt.Errorf("economy.exchange_rate must be positive, got %d", c.Economy.ExchangeRate)
	}
	if c.Economy.UnlockCost <= 0 {
		return fmt.Errorf("economy.unlock_cost must be positive, got %d", c.Economy.UnlockCost)
	}
	switch c.Economy.HistoryMode {
	case HistoryFull, HistoryRecent, HistoryOff:
	default:
		return fmt.Errorf("economy.history_mode must be one of full, recent, off; got %q", c.Economy.HistoryMode)
	}
	if c.Economy.RecentHistoryLimit <= 0 {
		return fmt.Errorf("economy.recent_history_limit must be positive, got %d", c.Economy.RecentHistoryLimit)
	}
	switch c.Storage.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be postgres or memory, got %q", c.Storage.Driver)
	}
	return nil
}
