package redis

import (
	"context"
	"fmt"
	"time"

	"quizvault/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis sits on the request path. On timeout the replay check falls back to
// the database and the rate limiter lets the request through.
const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 500 * time.Millisecond
	writeTimeout = 500 * time.Millisecond
)

func clientOptions(cfg config.RedisConfig) *goredis.UniversalOptions {
	return &goredis.UniversalOptions{
		Addrs:        []string{cfg.Addr()},
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

// NewClient connects to the cache used for processed payments, Razorpay
// order ownership and rate limit counters.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (goredis.UniversalClient, error) {
	client := goredis.NewUniversalClient(clientOptions(cfg))

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().Str("addr", cfg.Addr()).Int("db", cfg.DB).Msg("payment cache connected")
	return client, nil
}

// HealthCheck implements ports.HealthChecker.
type HealthCheck struct {
	client goredis.UniversalClient
}

func NewHealthCheck(client goredis.UniversalClient) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string { return "redis" }
