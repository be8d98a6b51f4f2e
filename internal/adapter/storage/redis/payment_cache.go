package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ProcessedPaymentCache implements ports.ProcessedPaymentCache. It only ever
// answers "seen"; a miss is resolved by the processed_payments table.
type ProcessedPaymentCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewProcessedPaymentCache creates a new Redis-backed replay cache.
func NewProcessedPaymentCache(client goredis.UniversalClient) *ProcessedPaymentCache {
	return &ProcessedPaymentCache{
		client: client,
		prefix: "processed_payment:",
	}
}

// IsProcessed reports whether transactionID was marked as redeemed.
func (c *ProcessedPaymentCache) IsProcessed(ctx context.Context, transactionID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+transactionID).Result()
	if err != nil {
		return false, fmt.Errorf("redis processed payment exists: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed records transactionID for ttl.
func (c *ProcessedPaymentCache) MarkProcessed(ctx context.Context, transactionID string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+transactionID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis processed payment set: %w", err)
	}
	return nil
}
