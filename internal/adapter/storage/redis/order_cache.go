package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizvault/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// OrderCache implements ports.OrderCache, storing Razorpay orders as JSON.
type OrderCache struct {
	client goredis.UniversalClient
	prefix string
}

func NewOrderCache(client goredis.UniversalClient) *OrderCache {
	return &OrderCache{
		client: client,
		prefix: "razorpay_order:",
	}
}

func (c *OrderCache) Save(ctx context.Context, order *domain.RazorpayOrder, ttl time.Duration) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+order.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis order set: %w", err)
	}
	return nil
}

// Get returns nil, nil for unknown or expired orders.
func (c *OrderCache) Get(ctx context.Context, orderID string) (*domain.RazorpayOrder, error) {
	val, err := c.client.Get(ctx, c.prefix+orderID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis order get: %w", err)
	}

	var order domain.RazorpayOrder
	if err := json.Unmarshal(val, &order); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &order, nil
}
