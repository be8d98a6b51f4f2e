package memory

import (
	"context"
	"sync"
	"time"

	"quizvault/internal/core/domain"
)

// OrderCache is the in-process ports.OrderCache used when Redis is disabled.
type OrderCache struct {
	mu     sync.Mutex
	orders map[string]cachedOrder
	now    func() time.Time
}

type cachedOrder struct {
	order     domain.RazorpayOrder
	expiresAt time.Time
}

func NewOrderCache() *OrderCache {
	return &OrderCache{
		orders: make(map[string]cachedOrder),
		now:    time.Now,
	}
}

func (c *OrderCache) Save(_ context.Context, order *domain.RazorpayOrder, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for id, o := range c.orders {
		if now.After(o.expiresAt) {
			delete(c.orders, id)
		}
	}
	c.orders[order.ID] = cachedOrder{order: *order, expiresAt: now.Add(ttl)}
	return nil
}

func (c *OrderCache) Get(_ context.Context, orderID string) (*domain.RazorpayOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.orders[orderID]
	if !ok || c.now().After(o.expiresAt) {
		return nil, nil
	}
	order := o.order
	return &order, nil
}
