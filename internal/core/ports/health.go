package ports

import "context"

// HealthChecker is a backing store reported by GET /health. The ledger
// database is always registered; Redis only when it is enabled.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
