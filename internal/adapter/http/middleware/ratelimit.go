package middleware

import (
	"fmt"
	"strconv"
	"time"

	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Rate limit groups.
const (
	GroupAuthLogin    = "auth_login"
	GroupAuthRegister = "auth_register"
	GroupWalletRead   = "wallet_read"
	GroupWalletEarn   = "wallet_earn"
	GroupWalletWrite  = "wallet_write"
	GroupPurchase     = "purchase"
)

// DefaultRateLimitRules returns the limits per endpoint group. wallet_earn
// bounds how fast a client can self-report quiz rewards.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupAuthLogin:    {Limit: 10, Window: time.Minute},
		GroupAuthRegister: {Limit: 5, Window: time.Hour},
		GroupWalletRead:   {Limit: 120, Window: time.Minute},
		GroupWalletEarn:   {Limit: 30, Window: time.Minute},
		GroupWalletWrite:  {Limit: 60, Window: time.Minute},
		GroupPurchase:     {Limit: 20, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store failures let the request through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", group, extractIdentifier(c))

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated routes by user and public ones by IP.
func extractIdentifier(c *gin.Context) string {
	if id, ok := UserID(c); ok {
		return id.String()
	}
	return c.ClientIP()
}
