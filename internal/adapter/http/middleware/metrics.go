package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver receives HTTP request measurements.
type RequestObserver interface {
	RequestStarted() func()
	ObserveRequest(method, route, status string, seconds float64)
}

// Metrics records request counts and latency by route template. Unmatched
// paths share one label so scanners cannot blow up cardinality.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		done := obs.RequestStarted()
		defer done()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
