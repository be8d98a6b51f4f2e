package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type observedRequest struct {
	method, route, status string
}

type fakeObserver struct {
	inflight int
	seen     []observedRequest
}

func (f *fakeObserver) RequestStarted() func() {
	f.inflight++
	return func() { f.inflight-- }
}

func (f *fakeObserver) ObserveRequest(method, route, status string, _ float64) {
	f.seen = append(f.seen, observedRequest{method, route, status})
}

func TestMetrics_LabelsByRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/api/wallet/tests/:testId/status", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/wallet/tests/t-42/status", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wp-login.php", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, 0, obs.inflight)
	assert.Equal(t, []observedRequest{
		{"GET", "/api/wallet/tests/:testId/status", "200"},
		{"GET", "unmatched", "404"},
	}, obs.seen)
}
