package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/Leganyst/session-scheduler/internal/logging"
)

func setupRouter(limiter *IPRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(logging.Discard()), RateLimiter(limiter))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r *gin.Engine, remote string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	r := setupRouter(NewIPRateLimiter(rate.Every(time.Hour), 2, time.Minute))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1001").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:1002").Code)

	// у другого адреса свой лимит
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:1000").Code)
}

func TestIPRateLimiter_SameLimiterPerIP(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1, time.Minute)
	assert.Same(t, l.GetLimiter("1.1.1.1"), l.GetLimiter("1.1.1.1"))
	assert.NotSame(t, l.GetLimiter("1.1.1.1"), l.GetLimiter("2.2.2.2"))
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := setupRouter(NewIPRateLimiter(rate.Inf, 1, time.Minute))

	w := get(r, "10.0.0.1:1000")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}
