package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nilkanthplet/BP-1.0/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(RateLimiterConfigFor(2, time.Hour))

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/").Code)

	w := serve(r, http.MethodGet, "/")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRateLimiter_KeyedByOperator(t *testing.T) {
	rl := newRateLimiter(RateLimiterConfigFor(1, time.Hour))
	first, second := uuid.New(), uuid.New()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		id, _ := uuid.Parse(c.GetHeader("X-Operator"))
		c.Set("operator_id", id)
		c.Next()
	})
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "X-Operator", first.String()).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "X-Operator", second.String()).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/", "X-Operator", first.String()).Code)
}

func TestRateLimiter_CleanupDropsIdleKeys(t *testing.T) {
	rl := newRateLimiter(RateLimiterConfigFor(1, time.Hour))
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("ip:10.0.0.1")
	now = now.Add(rl.entryTTL + time.Second)
	rl.getLimiter("ip:10.0.0.2")
	rl.cleanup()

	assert.NotContains(t, rl.limiters, "ip:10.0.0.1")
	assert.Contains(t, rl.limiters, "ip:10.0.0.2")
}

func TestRateLimiterConfigFor_Defaults(t *testing.T) {
	cfg := RateLimiterConfigFor(0, 0)
	assert.Equal(t, 100, cfg.BurstSize)
	assert.InDelta(t, 100.0/60.0, cfg.RequestsPerSecond, 0.0001)
}

func TestRequirePermission(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if p := c.GetHeader("X-Permission"); p != "" {
			c.Set("operator_permissions", []string{p})
		}
		c.Next()
	})
	r.GET("/", RequirePermission(PermissionManageBills), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/", "X-Permission", PermissionPrint).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "X-Permission", PermissionManageBills).Code)
}

func TestLoggerAndRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(LoggerMiddleware(log), RecoveryMiddleware(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/ok", "X-Request-ID", "req-1")
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	w = serve(r, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	requests := logs.FilterMessage("request").All()
	if assert.Len(t, requests, 2) {
		assert.Equal(t, "req-1", requests[0].ContextMap()["request_id"])
		assert.Equal(t, zapcore.ErrorLevel, requests[1].Level)
	}
}

func TestCORSMiddleware_AllowsIdempotencyKey(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(&config.CORSConfig{AllowedOrigins: []string{"http://counter.local"}}))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/",
		"Origin", "http://counter.local",
		"Access-Control-Request-Method", "POST",
		"Access-Control-Request-Headers", IdempotencyKeyHeader,
	)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://counter.local", w.Header().Get("Access-Control-Allow-Origin"))
}
