//go:build unit

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CustomRecovery())
	engine.Use(ErrorHandler())
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	auth := NewAuthMiddleware(usecase.NewTokenValidator(svc))
	complexID := uuid.New()

	engine := newTestEngine()
	engine.GET("/staff", auth.RequireAuth(), func(c *gin.Context) {
		actor, ok := GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"role": actor.Role().String()})
	})
	engine.GET("/owners", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tokenFor := func(role user.Role) string {
		token, err := svc.GenerateToken(user.NewActor(uuid.New(), role, &complexID))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name       string
		path       string
		token      string
		expectCode int
	}{
		{name: "missing token", path: "/staff", expectCode: http.StatusUnauthorized},
		{name: "garbage token", path: "/staff", token: "not-a-jwt", expectCode: http.StatusUnauthorized},
		{name: "valid manager", path: "/staff", token: tokenFor(user.RoleManager), expectCode: http.StatusOK},
		{name: "manager below owner", path: "/owners", token: tokenFor(user.RoleManager), expectCode: http.StatusForbidden},
		{name: "owner passes", path: "/owners", token: tokenFor(user.RoleOwner), expectCode: http.StatusNoContent},
		{name: "super admin passes", path: "/owners", token: tokenFor(user.RoleSuperAdmin), expectCode: http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := serve(engine, req)
			assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	auth := NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService("s", time.Hour)))
	engine := newTestEngine()
	engine.GET("/x", auth.RequireRoleAtLeast(user.RoleManager), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{HoldsPerMinute: 60, Burst: 2})
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, wait := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, time.Second)

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok, "buckets are per client")

	now = now.Add(time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok, "one token refills per second")

	now = now.Add(limiterIdleTTL + time.Second)
	assert.Equal(t, 2, rl.evictIdle())
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{HoldsPerMinute: 1, Burst: 1})
	engine := newTestEngine()
	engine.POST("/holds", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	first := serve(engine, httptest.NewRequest(http.MethodPost, "/holds", nil))
	assert.Equal(t, http.StatusCreated, first.Code)

	second := serve(engine, httptest.NewRequest(http.MethodPost, "/holds", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestRateLimiterRunStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	engine := newTestEngine()
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })
	engine.GET("/public", func(c *gin.Context) {
		httperr.AbortWithCode(c, http.StatusConflict, errors.New("taken"), httperr.CodeSlotConflict, "Slot is no longer available", nil)
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`, rec.Body.String())

	rec = serve(engine, httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"SLOT_CONFLICT","message":"Slot is no longer available"}}`, rec.Body.String())
}

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	l := NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})
	engine := newTestEngine()
	engine.Use(l.LoggingMiddleware())
	engine.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, GetRequestID(c))
		c.Status(http.StatusOK)
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLoggingMiddlewareKeepsForwardedRequestID(t *testing.T) {
	l := NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})
	engine := newTestEngine()
	engine.Use(l.LoggingMiddleware())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "edge-123")
	rec := serve(engine, req)

	assert.Equal(t, "edge-123", rec.Header().Get("X-Request-ID"))
}

func TestCORSMiddlewareAddsBookingHeaders(t *testing.T) {
	engine := newTestEngine()
	engine.Use(NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"https://courts.test"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	preflight.Header.Set("Origin", "https://courts.test")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodGet)
	preflight.Header.Set("Access-Control-Request-Headers", "X-Session-ID")
	rec := serve(engine, preflight)
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "x-session-id")

	get := httptest.NewRequest(http.MethodGet, "/ping", nil)
	get.Header.Set("Origin", "https://courts.test")
	rec = serve(engine, get)
	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "x-request-id")
	assert.Contains(t, exposed, "retry-after")
}
