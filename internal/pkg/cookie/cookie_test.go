//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = req
	return c, rec
}

func TestGetSessionID(t *testing.T) {
	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(cookie.SessionIDHeader, "from-header")
		req.AddCookie(&http.Cookie{Name: cookie.SessionIDCookieName, Value: "from-cookie"})
		c, _ := newContext(req)
		assert.Equal(t, "from-header", cookie.GetSessionID(c))
	})

	t.Run("falls back to cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookie.SessionIDCookieName, Value: "from-cookie"})
		c, _ := newContext(req)
		assert.Equal(t, "from-cookie", cookie.GetSessionID(c))
	})

	t.Run("empty when absent", func(t *testing.T) {
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Empty(t, cookie.GetSessionID(c))
	})
}

func TestSetSessionCookie(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
	cookie.SetSessionCookie(c, config.CookieConfig{SameSite: "Strict"}, "sess-1", 15*time.Minute)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookie.SessionIDCookieName, cookies[0].Name)
	assert.Equal(t, "sess-1", cookies[0].Value)
	assert.Equal(t, 900, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}
