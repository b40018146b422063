package cookie

import (
	"net/http"
	"time"

	"court-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionIDCookieName = "booking_session"
	SessionIDHeader     = "X-Session-ID"
)

// SetSessionCookie remembers the booking session so the browser can release
// or pay its hold without resending the id.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string, maxAge time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		SessionIDCookieName,
		sessionID,
		int(maxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(SessionIDCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

// GetSessionID prefers the header over the cookie.
func GetSessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionIDHeader); id != "" {
		return id
	}
	id, _ := c.Cookie(SessionIDCookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
