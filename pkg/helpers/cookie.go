package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session-token"

// CookieManager writes and clears the session cookie with consistent
// domain/secure/same-site attributes.
type CookieManager struct {
	Domain string
	Secure bool
	TTL    time.Duration
}

func NewCookieManager(domain string, secure bool, ttl time.Duration) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure, TTL: ttl}
}

// SetSession sets the session-token cookie. MaxAge follows the server-side
// session TTL so the cookie and the store entry expire together.
func (m *CookieManager) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(m.TTL.Seconds()), "/", m.Domain, m.Secure, true)
}

// ClearSession unsets the session-token cookie.
func (m *CookieManager) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", m.Domain, m.Secure, true)
}
