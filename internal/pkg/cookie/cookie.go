// Package cookie stores the admin session token for the browser dashboard.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"resqcart/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "resq_admin_token"

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	ck := sessionCookie(cfg, token)
	ck.MaxAge = int(ttl.Seconds())
	http.SetCookie(c.Writer, ck)
}

// ClearAccessToken expires the cookie immediately.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	ck := sessionCookie(cfg, "")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	http.SetCookie(c.Writer, ck)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func sessionCookie(cfg config.CookieConfig, value string) *http.Cookie {
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: parseSameSite(cfg.SameSite),
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
