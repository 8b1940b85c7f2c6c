package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieWriter is the slice of Middleware that handlers use to hand out or revoke the portal cookie.
type CookieWriter interface {
	SetSessionCookie(c echo.Context, token string)
	ClearSessionCookie(c echo.Context)
}

var _ CookieWriter = (*Middleware)(nil)

// SetSessionCookie stores the portal token. Without a session TTL the cookie lives until the browser closes.
func (m *Middleware) SetSessionCookie(c echo.Context, token string) {
	cookie := m.baseCookie()
	cookie.Value = token
	if m.cookieTTL > 0 {
		cookie.Expires = time.Now().Add(m.cookieTTL)
		cookie.MaxAge = int(m.cookieTTL.Seconds())
	}
	c.SetCookie(cookie)
}

func (m *Middleware) ClearSessionCookie(c echo.Context) {
	cookie := m.baseCookie()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

func (m *Middleware) baseCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
