package handler

import (
	"net/http"
	"time"

	"lingo/config"

	"github.com/labstack/echo/v4"
)

// SessionCookie writes and clears the cookie that carries the session token.
type SessionCookie struct {
	name   string
	secure bool
	domain string
}

// NewSessionCookie reads cookie settings from the session config section.
func NewSessionCookie(cfg *config.Config) *SessionCookie {
	return &SessionCookie{
		name:   cfg.Session.CookieName,
		secure: cfg.Session.CookieSecure,
		domain: cfg.Session.CookieDomain,
	}
}

// Set stores token until expiresAt.
func (s *SessionCookie) Set(c echo.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}

	c.SetCookie(s.build(token, expiresAt, maxAge))
}

// Clear overwrites the cookie with an empty, already expired value.
func (s *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(s.build("", time.Unix(0, 0), -1))
}

func (s *SessionCookie) build(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
