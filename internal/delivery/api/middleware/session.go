package middleware

import (
	"net/http"
	"strings"

	"lingo/config"
	deliverycontext "lingo/internal/delivery/context"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/service"
	"lingo/internal/errors"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session token and puts the identity on the echo context.
type SessionMiddleware struct {
	tokenService service.TokenService
	cookieName   string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenService service.TokenService, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		tokenService: tokenService,
		cookieName:   cfg.Session.CookieName,
	}
}

// Authenticate reads the token from the session cookie, falling back to a Bearer header
// for non-browser clients.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.tokenFrom(c.Request())
		if token == "" {
			return errors.Wrap(domainerrors.ErrTokenMissing, "session")
		}

		identityID, err := m.tokenService.Resolve(token)
		if err != nil {
			return errors.Wrap(err, "session")
		}

		deliverycontext.SetIdentityID(c, identityID)

		return next(c)
	}
}

func (m *SessionMiddleware) tokenFrom(req *http.Request) string {
	if cookie, err := req.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
