package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetIdentityID stores the authenticated identity in echo.Context.
func SetIdentityID(c echo.Context, identityID uuid.UUID) {
	c.Set(string(KeyIdentityID), identityID)
}

// GetIdentityID returns the identity set by the session middleware.
// ok is false on routes that are not behind the middleware.
func GetIdentityID(c echo.Context) (uuid.UUID, bool) {
	identityID, ok := c.Get(string(KeyIdentityID)).(uuid.UUID)
	if !ok || identityID == uuid.Nil {
		return uuid.Nil, false
	}

	return identityID, true
}
