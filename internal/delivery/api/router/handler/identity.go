package handler

import (
	deliverycontext "lingo/internal/delivery/context"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionIdentity returns the identity bound to the session. The session is the only
// authority; a client-supplied id is accepted solely when it names the same identity.
func sessionIdentity(c echo.Context, requested string) (uuid.UUID, error) {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrTokenMissing, "no identity on request")
	}

	if requested == "" {
		return identityID, nil
	}

	requestedID, err := uuid.Parse(requested)
	if err != nil || requestedID != identityID {
		return uuid.Nil, errors.Wrap(domainerrors.ErrIdentityMismatch, "requested id differs from session")
	}

	return identityID, nil
}
