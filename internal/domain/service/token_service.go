package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeSession marks tokens minted for browser sessions.
const TokenTypeSession = "session"

// SessionClaims are the claims carried by a session token. Subject holds the identity id.
type SessionClaims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService mints and resolves stateless session tokens.
type TokenService interface {
	// Issue returns a signed token for identityID and its absolute expiry.
	Issue(identityID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Resolve verifies the token and returns the identity it was issued for.
	// It fails with ErrTokenExpired once the expiry has passed and ErrTokenInvalid otherwise.
	Resolve(token string) (uuid.UUID, error)

	// TTL is the lifetime given to new tokens.
	TTL() time.Duration
}
