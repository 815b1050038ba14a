package auth

import (
	"time"

	"lingo/config"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/service"
	"lingo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// JWTOption customizes the token service.
type JWTOption func(*jwtService)

// WithClock replaces time.Now, used to move tokens past their expiry in tests.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService builds the session token service from session.secret and session.ttl.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithOptions(cfg.Session.Secret, cfg.Session.TTL)
}

// NewJWTServiceWithOptions is the explicit form of NewJWTService.
func NewJWTServiceWithOptions(secret string, ttl time.Duration, opts ...JWTOption) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue signs a session token whose subject is identityID.
func (s *jwtService) Issue(identityID uuid.UUID) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.SessionClaims{
		Type: service.TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return signed, expiresAt, nil
}

// Resolve verifies signature, algorithm, expiry and token type, then returns the subject.
func (s *jwtService) Resolve(token string) (uuid.UUID, error) {
	claims := &service.SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("session token expired")
		}

		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !parsed.Valid || claims.Type != service.TokenTypeSession {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type")
	}

	identityID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("malformed subject")
	}

	return identityID, nil
}

func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
