// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"lingo/config"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are rejected.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and passwordStrength.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy clamps cost into bcrypt's accepted range.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordBytes {
		policy.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrInvalidData.WithDetails(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy. Violations are ErrInvalidData
// carrying a human readable reason in Details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if strings.TrimSpace(password) == "" {
		return domainerrors.ErrInvalidData.WithDetails("password must not be empty")
	}

	length := utf8.RuneCountInString(password)
	if h.policy.MinLength > 0 && length < h.policy.MinLength {
		return domainerrors.ErrInvalidData.WithDetails(
			fmt.Sprintf("password must be at least %d characters long", h.policy.MinLength))
	}
	if len(password) > h.policy.MaxLength {
		return domainerrors.ErrInvalidData.WithDetails(
			fmt.Sprintf("password must be at most %d bytes long", h.policy.MaxLength))
	}
	if h.policy.RequireUppercase && !hasRune(password, unicode.IsUpper) {
		return domainerrors.ErrInvalidData.WithDetails("password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !hasRune(password, unicode.IsLower) {
		return domainerrors.ErrInvalidData.WithDetails("password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !hasRune(password, unicode.IsDigit) {
		return domainerrors.ErrInvalidData.WithDetails("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasRune(password, isSpecial) {
		return domainerrors.ErrInvalidData.WithDetails("password must contain at least one special character")
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
