// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"lingo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new learner.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthenticateInput defines the data required for a learner to log in.
type AuthenticateInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Empty fields are left unchanged.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by Register and Authenticate: the identity plus a fresh session token.
type AuthOutput struct {
	Identity  *entity.Identity
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase covers registration, login and profile maintenance.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, identityID uuid.UUID, input *UpdateProfileInput) (*entity.Identity, error)
}
