// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lingo/internal/delivery/context"
	"lingo/internal/domain/entity"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/repository"
	"lingo/internal/domain/service"
	"lingo/internal/errors"
	"lingo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dummyPasswordHash is compared against when the email is unknown,
// so both failure paths of Authenticate cost one bcrypt comparison.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting registration", slog.String("email", email))

	if name == "" || email == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidData.WithDetails("name and email are required"), "register")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	identity := &entity.Identity{
		ID:               uuid.New(),
		Name:             name,
		Email:            email,
		PasswordHash:     hashedPassword,
		CompletedLessons: []int{},
		ChatHistory:      []entity.ChatMessage{},
	}

	if err := srv.identityRepo.Create(ctx, identity); err != nil {
		srv.log(ctx).Warn("Failed to create identity", slog.String("email", email), slog.Any("error", err))

		return nil, mapRepositoryError(err, "failed to create identity during registration")
	}

	output, err := srv.issueSession(identity)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Identity registered", slog.Any("identityID", identity.ID))

	return output, nil
}

func (srv *accountService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting authentication", slog.String("email", email))

	identity, err := srv.identityRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			srv.hasher.Check(input.Password, dummyPasswordHash)
			srv.log(ctx).Warn("Authentication failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		return nil, mapRepositoryError(err, "failed to load identity for authentication")
	}

	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	output, err := srv.issueSession(identity)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Identity authenticated", slog.Any("identityID", identity.ID))

	return output, nil
}

func (srv *accountService) GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to load profile")
	}

	return identity, nil
}

// UpdateProfile reads, patches and writes the profile in one transaction.
// Concurrent updates are last-writer-wins.
func (srv *accountService) UpdateProfile(ctx context.Context, identityID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Identity, error) {
	var newHash string
	if input.Password != "" {
		if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
			return nil, errors.Wrap(err, "password does not meet security requirements")
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during profile update")
		}
		newHash = hashed
	}

	var updated *entity.Identity
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		identity, err := identityRepo.FindByID(ctx, identityID)
		if err != nil {
			return err
		}

		if name := strings.TrimSpace(input.Name); name != "" {
			identity.Name = name
		}
		if email := entity.NormalizeEmail(input.Email); email != "" {
			identity.Email = email
		}
		if newHash != "" {
			identity.PasswordHash = newHash
		}

		if err := identityRepo.Update(ctx, identity); err != nil {
			return err
		}
		updated = identity

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("identityID", identityID), slog.Any("error", err))

		return nil, mapRepositoryError(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("identityID", identityID), slog.Bool("passwordChanged", newHash != ""))

	return updated, nil
}

func (srv *accountService) issueSession(identity *entity.Identity) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthOutput{
		Identity:  identity,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
