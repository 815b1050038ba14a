package impl

import (
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/repository"
	"lingo/internal/errors"
)

// mapRepositoryError turns repository sentinels into domain errors.
// Errors that already carry an HTTP mapping pass through; anything else is a persistence failure.
func mapRepositoryError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrIdentityNotFound):
		return errors.Wrap(domainerrors.ErrIdentityNotFound, action)
	case errors.Is(err, repository.ErrEmailTaken):
		return errors.Wrap(domainerrors.ErrDuplicateEmail, action)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, action)
	}

	return domainerrors.NewPersistenceError(err, action)
}
