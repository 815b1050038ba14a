package redis

import (
	"context"

	"lingo/internal/domain/repository"

	goredis "github.com/redis/go-redis/v9"
)

type transactionManager struct {
	repo repository.IdentityRepository
}

type repositoryFactory struct {
	repo repository.IdentityRepository
}

func (f *repositoryFactory) IdentityRepo() repository.IdentityRepository {
	return f.repo
}

// NewTransactionManager returns a TransactionManager whose Execute runs fn directly.
// Each repository method is atomic on its own keys; there is no rollback across calls.
func NewTransactionManager(client goredis.UniversalClient) repository.TransactionManager {
	return &transactionManager{repo: NewIdentityRepository(client)}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(&repositoryFactory{repo: tm.repo})
}
