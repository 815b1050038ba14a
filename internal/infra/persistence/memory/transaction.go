package memory

import (
	"context"

	"lingo/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	repo repository.IdentityRepository
}

func (f *repositoryFactory) IdentityRepo() repository.IdentityRepository {
	return f.repo
}

// NewTransactionManager returns a TransactionManager that snapshots store before fn
// and restores the snapshot when fn fails or panics.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	identities, emails := tm.store.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(identities, emails)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{repo: NewIdentityRepository(tm.store)}); err != nil {
		tm.store.restore(identities, emails)

		return err
	}

	return nil
}
