package repository

import "context"

// TransactionManager lets the use case layer group repository calls atomically
// without depending on a specific storage driver.
type TransactionManager interface {
	// Execute runs fn within a transaction.
	// If fn returns an error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	IdentityRepo() IdentityRepository
}
