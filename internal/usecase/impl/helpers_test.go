package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lingo/internal/domain/repository"
	mockRepo "lingo/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// onExecute runs the transaction callback against a mocked identity repository
// and returns whatever the callback returns, like a real TransactionManager would.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(identityRepo *mockRepo.MockIdentityRepository)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			setup(mockIdentityRepo)

			return fn(mockFactory)
		})
}
