package memory

import (
	"context"
	"slices"
	"sync"
	"testing"

	"lingo/internal/domain/entity"
	"lingo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentity(email string) *entity.Identity {
	return &entity.Identity{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        email,
		PasswordHash: "hash",
	}
}

func TestIdentityRepository_CreateAndFind(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	identity := newIdentity("  Ana@Example.com ")
	require.NoError(t, repo.Create(ctx, identity))
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.False(t, identity.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, found.ID)
	assert.Equal(t, []int{}, found.CompletedLessons)
	assert.Equal(t, []entity.ChatMessage{}, found.ChatHistory)

	found.Name = "mutated"
	again, err := repo.FindByID(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.Name, "returned identities must not alias stored state")

	err = repo.Create(ctx, newIdentity("ana@example.com"))
	assert.ErrorIs(t, err, repository.ErrEmailTaken)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityRepository_Update(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	ana := newIdentity("ana@example.com")
	ben := newIdentity("ben@example.com")
	require.NoError(t, repo.Create(ctx, ana))
	require.NoError(t, repo.Create(ctx, ben))

	_, err := repo.AddCompletedLesson(ctx, ana.ID, 3)
	require.NoError(t, err)

	ana.Name = "Ana Maria"
	ana.Email = "ana.maria@example.com"
	require.NoError(t, repo.Update(ctx, ana))

	found, err := repo.FindByEmail(ctx, "ana.maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", found.Name)
	assert.Equal(t, []int{3}, found.CompletedLessons)

	_, err = repo.FindByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound, "old email is released")

	ben.Email = "ANA.MARIA@example.com"
	assert.ErrorIs(t, repo.Update(ctx, ben), repository.ErrEmailTaken)

	assert.ErrorIs(t, repo.Update(ctx, newIdentity("x@example.com")), repository.ErrIdentityNotFound)
}

func TestIdentityRepository_CreateRacesOnEmailCase(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	emails := []string{"a@x.com", "A@x.com", "a@X.COM", " A@X.com"}
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		taken   int
	)
	for _, email := range emails {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, newIdentity(email))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, repository.ErrEmailTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, len(emails)-1, taken)
}

func TestIdentityRepository_AddCompletedLessonIsIdempotentUnderRace(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	identity := newIdentity("ana@example.com")
	require.NoError(t, repo.Create(ctx, identity))

	const workers = 16
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			completion, err := repo.AddCompletedLesson(ctx, identity.ID, 3)
			assert.NoError(t, err)
			if completion.Added {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, added)

	_, err := repo.AddCompletedLesson(ctx, identity.ID, 1)
	require.NoError(t, err)

	lessons, err := repo.CompletedLessons(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, lessons)

	_, err = repo.AddCompletedLesson(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
	_, err = repo.CompletedLessons(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityRepository_AddCompletedLessonCountsAreDistinct(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	identity := newIdentity("ana@example.com")
	require.NoError(t, repo.Create(ctx, identity))

	const workers = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		counts []int
	)
	for lessonID := 1; lessonID <= workers; lessonID++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			completion, err := repo.AddCompletedLesson(ctx, identity.ID, lessonID)
			assert.NoError(t, err)
			assert.True(t, completion.Added)
			mu.Lock()
			counts = append(counts, completion.Completed)
			mu.Unlock()
		}()
	}
	wg.Wait()

	slices.Sort(counts)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, counts)

	repeat, err := repo.AddCompletedLesson(ctx, identity.ID, 1)
	require.NoError(t, err)
	assert.False(t, repeat.Added)
	assert.Equal(t, workers, repeat.Completed)
}

func TestIdentityRepository_ChatHistoryReplace(t *testing.T) {
	repo := NewIdentityRepository(NewStore())
	ctx := context.Background()

	identity := newIdentity("ana@example.com")
	require.NoError(t, repo.Create(ctx, identity))

	first := []entity.ChatMessage{{Role: "user", Text: "Hallo"}, {Role: "assistant", Text: "Hallo! Wie geht's?"}}
	require.NoError(t, repo.ReplaceChatHistory(ctx, identity.ID, first))

	first[0].Text = "mutated"
	got, err := repo.ChatHistory(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hallo", got[0].Text)

	second := []entity.ChatMessage{{Role: "user", Text: "Tschüss"}}
	require.NoError(t, repo.ReplaceChatHistory(ctx, identity.ID, second))
	got, err = repo.ChatHistory(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	require.NoError(t, repo.ReplaceChatHistory(ctx, identity.ID, nil))
	got, err = repo.ChatHistory(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.ChatMessage{}, got)

	assert.ErrorIs(t, repo.ReplaceChatHistory(ctx, uuid.New(), second), repository.ErrIdentityNotFound)
	_, err = repo.ChatHistory(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestTransactionManager(t *testing.T) {
	store := NewStore()
	txManager := NewTransactionManager(store)
	repo := NewIdentityRepository(store)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		identity := newIdentity("commit@example.com")
		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.IdentityRepo().Create(ctx, identity)
		})
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, identity.ID)
		assert.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		identity := newIdentity("rollback@example.com")

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.IdentityRepo().Create(ctx, identity); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = repo.FindByEmail(ctx, "rollback@example.com")
		assert.ErrorIs(t, err, repository.ErrIdentityNotFound)

		_, err = repo.FindByEmail(ctx, "commit@example.com")
		assert.NoError(t, err, "earlier commits survive a rollback")
	})

	t.Run("rollback on panic", func(t *testing.T) {
		identity := newIdentity("panic@example.com")

		assert.Panics(t, func() {
			_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
				_ = factory.IdentityRepo().Create(ctx, identity)
				panic("boom")
			})
		})

		_, err := repo.FindByEmail(ctx, "panic@example.com")
		assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := txManager.Execute(cancelled, func(repository.RepositoryFactory) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
