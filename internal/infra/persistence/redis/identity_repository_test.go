package redis

import (
	"context"
	"os"
	"slices"
	"sync"
	"testing"

	"lingo/internal/domain/entity"
	"lingo/internal/domain/repository"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()

	addr := os.Getenv("LINGO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LINGO_TEST_REDIS_ADDR not set")
	}

	client := goredis.NewClient(&goredis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func createTestIdentity(t *testing.T, repo repository.IdentityRepository) *entity.Identity {
	t.Helper()

	identity := &entity.Identity{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        uuid.NewString() + "@Example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(context.Background(), identity))

	return identity
}

func TestKeysShareHashTag(t *testing.T) {
	id := uuid.MustParse("6f1c1b3e-8a4d-4d0e-9b61-2a0f4f8f9d11")

	assert.Equal(t, "lingo:identity:{6f1c1b3e-8a4d-4d0e-9b61-2a0f4f8f9d11}", profileKey(id))
	assert.Equal(t, profileKey(id)+":lessons", lessonListKey(id))
	assert.Equal(t, profileKey(id)+":lessons:set", lessonSetKey(id))
	assert.Equal(t, profileKey(id)+":chat", chatKey(id))
	assert.Equal(t, "lingo:email:ana@example.com", emailKey("ana@example.com"))
}

func TestParseLessonIDs(t *testing.T) {
	lessons, err := parseLessonIDs([]string{"3", "1", "42"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 42}, lessons)

	lessons, err = parseLessonIDs(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{}, lessons)

	_, err = parseLessonIDs([]string{"x"})
	assert.Error(t, err)
}

func TestIdentityRepository_CreateAndFind(t *testing.T) {
	repo := NewIdentityRepository(newTestClient(t))
	ctx := context.Background()

	identity := createTestIdentity(t, repo)

	found, err := repo.FindByEmail(ctx, identity.Email)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, found.ID)
	assert.Equal(t, entity.NormalizeEmail(identity.Email), found.Email)
	assert.Equal(t, []int{}, found.CompletedLessons)
	assert.Equal(t, []entity.ChatMessage{}, found.ChatHistory)

	dup := &entity.Identity{ID: uuid.New(), Email: identity.Email, PasswordHash: "x"}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrEmailTaken)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
	_, err = repo.FindByEmail(ctx, uuid.NewString()+"@example.com")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityRepository_Update(t *testing.T) {
	repo := NewIdentityRepository(newTestClient(t))
	ctx := context.Background()

	ana := createTestIdentity(t, repo)
	ben := createTestIdentity(t, repo)
	oldEmail := ana.Email

	ana.Name = "Ana Maria"
	ana.Email = uuid.NewString() + "@example.com"
	require.NoError(t, repo.Update(ctx, ana))

	found, err := repo.FindByEmail(ctx, ana.Email)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", found.Name)

	_, err = repo.FindByEmail(ctx, oldEmail)
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)

	ben.Email = ana.Email
	assert.ErrorIs(t, repo.Update(ctx, ben), repository.ErrEmailTaken)

	missing := &entity.Identity{ID: uuid.New(), Email: uuid.NewString() + "@example.com"}
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrIdentityNotFound)
}

func TestIdentityRepository_AddCompletedLessonIsIdempotentUnderRace(t *testing.T) {
	repo := NewIdentityRepository(newTestClient(t))
	ctx := context.Background()

	identity := createTestIdentity(t, repo)

	const workers = 8
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
	repo := NewIdentityRepository(newTestClient(t))
	ctx := context.Background()

	identity := createTestIdentity(t, repo)

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
	repo := NewIdentityRepository(newTestClient(t))
	ctx := context.Background()

	identity := createTestIdentity(t, repo)

	first := []entity.ChatMessage{{Role: "user", Text: "Hallo"}, {Role: "assistant", Text: "Hallo! Wie geht's?"}}
	require.NoError(t, repo.ReplaceChatHistory(ctx, identity.ID, first))

	got, err := repo.ChatHistory(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	require.NoError(t, repo.ReplaceChatHistory(ctx, identity.ID, nil))
	got, err = repo.ChatHistory(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.ChatMessage{}, got)

	assert.ErrorIs(t, repo.ReplaceChatHistory(ctx, uuid.New(), first), repository.ErrIdentityNotFound)
	_, err = repo.ChatHistory(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}
