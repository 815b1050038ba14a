// Package memory keeps identities in process memory. It backs tests and single-node demos
// where running PostgreSQL or Redis is not worth it. Data is lost on restart.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"lingo/internal/domain/entity"
	"lingo/internal/domain/repository"

	"github.com/google/uuid"
)

type record struct {
	identity  *entity.Identity
	completed map[int]struct{}
}

// Store is the shared state behind the memory repository and transaction manager.
type Store struct {
	mu         sync.RWMutex
	identities map[uuid.UUID]*record
	emails     map[string]uuid.UUID

	// txMu serializes Execute calls so a rollback never discards another transaction's writes.
	txMu sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		identities: make(map[uuid.UUID]*record),
		emails:     make(map[string]uuid.UUID),
	}
}

type identityRepository struct {
	store *Store
}

// NewIdentityRepository returns a repository backed by store.
func NewIdentityRepository(store *Store) repository.IdentityRepository {
	return &identityRepository{store: store}
}

func (repo *identityRepository) Create(_ context.Context, identity *entity.Identity) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	email := entity.NormalizeEmail(identity.Email)
	if _, taken := s.emails[email]; taken {
		return repository.ErrEmailTaken
	}

	now := time.Now()
	identity.Email = email
	identity.CreatedAt = now
	identity.UpdatedAt = now

	stored := identity.Clone()
	if stored.CompletedLessons == nil {
		stored.CompletedLessons = []int{}
	}
	if stored.ChatHistory == nil {
		stored.ChatHistory = []entity.ChatMessage{}
	}

	completed := make(map[int]struct{}, len(stored.CompletedLessons))
	for _, lessonID := range stored.CompletedLessons {
		completed[lessonID] = struct{}{}
	}

	s.identities[stored.ID] = &record{identity: stored, completed: completed}
	s.emails[email] = stored.ID

	return nil
}

func (repo *identityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.identities[id]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}

	return rec.identity.Clone(), nil
}

func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	s := repo.store
	s.mu.RLock()
	id, ok := s.emails[entity.NormalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return nil, repository.ErrIdentityNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *identityRepository) Update(_ context.Context, identity *entity.Identity) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.identities[identity.ID]
	if !ok {
		return repository.ErrIdentityNotFound
	}

	email := entity.NormalizeEmail(identity.Email)
	if owner, taken := s.emails[email]; taken && owner != identity.ID {
		return repository.ErrEmailTaken
	}

	delete(s.emails, rec.identity.Email)
	s.emails[email] = identity.ID

	now := time.Now()
	rec.identity.Name = identity.Name
	rec.identity.Email = email
	rec.identity.PasswordHash = identity.PasswordHash
	rec.identity.UpdatedAt = now

	identity.Email = email
	identity.UpdatedAt = now

	return nil
}

func (repo *identityRepository) AddCompletedLesson(_ context.Context, id uuid.UUID, lessonID int) (repository.LessonCompletion, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.identities[id]
	if !ok {
		return repository.LessonCompletion{}, repository.ErrIdentityNotFound
	}
	if _, done := rec.completed[lessonID]; done {
		return repository.LessonCompletion{Completed: len(rec.completed)}, nil
	}

	rec.completed[lessonID] = struct{}{}
	rec.identity.CompletedLessons = append(rec.identity.CompletedLessons, lessonID)
	rec.identity.UpdatedAt = time.Now()

	return repository.LessonCompletion{Added: true, Completed: len(rec.completed)}, nil
}

func (repo *identityRepository) CompletedLessons(_ context.Context, id uuid.UUID) ([]int, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.identities[id]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}

	return slices.Clone(rec.identity.CompletedLessons), nil
}

func (repo *identityRepository) ReplaceChatHistory(_ context.Context, id uuid.UUID, history []entity.ChatMessage) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}

	replaced := slices.Clone(history)
	if replaced == nil {
		replaced = []entity.ChatMessage{}
	}
	rec.identity.ChatHistory = replaced
	rec.identity.UpdatedAt = time.Now()

	return nil
}

func (repo *identityRepository) ChatHistory(_ context.Context, id uuid.UUID) ([]entity.ChatMessage, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.identities[id]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}

	return slices.Clone(rec.identity.ChatHistory), nil
}

// snapshot deep-copies the store so Execute can restore it on failure.
func (s *Store) snapshot() (map[uuid.UUID]*record, map[string]uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identities := make(map[uuid.UUID]*record, len(s.identities))
	for id, rec := range s.identities {
		identities[id] = &record{identity: rec.identity.Clone(), completed: maps.Clone(rec.completed)}
	}

	return identities, maps.Clone(s.emails)
}

func (s *Store) restore(identities map[uuid.UUID]*record, emails map[string]uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identities = identities
	s.emails = emails
}
