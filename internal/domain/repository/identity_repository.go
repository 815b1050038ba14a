// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lingo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is returned when no identity matches the lookup key.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrEmailTaken is returned by Create and Update when another identity already owns the email.
var ErrEmailTaken = errors.New("email already registered")

// LessonCompletion is the outcome of AddCompletedLesson.
type LessonCompletion struct {
	// Added is false when the lesson was already present.
	Added bool
	// Completed is the size of the set right after this call, counted atomically with the insert.
	Completed int
}

// IdentityRepository persists identities together with their completed lessons and chat transcript.
// Implementations enforce email uniqueness themselves; callers never check-then-insert.
type IdentityRepository interface {
	// Create stores a new identity. identity.ID must already be set.
	Create(ctx context.Context, identity *entity.Identity) error

	// FindByID returns the identity with its completed lessons and chat history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail looks up by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// Update writes name, email and password hash. Lessons and chat are left untouched.
	Update(ctx context.Context, identity *entity.Identity) error

	// AddCompletedLesson atomically adds lessonID to the set. Concurrent calls for one
	// identity observe distinct Completed values when they both add.
	AddCompletedLesson(ctx context.Context, id uuid.UUID, lessonID int) (LessonCompletion, error)

	// CompletedLessons returns lesson ids in insertion order. Never nil.
	CompletedLessons(ctx context.Context, id uuid.UUID) ([]int, error)

	// ReplaceChatHistory overwrites the whole transcript.
	ReplaceChatHistory(ctx context.Context, id uuid.UUID, history []entity.ChatMessage) error

	// ChatHistory returns the stored transcript. Never nil.
	ChatHistory(ctx context.Context, id uuid.UUID) ([]entity.ChatMessage, error)
}
