package usecase

import (
	"context"

	"lingo/internal/domain/entity"

	"github.com/google/uuid"
)

// ProgressOutput reports how far a learner has come through the catalog.
type ProgressOutput struct {
	Completed  int
	Total      int
	Percentage float64
}

// ProgressUsecase records completed lessons and chat transcripts and derives progress from them.
type ProgressUsecase interface {
	// MarkCompleted adds lessonID to the learner's completed set. added is false on a repeat.
	MarkCompleted(ctx context.Context, identityID uuid.UUID, lessonID int) (added bool, err error)
	CompletedLessons(ctx context.Context, identityID uuid.UUID) ([]int, error)

	// ReplaceChatHistory overwrites the stored transcript with history.
	ReplaceChatHistory(ctx context.Context, identityID uuid.UUID, history []entity.ChatMessage) error
	ChatHistory(ctx context.Context, identityID uuid.UUID) ([]entity.ChatMessage, error)

	Progress(ctx context.Context, identityID uuid.UUID) (*ProgressOutput, error)
}
