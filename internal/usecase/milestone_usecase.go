package usecase

import (
	"context"

	"lingo/internal/domain/service"

	"github.com/google/uuid"
)

// MilestoneOutput describes a processed completion event. Milestone is 0 when no threshold was crossed.
type MilestoneOutput struct {
	IdentityID uuid.UUID
	LessonID   int
	Percentage float64
	Milestone  int
}

// MilestoneUsecase consumes lesson completed events delivered by the event worker.
type MilestoneUsecase interface {
	HandleLessonCompleted(ctx context.Context, event *service.LessonCompletedEvent) (*MilestoneOutput, error)
}
