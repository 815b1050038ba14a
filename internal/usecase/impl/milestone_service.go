package impl

import (
	"context"
	"log/slog"

	deliverycontext "lingo/internal/delivery/context"
	"lingo/internal/domain/constants"
	"lingo/internal/domain/entity"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/repository"
	"lingo/internal/domain/service"
	"lingo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// MilestoneServiceParams holds dependencies for milestoneService, injected by Fx.
type MilestoneServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Logger       *slog.Logger
}

type milestoneService struct {
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
}

// NewMilestoneService is the constructor for milestoneService.
func NewMilestoneService(params MilestoneServiceParams) usecase.MilestoneUsecase {
	return &milestoneService{
		identityRepo: params.IdentityRepo,
		logger:       params.Logger,
	}
}

// HandleLessonCompleted announces the highest threshold crossed by this completion.
// Events for deleted identities are dropped with ErrIdentityNotFound.
func (srv *milestoneService) HandleLessonCompleted(ctx context.Context, event *service.LessonCompletedEvent) (*usecase.MilestoneOutput, error) {
	identityID, err := uuid.Parse(event.IdentityID)
	if err != nil {
		return nil, domainerrors.ErrInvalidData.WithDetails("identity_id is not a uuid")
	}
	if event.Completed < 1 || event.Total < 1 || event.Completed > event.Total {
		return nil, domainerrors.ErrInvalidData.WithDetails("completed must be within 1..total")
	}

	if _, err := srv.identityRepo.FindByID(ctx, identityID); err != nil {
		return nil, mapRepositoryError(err, "failed to look up identity for milestone")
	}

	out := &usecase.MilestoneOutput{
		IdentityID: identityID,
		LessonID:   event.LessonID,
		Percentage: entity.CompletionPercentage(event.Completed, event.Total),
		Milestone:  crossedMilestone(event.Completed, event.Total),
	}

	if out.Milestone > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Milestone reached",
			slog.String("identity_id", event.IdentityID),
			slog.Int("milestone", out.Milestone),
			slog.Int("lesson_id", event.LessonID),
			slog.String("event_id", event.EventID),
		)
	}

	return out, nil
}

// crossedMilestone returns the largest threshold t with before < t <= after, comparing
// completed*100 against t*total so no float rounding is involved.
func crossedMilestone(completed, total int) int {
	before, after := (completed-1)*100, completed*100

	crossed := 0
	for _, threshold := range constants.MilestonePercentages {
		if before < threshold*total && threshold*total <= after {
			crossed = threshold
		}
	}

	return crossed
}
