package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "lingo/internal/delivery/context"
	"lingo/internal/domain/entity"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/repository"
	"lingo/internal/domain/service"
	"lingo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type progressService struct {
	identityRepo repository.IdentityRepository
	catalog      service.LessonCatalog
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// ProgressServiceParams holds dependencies for ProgressService, injected by Fx.
type ProgressServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Catalog      service.LessonCatalog
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewProgressService is the constructor for progressService.
func NewProgressService(params ProgressServiceParams) usecase.ProgressUsecase {
	return &progressService{
		identityRepo: params.IdentityRepo,
		catalog:      params.Catalog,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *progressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MarkCompleted only accepts lessons present in the catalog, so the completed
// count can never exceed the total.
func (srv *progressService) MarkCompleted(ctx context.Context, identityID uuid.UUID, lessonID int) (bool, error) {
	if _, ok := srv.catalog.Position(lessonID); !ok {
		return false, domainerrors.ErrContentNotFound.WrapMessage("lesson " + strconv.Itoa(lessonID))
	}

	completion, err := srv.identityRepo.AddCompletedLesson(ctx, identityID, lessonID)
	if err != nil {
		return false, mapRepositoryError(err, "failed to mark lesson completed")
	}

	if !completion.Added {
		srv.log(ctx).Debug("Lesson already completed", slog.Any("identityID", identityID), slog.Int("lessonID", lessonID))

		return false, nil
	}

	srv.log(ctx).Debug("Lesson completed", slog.Any("identityID", identityID), slog.Int("lessonID", lessonID))
	srv.publishCompletion(ctx, identityID, lessonID, completion.Completed)

	return true, nil
}

// publishCompletion never fails the request: the completion is already stored.
// completed comes from the insert itself, so racing completions carry distinct counts.
func (srv *progressService) publishCompletion(ctx context.Context, identityID uuid.UUID, lessonID, completed int) {
	event := &service.LessonCompletedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		IdentityID:  identityID.String(),
		LessonID:    lessonID,
		Completed:   completed,
		Total:       srv.catalog.TotalCount(),
		CompletedAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishLessonCompleted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish lesson completed event",
			slog.String("eventID", event.EventID),
			slog.Int("lessonID", lessonID),
			slog.Any("error", err),
		)
	}
}

func (srv *progressService) CompletedLessons(ctx context.Context, identityID uuid.UUID) ([]int, error) {
	lessons, err := srv.identityRepo.CompletedLessons(ctx, identityID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to load completed lessons")
	}
	if lessons == nil {
		lessons = []int{}
	}

	return lessons, nil
}

func (srv *progressService) ReplaceChatHistory(ctx context.Context, identityID uuid.UUID, history []entity.ChatMessage) error {
	if err := srv.identityRepo.ReplaceChatHistory(ctx, identityID, history); err != nil {
		srv.log(ctx).Error("Failed to store chat history", slog.Any("identityID", identityID), slog.Int("messages", len(history)), slog.Any("error", err))

		return mapRepositoryError(err, "failed to replace chat history")
	}

	return nil
}

func (srv *progressService) ChatHistory(ctx context.Context, identityID uuid.UUID) ([]entity.ChatMessage, error) {
	history, err := srv.identityRepo.ChatHistory(ctx, identityID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to load chat history")
	}
	if history == nil {
		history = []entity.ChatMessage{}
	}

	return history, nil
}

func (srv *progressService) Progress(ctx context.Context, identityID uuid.UUID) (*usecase.ProgressOutput, error) {
	lessons, err := srv.CompletedLessons(ctx, identityID)
	if err != nil {
		return nil, err
	}

	total := srv.catalog.TotalCount()

	return &usecase.ProgressOutput{
		Completed:  len(lessons),
		Total:      total,
		Percentage: entity.CompletionPercentage(len(lessons), total),
	}, nil
}
