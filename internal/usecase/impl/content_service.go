package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "lingo/internal/delivery/context"
	"lingo/internal/domain/entity"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/service"
	"lingo/internal/usecase"

	"go.uber.org/fx"
)

type contentService struct {
	catalog service.LessonCatalog
	logger  *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	Catalog service.LessonCatalog
	Logger  *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *contentService) GetLesson(ctx context.Context, lessonID int) (*entity.Lesson, error) {
	position, ok := srv.catalog.Position(lessonID)
	if !ok {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Lesson not in catalog", slog.Int("lessonID", lessonID))

		return nil, domainerrors.ErrContentNotFound.WrapMessage("lesson " + strconv.Itoa(lessonID))
	}

	return srv.catalog.Get(position)
}

func (srv *contentService) ListLessons(_ context.Context, offset, limit int) (*usecase.LessonPage, error) {
	if offset < 0 {
		return nil, domainerrors.ErrInvalidData.WithDetails("offset must not be negative")
	}

	switch {
	case limit <= 0:
		limit = usecase.DefaultPageLimit
	case limit > usecase.MaxPageLimit:
		limit = usecase.MaxPageLimit
	}

	lessons := srv.catalog.Page(offset, limit)
	items := make([]entity.LessonSummary, 0, len(lessons))
	for i := range lessons {
		items = append(items, lessons[i].Summary())
	}

	return &usecase.LessonPage{
		Total:  srv.catalog.TotalCount(),
		Offset: offset,
		Items:  items,
	}, nil
}
