package usecase

import (
	"context"

	"lingo/internal/domain/entity"
)

// DefaultPageLimit applies when a list request names no limit.
const DefaultPageLimit = 20

// MaxPageLimit caps a single page of the lesson index.
const MaxPageLimit = 100

// LessonPage is one page of the lesson index.
type LessonPage struct {
	Total  int
	Offset int
	Items  []entity.LessonSummary
}

// ContentUsecase serves the read-only lesson dataset.
type ContentUsecase interface {
	// GetLesson looks a lesson up by its dataset id.
	GetLesson(ctx context.Context, lessonID int) (*entity.Lesson, error)

	// ListLessons returns summaries starting at offset. limit <= 0 means DefaultPageLimit.
	ListLessons(ctx context.Context, offset, limit int) (*LessonPage, error)
}
