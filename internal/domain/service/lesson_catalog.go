package service

import "lingo/internal/domain/entity"

// LessonCatalog is the read-only, ordered lesson dataset loaded once per process.
type LessonCatalog interface {
	// TotalCount is the number of lessons. It is the denominator of the progress metric.
	TotalCount() int

	// Get returns the lesson at position in [0, TotalCount).
	Get(position int) (*entity.Lesson, error)

	// Position maps a lesson id to its position in the sequence.
	Position(lessonID int) (int, bool)

	// Page returns up to limit lessons starting at offset.
	Page(offset, limit int) []entity.Lesson
}
