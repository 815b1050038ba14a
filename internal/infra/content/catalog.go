// Package content loads the ordered lesson dataset and serves it read-only.
package content

import (
	"encoding/json"
	"slices"

	"lingo/internal/domain/entity"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/service"
	"lingo/internal/errors"
)

// Catalog is an immutable, in-memory lesson sequence with an id index.
// It is safe for concurrent use because nothing mutates it after Parse returns.
type Catalog struct {
	lessons    []entity.Lesson
	positionOf map[int]int
}

var _ service.LessonCatalog = (*Catalog)(nil)

// Parse decodes a JSON array of lessons. Duplicate lesson ids are rejected because
// they would make id lookups ambiguous.
func Parse(data []byte) (*Catalog, error) {
	var lessons []entity.Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		return nil, errors.Wrap(err, "failed to decode lesson dataset")
	}

	return NewCatalog(lessons)
}

// NewCatalog indexes lessons by id, keeping their order.
func NewCatalog(lessons []entity.Lesson) (*Catalog, error) {
	positionOf := make(map[int]int, len(lessons))
	for pos, lesson := range lessons {
		if prev, dup := positionOf[lesson.ID]; dup {
			return nil, errors.Errorf("duplicate lesson id %d at positions %d and %d", lesson.ID, prev, pos)
		}
		positionOf[lesson.ID] = pos
	}

	return &Catalog{
		lessons:    lessons,
		positionOf: positionOf,
	}, nil
}

func (c *Catalog) TotalCount() int {
	return len(c.lessons)
}

// Get returns a copy of the lesson at position.
func (c *Catalog) Get(position int) (*entity.Lesson, error) {
	if position < 0 || position >= len(c.lessons) {
		return nil, domainerrors.ErrContentNotFound.WrapMessage("lesson position out of range")
	}

	return c.lessons[position].Clone(), nil
}

func (c *Catalog) Position(lessonID int) (int, bool) {
	pos, ok := c.positionOf[lessonID]

	return pos, ok
}

// Page clamps offset and limit to the dataset and never returns nil.
func (c *Catalog) Page(offset, limit int) []entity.Lesson {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(c.lessons) || limit <= 0 {
		return []entity.Lesson{}
	}

	end := min(offset+limit, len(c.lessons))
	page := make([]entity.Lesson, 0, end-offset)
	for i := offset; i < end; i++ {
		page = append(page, *c.lessons[i].Clone())
	}

	return page
}

// maxListedMissingIDs bounds Report.MissingIDs; MissingCount still counts every gap.
const maxListedMissingIDs = 100

// Report describes dataset shape for operators.
type Report struct {
	Total        int
	FirstID      int
	LastID       int
	MissingIDs   []int
	MissingCount uint64
	Empty        []int
}

// Inspect lists id gaps between the smallest and largest id and lessons without subsections.
func (c *Catalog) Inspect() Report {
	report := Report{Total: len(c.lessons)}
	if len(c.lessons) == 0 {
		return report
	}

	ids := make([]int, 0, len(c.lessons))
	for _, lesson := range c.lessons {
		ids = append(ids, lesson.ID)
		if len(lesson.Subsections) == 0 {
			report.Empty = append(report.Empty, lesson.ID)
		}
	}
	slices.Sort(ids)
	report.FirstID, report.LastID = ids[0], ids[len(ids)-1]

	// Ids are unique, so every adjacent pair is strictly increasing and the
	// unsigned difference cannot wrap even across the full int range.
	for i := 1; i < len(ids); i++ {
		prev, next := ids[i-1], ids[i]
		report.MissingCount += uint64(next) - uint64(prev) - 1
		for id := prev + 1; id < next && len(report.MissingIDs) < maxListedMissingIDs; id++ {
			report.MissingIDs = append(report.MissingIDs, id)
		}
	}

	return report
}
