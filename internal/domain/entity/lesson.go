package entity

import "slices"

// Lesson is one immutable item of the ordered lesson dataset.
// JSON names follow the dataset file format.
type Lesson struct {
	ID          int          `json:"id"`
	Title       string       `json:"unit_name"`
	Level       string       `json:"level,omitempty"`
	Subsections []Subsection `json:"learning_content"`
}

// Subsection is a titled block of lesson markup.
type Subsection struct {
	Title string `json:"title"`
	HTML  string `json:"content"`
}

// LessonSummary is the index view of a lesson, without its body.
type LessonSummary struct {
	ID    int    `json:"id"`
	Title string `json:"unit_name"`
	Level string `json:"level,omitempty"`
}

// Summary returns the index view of the lesson.
func (l *Lesson) Summary() LessonSummary {
	return LessonSummary{
		ID:    l.ID,
		Title: l.Title,
		Level: l.Level,
	}
}

// Clone returns a copy that does not share the subsection slice.
func (l *Lesson) Clone() *Lesson {
	if l == nil {
		return nil
	}

	cloned := *l
	cloned.Subsections = slices.Clone(l.Subsections)

	return &cloned
}
