package service

import (
	"context"
	"time"
)

// LessonCompletedEvent is emitted the first time an identity completes a lesson.
type LessonCompletedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	IdentityID  string    `json:"identity_id"`
	LessonID    int       `json:"lesson_id"`
	Completed   int       `json:"completed"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLessonCompleted publishes a lesson completion for downstream consumers
	PublishLessonCompleted(ctx context.Context, event *LessonCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
