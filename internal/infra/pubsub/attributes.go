package pubsub

import (
	"strconv"

	"lingo/internal/domain/constants"
	"lingo/internal/domain/service"
)

// eventAttributes are copied onto every message so subscribers can filter without decoding data.
func eventAttributes(event *service.LessonCompletedEvent) map[string]string {
	attributes := map[string]string{
		"event_type":  constants.EventTypeLessonCompleted,
		"identity_id": event.IdentityID,
		"lesson_id":   strconv.Itoa(event.LessonID),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
