// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is a registered learner. It owns its completed-lesson set and its chat transcript.
type Identity struct {
	ID               uuid.UUID     // Assigned once at creation, never changes.
	Name             string        // Display name.
	Email            string        // Normalized login email, unique across identities.
	PasswordHash     string        // bcrypt hash of the password. Never leaves the service.
	CompletedLessons []int         // Lesson ids in the order they were first completed.
	ChatHistory      []ChatMessage // Most recent transcript written by the client.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ChatMessage is one turn of the tutor conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// NormalizeEmail trims and lower-cases an email so that uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasCompleted reports whether lessonID is already in the completed set.
func (i *Identity) HasCompleted(lessonID int) bool {
	return slices.Contains(i.CompletedLessons, lessonID)
}

// Clone returns a deep copy so that stores can hand out values without sharing slices.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}

	cloned := *i
	cloned.CompletedLessons = slices.Clone(i.CompletedLessons)
	cloned.ChatHistory = slices.Clone(i.ChatHistory)

	return &cloned
}
