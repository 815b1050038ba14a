// Package model holds the GORM persistence models for the postgres driver.
package model

import (
	"time"

	"lingo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdentityModel mirrors the 'identities' table. The id is generated by the service.
type IdentityModel struct {
	ID           uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	Name         string                                  `gorm:"type:varchar(100);not null"`
	Email        string                                  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string                                  `gorm:"type:varchar(255);not null"`
	ChatHistory  datatypes.JSONSlice[entity.ChatMessage] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Completions []LessonCompletionModel `gorm:"foreignKey:IdentityID"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// LessonCompletionModel mirrors the 'lesson_completions' table.
// The serial id keeps insertion order; (identity_id, lesson_id) is unique.
type LessonCompletionModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	IdentityID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_lesson_completions_identity_lesson"`
	LessonID    int       `gorm:"not null;uniqueIndex:ux_lesson_completions_identity_lesson"`
	CompletedAt time.Time `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (LessonCompletionModel) TableName() string {
	return "lesson_completions"
}
