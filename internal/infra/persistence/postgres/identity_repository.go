package postgres

import (
	"context"
	"time"

	"lingo/internal/domain/entity"
	"lingo/internal/domain/repository"
	"lingo/internal/errors"
	"lingo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityRepository implements repository.IdentityRepository on two tables:
// identities (profile and chat JSONB) and lesson_completions (one row per completed lesson).
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository returns a repository bound to db, which may be a transaction.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create identity")
	}

	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	return repo.findOne(ctx, "email = ?", entity.NormalizeEmail(email))
}

func (repo *identityRepository) findOne(ctx context.Context, query string, arg any) (*entity.Identity, error) {
	var identityM model.IdentityModel

	err := repo.db.WithContext(ctx).
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where(query, arg).
		Take(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	return toIdentityDomain(&identityM), nil
}

// Update writes only the profile columns so concurrent lesson or chat writes are not clobbered.
func (repo *identityRepository) Update(ctx context.Context, identity *entity.Identity) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", identity.ID).
		Updates(map[string]any{
			"name":          identity.Name,
			"email":         entity.NormalizeEmail(identity.Email),
			"password_hash": identity.PasswordHash,
			"updated_at":    now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to update identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	identity.UpdatedAt = now

	return nil
}

// AddCompletedLesson relies on the (identity_id, lesson_id) unique constraint:
// ON CONFLICT DO NOTHING makes duplicate submissions a no-op even when they race.
// The identity row is locked first so the count read afterwards is serialized per identity.
func (repo *identityRepository) AddCompletedLesson(ctx context.Context, id uuid.UUID, lessonID int) (repository.LessonCompletion, error) {
	var out repository.LessonCompletion

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var identityM model.IdentityModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", id).
			Take(&identityM).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrIdentityNotFound
			}

			return errors.Wrap(err, "failed to lock identity")
		}

		completion := &model.LessonCompletionModel{
			IdentityID:  id,
			LessonID:    lessonID,
			CompletedAt: time.Now(),
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(completion)
		if err := result.Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrIdentityNotFound
			}

			return errors.Wrap(err, "failed to add completed lesson")
		}

		var count int64
		err = tx.Model(&model.LessonCompletionModel{}).
			Where("identity_id = ?", id).
			Count(&count).Error
		if err != nil {
			return errors.Wrap(err, "failed to count completed lessons")
		}

		out = repository.LessonCompletion{Added: result.RowsAffected == 1, Completed: int(count)}

		return nil
	})
	if err != nil {
		return repository.LessonCompletion{}, err
	}

	return out, nil
}

func (repo *identityRepository) CompletedLessons(ctx context.Context, id uuid.UUID) ([]int, error) {
	if err := repo.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	lessonIDs := []int{}
	err := repo.db.WithContext(ctx).
		Model(&model.LessonCompletionModel{}).
		Where("identity_id = ?", id).
		Order("id ASC").
		Pluck("lesson_id", &lessonIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completed lessons")
	}

	return lessonIDs, nil
}

func (repo *identityRepository) ReplaceChatHistory(ctx context.Context, id uuid.UUID, history []entity.ChatMessage) error {
	if history == nil {
		history = []entity.ChatMessage{}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"chat_history": datatypes.NewJSONSlice(history),
			"updated_at":   time.Now(),
		})
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to replace chat history")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func (repo *identityRepository) ChatHistory(ctx context.Context, id uuid.UUID) ([]entity.ChatMessage, error) {
	var identityM model.IdentityModel

	err := repo.db.WithContext(ctx).
		Select("id", "chat_history").
		Where("id = ?", id).
		Take(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to read chat history")
	}

	return chatFromModel(identityM.ChatHistory), nil
}

func (repo *identityRepository) ensureExists(ctx context.Context, id uuid.UUID) error {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "failed to look up identity")
	}
	if count == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	completed := make([]int, 0, len(data.Completions))
	for _, c := range data.Completions {
		completed = append(completed, c.LessonID)
	}

	return &entity.Identity{
		ID:               data.ID,
		Name:             data.Name,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		CompletedLessons: completed,
		ChatHistory:      chatFromModel(data.ChatHistory),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	history := data.ChatHistory
	if history == nil {
		history = []entity.ChatMessage{}
	}

	return &model.IdentityModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        entity.NormalizeEmail(data.Email),
		PasswordHash: data.PasswordHash,
		ChatHistory:  datatypes.NewJSONSlice(history),
	}
}

func chatFromModel(history datatypes.JSONSlice[entity.ChatMessage]) []entity.ChatMessage {
	if len(history) == 0 {
		return []entity.ChatMessage{}
	}

	return []entity.ChatMessage(history)
}
