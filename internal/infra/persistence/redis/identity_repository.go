package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"lingo/internal/domain/entity"
	"lingo/internal/domain/repository"
	"lingo/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "lingo:"

// addLessonScript makes the membership test, the ordered append and the count one atomic step.
// Returns {-1, 0} when the identity does not exist, otherwise {added, set size}.
var addLessonScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return {-1, 0}
end
local added = redis.call('SADD', KEYS[2], ARGV[1])
if added == 1 then
	redis.call('RPUSH', KEYS[3], ARGV[1])
end
return {added, redis.call('SCARD', KEYS[2])}
`)

// profile is the JSON document stored under the identity key.
type profile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type identityRepository struct {
	client goredis.UniversalClient
}

// NewIdentityRepository returns a repository backed by client.
func NewIdentityRepository(client goredis.UniversalClient) repository.IdentityRepository {
	return &identityRepository{client: client}
}

func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	email := entity.NormalizeEmail(identity.Email)
	emailKey := emailKey(email)

	claimed, err := repo.client.SetNX(ctx, emailKey, identity.ID.String(), 0).Result()
	if err != nil {
		return errors.Wrap(err, "failed to reserve email")
	}
	if !claimed {
		return repository.ErrEmailTaken
	}

	now := time.Now().UTC()
	doc, err := json.Marshal(&profile{
		ID:           identity.ID,
		Name:         identity.Name,
		Email:        email,
		PasswordHash: identity.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode identity")
	}

	chat, err := encodeChat(identity.ChatHistory)
	if err != nil {
		return err
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, profileKey(identity.ID), doc, 0)
		pipe.Set(ctx, chatKey(identity.ID), chat, 0)
		for _, lessonID := range identity.CompletedLessons {
			pipe.SAdd(ctx, lessonSetKey(identity.ID), lessonID)
			pipe.RPush(ctx, lessonListKey(identity.ID), lessonID)
		}

		return nil
	})
	if err != nil {
		// Release the reservation so the email can be registered again.
		_ = repo.client.Del(ctx, emailKey).Err()

		return errors.Wrap(err, "failed to create identity")
	}

	identity.Email = email
	identity.CreatedAt = now
	identity.UpdatedAt = now

	return nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	pipe := repo.client.Pipeline()
	profileCmd := pipe.Get(ctx, profileKey(id))
	lessonsCmd := pipe.LRange(ctx, lessonListKey(id), 0, -1)
	chatCmd := pipe.Get(ctx, chatKey(id))

	// Exec reports the first failed command; redis.Nil on a missing key is handled per command below.
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		return nil, errors.Wrap(err, "failed to load identity")
	}

	doc, err := decodeProfile(profileCmd)
	if err != nil {
		return nil, err
	}

	lessons, err := parseLessonIDs(lessonsCmd.Val())
	if err != nil {
		return nil, err
	}

	chat, err := decodeChat(chatCmd)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		ID:               doc.ID,
		Name:             doc.Name,
		Email:            doc.Email,
		PasswordHash:     doc.PasswordHash,
		CompletedLessons: lessons,
		ChatHistory:      chat,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}, nil
}

func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	raw, err := repo.client.Get(ctx, emailKey(entity.NormalizeEmail(email))).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt email index entry for %q", email)
	}

	return repo.FindByID(ctx, id)
}

// Update watches the profile and the target email key, so a concurrent
// registration of the same email aborts the transaction instead of double-booking it.
// The two keys live in different hash slots, so on Redis Cluster the WATCH is rejected
// with CROSSSLOT; this driver targets a single node or a replicated primary.
func (repo *identityRepository) Update(ctx context.Context, identity *entity.Identity) error {
	key := profileKey(identity.ID)
	newEmail := entity.NormalizeEmail(identity.Email)
	newEmailKey := emailKey(newEmail)
	now := time.Now().UTC()

	err := repo.client.Watch(ctx, func(tx *goredis.Tx) error {
		stored, err := decodeProfile(tx.Get(ctx, key))
		if err != nil {
			return err
		}

		if newEmail != stored.Email {
			owner, err := tx.Get(ctx, newEmailKey).Result()
			if err != nil && !errors.Is(err, goredis.Nil) {
				return errors.Wrap(err, "failed to check email")
			}
			if err == nil && owner != identity.ID.String() {
				return repository.ErrEmailTaken
			}
		}

		oldEmailKey := emailKey(stored.Email)
		stored.Name = identity.Name
		stored.Email = newEmail
		stored.PasswordHash = identity.PasswordHash
		stored.UpdatedAt = now

		doc, err := json.Marshal(stored)
		if err != nil {
			return errors.Wrap(err, "failed to encode identity")
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, doc, 0)
			if oldEmailKey != newEmailKey {
				pipe.Del(ctx, oldEmailKey)
				pipe.Set(ctx, newEmailKey, identity.ID.String(), 0)
			}

			return nil
		})

		return err
	}, key, newEmailKey)
	if err != nil {
		if errors.Is(err, goredis.TxFailedErr) {
			return errors.Wrap(err, "identity changed concurrently")
		}
		if errors.Is(err, repository.ErrIdentityNotFound) || errors.Is(err, repository.ErrEmailTaken) {
			return err
		}

		return errors.Wrap(err, "failed to update identity")
	}

	identity.Email = newEmail
	identity.UpdatedAt = now

	return nil
}

func (repo *identityRepository) AddCompletedLesson(ctx context.Context, id uuid.UUID, lessonID int) (repository.LessonCompletion, error) {
	keys := []string{profileKey(id), lessonSetKey(id), lessonListKey(id)}

	result, err := addLessonScript.Run(ctx, repo.client, keys, lessonID).Int64Slice()
	if err != nil {
		return repository.LessonCompletion{}, errors.Wrap(err, "failed to add completed lesson")
	}
	if len(result) != 2 {
		return repository.LessonCompletion{}, errors.Errorf("unexpected add lesson reply %v", result)
	}
	if result[0] == -1 {
		return repository.LessonCompletion{}, repository.ErrIdentityNotFound
	}

	return repository.LessonCompletion{Added: result[0] == 1, Completed: int(result[1])}, nil
}

func (repo *identityRepository) CompletedLessons(ctx context.Context, id uuid.UUID) ([]int, error) {
	pipe := repo.client.Pipeline()
	existsCmd := pipe.Exists(ctx, profileKey(id))
	lessonsCmd := pipe.LRange(ctx, lessonListKey(id), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to list completed lessons")
	}
	if existsCmd.Val() == 0 {
		return nil, repository.ErrIdentityNotFound
	}

	return parseLessonIDs(lessonsCmd.Val())
}

func (repo *identityRepository) ReplaceChatHistory(ctx context.Context, id uuid.UUID, history []entity.ChatMessage) error {
	chat, err := encodeChat(history)
	if err != nil {
		return err
	}

	key := profileKey(id)
	err = repo.client.Watch(ctx, func(tx *goredis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			return repository.ErrIdentityNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, chatKey(id), chat, 0)

			return nil
		})

		return err
	}, key)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to replace chat history")
	}

	return nil
}

func (repo *identityRepository) ChatHistory(ctx context.Context, id uuid.UUID) ([]entity.ChatMessage, error) {
	pipe := repo.client.Pipeline()
	existsCmd := pipe.Exists(ctx, profileKey(id))
	chatCmd := pipe.Get(ctx, chatKey(id))

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		return nil, errors.Wrap(err, "failed to read chat history")
	}
	if existsCmd.Val() == 0 {
		return nil, repository.ErrIdentityNotFound
	}

	return decodeChat(chatCmd)
}

func profileKey(id uuid.UUID) string {
	return keyPrefix + "identity:{" + id.String() + "}"
}

func lessonSetKey(id uuid.UUID) string {
	return profileKey(id) + ":lessons:set"
}

func lessonListKey(id uuid.UUID) string {
	return profileKey(id) + ":lessons"
}

func chatKey(id uuid.UUID) string {
	return profileKey(id) + ":chat"
}

func emailKey(email string) string {
	return keyPrefix + "email:" + email
}

func decodeProfile(cmd *goredis.StringCmd) (*profile, error) {
	raw, err := cmd.Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read identity")
	}

	var doc profile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity")
	}

	return &doc, nil
}

func encodeChat(history []entity.ChatMessage) ([]byte, error) {
	if history == nil {
		history = []entity.ChatMessage{}
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode chat history")
	}

	return raw, nil
}

func decodeChat(cmd *goredis.StringCmd) ([]entity.ChatMessage, error) {
	raw, err := cmd.Bytes()
	if errors.Is(err, goredis.Nil) {
		return []entity.ChatMessage{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read chat history")
	}

	history := []entity.ChatMessage{}
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, errors.Wrap(err, "failed to decode chat history")
	}

	return history, nil
}

func parseLessonIDs(values []string) ([]int, error) {
	lessons := make([]int, 0, len(values))
	for _, v := range values {
		lessonID, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt lesson id %q", v)
		}
		lessons = append(lessons, lessonID)
	}

	return lessons, nil
}
