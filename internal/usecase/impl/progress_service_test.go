package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "lingo/internal/delivery/context"
	"lingo/internal/domain/entity"
	domainerrors "lingo/internal/domain/errors"
	"lingo/internal/domain/repository"
	"lingo/internal/domain/service"
	mockRepo "lingo/internal/mocks/repository"
	mockService "lingo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// progressServiceFixtures holds all test dependencies for progress service tests.
type progressServiceFixtures struct {
	service      *progressService
	identityRepo *mockRepo.MockIdentityRepository
	catalog      *mockService.MockLessonCatalog
	publisher    *mockService.MockEventPublisher
}

func createTestProgressService(t *testing.T) progressServiceFixtures {
	fx := progressServiceFixtures{
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		catalog:      mockService.NewMockLessonCatalog(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}

	srv := NewProgressService(ProgressServiceParams{
		IdentityRepo: fx.identityRepo,
		Catalog:      fx.catalog,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	}).(*progressService)
	srv.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	fx.service = srv

	return fx
}

func TestProgressService_MarkCompleted_FirstTimePublishes(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	identityID := uuid.New()

	fx.catalog.EXPECT().Position(3).Return(2, true)
	fx.catalog.EXPECT().TotalCount().Return(166)
	fx.identityRepo.EXPECT().AddCompletedLesson(ctx, identityID, 3).
		Return(repository.LessonCompletion{Added: true, Completed: 2}, nil)

	var published *service.LessonCompletedEvent
	fx.publisher.EXPECT().PublishLessonCompleted(ctx, mock.AnythingOfType("*service.LessonCompletedEvent")).
		Run(func(_ context.Context, event *service.LessonCompletedEvent) { published = event }).
		Return(nil)

	added, err := fx.service.MarkCompleted(ctx, identityID, 3)
	require.NoError(t, err)
	assert.True(t, added)

	require.NotNil(t, published)
	assert.Equal(t, "req-42", published.RequestID)
	assert.NotEmpty(t, published.EventID)
	assert.Equal(t, identityID.String(), published.IdentityID)
	assert.Equal(t, 3, published.LessonID)
	assert.Equal(t, 2, published.Completed)
	assert.Equal(t, 166, published.Total)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), published.CompletedAt)
}

func TestProgressService_MarkCompleted_RepeatIsSilent(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	identityID := uuid.New()

	fx.catalog.EXPECT().Position(3).Return(2, true)
	fx.identityRepo.EXPECT().AddCompletedLesson(ctx, identityID, 3).
		Return(repository.LessonCompletion{Completed: 4}, nil)

	added, err := fx.service.MarkCompleted(ctx, identityID, 3)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestProgressService_MarkCompleted_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	identityID := uuid.New()

	fx.catalog.EXPECT().Position(3).Return(2, true)
	fx.catalog.EXPECT().TotalCount().Return(166)
	fx.identityRepo.EXPECT().AddCompletedLesson(ctx, identityID, 3).
		Return(repository.LessonCompletion{Added: true, Completed: 1}, nil)
	fx.publisher.EXPECT().PublishLessonCompleted(ctx, mock.Anything).Return(errors.New("broker down"))

	added, err := fx.service.MarkCompleted(ctx, identityID, 3)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestProgressService_MarkCompleted_EventCountComesFromInsert(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	identityID := uuid.New()

	fx.catalog.EXPECT().Position(mock.Anything).Return(0, true)
	fx.catalog.EXPECT().TotalCount().Return(4)
	fx.identityRepo.EXPECT().AddCompletedLesson(ctx, identityID, 1).
		Return(repository.LessonCompletion{Added: true, Completed: 1}, nil)
	fx.identityRepo.EXPECT().AddCompletedLesson(ctx, identityID, 2).
		Return(repository.LessonCompletion{Added: true, Completed: 2}, nil)

	counts := map[int]int{}
	fx.publisher.EXPECT().PublishLessonCompleted(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.LessonCompletedEvent) { counts[event.LessonID] = event.Completed }).
		Return(nil).Twice()

	for _, lessonID := range []int{1, 2} {
		_, err := fx.service.MarkCompleted(ctx, identityID, lessonID)
		require.NoError(t, err)
	}

	assert.Equal(t, map[int]int{1: 1, 2: 2}, counts)
	fx.identityRepo.AssertNotCalled(t, "CompletedLessons", mock.Anything, mock.Anything)
}

func TestProgressService_MarkCompleted_Errors(t *testing.T) {
	t.Run("unknown lesson", func(t *testing.T) {
		fx := createTestProgressService(t)
		fx.catalog.EXPECT().Position(999).Return(0, false)

		_, err := fx.service.MarkCompleted(context.Background(), uuid.New(), 999)
		assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)
	})

	t.Run("unknown identity", func(t *testing.T) {
		fx := createTestProgressService(t)
		ctx := context.Background()
		identityID := uuid.New()

		fx.catalog.EXPECT().Position(3).Return(2, true)
		fx.identityRepo.EXPECT().AddCompletedLesson(ctx, identityID, 3).
			Return(repository.LessonCompletion{}, repository.ErrIdentityNotFound)

		_, err := fx.service.MarkCompleted(ctx, identityID, 3)
		assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
	})
}

func TestProgressService_CompletedLessons(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	identityID := uuid.New()

	fx.identityRepo.EXPECT().CompletedLessons(ctx, identityID).Return(nil, nil).Once()

	lessons, err := fx.service.CompletedLessons(ctx, identityID)
	require.NoError(t, err)
	assert.NotNil(t, lessons)
	assert.Empty(t, lessons)
}

func TestProgressService_ChatHistory(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	identityID := uuid.New()
	history := []entity.ChatMessage{{Role: "user", Text: "Hallo"}}

	fx.identityRepo.EXPECT().ReplaceChatHistory(ctx, identityID, history).Return(nil)
	require.NoError(t, fx.service.ReplaceChatHistory(ctx, identityID, history))

	fx.identityRepo.EXPECT().ChatHistory(ctx, identityID).Return(history, nil)
	got, err := fx.service.ChatHistory(ctx, identityID)
	require.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestProgressService_ReplaceChatHistory_StoreFailure(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	identityID := uuid.New()

	fx.identityRepo.EXPECT().ReplaceChatHistory(ctx, identityID, mock.Anything).Return(errors.New("disk full"))

	err := fx.service.ReplaceChatHistory(ctx, identityID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PERSISTENCE_FAILURE", appErr.ErrorCode())
}

func TestProgressService_Progress(t *testing.T) {
	tests := []struct {
		name      string
		completed []int
		total     int
		want      float64
	}{
		{name: "one of 166", completed: []int{3}, total: 166, want: 100.0 / 166.0},
		{name: "none", completed: []int{}, total: 166, want: 0},
		{name: "all", completed: []int{1, 2}, total: 2, want: 100},
		{name: "empty catalog", completed: []int{}, total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProgressService(t)
			ctx := context.Background()
			identityID := uuid.New()

			fx.identityRepo.EXPECT().CompletedLessons(ctx, identityID).Return(tt.completed, nil)
			fx.catalog.EXPECT().TotalCount().Return(tt.total)

			out, err := fx.service.Progress(ctx, identityID)
			require.NoError(t, err)
			assert.Equal(t, len(tt.completed), out.Completed)
			assert.Equal(t, tt.total, out.Total)
			assert.InDelta(t, tt.want, out.Percentage, 1e-9)
		})
	}
}

func TestProgressService_Progress_UnknownIdentity(t *testing.T) {
	fx := createTestProgressService(t)
	ctx := context.Background()
	identityID := uuid.New()

	fx.identityRepo.EXPECT().CompletedLessons(ctx, identityID).Return(nil, repository.ErrIdentityNotFound)

	_, err := fx.service.Progress(ctx, identityID)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
}
