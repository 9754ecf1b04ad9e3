package intakeSessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/core/survey"
	"intake-service/internal/app/services/shared/locker"
	"intake-service/internal/app/services/shared/sessionstore"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Save(ctx context.Context, session *survey.Session, exp time.Duration) error {
	return m.Called(ctx, session, exp).Error(0)
}

func (m *mockSessionStore) Find(ctx context.Context, sessionID string) (*survey.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*survey.Session)
	return session, args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishDocument(ctx context.Context, sessionID string, document *models.SurveyData) error {
	return m.Called(ctx, sessionID, document).Error(0)
}

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{SessionExpiredTimeInMinutes: 30},
		JWT: config.AppJWT{Secret: "test-secret"},
	}
}

func newTestUsecase(store *mockSessionStore, publisher *mockPublisher) *intakeSessionUsecase {
	uc := NewIntakeSessionUsecase(
		store,
		locker.NewMemoryLockService(nil),
		publisher,
		testConfig(),
		zap.NewNop(),
	).(*intakeSessionUsecase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "error should be a CustomError: %v", err)
	return customErr.StatusCode
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	store := new(mockSessionStore)
	uc := newTestUsecase(store, new(mockPublisher))

	store.On("Save", ctx, mock.AnythingOfType("*survey.Session"), 30*time.Minute).Return(nil).Once()

	created, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, survey.IntroQuestionID, created.CurrentQuestion.ID)
	assert.Equal(t, constvars.SurveyTotalQuestions, created.Progress.TotalQuestions)
	assert.Equal(t, 0, created.Progress.Answered)

	sessionID, err := utils.ParseSessionJWT(created.SessionToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, sessionID, "token should be bound to the new session")
	store.AssertExpectations(t)
}

func TestAnswerQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves Normalized Answer", func(t *testing.T) {
		store := new(mockSessionStore)
		uc := newTestUsecase(store, new(mockPublisher))
		store.On("Find", ctx, "s-1").Return(survey.NewSession("s-1", fixedNow), nil).Once()
		store.On("Save", ctx, mock.MatchedBy(func(s *survey.Session) bool {
			return s.Record.BasicProfile.Age != nil && *s.Record.BasicProfile.Age == 42
		}), 30*time.Minute).Return(nil).Once()

		text := "42"
		response, err := uc.AnswerQuestion(ctx, "s-1", 1, &requests.AnswerQuestion{Text: &text})
		require.NoError(t, err)
		assert.Equal(t, 1, response.Progress.Answered)
		store.AssertExpectations(t)
	})

	t.Run("Rejected Answer Not Saved", func(t *testing.T) {
		store := new(mockSessionStore)
		uc := newTestUsecase(store, new(mockPublisher))
		store.On("Find", ctx, "s-1").Return(survey.NewSession("s-1", fixedNow), nil).Once()

		text := "thirty"
		_, err := uc.AnswerQuestion(ctx, "s-1", 1, &requests.AnswerQuestion{Text: &text})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCode(t, err))
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Option", func(t *testing.T) {
		store := new(mockSessionStore)
		uc := newTestUsecase(store, new(mockPublisher))
		store.On("Find", ctx, "s-1").Return(survey.NewSession("s-1", fixedNow), nil).Once()

		_, err := uc.AnswerQuestion(ctx, "s-1", 12, &requests.AnswerQuestion{Selected: []string{"Garmin"}})
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCode(t, err))
	})

	t.Run("Unknown Question", func(t *testing.T) {
		store := new(mockSessionStore)
		uc := newTestUsecase(store, new(mockPublisher))
		store.On("Find", ctx, "s-1").Return(survey.NewSession("s-1", fixedNow), nil).Once()

		text := "x"
		_, err := uc.AnswerQuestion(ctx, "s-1", 42, &requests.AnswerQuestion{Text: &text})
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})

	t.Run("Missing Session", func(t *testing.T) {
		store := new(mockSessionStore)
		uc := newTestUsecase(store, new(mockPublisher))
		store.On("Find", ctx, "gone").Return(nil, nil).Once()

		text := "42"
		_, err := uc.AnswerQuestion(ctx, "gone", 1, &requests.AnswerQuestion{Text: &text})
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})

	t.Run("Completion Command Publishes", func(t *testing.T) {
		store := new(mockSessionStore)
		publisher := new(mockPublisher)
		uc := newTestUsecase(store, publisher)
		store.On("Find", ctx, "s-1").Return(survey.NewSession("s-1", fixedNow), nil).Once()
		store.On("Save", ctx, mock.Anything, 30*time.Minute).Return(nil).Once()
		publisher.On("PublishDocument", ctx, "s-1", mock.AnythingOfType("*models.SurveyData")).Return(nil).Once()

		text := "done"
		response, err := uc.AnswerQuestion(ctx, "s-1", 4, &requests.AnswerQuestion{Text: &text})
		require.NoError(t, err)
		assert.True(t, response.Completed)
		publisher.AssertExpectations(t)
	})
}

func TestUpdateOtherNote(t *testing.T) {
	ctx := context.Background()
	store := new(mockSessionStore)
	uc := newTestUsecase(store, new(mockPublisher))

	session := survey.NewSession("s-1", fixedNow)
	_, err := session.Answer(5, survey.SelectionAnswer("Other"), fixedNow)
	require.NoError(t, err)
	store.On("Find", ctx, "s-1").Return(session, nil)
	store.On("Save", ctx, mock.Anything, mock.Anything).Return(nil)

	response, err := uc.UpdateOtherNote(ctx, "s-1", 5, &requests.UpdateOtherNote{Note: "Basque"})
	require.NoError(t, err)
	assert.Equal(t, "Basque", response.OtherNotes["basic_profile.ancestries"])
	require.Len(t, response.Record.BasicProfile.Ancestries, 1)
	assert.Equal(t, "Basque", *response.Record.BasicProfile.Ancestries[0].OtherNote)

	_, err = uc.UpdateOtherNote(ctx, "s-1", 1, &requests.UpdateOtherNote{Note: "x"})
	assert.Equal(t, constvars.StatusUnprocessableEntity, statusCode(t, err))
}

func TestFinish(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes Once", func(t *testing.T) {
		store := new(mockSessionStore)
		publisher := new(mockPublisher)
		uc := newTestUsecase(store, publisher)

		session := survey.NewSession("s-1", fixedNow)
		store.On("Find", ctx, "s-1").Return(session, nil)
		store.On("Save", ctx, session, 30*time.Minute).Return(nil).Once()
		publisher.On("PublishDocument", ctx, "s-1", mock.MatchedBy(func(doc *models.SurveyData) bool {
			return doc.Meta.CompletedAt != nil && *doc.Meta.CompletedAt == "2024-05-01T09:00:00.000Z"
		})).Return(nil).Once()

		response, err := uc.Finish(ctx, "s-1")
		require.NoError(t, err)
		assert.True(t, response.Completed)

		_, err = uc.Finish(ctx, "s-1")
		assert.Equal(t, constvars.StatusConflict, statusCode(t, err), "second finish should conflict")
		publisher.AssertNumberOfCalls(t, "PublishDocument", 1)
	})

	t.Run("Publish Failure Does Not Fail Finish", func(t *testing.T) {
		store := new(mockSessionStore)
		publisher := new(mockPublisher)
		uc := newTestUsecase(store, publisher)

		store.On("Find", ctx, "s-1").Return(survey.NewSession("s-1", fixedNow), nil).Once()
		store.On("Save", ctx, mock.Anything, mock.Anything).Return(nil).Once()
		publisher.On("PublishDocument", ctx, "s-1", mock.Anything).Return(errors.New("broker down")).Once()

		response, err := uc.Finish(ctx, "s-1")
		require.NoError(t, err)
		assert.True(t, response.Completed)
	})

	t.Run("Save Failure Skips Publish", func(t *testing.T) {
		store := new(mockSessionStore)
		publisher := new(mockPublisher)
		uc := newTestUsecase(store, publisher)

		store.On("Find", ctx, "s-1").Return(survey.NewSession("s-1", fixedNow), nil).Once()
		store.On("Save", ctx, mock.Anything, mock.Anything).Return(exceptions.ErrRedisSet(errors.New("timeout"))).Once()

		_, err := uc.Finish(ctx, "s-1")
		assert.Equal(t, constvars.StatusInternalServerError, statusCode(t, err))
		publisher.AssertNotCalled(t, "PublishDocument", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPublishDocumentLogsFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("Document Not Built", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		publisher := new(mockPublisher)
		uc := newTestUsecase(new(mockSessionStore), publisher)
		uc.Log = zap.New(core)

		uc.publishDocument(ctx, survey.NewSession("s-1", fixedNow))

		entries := logs.FilterMessage("intakeSessionUsecase.publishDocument error building document").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "s-1", entries[0].ContextMap()[constvars.LoggingSessionIDKey])
		publisher.AssertNotCalled(t, "PublishDocument", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Hand Off Failed", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		publisher := new(mockPublisher)
		publisher.On("PublishDocument", ctx, "s-1", mock.Anything).Return(errors.New("broker down")).Once()
		uc := newTestUsecase(new(mockSessionStore), publisher)
		uc.Log = zap.New(core)

		session := survey.NewSession("s-1", fixedNow)
		require.NoError(t, session.Finish(fixedNow))
		uc.publishDocument(ctx, session)

		assert.Equal(t, 1, logs.FilterMessage("intakeSessionUsecase.publishDocument error handing off document").Len())
		publisher.AssertExpectations(t)
	})
}

func TestNavigationAndDocument(t *testing.T) {
	ctx := context.Background()
	publisher := new(mockPublisher)
	publisher.On("PublishDocument", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	store := sessionstore.NewMemoryStore(func() time.Time { return fixedNow })
	uc := NewIntakeSessionUsecase(store, locker.NewMemoryLockService(nil), publisher, testConfig(), zap.NewNop()).(*intakeSessionUsecase)
	uc.now = func() time.Time { return fixedNow }

	created, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	id := created.SessionID

	_, err = uc.GetDocument(ctx, id)
	assert.Equal(t, constvars.StatusConflict, statusCode(t, err), "document should wait for completion")

	for i := 0; i < survey.LastQuestionID; i++ {
		response, err := uc.Next(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i+1, response.CurrentQuestion.ID)
	}

	response, err := uc.Previous(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, survey.LastQuestionID-1, response.CurrentQuestion.ID)

	_, err = uc.Next(ctx, id)
	require.NoError(t, err)
	response, err = uc.Next(ctx, id)
	require.NoError(t, err)
	assert.True(t, response.Completed, "next past the last question should finish")

	document, err := uc.GetDocument(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, document.SessionID)
	assert.Equal(t, "2024-05-01T09:00:00.000Z", *document.Document.Meta.CompletedAt)

	response, err = uc.Restart(ctx, id)
	require.NoError(t, err)
	assert.False(t, response.Completed)
	assert.Equal(t, survey.IntroQuestionID, response.CurrentQuestion.ID)

	require.NoError(t, uc.DeleteSession(ctx, id))
	_, err = uc.GetSession(ctx, id)
	assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	publisher.AssertNumberOfCalls(t, "PublishDocument", 1)
}

func TestSessionBusy(t *testing.T) {
	ctx := context.Background()
	store := new(mockSessionStore)
	uc := newTestUsecase(store, new(mockPublisher))

	acquired, _, err := uc.LockerService.TryLock(ctx, constvars.RedisIntakeSessionLockKeyPrefix+"s-1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = uc.Next(ctx, "s-1")
	assert.Equal(t, constvars.StatusConflict, statusCode(t, err))
	store.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestListQuestions(t *testing.T) {
	uc := newTestUsecase(new(mockSessionStore), new(mockPublisher))
	questions := uc.ListQuestions(context.Background())
	require.Len(t, questions, 13)
	assert.Equal(t, "intro", questions[0].Type)
	assert.Equal(t, "miscellaneous.wearable_devices", questions[12].Key)
	assert.Len(t, questions[12].Options, 5)
}
