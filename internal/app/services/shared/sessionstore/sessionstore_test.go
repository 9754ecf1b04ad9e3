package sessionstore

import (
	"context"
	"testing"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/core/survey"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return now })

	t.Run("Save And Find Copy", func(t *testing.T) {
		session := survey.NewSession("s-1", now)
		_, err := session.Answer(1, survey.TextAnswer("42"), now)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, session, time.Hour))

		found, err := store.Find(ctx, "s-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, session.Record, found.Record)

		_, err = found.Answer(1, survey.TextAnswer("43"), now)
		require.NoError(t, err)
		again, err := store.Find(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, 42.0, *again.Record.BasicProfile.Age, "changes to a found session should not leak into the store")
	})

	t.Run("Missing Session", func(t *testing.T) {
		found, err := store.Find(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, survey.NewSession("s-2", now), time.Minute))
		now = now.Add(time.Minute)
		found, err := store.Find(ctx, "s-2")
		require.NoError(t, err)
		assert.Nil(t, found, "expired session should be gone")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, survey.NewSession("s-3", now), 0))
		require.NoError(t, store.Delete(ctx, "s-3"))
		found, err := store.Find(ctx, "s-3")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestMemoryStoreExpiredReadKeepsNewerSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	var store contracts.IntakeSessionStore
	var saveDuringFind bool
	var saveErr error
	store = NewMemoryStore(func() time.Time {
		if saveDuringFind {
			// another request saves the session right after Find read the expired entry
			saveDuringFind = false
			saveErr = store.Save(ctx, survey.NewSession("s-1", now), time.Hour)
		}
		return now
	})

	require.NoError(t, store.Save(ctx, survey.NewSession("s-1", now), time.Minute))
	now = now.Add(time.Minute)

	saveDuringFind = true
	found, err := store.Find(ctx, "s-1")
	require.NoError(t, err)
	require.NoError(t, saveErr)
	assert.Nil(t, found, "the expired read reports a miss")

	found, err = store.Find(ctx, "s-1")
	require.NoError(t, err)
	assert.NotNil(t, found, "the session saved after the expired read should survive")
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Save Uses Prefixed Key", func(t *testing.T) {
		repo := new(mockRedisRepository)
		session := survey.NewSession("s-1", now)
		repo.On("Set", ctx, "intake_session:s-1", session, time.Hour).Return(nil).Once()

		require.NoError(t, NewRedisStore(repo).Save(ctx, session, time.Hour))
		repo.AssertExpectations(t)
	})

	t.Run("Find Decodes Session", func(t *testing.T) {
		repo := new(mockRedisRepository)
		session := survey.NewSession("s-1", now)
		_, err := session.Answer(2, survey.TextAnswer("150 lbs"), now)
		require.NoError(t, err)
		data, err := json.Marshal(session)
		require.NoError(t, err)
		repo.On("Get", ctx, "intake_session:s-1").Return(string(data), nil).Once()

		found, err := NewRedisStore(repo).Find(ctx, "s-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, session.Record, found.Record)
	})

	t.Run("Find Miss", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "intake_session:gone").Return("", nil).Once()

		found, err := NewRedisStore(repo).Find(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Find Corrupt Data", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "intake_session:bad").Return("{not json", nil).Once()

		_, err := NewRedisStore(repo).Find(ctx, "bad")
		assert.Error(t, err)
	})
}
