package profile

import (
	"context"
	"testing"
	"time"

	"github.com/lifenav/lifenav/internal/mock"
	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

func newStore(t *testing.T) (*Store, *mock.Backend) {
	t.Helper()
	backend := mock.Create()
	s, err := New(context.Background(), store.Options{Backend: backend, Clock: clock.NewFixed(now)})
	require.NoError(t, err)
	return s, backend
}

func TestOnboarding(t *testing.T) {
	ctx := context.Background()
	s, backend := newStore(t)

	assert.Equal(t, NotOnboarded, s.State())
	assert.Nil(t, s.User())

	name := "nobody"
	got, err := s.UpdateUser(ctx, models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, got, "update without a user is a no-op")

	u, err := s.CompleteOnboarding(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, Onboarded, s.State())
	assert.Equal(t, now, u.CreatedAt)
	assert.Equal(t, "Ada", s.User().Name)

	t.Run("survives reopen", func(t *testing.T) {
		reopened, err := New(ctx, store.Options{Backend: backend})
		require.NoError(t, err)
		assert.True(t, reopened.IsOnboarded())
		assert.Equal(t, u.ID, reopened.User().ID)
	})

	avatar := "https://example.com/ada.png"
	got, err = s.UpdateUser(ctx, models.UserPatch{Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, avatar, got.Avatar)
	assert.Equal(t, "ada@example.com", got.Email)

	require.NoError(t, s.Logout(ctx))
	assert.Equal(t, NotOnboarded, s.State())
	assert.Nil(t, s.User())
}

func TestSetUserAndFlag(t *testing.T) {
	ctx := context.Background()
	s, backend := newStore(t)

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "user_1", Name: "Grace"}))
	assert.False(t, s.IsOnboarded())

	require.NoError(t, s.SetOnboarded(ctx, true))
	calls := backend.SetCalls()
	require.NoError(t, s.SetOnboarded(ctx, true))
	assert.Equal(t, calls, backend.SetCalls())

	require.NoError(t, s.SetUser(ctx, nil))
	assert.Nil(t, s.User())
	assert.True(t, s.IsOnboarded())
}

func TestCompleteOnboarding_writeFailure(t *testing.T) {
	ctx := context.Background()
	s, backend := newStore(t)
	backend.FailWrites(true)

	_, err := s.CompleteOnboarding(ctx, "Ada", "ada@example.com")
	require.ErrorIs(t, err, mock.ErrInjected)
	assert.Equal(t, NotOnboarded, s.State())
	assert.Nil(t, s.User())
}
