package lifenav_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/lifenav/lifenav"
	"github.com/lifenav/lifenav/internal/codec"
	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/kv"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/profile"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}

func open(t *testing.T, cfg lifenav.Config) *lifenav.Navigator {
	t.Helper()
	n, err := lifenav.Open(context.Background(), cfg)
	require.NoError(t, err)
	return n
}

func TestOnboardingGate(t *testing.T) {
	ctx := context.Background()
	n := open(t, lifenav.Config{Clock: clock.NewFixed(at(2024, time.January, 1))})

	assert.Equal(t, profile.NotOnboarded, n.State())
	assert.ErrorIs(t, n.RequireOnboarded(), lifenav.ErrNotOnboarded)

	_, err := n.Profile.CompleteOnboarding(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.Onboarded, n.State())
	assert.NoError(t, n.RequireOnboarded())

	goal, err := n.Goals.AddGoal(ctx, models.GoalInput{Title: "Run a marathon", Category: models.GoalHealth})
	require.NoError(t, err)

	require.NoError(t, n.Profile.Logout(ctx))
	assert.ErrorIs(t, n.RequireOnboarded(), lifenav.ErrNotOnboarded)
	assert.NotNil(t, n.Goals.Goal(goal.ID), "logout keeps the other stores")
}

func TestOpen_reloadsEveryStore(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{codec.NameJSON, codec.NameCBOR} {
		t.Run(name, func(t *testing.T) {
			c, err := codec.ByName(name)
			require.NoError(t, err)
			backend := kv.NewMemory()
			cfg := lifenav.Config{Backend: backend, Codec: c, Clock: clock.NewFixed(at(2024, time.January, 1))}
			n := open(t, cfg)

			_, err = n.Profile.CompleteOnboarding(ctx, "Ada", "ada@example.com")
			require.NoError(t, err)
			goal, err := n.Goals.AddGoal(ctx, models.GoalInput{Title: "Learn Go", Category: models.GoalLearning})
			require.NoError(t, err)
			_, err = n.Tasks.AddTask(ctx, models.TaskInput{Title: "Read the tour", Category: models.TaskLearning, GoalID: goal.ID})
			require.NoError(t, err)
			_, err = n.Finance.AddTransaction(ctx, models.TransactionInput{
				Amount:   decimal.NewFromInt(1000),
				Type:     models.Income,
				Category: "Salary",
				Date:     models.NewDate(2024, time.January, 1),
			})
			require.NoError(t, err)

			reopened := open(t, cfg)
			assert.True(t, reopened.Profile.IsOnboarded())
			assert.Equal(t, "Learn Go", reopened.Goals.Goal(goal.ID).Title)
			assert.Len(t, reopened.Tasks.TasksByGoal(goal.ID), 1)
			assert.True(t, decimal.NewFromInt(1000).Equal(reopened.Finance.TotalIncome(nil)))

			keys, err := backend.Keys(ctx)
			require.NoError(t, err)
			assert.Contains(t, keys, store.DefaultKeyPrefix+store.KeyFinance)
		})
	}
}

func TestOpen_materializesRecurring(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	clk := clock.NewFixed(at(2024, time.January, 1))

	n := open(t, lifenav.Config{Backend: backend, Clock: clk})
	_, err := n.Finance.AddRecurring(ctx, models.RecurringInput{
		Amount:    decimal.NewFromInt(50),
		Category:  "Rent",
		Type:      models.Expense,
		Frequency: models.Monthly,
		StartDate: models.NewDate(2024, time.January, 1),
	})
	require.NoError(t, err)
	assert.Empty(t, n.Finance.Transactions())

	clk.Set(at(2024, time.April, 1))

	t.Run("skipped on request", func(t *testing.T) {
		skipped := open(t, lifenav.Config{Backend: backend, Clock: clk, SkipRecurring: true})
		assert.Empty(t, skipped.Finance.Transactions())
	})

	t.Run("skipped while read-only", func(t *testing.T) {
		ro := open(t, lifenav.Config{Backend: backend, Clock: clk, ReadOnly: true})
		assert.Empty(t, ro.Finance.Transactions())
	})

	reopened := open(t, lifenav.Config{Backend: backend, Clock: clk})
	assert.Len(t, reopened.Finance.Transactions(), 3)

	again := open(t, lifenav.Config{Backend: backend, Clock: clk})
	assert.Len(t, again.Finance.Transactions(), 3)
}

func TestReadOnly(t *testing.T) {
	ctx := context.Background()
	n := open(t, lifenav.Config{})

	n.SetReadOnly(true)
	assert.True(t, n.IsReadOnly())
	_, err := n.Goals.AddGoal(ctx, models.GoalInput{Title: "Blocked"})
	require.ErrorIs(t, err, store.ErrReadOnly)
	assert.Empty(t, n.Goals.Goals())

	n.SetReadOnly(false)
	_, err = n.Goals.AddGoal(ctx, models.GoalInput{Title: "Allowed"})
	require.NoError(t, err)
	assert.Len(t, n.Goals.Goals(), 1)
}

func TestStrictReferences(t *testing.T) {
	ctx := context.Background()
	n := open(t, lifenav.Config{References: store.Strict})

	_, err := n.Tasks.AddTask(ctx, models.TaskInput{Title: "Orphan", GoalID: "goal_missing"})
	require.ErrorIs(t, err, store.ErrDanglingReference)

	goal, err := n.Goals.AddGoal(ctx, models.GoalInput{Title: "Parent"})
	require.NoError(t, err)
	_, err = n.Tasks.AddTask(ctx, models.TaskInput{Title: "Child", GoalID: goal.ID})
	require.NoError(t, err)
}

func TestOpen_corruptDocument(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	require.NoError(t, backend.Set(ctx, store.DefaultKeyPrefix+store.KeyMood, []byte("{not json")))

	_, err := lifenav.Open(ctx, lifenav.Config{Backend: backend})
	require.ErrorIs(t, err, store.ErrCorruptDocument)

	var openErr *lifenav.OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, store.KeyMood, openErr.Store)
}

func TestWriteExport(t *testing.T) {
	ctx := context.Background()
	n := open(t, lifenav.Config{Clock: clock.NewFixed(at(2024, time.March, 3))})

	_, err := n.Profile.CompleteOnboarding(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)
	quote, err := n.Motivation.AddContent(ctx, models.ContentInput{Title: "Keep going", Type: models.ContentQuote})
	require.NoError(t, err)
	_, err = n.Motivation.ToggleFavorite(ctx, quote.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, n.WriteExport(&buf))

	var got lifenav.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Ada", got.User.Name)
	assert.True(t, got.Onboarded)
	assert.Equal(t, []string{quote.ID}, got.Favorites)
	assert.Empty(t, got.Goals)
	assert.True(t, got.ExportedAt.Equal(at(2024, time.March, 3)))
}
