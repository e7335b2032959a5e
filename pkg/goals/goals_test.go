package goals

import (
	"context"
	"testing"

	"github.com/lifenav/lifenav/internal/mock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *mock.Backend) {
	t.Helper()
	backend := mock.Create()
	s, err := New(context.Background(), store.Options{Backend: backend})
	require.NoError(t, err)
	return s, backend
}

func addGoal(t *testing.T, s *Store, title string, c models.GoalCategory) *models.Goal {
	t.Helper()
	g, err := s.AddGoal(context.Background(), models.GoalInput{
		Title:     title,
		Category:  c,
		StartDate: models.MustParseDate("2024-01-01"),
		EndDate:   models.MustParseDate("2024-12-31"),
		Priority:  models.PriorityMedium,
	})
	require.NoError(t, err)
	return g
}

func TestAddGoal(t *testing.T) {
	s, _ := newStore(t)
	first := addGoal(t, s, "run a marathon", models.GoalHealth)
	second := addGoal(t, s, "learn go", models.GoalLearning)

	assert.Equal(t, 0, first.Progress)
	assert.False(t, first.Completed)
	assert.Empty(t, first.Milestones)

	goals := s.Goals()
	require.Len(t, goals, 2)
	assert.Equal(t, second.ID, goals[0].ID, "new goals come first")
	assert.Equal(t, first.ID, goals[1].ID)

	health := s.GoalsByCategory(models.GoalHealth)
	require.Len(t, health, 1)
	assert.Equal(t, first.ID, health[0].ID)
}

func TestMilestones_progress(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	g := addGoal(t, s, "ship the side project", models.GoalProfessional)

	var ids []string
	for _, title := range []string{"design", "build", "launch"} {
		m, err := s.AddMilestone(ctx, g.ID, models.MilestoneInput{Title: title})
		require.NoError(t, err)
		require.NotNil(t, m)
		ids = append(ids, m.ID)
	}
	assert.Equal(t, 0, s.Goal(g.ID).Progress)

	check := func(t *testing.T, progress int, completed bool) {
		t.Helper()
		got := s.Goal(g.ID)
		require.NotNil(t, got)
		want, wantCompleted, ok := models.MilestoneProgress(got.Milestones)
		if ok {
			assert.Equal(t, want, got.Progress)
			assert.Equal(t, wantCompleted, got.Completed)
		}
		assert.Equal(t, progress, got.Progress)
		assert.Equal(t, completed, got.Completed)
	}

	_, err := s.ToggleMilestoneCompletion(ctx, g.ID, ids[0])
	require.NoError(t, err)
	check(t, 33, false)

	done := true
	_, err = s.UpdateMilestone(ctx, g.ID, ids[1], models.MilestonePatch{Completed: &done})
	require.NoError(t, err)
	check(t, 67, false)

	_, err = s.ToggleMilestoneCompletion(ctx, g.ID, ids[2])
	require.NoError(t, err)
	check(t, 100, true)

	found, err := s.DeleteMilestone(ctx, g.ID, ids[2])
	require.NoError(t, err)
	assert.True(t, found)
	check(t, 100, true)

	_, err = s.ToggleMilestoneCompletion(ctx, g.ID, ids[1])
	require.NoError(t, err)
	check(t, 50, false)

	m, err := s.AddMilestone(ctx, g.ID, models.MilestoneInput{Title: "retro"})
	require.NoError(t, err)
	check(t, 33, false)

	t.Run("removing every milestone keeps the last progress", func(t *testing.T) {
		_, err := s.DeleteMilestone(ctx, g.ID, ids[1])
		require.NoError(t, err)
		check(t, 50, false)
		_, err = s.DeleteMilestone(ctx, g.ID, m.ID)
		require.NoError(t, err)
		check(t, 100, true)
		_, err = s.DeleteMilestone(ctx, g.ID, ids[0])
		require.NoError(t, err)
		check(t, 100, true)

		got, err := s.UpdateGoalProgress(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, got.Progress)
		assert.Empty(t, got.Milestones)
	})
}

func TestUnknownIDs(t *testing.T) {
	ctx := context.Background()
	s, backend := newStore(t)
	g := addGoal(t, s, "read more", models.GoalPersonal)
	calls := backend.SetCalls()

	title := "x"
	got, err := s.UpdateGoal(ctx, "goal_missing", models.GoalPatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, got)

	m, err := s.AddMilestone(ctx, "goal_missing", models.MilestoneInput{Title: "x"})
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = s.ToggleMilestoneCompletion(ctx, g.ID, "ms_missing")
	require.NoError(t, err)
	assert.Nil(t, m)

	found, err := s.DeleteGoal(ctx, "goal_missing")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = s.DeleteMilestone(ctx, g.ID, "ms_missing")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Nil(t, s.Goal("goal_missing"))
	assert.Equal(t, calls, backend.SetCalls(), "no-ops must not write")
}

func TestUpdateAndDeleteGoal(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	g := addGoal(t, s, "save", models.GoalFinancial)

	title, progress := "save more", 40
	got, err := s.UpdateGoal(ctx, g.ID, models.GoalPatch{Title: &title, Progress: &progress})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "save more", got.Title)
	assert.Equal(t, 40, got.Progress)
	assert.Len(t, s.ActiveGoals(), 1)

	found, err := s.DeleteGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, s.Exists(g.ID))
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	s, backend := newStore(t)
	g := addGoal(t, s, "persisted", models.GoalSocial)
	_, err := s.AddMilestone(ctx, g.ID, models.MilestoneInput{Title: "call mom", DueDate: models.MustParseDate("2024-02-01")})
	require.NoError(t, err)

	reopened, err := New(ctx, store.Options{Backend: backend})
	require.NoError(t, err)
	got := reopened.Goal(g.ID)
	require.NotNil(t, got)
	require.Len(t, got.Milestones, 1)
	assert.Equal(t, "2024-02-01", got.Milestones[0].DueDate.String())

	t.Run("failed write is rolled back", func(t *testing.T) {
		backend.FailWrites(true)
		defer backend.FailWrites(false)

		_, err := s.ToggleMilestoneCompletion(ctx, g.ID, got.Milestones[0].ID)
		require.ErrorIs(t, err, mock.ErrInjected)
		assert.False(t, s.Goal(g.ID).Completed)
		assert.Equal(t, 0, s.Goal(g.ID).Progress)
	})

	t.Run("returned goals are copies", func(t *testing.T) {
		copyOf := s.Goal(g.ID)
		copyOf.Milestones[0].Title = "changed"
		assert.Equal(t, "call mom", s.Goal(g.ID).Milestones[0].Title)
	})
}
