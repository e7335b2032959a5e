package mood

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

var now = time.Date(2024, time.June, 15, 20, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), store.Options{Backend: mock.Create(), Clock: clock.NewFixed(now)})
	require.NoError(t, err)
	return s
}

func TestAddEntry(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	tags := []string{"work"}
	first, err := s.AddEntry(ctx, models.MoodInput{Mood: models.MoodGood, Tags: tags})
	require.NoError(t, err)
	assert.Equal(t, now, first.Date, "a missing date defaults to now")

	earlier := now.Add(-48 * time.Hour)
	second, err := s.AddEntry(ctx, models.MoodInput{Mood: models.MoodBad, Date: earlier, Note: "rainy"})
	require.NoError(t, err)
	assert.Equal(t, earlier, second.Date)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "new entries come first")

	tags[0] = "changed"
	assert.Equal(t, []string{"work"}, s.Entry(first.ID).Tags)
	assert.Len(t, s.EntriesByTag("work"), 1)
}

func TestEntriesByDateRange(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, d := range []time.Time{now.Add(-72 * time.Hour), now.Add(-24 * time.Hour), now} {
		_, err := s.AddEntry(ctx, models.MoodInput{Mood: models.MoodNeutral, Date: d})
		require.NoError(t, err)
	}

	got := s.EntriesByDateRange(now.Add(-24*time.Hour), now)
	assert.Len(t, got, 2, "both ends are inclusive")
	assert.Empty(t, s.EntriesByDateRange(now.Add(time.Hour), now.Add(2*time.Hour)))
}

func TestUpdateDeleteEntry(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	e, err := s.AddEntry(ctx, models.MoodInput{Mood: models.MoodTerrible})
	require.NoError(t, err)

	great := models.MoodGreat
	got, err := s.UpdateEntry(ctx, e.ID, models.MoodPatch{Mood: &great, Tags: []string{"fixed"}})
	require.NoError(t, err)
	assert.Equal(t, models.MoodGreat, got.Mood)
	assert.Equal(t, []string{"fixed"}, got.Tags)

	missing, err := s.UpdateEntry(ctx, "mood_missing", models.MoodPatch{Mood: &great})
	require.NoError(t, err)
	assert.Nil(t, missing)

	found, err := s.DeleteEntry(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Nil(t, s.Entry(e.ID))
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		sum := Summarize(nil)
		assert.Equal(t, 0, sum.Total)
		assert.Equal(t, NoData, sum.AverageMood)
		assert.Empty(t, sum.CommonTags)
		assert.Len(t, sum.Counts, 5)
	})

	t.Run("mixed", func(t *testing.T) {
		entries := []models.MoodEntry{
			{Mood: models.MoodGreat, Tags: []string{"gym", "sun"}},
			{Mood: models.MoodGood, Tags: []string{"gym"}},
			{Mood: models.MoodNeutral},
			{Mood: models.MoodBad, Tags: []string{"work", "sun", "gym"}},
		}
		sum := Summarize(entries)

		assert.Equal(t, 4, sum.Total)
		assert.Equal(t, 2, sum.GoodDays)
		assert.Equal(t, 3, sum.TaggedDays)
		assert.Equal(t, 1, sum.Counts[models.MoodGreat])
		assert.Equal(t, 0, sum.Counts[models.MoodTerrible])
		assert.InDelta(t, 3.5, sum.AverageScore, 1e-9)
		assert.Equal(t, string(models.MoodGood), sum.AverageMood)
		assert.Equal(t, []TagCount{{"gym", 3}, {"sun", 2}, {"work", 1}}, sum.CommonTags)
	})

	t.Run("unknown moods are not counted", func(t *testing.T) {
		sum := Summarize([]models.MoodEntry{{Mood: "ecstatic"}, {Mood: models.MoodGood}})
		assert.Equal(t, 2, sum.Total)
		assert.Len(t, sum.Counts, 5)
		assert.NotContains(t, sum.Counts, models.Mood("ecstatic"))
		assert.Equal(t, 1, sum.Counts[models.MoodGood])
	})

	t.Run("top five tags", func(t *testing.T) {
		entries := []models.MoodEntry{
			{Mood: models.MoodGood, Tags: []string{"a", "b", "c", "d", "e", "f"}},
			{Mood: models.MoodGood, Tags: []string{"f"}},
		}
		sum := Summarize(entries)
		require.Len(t, sum.CommonTags, 5)
		assert.Equal(t, "f", sum.CommonTags[0].Tag)
		assert.Equal(t, "d", sum.CommonTags[4].Tag)
	})
}
