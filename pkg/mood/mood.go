// Package mood keeps the mood log and summarizes it.
package mood

import (
	"context"
	"time"

	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

type Store struct {
	doc   *store.Document[[]models.MoodEntry]
	log   *zerolog.Logger
	clock clock.Clock
}

func New(ctx context.Context, opts store.Options) (*Store, error) {
	opts = opts.WithDefaults()
	doc, err := store.Load(ctx, opts, store.KeyMood, func() []models.MoodEntry { return []models.MoodEntry{} })
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger(), clock: opts.Clock}, nil
}

func index(entries []models.MoodEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

// AddEntry logs a mood. A zero date means now. New entries come first.
func (s *Store) AddEntry(ctx context.Context, in models.MoodInput) (*models.MoodEntry, error) {
	date := in.Date
	if date.IsZero() {
		date = s.clock.Now()
	}
	e := models.MoodEntry{
		ID:   models.NewID(models.PrefixMood),
		Date: date,
		Mood: in.Mood,
		Note: in.Note,
		Tags: in.Tags,
	}.Clone()
	err := s.doc.Update(ctx, func(entries *[]models.MoodEntry) (bool, error) {
		*entries = append([]models.MoodEntry{e}, *entries...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	out := e.Clone()
	return &out, nil
}

// UpdateEntry merges p into the entry. It returns nil for an unknown id.
func (s *Store) UpdateEntry(ctx context.Context, id string, p models.MoodPatch) (*models.MoodEntry, error) {
	var out *models.MoodEntry
	err := s.doc.Update(ctx, func(entries *[]models.MoodEntry) (bool, error) {
		i := index(*entries, id)
		if i < 0 {
			return false, nil
		}
		p.Apply(&(*entries)[i])
		e := (*entries)[i].Clone()
		out = &e
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("id", id).Msg("mood entry not found")
	}
	return out, nil
}

// DeleteEntry removes the entry and reports whether it existed.
func (s *Store) DeleteEntry(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(entries *[]models.MoodEntry) (bool, error) {
		i := index(*entries, id)
		if i < 0 {
			return false, nil
		}
		*entries = append((*entries)[:i], (*entries)[i+1:]...)
		found = true
		return true, nil
	})
	return found && err == nil, err
}

// Entry returns the entry with the given id, or nil.
func (s *Store) Entry(id string) *models.MoodEntry {
	var out *models.MoodEntry
	s.doc.Read(func(entries []models.MoodEntry) {
		if i := index(entries, id); i >= 0 {
			e := entries[i].Clone()
			out = &e
		}
	})
	return out
}

// Entries returns the whole log in stored order.
func (s *Store) Entries() []models.MoodEntry {
	return s.filter(func(models.MoodEntry) bool { return true })
}

// EntriesByDateRange returns the entries whose date lies in [start, end].
func (s *Store) EntriesByDateRange(start, end time.Time) []models.MoodEntry {
	return s.filter(func(e models.MoodEntry) bool {
		return !e.Date.Before(start) && !e.Date.After(end)
	})
}

// EntriesByTag returns the entries carrying tag.
func (s *Store) EntriesByTag(tag string) []models.MoodEntry {
	return s.filter(func(e models.MoodEntry) bool {
		for _, t := range e.Tags {
			if t == tag {
				return true
			}
		}
		return false
	})
}

func (s *Store) filter(keep func(models.MoodEntry) bool) []models.MoodEntry {
	out := []models.MoodEntry{}
	s.doc.Read(func(entries []models.MoodEntry) {
		for _, e := range entries {
			if keep(e) {
				out = append(out, e.Clone())
			}
		}
	})
	return out
}
