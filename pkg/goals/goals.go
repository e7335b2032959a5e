// Package goals stores goals and their milestones.
//
// A goal's progress is derived from its milestones: every milestone change
// recomputes it as the rounded percentage of completed milestones, and a goal
// is completed exactly when that reaches 100. A goal without milestones keeps
// the progress it was last given.
package goals

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

type Store struct {
	doc *store.Document[[]models.Goal]
	log *zerolog.Logger
}

func New(ctx context.Context, opts store.Options) (*Store, error) {
	doc, err := store.Load(ctx, opts, store.KeyGoals, func() []models.Goal { return []models.Goal{} })
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger()}, nil
}

func index(goals []models.Goal, id string) int {
	for i := range goals {
		if goals[i].ID == id {
			return i
		}
	}
	return -1
}

// AddGoal creates a goal with no milestones and zero progress. New goals come first.
func (s *Store) AddGoal(ctx context.Context, in models.GoalInput) (*models.Goal, error) {
	g := models.Goal{
		ID:          models.NewID(models.PrefixGoal),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Priority:    in.Priority,
		Milestones:  []models.Milestone{},
	}
	err := s.doc.Update(ctx, func(goals *[]models.Goal) (bool, error) {
		*goals = append([]models.Goal{g}, *goals...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", g.ID).Msg("goal added")
	return &g, nil
}

// UpdateGoal merges p into the goal. It returns nil for an unknown id.
func (s *Store) UpdateGoal(ctx context.Context, id string, p models.GoalPatch) (*models.Goal, error) {
	return s.mutate(ctx, id, func(g *models.Goal) {
		p.Apply(g)
	})
}

// UpdateGoalProgress recomputes the goal's progress from its milestones.
func (s *Store) UpdateGoalProgress(ctx context.Context, id string) (*models.Goal, error) {
	return s.mutate(ctx, id, func(g *models.Goal) {
		g.Recompute()
	})
}

func (s *Store) mutate(ctx context.Context, id string, fn func(*models.Goal)) (*models.Goal, error) {
	var out *models.Goal
	err := s.doc.Update(ctx, func(goals *[]models.Goal) (bool, error) {
		i := index(*goals, id)
		if i < 0 {
			return false, nil
		}
		fn(&(*goals)[i])
		g := (*goals)[i].Clone()
		out = &g
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("id", id).Msg("goal not found")
	}
	return out, nil
}

// DeleteGoal removes the goal and reports whether it existed. Tasks that
// point at it are left alone.
func (s *Store) DeleteGoal(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(goals *[]models.Goal) (bool, error) {
		i := index(*goals, id)
		if i < 0 {
			return false, nil
		}
		*goals = append((*goals)[:i], (*goals)[i+1:]...)
		found = true
		return true, nil
	})
	return found && err == nil, err
}

// Goal returns the goal with the given id, or nil.
func (s *Store) Goal(id string) *models.Goal {
	var out *models.Goal
	s.doc.Read(func(goals []models.Goal) {
		if i := index(goals, id); i >= 0 {
			g := goals[i].Clone()
			out = &g
		}
	})
	return out
}

// Exists reports whether a goal with the given id is stored.
func (s *Store) Exists(id string) bool {
	return s.Goal(id) != nil
}

// Goals returns every goal, newest first.
func (s *Store) Goals() []models.Goal {
	return s.filter(func(models.Goal) bool { return true })
}

func (s *Store) GoalsByCategory(c models.GoalCategory) []models.Goal {
	return s.filter(func(g models.Goal) bool { return g.Category == c })
}

// ActiveGoals returns the goals that are not completed.
func (s *Store) ActiveGoals() []models.Goal {
	return s.filter(func(g models.Goal) bool { return !g.Completed })
}

func (s *Store) filter(keep func(models.Goal) bool) []models.Goal {
	out := []models.Goal{}
	s.doc.Read(func(goals []models.Goal) {
		for _, g := range goals {
			if keep(g) {
				out = append(out, g.Clone())
			}
		}
	})
	return out
}
