// Package tasks stores to-do items. A task may name the goal it serves; the
// link is only checked under the Strict reference policy.
package tasks

import (
	"context"
	"fmt"

	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

// GoalLookup answers whether a goal id exists.
type GoalLookup interface {
	Exists(id string) bool
}

type Store struct {
	doc    *store.Document[[]models.Task]
	log    *zerolog.Logger
	goals  GoalLookup
	policy store.ReferencePolicy
}

// New loads the task store. goals may be nil, in which case goal ids are
// never checked.
func New(ctx context.Context, opts store.Options, goals GoalLookup) (*Store, error) {
	doc, err := store.Load(ctx, opts, store.KeyTasks, func() []models.Task { return []models.Task{} })
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger(), goals: goals, policy: opts.References}, nil
}

func (s *Store) checkGoal(goalID string) error {
	if goalID == "" || s.policy != store.Strict || s.goals == nil {
		return nil
	}
	if !s.goals.Exists(goalID) {
		return fmt.Errorf("task goal %q: %w", goalID, store.ErrDanglingReference)
	}
	return nil
}

func index(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask creates an open task. New tasks come first.
func (s *Store) AddTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	if err := s.checkGoal(in.GoalID); err != nil {
		return nil, err
	}
	t := models.Task{
		ID:          models.NewID(models.PrefixTask),
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		Category:    in.Category,
		GoalID:      in.GoalID,
	}
	t = t.Clone()
	err := s.doc.Update(ctx, func(tasks *[]models.Task) (bool, error) {
		*tasks = append([]models.Task{t}, *tasks...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	out := t.Clone()
	return &out, nil
}

// UpdateTask merges p into the task. It returns nil for an unknown id.
func (s *Store) UpdateTask(ctx context.Context, id string, p models.TaskPatch) (*models.Task, error) {
	if p.GoalID != nil {
		if err := s.checkGoal(*p.GoalID); err != nil {
			return nil, err
		}
	}
	return s.mutate(ctx, id, func(t *models.Task) { p.Apply(t) })
}

// ToggleTaskCompletion flips the task's completed flag.
func (s *Store) ToggleTaskCompletion(ctx context.Context, id string) (*models.Task, error) {
	return s.mutate(ctx, id, func(t *models.Task) { t.Completed = !t.Completed })
}

func (s *Store) mutate(ctx context.Context, id string, fn func(*models.Task)) (*models.Task, error) {
	var out *models.Task
	err := s.doc.Update(ctx, func(tasks *[]models.Task) (bool, error) {
		i := index(*tasks, id)
		if i < 0 {
			return false, nil
		}
		fn(&(*tasks)[i])
		t := (*tasks)[i].Clone()
		out = &t
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("id", id).Msg("task not found")
	}
	return out, nil
}

// DeleteTask removes the task and reports whether it existed.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(tasks *[]models.Task) (bool, error) {
		i := index(*tasks, id)
		if i < 0 {
			return false, nil
		}
		*tasks = append((*tasks)[:i], (*tasks)[i+1:]...)
		found = true
		return true, nil
	})
	return found && err == nil, err
}

// Task returns the task with the given id, or nil.
func (s *Store) Task(id string) *models.Task {
	var out *models.Task
	s.doc.Read(func(tasks []models.Task) {
		if i := index(tasks, id); i >= 0 {
			t := tasks[i].Clone()
			out = &t
		}
	})
	return out
}

func (s *Store) Tasks() []models.Task {
	return s.filter(func(models.Task) bool { return true })
}

func (s *Store) TasksByCategory(c models.TaskCategory) []models.Task {
	return s.filter(func(t models.Task) bool { return t.Category == c })
}

// TasksByGoal returns the tasks linked to goalID, whether or not the goal still exists.
func (s *Store) TasksByGoal(goalID string) []models.Task {
	return s.filter(func(t models.Task) bool { return t.GoalID == goalID })
}

func (s *Store) CompletedTasks() []models.Task {
	return s.filter(func(t models.Task) bool { return t.Completed })
}

func (s *Store) PendingTasks() []models.Task {
	return s.filter(func(t models.Task) bool { return !t.Completed })
}

// TasksDueBy returns the open tasks with a due date on or before d.
func (s *Store) TasksDueBy(d models.Date) []models.Task {
	return s.filter(func(t models.Task) bool {
		return !t.Completed && t.DueDate != nil && !t.DueDate.IsZero() && !t.DueDate.After(d)
	})
}

func (s *Store) filter(keep func(models.Task) bool) []models.Task {
	out := []models.Task{}
	s.doc.Read(func(tasks []models.Task) {
		for _, t := range tasks {
			if keep(t) {
				out = append(out, t.Clone())
			}
		}
	})
	return out
}
