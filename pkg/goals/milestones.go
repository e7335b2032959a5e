package goals

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
)

// AddMilestone appends an open milestone to the goal and recomputes its
// progress. It returns nil for an unknown goal.
func (s *Store) AddMilestone(ctx context.Context, goalID string, in models.MilestoneInput) (*models.Milestone, error) {
	m := models.Milestone{
		ID:      models.NewID(models.PrefixMilestone),
		Title:   in.Title,
		DueDate: in.DueDate,
	}
	var added bool
	_, err := s.mutate(ctx, goalID, func(g *models.Goal) {
		g.Milestones = append(g.Milestones, m)
		g.Recompute()
		added = true
	})
	if err != nil || !added {
		return nil, err
	}
	return &m, nil
}

// UpdateMilestone merges p into the milestone and recomputes the goal's progress.
func (s *Store) UpdateMilestone(ctx context.Context, goalID, milestoneID string, p models.MilestonePatch) (*models.Milestone, error) {
	return s.mutateMilestone(ctx, goalID, milestoneID, func(m *models.Milestone) {
		p.Apply(m)
	})
}

// ToggleMilestoneCompletion flips the milestone's completed flag.
func (s *Store) ToggleMilestoneCompletion(ctx context.Context, goalID, milestoneID string) (*models.Milestone, error) {
	return s.mutateMilestone(ctx, goalID, milestoneID, func(m *models.Milestone) {
		m.Completed = !m.Completed
	})
}

func (s *Store) mutateMilestone(ctx context.Context, goalID, milestoneID string, fn func(*models.Milestone)) (*models.Milestone, error) {
	var out *models.Milestone
	err := s.doc.Update(ctx, func(goals *[]models.Goal) (bool, error) {
		gi := index(*goals, goalID)
		if gi < 0 {
			return false, nil
		}
		g := &(*goals)[gi]
		mi := g.Milestone(milestoneID)
		if mi < 0 {
			return false, nil
		}
		fn(&g.Milestones[mi])
		g.Recompute()
		m := g.Milestones[mi]
		out = &m
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("goal", goalID).Str("id", milestoneID).Msg("milestone not found")
	}
	return out, nil
}

// DeleteMilestone removes the milestone and recomputes the goal's progress.
// Removing the last milestone leaves the progress where it was.
func (s *Store) DeleteMilestone(ctx context.Context, goalID, milestoneID string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(goals *[]models.Goal) (bool, error) {
		gi := index(*goals, goalID)
		if gi < 0 {
			return false, nil
		}
		g := &(*goals)[gi]
		mi := g.Milestone(milestoneID)
		if mi < 0 {
			return false, nil
		}
		g.Milestones = append(g.Milestones[:mi], g.Milestones[mi+1:]...)
		g.Recompute()
		found = true
		return true, nil
	})
	return found && err == nil, err
}
