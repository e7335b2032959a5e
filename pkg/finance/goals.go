package finance

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
	"github.com/shopspring/decimal"
)

func finGoals(st *state) *[]models.FinancialGoal { return &st.Goals }

func finGoalID(g *models.FinancialGoal) string { return g.ID }

func cloneGoal(g models.FinancialGoal) models.FinancialGoal { return g.Clone() }

// AddGoal stores a savings goal, capping its current amount at the target.
// New goals come first.
func (s *Store) AddGoal(ctx context.Context, in models.FinancialGoalInput) (*models.FinancialGoal, error) {
	g := models.FinancialGoal{
		ID:            models.NewID(models.PrefixFinGoal),
		Title:         in.Title,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
		Category:      in.Category,
	}.Clone()
	g.Clamp()
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.Goals = append([]models.FinancialGoal{g}, st.Goals...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	out := g.Clone()
	return &out, nil
}

// UpdateGoal merges p into the goal and re-applies the cap.
func (s *Store) UpdateGoal(ctx context.Context, id string, p models.FinancialGoalPatch) (*models.FinancialGoal, error) {
	return mutate(ctx, s, id, finGoals, finGoalID, cloneGoal, func(g *models.FinancialGoal) {
		p.Apply(g)
	})
}

// ContributeToGoal adds amount to the goal's current amount, capped at the target.
func (s *Store) ContributeToGoal(ctx context.Context, id string, amount decimal.Decimal) (*models.FinancialGoal, error) {
	return mutate(ctx, s, id, finGoals, finGoalID, cloneGoal, func(g *models.FinancialGoal) {
		g.Contribute(amount)
	})
}

func (s *Store) DeleteGoal(ctx context.Context, id string) (bool, error) {
	return remove(ctx, s, id, finGoals, finGoalID)
}

func (s *Store) Goal(id string) *models.FinancialGoal {
	return find(s, id, finGoals, finGoalID, cloneGoal)
}

func (s *Store) Goals() []models.FinancialGoal {
	return query(s, finGoals, all[models.FinancialGoal], cloneGoal)
}

func (s *Store) GoalsByCategory(c models.FinancialGoalCategory) []models.FinancialGoal {
	return query(s, finGoals, func(g models.FinancialGoal) bool { return g.Category == c }, cloneGoal)
}
