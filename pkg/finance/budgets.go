package finance

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func budgets(st *state) *[]models.Budget { return &st.Budgets }

func budgetID(b *models.Budget) string { return b.ID }

func budgetCategories(st *state) *[]models.BudgetCategory { return &st.BudgetCategories }

func budgetCategoryID(c *models.BudgetCategory) string { return c.ID }

func (s *Store) AddBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error) {
	b := models.Budget{
		ID:          models.NewID(models.PrefixBudget),
		Name:        in.Name,
		Amount:      in.Amount,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	}
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.Budgets = append(st.Budgets, b)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) UpdateBudget(ctx context.Context, id string, p models.BudgetPatch) (*models.Budget, error) {
	return mutate(ctx, s, id, budgets, budgetID, same[models.Budget], func(b *models.Budget) { p.Apply(b) })
}

// DeleteBudget removes the budget. Its categories stay until deleted on their own.
func (s *Store) DeleteBudget(ctx context.Context, id string) (bool, error) {
	return remove(ctx, s, id, budgets, budgetID)
}

func (s *Store) Budget(id string) *models.Budget {
	return find(s, id, budgets, budgetID, same[models.Budget])
}

func (s *Store) Budgets() []models.Budget {
	return query(s, budgets, all[models.Budget], same[models.Budget])
}

func (s *Store) AddBudgetCategory(ctx context.Context, in models.BudgetCategoryInput) (*models.BudgetCategory, error) {
	c := models.BudgetCategory{
		ID:       models.NewID(models.PrefixBudgetCat),
		BudgetID: in.BudgetID,
		Name:     in.Name,
		Limit:    in.Limit,
	}
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.BudgetCategories = append(st.BudgetCategories, c)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdateBudgetCategory(ctx context.Context, id string, p models.BudgetCategoryPatch) (*models.BudgetCategory, error) {
	return mutate(ctx, s, id, budgetCategories, budgetCategoryID, same[models.BudgetCategory], func(c *models.BudgetCategory) {
		p.Apply(c)
	})
}

func (s *Store) DeleteBudgetCategory(ctx context.Context, id string) (bool, error) {
	return remove(ctx, s, id, budgetCategories, budgetCategoryID)
}

func (s *Store) AllBudgetCategories() []models.BudgetCategory {
	return query(s, budgetCategories, all[models.BudgetCategory], same[models.BudgetCategory])
}

// BudgetCategories returns the categories of one budget.
func (s *Store) BudgetCategories(budgetID string) []models.BudgetCategory {
	return query(s, budgetCategories, func(c models.BudgetCategory) bool {
		return c.BudgetID == budgetID
	}, same[models.BudgetCategory])
}

// BudgetProgress sums the expenses dated within the budget's period whose
// category is one of the budget's categories. Expenses in other categories do
// not count. An unknown budget, or one with no amount, reports zero percent.
func (s *Store) BudgetProgress(id string) models.BudgetProgress {
	progress := models.BudgetProgress{}
	s.doc.Read(func(st state) {
		i := indexOf(st.Budgets, id, budgetID)
		if i < 0 {
			return
		}
		b := st.Budgets[i]

		names := map[string]bool{}
		for _, c := range st.BudgetCategories {
			if c.BudgetID == id {
				names[c.Name] = true
			}
		}
		period := b.Range()
		for _, t := range st.Transactions {
			if t.Type == models.Expense && names[t.Category] && period.Contains(t.Date) {
				progress.Spent = progress.Spent.Add(t.Amount)
			}
		}

		progress.Remaining = decimal.Max(decimal.Zero, b.Amount.Sub(progress.Spent))
		if b.Amount.IsPositive() {
			progress.Percentage = decimal.Min(hundred, progress.Spent.Mul(hundred).Div(b.Amount))
		}
	})
	return progress
}
