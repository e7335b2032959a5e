package finance

import (
	"time"

	"github.com/lifenav/lifenav/pkg/models"
	"github.com/shopspring/decimal"
)

// inRange reports whether d lies in r; a nil range matches every date.
func inRange(r *models.DateRange, d models.Date) bool {
	return r == nil || r.Contains(d)
}

func (s *Store) total(typ models.TransactionType, r *models.DateRange) decimal.Decimal {
	sum := decimal.Zero
	s.doc.Read(func(st state) {
		for _, t := range st.Transactions {
			if t.Type == typ && inRange(r, t.Date) {
				sum = sum.Add(t.Amount)
			}
		}
	})
	return sum
}

// TotalIncome sums the income within r, or all income when r is nil.
func (s *Store) TotalIncome(r *models.DateRange) decimal.Decimal {
	return s.total(models.Income, r)
}

// TotalExpenses sums the expenses within r, or all expenses when r is nil.
func (s *Store) TotalExpenses(r *models.DateRange) decimal.Decimal {
	return s.total(models.Expense, r)
}

func (s *Store) NetIncome(r *models.DateRange) decimal.Decimal {
	return s.TotalIncome(r).Sub(s.TotalExpenses(r))
}

// ExpensesByCategory totals the expenses within r per category, in the order
// categories are first met in the transaction list.
func (s *Store) ExpensesByCategory(r *models.DateRange) []models.CategoryTotal {
	out := []models.CategoryTotal{}
	pos := map[string]int{}
	s.doc.Read(func(st state) {
		for _, t := range st.Transactions {
			if t.Type != models.Expense || !inRange(r, t.Date) {
				continue
			}
			i, ok := pos[t.Category]
			if !ok {
				i = len(out)
				pos[t.Category] = i
				out = append(out, models.CategoryTotal{Category: t.Category, Total: decimal.Zero})
			}
			out[i].Total = out[i].Total.Add(t.Amount)
		}
	})
	return out
}

func (s *Store) monthly(typ models.TransactionType, year int) [12]decimal.Decimal {
	var months [12]decimal.Decimal
	s.doc.Read(func(st state) {
		for _, t := range st.Transactions {
			if t.Type == typ && !t.Date.IsZero() && t.Date.Year() == year {
				m := t.Date.Month() - time.January
				months[m] = months[m].Add(t.Amount)
			}
		}
	})
	return months
}

// MonthlyIncome totals the income of each month of year, January first.
func (s *Store) MonthlyIncome(year int) [12]decimal.Decimal {
	return s.monthly(models.Income, year)
}

// MonthlyExpenses totals the expenses of each month of year, January first.
func (s *Store) MonthlyExpenses(year int) [12]decimal.Decimal {
	return s.monthly(models.Expense, year)
}
