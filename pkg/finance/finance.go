// Package finance keeps personal finance records: transactions, savings
// goals, recurring templates, bills and budgets.
//
// All six collections live in one document so that materializing recurring
// transactions, which touches templates and transactions together, is a
// single write.
package finance

import (
	"context"

	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

type state struct {
	Transactions     []models.FinancialTransaction `json:"transactions"`
	Goals            []models.FinancialGoal        `json:"goals"`
	Recurring        []models.RecurringTransaction `json:"recurring_transactions"`
	Bills            []models.Bill                 `json:"bills"`
	Budgets          []models.Budget               `json:"budgets"`
	BudgetCategories []models.BudgetCategory       `json:"budget_categories"`
}

func newState() state {
	return state{
		Transactions:     []models.FinancialTransaction{},
		Goals:            []models.FinancialGoal{},
		Recurring:        []models.RecurringTransaction{},
		Bills:            []models.Bill{},
		Budgets:          []models.Budget{},
		BudgetCategories: []models.BudgetCategory{},
	}
}

type Store struct {
	doc   *store.Document[state]
	log   *zerolog.Logger
	clock clock.Clock
}

func New(ctx context.Context, opts store.Options) (*Store, error) {
	opts = opts.WithDefaults()
	doc, err := store.Load(ctx, opts, store.KeyFinance, newState)
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger(), clock: opts.Clock}, nil
}

// Today returns the current calendar date in the clock's location.
func (s *Store) Today() models.Date {
	return models.DateOf(s.clock.Now())
}

func indexOf[T any](items []T, id string, idOf func(*T) string) int {
	for i := range items {
		if idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}

func selectItems[T any](items []T, keep func(T) bool, clone func(T) T) []T {
	out := []T{}
	for _, it := range items {
		if keep(it) {
			out = append(out, clone(it))
		}
	}
	return out
}

func same[T any](v T) T { return v }

func all[T any](T) bool { return true }

// remove deletes the item with the given id from the collection chosen by pick.
func remove[T any](ctx context.Context, s *Store, id string, pick func(*state) *[]T, idOf func(*T) string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		items := pick(st)
		i := indexOf(*items, id, idOf)
		if i < 0 {
			return false, nil
		}
		*items = removeAt(*items, i)
		found = true
		return true, nil
	})
	return found && err == nil, err
}

// mutate applies fn to the item with the given id and returns a copy of the
// result, or nil for an unknown id.
func mutate[T any](ctx context.Context, s *Store, id string, pick func(*state) *[]T, idOf func(*T) string, clone func(T) T, fn func(*T)) (*T, error) {
	var out *T
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		items := pick(st)
		i := indexOf(*items, id, idOf)
		if i < 0 {
			return false, nil
		}
		fn(&(*items)[i])
		v := clone((*items)[i])
		out = &v
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("id", id).Msg("finance record not found")
	}
	return out, nil
}

// find returns a copy of the item with the given id, or nil.
func find[T any](s *Store, id string, pick func(*state) *[]T, idOf func(*T) string, clone func(T) T) *T {
	var out *T
	s.doc.Read(func(st state) {
		items := *pick(&st)
		if i := indexOf(items, id, idOf); i >= 0 {
			v := clone(items[i])
			out = &v
		}
	})
	return out
}

func query[T any](s *Store, pick func(*state) *[]T, keep func(T) bool, clone func(T) T) []T {
	var out []T
	s.doc.Read(func(st state) {
		out = selectItems(*pick(&st), keep, clone)
	})
	return out
}
