package finance

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
)

func transactions(st *state) *[]models.FinancialTransaction { return &st.Transactions }

func transactionID(t *models.FinancialTransaction) string { return t.ID }

func newTransaction(in models.TransactionInput) models.FinancialTransaction {
	return models.FinancialTransaction{
		ID:          models.NewID(models.PrefixTransaction),
		Date:        in.Date,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Type:        in.Type,
		IsRecurring: in.IsRecurring,
	}
}

// AddTransaction records a transaction. New transactions come first.
func (s *Store) AddTransaction(ctx context.Context, in models.TransactionInput) (*models.FinancialTransaction, error) {
	t := newTransaction(in)
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.Transactions = append([]models.FinancialTransaction{t}, st.Transactions...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, p models.TransactionPatch) (*models.FinancialTransaction, error) {
	return mutate(ctx, s, id, transactions, transactionID, same[models.FinancialTransaction], func(t *models.FinancialTransaction) {
		p.Apply(t)
	})
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	return remove(ctx, s, id, transactions, transactionID)
}

// Transaction returns the transaction with the given id, or nil.
func (s *Store) Transaction(id string) *models.FinancialTransaction {
	return find(s, id, transactions, transactionID, same[models.FinancialTransaction])
}

func (s *Store) Transactions() []models.FinancialTransaction {
	return query(s, transactions, all[models.FinancialTransaction], same[models.FinancialTransaction])
}

func (s *Store) TransactionsByCategory(category string) []models.FinancialTransaction {
	return query(s, transactions, func(t models.FinancialTransaction) bool {
		return t.Category == category
	}, same[models.FinancialTransaction])
}

func (s *Store) TransactionsByType(typ models.TransactionType) []models.FinancialTransaction {
	return query(s, transactions, func(t models.FinancialTransaction) bool {
		return t.Type == typ
	}, same[models.FinancialTransaction])
}

// TransactionsByDateRange returns the transactions dated within r, both ends included.
func (s *Store) TransactionsByDateRange(r models.DateRange) []models.FinancialTransaction {
	return query(s, transactions, func(t models.FinancialTransaction) bool {
		return r.Contains(t.Date)
	}, same[models.FinancialTransaction])
}
