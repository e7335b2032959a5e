package finance

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
)

func recurring(st *state) *[]models.RecurringTransaction { return &st.Recurring }

func recurringID(r *models.RecurringTransaction) string { return r.ID }

// AddRecurring stores a template. Without a LastProcessed date the first
// occurrence is one interval after StartDate.
func (s *Store) AddRecurring(ctx context.Context, in models.RecurringInput) (*models.RecurringTransaction, error) {
	r := models.RecurringTransaction{
		ID:            models.NewID(models.PrefixRecurring),
		Amount:        in.Amount,
		Category:      in.Category,
		Description:   in.Description,
		Type:          in.Type,
		Frequency:     in.Frequency,
		StartDate:     in.StartDate,
		LastProcessed: in.LastProcessed,
	}
	if r.LastProcessed.IsZero() {
		r.LastProcessed = r.StartDate
	}
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.Recurring = append(st.Recurring, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) UpdateRecurring(ctx context.Context, id string, p models.RecurringPatch) (*models.RecurringTransaction, error) {
	return mutate(ctx, s, id, recurring, recurringID, same[models.RecurringTransaction], func(r *models.RecurringTransaction) {
		p.Apply(r)
	})
}

func (s *Store) DeleteRecurring(ctx context.Context, id string) (bool, error) {
	return remove(ctx, s, id, recurring, recurringID)
}

func (s *Store) Recurring(id string) *models.RecurringTransaction {
	return find(s, id, recurring, recurringID, same[models.RecurringTransaction])
}

func (s *Store) RecurringTransactions() []models.RecurringTransaction {
	return query(s, recurring, all[models.RecurringTransaction], same[models.RecurringTransaction])
}

// ProcessRecurringTransactions emits every occurrence of every template that
// is due on or before today and moves each template's LastProcessed forward.
// Emitted transactions are returned oldest first; running it again on the
// same day emits nothing.
func (s *Store) ProcessRecurringTransactions(ctx context.Context) ([]models.FinancialTransaction, error) {
	today := s.Today()
	var emitted []models.FinancialTransaction
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		emitted = emitted[:0]
		for i := range st.Recurring {
			emitted = append(emitted, s.materialize(&st.Recurring[i], today)...)
		}
		for _, t := range emitted {
			st.Transactions = append([]models.FinancialTransaction{t}, st.Transactions...)
		}
		return len(emitted) > 0, nil
	})
	if err != nil {
		return nil, err
	}
	if len(emitted) > 0 {
		s.log.Info().Int("count", len(emitted)).Str("today", today.String()).Msg("recurring transactions materialized")
	}
	return emitted, nil
}

func (s *Store) materialize(r *models.RecurringTransaction, today models.Date) []models.FinancialTransaction {
	last := r.LastProcessed
	if last.IsZero() {
		last = r.StartDate
	}
	if last.IsZero() {
		s.log.Warn().Str("id", r.ID).Msg("recurring transaction has no start date, skipped")
		return nil
	}
	anchor := r.AnchorDay()

	var out []models.FinancialTransaction
	for {
		next, ok := r.Frequency.Next(last, anchor)
		if !ok {
			s.log.Warn().Str("id", r.ID).Str("frequency", string(r.Frequency)).Msg("unknown frequency, skipped")
			return out
		}
		if next.After(today) {
			return out
		}
		out = append(out, newTransaction(r.Occurrence(next)))
		r.LastProcessed = next
		last = next
	}
}
