package finance

import (
	"context"
	"sort"

	"github.com/lifenav/lifenav/pkg/models"
)

// DefaultUpcomingDays is the look-ahead window of the bills overview.
const DefaultUpcomingDays = 30

func bills(st *state) *[]models.Bill { return &st.Bills }

func billID(b *models.Bill) string { return b.ID }

func (s *Store) AddBill(ctx context.Context, in models.BillInput) (*models.Bill, error) {
	b := models.Bill{
		ID:          models.NewID(models.PrefixBill),
		Name:        in.Name,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		Category:    in.Category,
		IsPaid:      in.IsPaid,
		IsRecurring: in.IsRecurring,
		Frequency:   in.Frequency,
	}
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.Bills = append(st.Bills, b)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) UpdateBill(ctx context.Context, id string, p models.BillPatch) (*models.Bill, error) {
	return mutate(ctx, s, id, bills, billID, same[models.Bill], func(b *models.Bill) { p.Apply(b) })
}

func (s *Store) ToggleBillPaid(ctx context.Context, id string) (*models.Bill, error) {
	return mutate(ctx, s, id, bills, billID, same[models.Bill], func(b *models.Bill) { b.IsPaid = !b.IsPaid })
}

func (s *Store) DeleteBill(ctx context.Context, id string) (bool, error) {
	return remove(ctx, s, id, bills, billID)
}

func (s *Store) Bill(id string) *models.Bill {
	return find(s, id, bills, billID, same[models.Bill])
}

func (s *Store) Bills() []models.Bill {
	return query(s, bills, all[models.Bill], same[models.Bill])
}

// UpcomingBills returns the unpaid bills due between today and today+days,
// both included, soonest first.
func (s *Store) UpcomingBills(days int) []models.Bill {
	today := s.Today()
	window := models.DateRange{Start: today, End: today.AddDays(days)}
	out := query(s, bills, func(b models.Bill) bool {
		return !b.IsPaid && window.Contains(b.DueDate)
	}, same[models.Bill])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}
