package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFrequency_Next(t *testing.T) {
	t.Parallel()

	d := MustParseDate("2024-01-31")

	testcases := []struct {
		f    Frequency
		want string
	}{
		{f: Daily, want: "2024-02-01"},
		{f: Weekly, want: "2024-02-07"},
		{f: Monthly, want: "2024-02-29"},
		{f: Yearly, want: "2025-01-31"},
	}

	for _, tc := range testcases {
		t.Run(string(tc.f), func(t *testing.T) {
			next, ok := tc.f.Next(d, 31)
			assert.True(t, ok)
			assert.Equal(t, tc.want, next.String())
		})
	}

	_, ok := Frequency("fortnightly").Next(d, 31)
	assert.False(t, ok)
}

func TestFinancialGoal_Clamp(t *testing.T) {
	t.Parallel()

	g := FinancialGoal{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(900)}
	g.Contribute(decimal.NewFromInt(250))
	assert.True(t, g.CurrentAmount.Equal(decimal.NewFromInt(1000)), g.CurrentAmount.String())

	lower := decimal.NewFromInt(500)
	FinancialGoalPatch{TargetAmount: &lower}.Apply(&g)
	assert.True(t, g.CurrentAmount.Equal(lower), g.CurrentAmount.String())
}

func TestRecurringTransaction_Occurrence(t *testing.T) {
	t.Parallel()

	r := RecurringTransaction{
		Amount:    decimal.RequireFromString("12.50"),
		Category:  "subscriptions",
		Type:      Expense,
		Frequency: Monthly,
		StartDate: MustParseDate("2024-01-31"),
	}

	assert.Equal(t, 31, r.AnchorDay())

	in := r.Occurrence(MustParseDate("2024-02-29"))
	assert.True(t, in.IsRecurring)
	assert.Equal(t, Expense, in.Type)
	assert.Equal(t, "2024-02-29", in.Date.String())
	assert.True(t, in.Amount.Equal(r.Amount))
}
