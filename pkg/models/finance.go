package models

import "github.com/shopspring/decimal"

// TransactionType tells income from expense. Amounts are always positive.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Frequency is the repeat interval of a recurring transaction.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Next returns the occurrence after d. Monthly and yearly steps keep anchorDay
// as the day of month, clamped to the month's length. ok is false for an
// unknown frequency.
func (f Frequency) Next(d Date, anchorDay int) (next Date, ok bool) {
	switch f {
	case Daily:
		return d.AddDays(1), true
	case Weekly:
		return d.AddDays(7), true
	case Monthly:
		return d.AddMonths(1, anchorDay), true
	case Yearly:
		return d.AddYears(1, anchorDay), true
	}
	return Date{}, false
}

type FinancialTransaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type"`
	IsRecurring bool            `json:"is_recurring,omitempty"`
}

type TransactionInput struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type"`
	IsRecurring bool            `json:"is_recurring,omitempty"`
}

type TransactionPatch struct {
	Date        *Date            `json:"date,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Type        *TransactionType `json:"type,omitempty"`
	IsRecurring *bool            `json:"is_recurring,omitempty"`
}

func (p TransactionPatch) Apply(t *FinancialTransaction) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.IsRecurring != nil {
		t.IsRecurring = *p.IsRecurring
	}
}

// RecurringTransaction is a template that spawns a FinancialTransaction on every
// elapsed interval after LastProcessed.
type RecurringTransaction struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Type          TransactionType `json:"type"`
	Frequency     Frequency       `json:"frequency"`
	StartDate     Date            `json:"start_date"`
	LastProcessed Date            `json:"last_processed"`
}

// RecurringInput carries a new template. A zero LastProcessed starts at StartDate,
// so the first occurrence is one interval after the start.
type RecurringInput struct {
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Type          TransactionType `json:"type"`
	Frequency     Frequency       `json:"frequency"`
	StartDate     Date            `json:"start_date"`
	LastProcessed Date            `json:"last_processed"`
}

type RecurringPatch struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Type          *TransactionType `json:"type,omitempty"`
	Frequency     *Frequency       `json:"frequency,omitempty"`
	StartDate     *Date            `json:"start_date,omitempty"`
	LastProcessed *Date            `json:"last_processed,omitempty"`
}

func (p RecurringPatch) Apply(r *RecurringTransaction) {
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Frequency != nil {
		r.Frequency = *p.Frequency
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.LastProcessed != nil {
		r.LastProcessed = *p.LastProcessed
	}
}

// AnchorDay is the day of month that monthly and yearly occurrences aim for.
func (r RecurringTransaction) AnchorDay() int {
	if !r.StartDate.IsZero() {
		return r.StartDate.Day()
	}
	return r.LastProcessed.Day()
}

// Occurrence builds the concrete transaction emitted for date d.
func (r RecurringTransaction) Occurrence(d Date) TransactionInput {
	return TransactionInput{
		Date:        d,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Type:        r.Type,
		IsRecurring: true,
	}
}

type FinancialGoalCategory string

const (
	FinGoalSavings    FinancialGoalCategory = "savings"
	FinGoalInvestment FinancialGoalCategory = "investment"
	FinGoalDebt       FinancialGoalCategory = "debt"
	FinGoalPurchase   FinancialGoalCategory = "purchase"
)

// FinancialGoal is a savings target. CurrentAmount never exceeds TargetAmount.
type FinancialGoal struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	TargetAmount  decimal.Decimal       `json:"target_amount"`
	CurrentAmount decimal.Decimal       `json:"current_amount"`
	Deadline      *Date                 `json:"deadline,omitempty"`
	Category      FinancialGoalCategory `json:"category"`
}

type FinancialGoalInput struct {
	Title         string                `json:"title"`
	TargetAmount  decimal.Decimal       `json:"target_amount"`
	CurrentAmount decimal.Decimal       `json:"current_amount"`
	Deadline      *Date                 `json:"deadline,omitempty"`
	Category      FinancialGoalCategory `json:"category"`
}

type FinancialGoalPatch struct {
	Title         *string                `json:"title,omitempty"`
	TargetAmount  *decimal.Decimal       `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal       `json:"current_amount,omitempty"`
	Deadline      *Date                  `json:"deadline,omitempty"`
	Category      *FinancialGoalCategory `json:"category,omitempty"`
}

func (p FinancialGoalPatch) Apply(g *FinancialGoal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		d := *p.Deadline
		g.Deadline = &d
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	g.Clamp()
}

// Clamp caps CurrentAmount at TargetAmount.
func (g *FinancialGoal) Clamp() {
	if g.CurrentAmount.GreaterThan(g.TargetAmount) {
		g.CurrentAmount = g.TargetAmount
	}
}

// Contribute adds amount to the goal, clamped to the target.
func (g *FinancialGoal) Contribute(amount decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.Clamp()
}

func (g FinancialGoal) Clone() FinancialGoal {
	if g.Deadline != nil {
		d := *g.Deadline
		g.Deadline = &d
	}
	return g
}

type BillFrequency string

const (
	BillMonthly   BillFrequency = "monthly"
	BillQuarterly BillFrequency = "quarterly"
	BillYearly    BillFrequency = "yearly"
)

type Bill struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     Date            `json:"due_date"`
	Category    string          `json:"category"`
	IsPaid      bool            `json:"is_paid"`
	IsRecurring bool            `json:"is_recurring"`
	Frequency   BillFrequency   `json:"frequency,omitempty"`
}

type BillInput struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     Date            `json:"due_date"`
	Category    string          `json:"category"`
	IsPaid      bool            `json:"is_paid"`
	IsRecurring bool            `json:"is_recurring"`
	Frequency   BillFrequency   `json:"frequency,omitempty"`
}

type BillPatch struct {
	Name        *string          `json:"name,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	DueDate     *Date            `json:"due_date,omitempty"`
	Category    *string          `json:"category,omitempty"`
	IsPaid      *bool            `json:"is_paid,omitempty"`
	IsRecurring *bool            `json:"is_recurring,omitempty"`
	Frequency   *BillFrequency   `json:"frequency,omitempty"`
}

func (p BillPatch) Apply(b *Bill) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.DueDate != nil {
		b.DueDate = *p.DueDate
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.IsPaid != nil {
		b.IsPaid = *p.IsPaid
	}
	if p.IsRecurring != nil {
		b.IsRecurring = *p.IsRecurring
	}
	if p.Frequency != nil {
		b.Frequency = *p.Frequency
	}
}

// Budget is a spending envelope over an inclusive date range.
type Budget struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   Date            `json:"start_date"`
	EndDate     Date            `json:"end_date"`
	Description string          `json:"description,omitempty"`
}

// Range returns the budget's period.
func (b Budget) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

type BudgetInput struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   Date            `json:"start_date"`
	EndDate     Date            `json:"end_date"`
	Description string          `json:"description,omitempty"`
}

type BudgetPatch struct {
	Name        *string          `json:"name,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	StartDate   *Date            `json:"start_date,omitempty"`
	EndDate     *Date            `json:"end_date,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (p BudgetPatch) Apply(b *Budget) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
}

// BudgetCategory is one per-category limit within a budget. Name matches
// FinancialTransaction.Category.
type BudgetCategory struct {
	ID       string          `json:"id"`
	BudgetID string          `json:"budget_id"`
	Name     string          `json:"name"`
	Limit    decimal.Decimal `json:"limit"`
}

type BudgetCategoryInput struct {
	BudgetID string          `json:"budget_id"`
	Name     string          `json:"name"`
	Limit    decimal.Decimal `json:"limit"`
}

type BudgetCategoryPatch struct {
	BudgetID *string          `json:"budget_id,omitempty"`
	Name     *string          `json:"name,omitempty"`
	Limit    *decimal.Decimal `json:"limit,omitempty"`
}

func (p BudgetCategoryPatch) Apply(c *BudgetCategory) {
	if p.BudgetID != nil {
		c.BudgetID = *p.BudgetID
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Limit != nil {
		c.Limit = *p.Limit
	}
}

// BudgetProgress is the spending state of a budget.
type BudgetProgress struct {
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryTotal is one bucket of a per-category aggregate.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
