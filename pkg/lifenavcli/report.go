package lifenavcli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/mood"
	"github.com/shopspring/decimal"
)

// Overview is what the summary command prints and GET /api/summary returns.
type Overview struct {
	User     string          `json:"user,omitempty"`
	Goals    GoalOverview    `json:"goals"`
	Tasks    TaskOverview    `json:"tasks"`
	Mood     mood.Summary    `json:"mood"`
	Learning LearningSummary `json:"learning"`
	Finance  FinanceSummary  `json:"finance"`
	Social   SocialOverview  `json:"social"`
}

type GoalOverview struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type TaskOverview struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Overdue int `json:"overdue"`
}

type LearningSummary struct {
	Resources      int   `json:"resources"`
	CompletionRate int   `json:"completion_rate"`
	TotalSeconds   int64 `json:"total_seconds"`
	WeekSeconds    int64 `json:"week_seconds"`
}

// FinanceSummary covers the current calendar month.
type FinanceSummary struct {
	Month      models.DateRange       `json:"month"`
	Income     decimal.Decimal        `json:"income"`
	Expenses   decimal.Decimal        `json:"expenses"`
	Net        decimal.Decimal        `json:"net"`
	ByCategory []models.CategoryTotal `json:"by_category"`
}

type SocialOverview struct {
	Connections int `json:"connections"`
	Due         int `json:"due"`
}

// DueReport is what the due command prints and GET /api/due returns.
type DueReport struct {
	Until       models.Date               `json:"until"`
	Tasks       []models.Task             `json:"tasks"`
	Connections []models.SocialConnection `json:"connections"`
	Bills       []models.Bill             `json:"bills"`
}

func monthOf(d models.Date) models.DateRange {
	start := models.NewDate(d.Year(), d.Month(), 1)
	return models.DateRange{Start: start, End: models.NewDate(d.Year(), d.Month(), models.DaysIn(d.Year(), d.Month()))}
}

// Overview collects the summary of every store.
func (a *App) Overview() Overview {
	nav := a.nav
	today := models.DateOf(a.clock.Now())
	month := monthOf(today)

	var o Overview
	if u := nav.Profile.User(); u != nil {
		o.User = u.Name
	}

	o.Goals = GoalOverview{Total: len(nav.Goals.Goals()), Active: len(nav.Goals.ActiveGoals())}
	o.Tasks = TaskOverview{
		Total:   len(nav.Tasks.Tasks()),
		Pending: len(nav.Tasks.PendingTasks()),
		Overdue: len(nav.Tasks.TasksDueBy(today.AddDays(-1))),
	}
	o.Mood = nav.Mood.Summary()
	o.Learning = LearningSummary{
		Resources:      len(nav.Learning.Resources()),
		CompletionRate: nav.Learning.CompletionRate(),
		TotalSeconds:   nav.Learning.TotalLearningTime(),
		WeekSeconds:    nav.Learning.WeeklyLearningTime().Total(),
	}
	o.Finance = FinanceSummary{
		Month:      month,
		Income:     nav.Finance.TotalIncome(&month),
		Expenses:   nav.Finance.TotalExpenses(&month),
		Net:        nav.Finance.NetIncome(&month),
		ByCategory: nav.Finance.ExpensesByCategory(&month),
	}
	o.Social = SocialOverview{
		Connections: len(nav.Social.Connections()),
		Due:         len(nav.Social.ConnectionsDueForContact()),
	}
	return o
}

// Due lists what needs attention within the next days days.
func (a *App) Due(days int) DueReport {
	until := models.DateOf(a.clock.Now()).AddDays(days)
	return DueReport{
		Until:       until,
		Tasks:       a.nav.Tasks.TasksDueBy(until),
		Connections: a.nav.Social.ConnectionsDueForContact(),
		Bills:       a.nav.Finance.UpcomingBills(days),
	}
}

func printOverview(w io.Writer, o Overview) error {
	var b strings.Builder
	if o.User != "" {
		fmt.Fprintf(&b, "Hello, %s\n\n", o.User)
	}
	fmt.Fprintf(&b, "Goals:    %d active of %d\n", o.Goals.Active, o.Goals.Total)
	fmt.Fprintf(&b, "Tasks:    %d pending, %d overdue, %d total\n", o.Tasks.Pending, o.Tasks.Overdue, o.Tasks.Total)
	fmt.Fprintf(&b, "Mood:     %s over %d entries, %d good days\n", o.Mood.AverageMood, o.Mood.Total, o.Mood.GoodDays)
	fmt.Fprintf(&b, "Learning: %d resources, %d%% completed, %s this week, %s total\n",
		o.Learning.Resources, o.Learning.CompletionRate,
		seconds(o.Learning.WeekSeconds), seconds(o.Learning.TotalSeconds))
	fmt.Fprintf(&b, "Finance:  %s to %s income %s, expenses %s, net %s\n",
		o.Finance.Month.Start, o.Finance.Month.End,
		o.Finance.Income.StringFixed(2), o.Finance.Expenses.StringFixed(2), o.Finance.Net.StringFixed(2))
	for _, c := range o.Finance.ByCategory {
		fmt.Fprintf(&b, "          %-12s %s\n", c.Category, c.Total.StringFixed(2))
	}
	fmt.Fprintf(&b, "Social:   %d connections, %d due for contact\n", o.Social.Connections, o.Social.Due)
	_, err := io.WriteString(w, b.String())
	return err
}

func printDue(w io.Writer, r DueReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Due by %s\n", r.Until)
	fmt.Fprintf(&b, "\nTasks (%d)\n", len(r.Tasks))
	for _, t := range r.Tasks {
		fmt.Fprintf(&b, "  %s  %s\n", t.DueDate, t.Title)
	}
	fmt.Fprintf(&b, "\nContacts (%d)\n", len(r.Connections))
	for _, c := range r.Connections {
		last := "never"
		if c.LastContact != nil {
			last = c.LastContact.Format(time.DateOnly)
		}
		fmt.Fprintf(&b, "  %s (%s, last %s)\n", c.Name, c.ContactFrequency, last)
	}
	fmt.Fprintf(&b, "\nBills (%d)\n", len(r.Bills))
	for _, bill := range r.Bills {
		fmt.Fprintf(&b, "  %s  %s  %s\n", bill.DueDate, bill.Name, bill.Amount.StringFixed(2))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func seconds(s int64) string {
	return (time.Duration(s) * time.Second).String()
}
