package lifenav

import (
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/lifenav/lifenav/pkg/models"
)

// Snapshot is a point-in-time copy of every store, used for export.
type Snapshot struct {
	ExportedAt time.Time    `json:"exported_at"`
	User       *models.User `json:"user"`
	Onboarded  bool         `json:"is_onboarded"`

	Goals       []models.Goal             `json:"goals"`
	Tasks       []models.Task             `json:"tasks"`
	Mood        []models.MoodEntry        `json:"mood_entries"`
	Connections []models.SocialConnection `json:"connections"`

	Resources []models.LearningResource `json:"learning_resources"`
	Sessions  []models.LearningSession  `json:"learning_sessions"`
	Notes     []models.LearningNote     `json:"learning_notes"`

	Transactions     []models.FinancialTransaction `json:"transactions"`
	FinancialGoals   []models.FinancialGoal        `json:"financial_goals"`
	Recurring        []models.RecurringTransaction `json:"recurring_transactions"`
	Bills            []models.Bill                 `json:"bills"`
	Budgets          []models.Budget               `json:"budgets"`
	BudgetCategories []models.BudgetCategory       `json:"budget_categories"`

	Motivation []models.MotivationalContent `json:"motivational_content"`
	Favorites  []string                     `json:"favorite_content"`
}

// Export copies the state of every store. Stores are read one after another,
// so a write racing with Export may be seen by some stores and not others.
func (n *Navigator) Export() Snapshot {
	favorites := []string{}
	for _, c := range n.Motivation.Favorites() {
		favorites = append(favorites, c.ID)
	}
	return Snapshot{
		ExportedAt:       n.clock.Now(),
		User:             n.Profile.User(),
		Onboarded:        n.Profile.IsOnboarded(),
		Goals:            n.Goals.Goals(),
		Tasks:            n.Tasks.Tasks(),
		Mood:             n.Mood.Entries(),
		Connections:      n.Social.Connections(),
		Resources:        n.Learning.Resources(),
		Sessions:         n.Learning.Sessions(),
		Notes:            n.Learning.Notes(),
		Transactions:     n.Finance.Transactions(),
		FinancialGoals:   n.Finance.Goals(),
		Recurring:        n.Finance.RecurringTransactions(),
		Bills:            n.Finance.Bills(),
		Budgets:          n.Finance.Budgets(),
		BudgetCategories: n.Finance.AllBudgetCategories(),
		Motivation:       n.Motivation.All(),
		Favorites:        favorites,
	}
}

// WriteExport writes Export as indented JSON.
func (n *Navigator) WriteExport(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(n.Export())
}
