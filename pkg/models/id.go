package models

import "github.com/google/uuid"

// Id prefixes, one per entity kind.
const (
	PrefixUser        = "user"
	PrefixGoal        = "goal"
	PrefixMilestone   = "milestone"
	PrefixTask        = "task"
	PrefixMood        = "mood"
	PrefixConnection  = "connection"
	PrefixResource    = "resource"
	PrefixSession     = "session"
	PrefixNote        = "note"
	PrefixTransaction = "txn"
	PrefixRecurring   = "recurring"
	PrefixFinGoal     = "fingoal"
	PrefixBill        = "bill"
	PrefixBudget      = "budget"
	PrefixBudgetCat   = "budgetcat"
	PrefixContent     = "content"
)

// NewID returns a new random identifier of the form "<prefix>_<uuid>".
// Unlike timestamp based ids it stays unique under rapid successive creation.
func NewID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "_" + uuid.NewString()
}
