package models

import "math"

// Priority is shared by goals, tasks and learning resources.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// GoalCategory groups goals by area of life.
type GoalCategory string

const (
	GoalPersonal     GoalCategory = "personal"
	GoalProfessional GoalCategory = "professional"
	GoalHealth       GoalCategory = "health"
	GoalLearning     GoalCategory = "learning"
	GoalFinancial    GoalCategory = "financial"
	GoalSocial       GoalCategory = "social"
)

// Goal is a long running objective broken down into milestones.
//
// Progress and Completed are derived from Milestones whenever the goal has at least one
// milestone. A goal without milestones keeps whatever progress was last set on it.
type Goal struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Category    GoalCategory `json:"category"`
	StartDate   Date         `json:"start_date"`
	EndDate     Date         `json:"end_date"`
	Progress    int          `json:"progress"`
	Milestones  []Milestone  `json:"milestones"`
	Completed   bool         `json:"completed"`
	Priority    Priority     `json:"priority"`
}

// Milestone is a sub-goal owned by exactly one Goal.
type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DueDate   Date   `json:"due_date"`
	Completed bool   `json:"completed"`
}

// GoalInput carries the caller supplied fields of a new goal.
type GoalInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Category    GoalCategory `json:"category"`
	StartDate   Date         `json:"start_date"`
	EndDate     Date         `json:"end_date"`
	Priority    Priority     `json:"priority"`
}

// GoalPatch is a partial update of a Goal. Progress and Completed only stick
// on goals without milestones.
type GoalPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Category    *GoalCategory `json:"category,omitempty"`
	StartDate   *Date         `json:"start_date,omitempty"`
	EndDate     *Date         `json:"end_date,omitempty"`
	Priority    *Priority     `json:"priority,omitempty"`
	Progress    *int          `json:"progress,omitempty"`
	Completed   *bool         `json:"completed,omitempty"`
}

func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.StartDate != nil {
		g.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		g.EndDate = *p.EndDate
	}
	if p.Priority != nil {
		g.Priority = *p.Priority
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	if p.Completed != nil {
		g.Completed = *p.Completed
	}
	g.Recompute()
}

// MilestoneInput carries the caller supplied fields of a new milestone.
type MilestoneInput struct {
	Title   string `json:"title"`
	DueDate Date   `json:"due_date"`
}

// MilestonePatch is a partial update of a Milestone.
type MilestonePatch struct {
	Title     *string `json:"title,omitempty"`
	DueDate   *Date   `json:"due_date,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (p MilestonePatch) Apply(m *Milestone) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.DueDate != nil {
		m.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		m.Completed = *p.Completed
	}
}

// MilestoneProgress returns round(100*completed/total) and whether that equals 100.
// ok is false for an empty list, where no progress can be derived.
func MilestoneProgress(milestones []Milestone) (progress int, completed bool, ok bool) {
	if len(milestones) == 0 {
		return 0, false, false
	}
	done := 0
	for _, m := range milestones {
		if m.Completed {
			done++
		}
	}
	progress = int(math.Round(100 * float64(done) / float64(len(milestones))))
	return progress, progress == 100, true
}

// Recompute brings Progress and Completed in line with the milestones.
// It leaves a goal without milestones untouched.
func (g *Goal) Recompute() {
	if progress, completed, ok := MilestoneProgress(g.Milestones); ok {
		g.Progress = progress
		g.Completed = completed
	}
}

// Milestone returns the index of the milestone with the given id, or -1.
func (g *Goal) Milestone(id string) int {
	for i := range g.Milestones {
		if g.Milestones[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of g.
func (g Goal) Clone() Goal {
	if g.Milestones != nil {
		g.Milestones = append([]Milestone(nil), g.Milestones...)
	}
	return g
}
