package models

// TaskCategory groups tasks. It differs from GoalCategory by "work".
type TaskCategory string

const (
	TaskPersonal  TaskCategory = "personal"
	TaskWork      TaskCategory = "work"
	TaskHealth    TaskCategory = "health"
	TaskLearning  TaskCategory = "learning"
	TaskFinancial TaskCategory = "financial"
	TaskSocial    TaskCategory = "social"
)

// Task is a single to-do item. GoalID is a soft reference: nothing keeps it
// pointing at an existing goal.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     *Date        `json:"due_date,omitempty"`
	Completed   bool         `json:"completed"`
	Priority    Priority     `json:"priority"`
	Category    TaskCategory `json:"category"`
	GoalID      string       `json:"goal_id,omitempty"`
}

type TaskInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     *Date        `json:"due_date,omitempty"`
	Priority    Priority     `json:"priority"`
	Category    TaskCategory `json:"category"`
	GoalID      string       `json:"goal_id,omitempty"`
}

type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	DueDate     *Date         `json:"due_date,omitempty"`
	Completed   *bool         `json:"completed,omitempty"`
	Priority    *Priority     `json:"priority,omitempty"`
	Category    *TaskCategory `json:"category,omitempty"`
	GoalID      *string       `json:"goal_id,omitempty"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.GoalID != nil {
		t.GoalID = *p.GoalID
	}
}

func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}
