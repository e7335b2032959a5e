package models

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type ResourceType string

const (
	ResourceCourse  ResourceType = "course"
	ResourceBook    ResourceType = "book"
	ResourceArticle ResourceType = "article"
	ResourceVideo   ResourceType = "video"
	ResourcePodcast ResourceType = "podcast"
)

// LearningResource is something being studied. Duration is in minutes.
type LearningResource struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Type         ResourceType `json:"type"`
	URL          string       `json:"url,omitempty"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Completed    bool         `json:"completed"`
	Progress     int          `json:"progress"`
	Duration     int          `json:"duration,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	Favorite     bool         `json:"favorite"`
	Priority     Priority     `json:"priority,omitempty"`
	ReminderDate *time.Time   `json:"reminder_date,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type ResourceInput struct {
	Title        string       `json:"title"`
	Type         ResourceType `json:"type"`
	URL          string       `json:"url,omitempty"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Duration     int          `json:"duration,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	Priority     Priority     `json:"priority,omitempty"`
	ReminderDate *time.Time   `json:"reminder_date,omitempty"`
}

type ResourcePatch struct {
	Title        *string       `json:"title,omitempty"`
	Type         *ResourceType `json:"type,omitempty"`
	URL          *string       `json:"url,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Category     *string       `json:"category,omitempty"`
	Completed    *bool         `json:"completed,omitempty"`
	Progress     *int          `json:"progress,omitempty"`
	Duration     *int          `json:"duration,omitempty"`
	ImageURL     *string       `json:"image_url,omitempty"`
	Favorite     *bool         `json:"favorite,omitempty"`
	Priority     *Priority     `json:"priority,omitempty"`
	ReminderDate *time.Time    `json:"reminder_date,omitempty"`
}

func (p ResourcePatch) Apply(r *LearningResource) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.URL != nil {
		r.URL = *p.URL
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Completed != nil {
		r.Completed = *p.Completed
	}
	if p.Progress != nil {
		r.Progress = clampPercent(*p.Progress)
	}
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}
	if p.Favorite != nil {
		r.Favorite = *p.Favorite
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.ReminderDate != nil {
		t := *p.ReminderDate
		r.ReminderDate = &t
	}
}

// AddProgress adds inc percentage points, capped at 100. Reaching 100 marks the
// resource completed.
func (r *LearningResource) AddProgress(inc int) {
	r.Progress = clampPercent(r.Progress + inc)
	r.Completed = r.Progress >= 100
}

func (r LearningResource) Clone() LearningResource {
	if r.ReminderDate != nil {
		t := *r.ReminderDate
		r.ReminderDate = &t
	}
	return r
}

// LearningSession is one timed study session. Duration is in seconds.
type LearningSession struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	Duration   int64     `json:"duration"`
	Notes      string    `json:"notes,omitempty"`
}

type SessionInput struct {
	ResourceID string    `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	Duration   int64     `json:"duration"`
	Notes      string    `json:"notes,omitempty"`
}

type SessionPatch struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	Duration  *int64     `json:"duration,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

func (p SessionPatch) Apply(s *LearningSession) {
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}

// LearningNote is a free text note attached to a resource.
type LearningNote struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Tags       []string  `json:"tags,omitempty"`
}

type NoteInput struct {
	ResourceID string   `json:"resource_id"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
}

type NotePatch struct {
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

func (p NotePatch) Apply(n *LearningNote) {
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Tags != nil {
		n.Tags = append([]string(nil), p.Tags...)
	}
}

func (n LearningNote) Clone() LearningNote {
	if n.Tags != nil {
		n.Tags = append([]string(nil), n.Tags...)
	}
	return n
}

// WeeklyTime holds seconds of learning per weekday, indexed by time.Weekday
// (Sunday first).
type WeeklyTime [7]int64

// Total sums all seven days.
func (w WeeklyTime) Total() int64 {
	var sum int64
	for _, v := range w {
		sum += v
	}
	return sum
}

// MarshalJSON writes the week as an object keyed by lower case day name.
func (w WeeklyTime) MarshalJSON() ([]byte, error) {
	out := make(map[string]int64, len(w))
	for day, v := range w {
		out[strings.ToLower(time.Weekday(day).String())] = v
	}
	return json.Marshal(out)
}

func clampPercent(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
