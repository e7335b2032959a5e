package models

import "time"

// Mood is a five point self assessment.
type Mood string

const (
	MoodTerrible Mood = "terrible"
	MoodBad      Mood = "bad"
	MoodNeutral  Mood = "neutral"
	MoodGood     Mood = "good"
	MoodGreat    Mood = "great"
)

// Moods lists every mood from worst to best.
var Moods = []Mood{MoodTerrible, MoodBad, MoodNeutral, MoodGood, MoodGreat}

// Score maps a mood onto 1 (terrible) through 5 (great). Unknown moods score 0.
func (m Mood) Score() int {
	switch m {
	case MoodTerrible:
		return 1
	case MoodBad:
		return 2
	case MoodNeutral:
		return 3
	case MoodGood:
		return 4
	case MoodGreat:
		return 5
	}
	return 0
}

// MoodForAverage buckets an average score back into a mood label using the
// thresholds 4.5, 3.5, 2.5 and 1.5.
func MoodForAverage(avg float64) Mood {
	switch {
	case avg >= 4.5:
		return MoodGreat
	case avg >= 3.5:
		return MoodGood
	case avg >= 2.5:
		return MoodNeutral
	case avg >= 1.5:
		return MoodBad
	}
	return MoodTerrible
}

// MoodEntry is one point in the mood log.
type MoodEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Mood Mood      `json:"mood"`
	Note string    `json:"note,omitempty"`
	Tags []string  `json:"tags,omitempty"`
}

// MoodInput carries a new entry. A zero Date means "now".
type MoodInput struct {
	Date time.Time `json:"date,omitempty"`
	Mood Mood      `json:"mood"`
	Note string    `json:"note,omitempty"`
	Tags []string  `json:"tags,omitempty"`
}

type MoodPatch struct {
	Date *time.Time `json:"date,omitempty"`
	Mood *Mood      `json:"mood,omitempty"`
	Note *string    `json:"note,omitempty"`
	Tags []string   `json:"tags,omitempty"`
}

func (p MoodPatch) Apply(e *MoodEntry) {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), p.Tags...)
	}
}

func (e MoodEntry) Clone() MoodEntry {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	return e
}
