package learning

import (
	"math"
	"time"

	"github.com/lifenav/lifenav/pkg/models"
)

// TotalLearningTime sums the duration of every session, in seconds.
func (s *Store) TotalLearningTime() int64 {
	var total int64
	s.doc.Read(func(st state) {
		for _, sess := range st.Sessions {
			total += sess.Duration
		}
	})
	return total
}

// StartOfWeek returns Sunday 00:00 of the week containing t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(t.Weekday()))
}

// WeeklyLearningTime buckets the seconds of every session that started between
// the most recent Sunday midnight and now by the weekday it started on.
func (s *Store) WeeklyLearningTime() models.WeeklyTime {
	now := s.clock.Now()
	start := StartOfWeek(now)
	var week models.WeeklyTime
	s.doc.Read(func(st state) {
		for _, sess := range st.Sessions {
			at := sess.StartTime.In(now.Location())
			if at.Before(start) || at.After(now) {
				continue
			}
			week[at.Weekday()] += sess.Duration
		}
	})
	return week
}

// CompletionRate is the rounded percentage of resources that are completed,
// or 0 without resources.
func (s *Store) CompletionRate() int {
	var done, total int
	s.doc.Read(func(st state) {
		total = len(st.Resources)
		for _, r := range st.Resources {
			if r.Completed {
				done++
			}
		}
	})
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
