package learning

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
)

func sessionIndex(st *state, id string) int {
	for i := range st.Sessions {
		if st.Sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// AddSession records a finished session. A zero start time means now.
func (s *Store) AddSession(ctx context.Context, in models.SessionInput) (*models.LearningSession, error) {
	sess := models.LearningSession{
		ID:         models.NewID(models.PrefixSession),
		ResourceID: in.ResourceID,
		StartTime:  in.StartTime,
		Duration:   in.Duration,
		Notes:      in.Notes,
	}
	if sess.StartTime.IsZero() {
		sess.StartTime = s.clock.Now()
	}
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		if err := s.checkResource(st, in.ResourceID); err != nil {
			return false, err
		}
		st.Sessions = append(st.Sessions, sess)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// commitSession stores a timer session and credits its resource in one write.
func (s *Store) commitSession(ctx context.Context, sess models.LearningSession, progress int) error {
	return s.doc.Update(ctx, func(st *state) (bool, error) {
		if err := s.checkResource(st, sess.ResourceID); err != nil {
			return false, err
		}
		st.Sessions = append(st.Sessions, sess)
		if i := resourceIndex(st, sess.ResourceID); i >= 0 {
			st.Resources[i].AddProgress(progress)
		}
		return true, nil
	})
}

// UpdateSession merges p into the session. It returns nil for an unknown id.
func (s *Store) UpdateSession(ctx context.Context, id string, p models.SessionPatch) (*models.LearningSession, error) {
	var out *models.LearningSession
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := sessionIndex(st, id)
		if i < 0 {
			return false, nil
		}
		p.Apply(&st.Sessions[i])
		sess := st.Sessions[i]
		out = &sess
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := sessionIndex(st, id)
		if i < 0 {
			return false, nil
		}
		st.Sessions = append(st.Sessions[:i], st.Sessions[i+1:]...)
		found = true
		return true, nil
	})
	return found && err == nil, err
}

func (s *Store) Sessions() []models.LearningSession {
	return s.sessions(func(models.LearningSession) bool { return true })
}

func (s *Store) SessionsByResource(resourceID string) []models.LearningSession {
	return s.sessions(func(sess models.LearningSession) bool { return sess.ResourceID == resourceID })
}

func (s *Store) sessions(keep func(models.LearningSession) bool) []models.LearningSession {
	out := []models.LearningSession{}
	s.doc.Read(func(st state) {
		for _, sess := range st.Sessions {
			if keep(sess) {
				out = append(out, sess)
			}
		}
	})
	return out
}
