package learning

import (
	"context"

	"github.com/lifenav/lifenav/pkg/models"
)

func noteIndex(st *state, id string) int {
	for i := range st.Notes {
		if st.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) AddNote(ctx context.Context, in models.NoteInput) (*models.LearningNote, error) {
	n := models.LearningNote{
		ID:         models.NewID(models.PrefixNote),
		ResourceID: in.ResourceID,
		Content:    in.Content,
		CreatedAt:  s.clock.Now(),
		Tags:       in.Tags,
	}.Clone()
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		if err := s.checkResource(st, in.ResourceID); err != nil {
			return false, err
		}
		st.Notes = append(st.Notes, n)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	out := n.Clone()
	return &out, nil
}

// UpdateNote merges p into the note. It returns nil for an unknown id.
func (s *Store) UpdateNote(ctx context.Context, id string, p models.NotePatch) (*models.LearningNote, error) {
	var out *models.LearningNote
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := noteIndex(st, id)
		if i < 0 {
			return false, nil
		}
		p.Apply(&st.Notes[i])
		n := st.Notes[i].Clone()
		out = &n
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeleteNote(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := noteIndex(st, id)
		if i < 0 {
			return false, nil
		}
		st.Notes = append(st.Notes[:i], st.Notes[i+1:]...)
		found = true
		return true, nil
	})
	return found && err == nil, err
}

func (s *Store) Notes() []models.LearningNote {
	return s.notes(func(models.LearningNote) bool { return true })
}

func (s *Store) NotesByResource(resourceID string) []models.LearningNote {
	return s.notes(func(n models.LearningNote) bool { return n.ResourceID == resourceID })
}

func (s *Store) notes(keep func(models.LearningNote) bool) []models.LearningNote {
	out := []models.LearningNote{}
	s.doc.Read(func(st state) {
		for _, n := range st.Notes {
			if keep(n) {
				out = append(out, n.Clone())
			}
		}
	})
	return out
}
