// Package learning tracks learning resources, the timed sessions spent on
// them and the notes taken along the way.
package learning

import (
	"context"
	"fmt"

	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

// SessionProgress is the progress, in percentage points, that every finished
// timer session adds to its resource.
const SessionProgress = 5

type state struct {
	Resources []models.LearningResource `json:"resources"`
	Sessions  []models.LearningSession  `json:"sessions"`
	Notes     []models.LearningNote     `json:"notes"`
}

func newState() state {
	return state{
		Resources: []models.LearningResource{},
		Sessions:  []models.LearningSession{},
		Notes:     []models.LearningNote{},
	}
}

type Store struct {
	doc    *store.Document[state]
	log    *zerolog.Logger
	clock  clock.Clock
	policy store.ReferencePolicy
}

func New(ctx context.Context, opts store.Options) (*Store, error) {
	opts = opts.WithDefaults()
	doc, err := store.Load(ctx, opts, store.KeyLearning, newState)
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger(), clock: opts.Clock, policy: opts.References}, nil
}

func resourceIndex(st *state, id string) int {
	for i := range st.Resources {
		if st.Resources[i].ID == id {
			return i
		}
	}
	return -1
}

// checkResource enforces the reference policy for sessions and notes.
func (s *Store) checkResource(st *state, id string) error {
	if s.policy != store.Strict || resourceIndex(st, id) >= 0 {
		return nil
	}
	return fmt.Errorf("resource %q: %w", id, store.ErrDanglingReference)
}

// AddResource stores a new resource with no progress. Resources keep insertion order.
func (s *Store) AddResource(ctx context.Context, in models.ResourceInput) (*models.LearningResource, error) {
	r := models.LearningResource{
		ID:           models.NewID(models.PrefixResource),
		Title:        in.Title,
		Type:         in.Type,
		URL:          in.URL,
		Description:  in.Description,
		Category:     in.Category,
		Duration:     in.Duration,
		ImageURL:     in.ImageURL,
		Priority:     in.Priority,
		ReminderDate: in.ReminderDate,
		CreatedAt:    s.clock.Now(),
	}.Clone()
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.Resources = append(st.Resources, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	out := r.Clone()
	return &out, nil
}

// UpdateResource merges p into the resource. It returns nil for an unknown id.
func (s *Store) UpdateResource(ctx context.Context, id string, p models.ResourcePatch) (*models.LearningResource, error) {
	return s.mutateResource(ctx, id, func(r *models.LearningResource) { p.Apply(r) })
}

// ToggleFavorite flips the resource's favorite flag.
func (s *Store) ToggleFavorite(ctx context.Context, id string) (*models.LearningResource, error) {
	return s.mutateResource(ctx, id, func(r *models.LearningResource) { r.Favorite = !r.Favorite })
}

// UpdateProgress adds inc percentage points, capped at 100. Reaching 100
// completes the resource.
func (s *Store) UpdateProgress(ctx context.Context, id string, inc int) (*models.LearningResource, error) {
	return s.mutateResource(ctx, id, func(r *models.LearningResource) { r.AddProgress(inc) })
}

// MarkCompleted sets the completed flag. Completing also sets progress to 100;
// reopening leaves progress alone.
func (s *Store) MarkCompleted(ctx context.Context, id string, completed bool) (*models.LearningResource, error) {
	return s.mutateResource(ctx, id, func(r *models.LearningResource) {
		r.Completed = completed
		if completed {
			r.Progress = 100
		}
	})
}

func (s *Store) mutateResource(ctx context.Context, id string, fn func(*models.LearningResource)) (*models.LearningResource, error) {
	var out *models.LearningResource
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := resourceIndex(st, id)
		if i < 0 {
			return false, nil
		}
		fn(&st.Resources[i])
		r := st.Resources[i].Clone()
		out = &r
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("id", id).Msg("resource not found")
	}
	return out, nil
}

// DeleteResource removes the resource together with its sessions and notes.
func (s *Store) DeleteResource(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := resourceIndex(st, id)
		if i < 0 {
			return false, nil
		}
		st.Resources = append(st.Resources[:i], st.Resources[i+1:]...)

		sessions := st.Sessions[:0]
		for _, sess := range st.Sessions {
			if sess.ResourceID != id {
				sessions = append(sessions, sess)
			}
		}
		st.Sessions = sessions

		notes := st.Notes[:0]
		for _, n := range st.Notes {
			if n.ResourceID != id {
				notes = append(notes, n)
			}
		}
		st.Notes = notes
		found = true
		return true, nil
	})
	if err == nil && found {
		s.log.Debug().Str("id", id).Msg("resource deleted with its sessions and notes")
	}
	return found && err == nil, err
}

// Resource returns the resource with the given id, or nil.
func (s *Store) Resource(id string) *models.LearningResource {
	var out *models.LearningResource
	s.doc.Read(func(st state) {
		if i := resourceIndex(&st, id); i >= 0 {
			r := st.Resources[i].Clone()
			out = &r
		}
	})
	return out
}

func (s *Store) Resources() []models.LearningResource {
	return s.resources(func(models.LearningResource) bool { return true })
}

func (s *Store) Favorites() []models.LearningResource {
	return s.resources(func(r models.LearningResource) bool { return r.Favorite })
}

func (s *Store) ResourcesByCategory(category string) []models.LearningResource {
	return s.resources(func(r models.LearningResource) bool { return r.Category == category })
}

func (s *Store) ResourcesByType(t models.ResourceType) []models.LearningResource {
	return s.resources(func(r models.LearningResource) bool { return r.Type == t })
}

func (s *Store) resources(keep func(models.LearningResource) bool) []models.LearningResource {
	out := []models.LearningResource{}
	s.doc.Read(func(st state) {
		for _, r := range st.Resources {
			if keep(r) {
				out = append(out, r.Clone())
			}
		}
	})
	return out
}
