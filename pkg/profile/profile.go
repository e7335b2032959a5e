// Package profile holds the single local user and the onboarding flag that
// gates the rest of the application.
package profile

import (
	"context"

	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

// State is the onboarding gate.
type State string

const (
	NotOnboarded State = "not-onboarded"
	Onboarded    State = "onboarded"
)

type state struct {
	User      *models.User `json:"user"`
	Onboarded bool         `json:"is_onboarded"`
}

type Store struct {
	doc   *store.Document[state]
	log   *zerolog.Logger
	clock clock.Clock
}

func New(ctx context.Context, opts store.Options) (*Store, error) {
	opts = opts.WithDefaults()
	doc, err := store.Load(ctx, opts, store.KeyUser, func() state { return state{} })
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger(), clock: opts.Clock}, nil
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// SetUser replaces the user. A nil user clears it.
func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	return s.doc.Update(ctx, func(st *state) (bool, error) {
		st.User = copyUser(u)
		return true, nil
	})
}

// UpdateUser merges p into the user. Without a user it does nothing and
// returns nil.
func (s *Store) UpdateUser(ctx context.Context, p models.UserPatch) (*models.User, error) {
	var out *models.User
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		if st.User == nil {
			return false, nil
		}
		p.Apply(st.User)
		out = copyUser(st.User)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Msg("no user to update")
	}
	return out, nil
}

func (s *Store) SetOnboarded(ctx context.Context, onboarded bool) error {
	return s.doc.Update(ctx, func(st *state) (bool, error) {
		if st.Onboarded == onboarded {
			return false, nil
		}
		st.Onboarded = onboarded
		return true, nil
	})
}

// CompleteOnboarding creates the user and opens the gate in one write.
func (s *Store) CompleteOnboarding(ctx context.Context, name, email string) (*models.User, error) {
	u := &models.User{
		ID:        models.NewID(models.PrefixUser),
		Name:      name,
		Email:     email,
		CreatedAt: s.clock.Now(),
	}
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.User = copyUser(u)
		st.Onboarded = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", u.ID).Msg("onboarding completed")
	return u, nil
}

// Logout forgets the user and closes the gate. Data in the other stores is kept.
func (s *Store) Logout(ctx context.Context) error {
	return s.doc.Update(ctx, func(st *state) (bool, error) {
		st.User = nil
		st.Onboarded = false
		return true, nil
	})
}

// User returns the current user, or nil.
func (s *Store) User() *models.User {
	var out *models.User
	s.doc.Read(func(st state) { out = copyUser(st.User) })
	return out
}

func (s *Store) IsOnboarded() bool {
	var onboarded bool
	s.doc.Read(func(st state) { onboarded = st.Onboarded })
	return onboarded
}

func (s *Store) State() State {
	if s.IsOnboarded() {
		return Onboarded
	}
	return NotOnboarded
}
