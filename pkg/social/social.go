// Package social keeps the user's connections and tells which ones are due
// for contact.
package social

import (
	"context"
	"time"

	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

type Store struct {
	doc   *store.Document[[]models.SocialConnection]
	log   *zerolog.Logger
	clock clock.Clock
}

func New(ctx context.Context, opts store.Options) (*Store, error) {
	opts = opts.WithDefaults()
	doc, err := store.Load(ctx, opts, store.KeySocial, func() []models.SocialConnection { return []models.SocialConnection{} })
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger(), clock: opts.Clock}, nil
}

func index(conns []models.SocialConnection, id string) int {
	for i := range conns {
		if conns[i].ID == id {
			return i
		}
	}
	return -1
}

// AddConnection stores a new connection. New connections come first.
func (s *Store) AddConnection(ctx context.Context, in models.ConnectionInput) (*models.SocialConnection, error) {
	c := models.SocialConnection{
		ID:               models.NewID(models.PrefixConnection),
		Name:             in.Name,
		Relationship:     in.Relationship,
		LastContact:      in.LastContact,
		ContactFrequency: in.ContactFrequency,
		Notes:            in.Notes,
		Avatar:           in.Avatar,
	}.Clone()
	err := s.doc.Update(ctx, func(conns *[]models.SocialConnection) (bool, error) {
		*conns = append([]models.SocialConnection{c}, *conns...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	out := c.Clone()
	return &out, nil
}

// UpdateConnection merges p into the connection. It returns nil for an unknown id.
func (s *Store) UpdateConnection(ctx context.Context, id string, p models.ConnectionPatch) (*models.SocialConnection, error) {
	return s.mutate(ctx, id, func(c *models.SocialConnection) { p.Apply(c) })
}

// UpdateLastContact records a contact at the given time, or now when at is nil.
func (s *Store) UpdateLastContact(ctx context.Context, id string, at *time.Time) (*models.SocialConnection, error) {
	when := s.clock.Now()
	if at != nil && !at.IsZero() {
		when = *at
	}
	return s.mutate(ctx, id, func(c *models.SocialConnection) { c.LastContact = &when })
}

func (s *Store) mutate(ctx context.Context, id string, fn func(*models.SocialConnection)) (*models.SocialConnection, error) {
	var out *models.SocialConnection
	err := s.doc.Update(ctx, func(conns *[]models.SocialConnection) (bool, error) {
		i := index(*conns, id)
		if i < 0 {
			return false, nil
		}
		fn(&(*conns)[i])
		c := (*conns)[i].Clone()
		out = &c
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("id", id).Msg("connection not found")
	}
	return out, nil
}

// DeleteConnection removes the connection and reports whether it existed.
func (s *Store) DeleteConnection(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(conns *[]models.SocialConnection) (bool, error) {
		i := index(*conns, id)
		if i < 0 {
			return false, nil
		}
		*conns = append((*conns)[:i], (*conns)[i+1:]...)
		found = true
		return true, nil
	})
	return found && err == nil, err
}

// Connection returns the connection with the given id, or nil.
func (s *Store) Connection(id string) *models.SocialConnection {
	var out *models.SocialConnection
	s.doc.Read(func(conns []models.SocialConnection) {
		if i := index(conns, id); i >= 0 {
			c := conns[i].Clone()
			out = &c
		}
	})
	return out
}

func (s *Store) Connections() []models.SocialConnection {
	return s.filter(func(models.SocialConnection) bool { return true })
}

func (s *Store) ConnectionsByRelationship(r models.Relationship) []models.SocialConnection {
	return s.filter(func(c models.SocialConnection) bool { return c.Relationship == r })
}

// ConnectionsDueForContact returns the connections that have never been
// contacted or whose contact interval has elapsed.
func (s *Store) ConnectionsDueForContact() []models.SocialConnection {
	now := s.clock.Now()
	return s.filter(func(c models.SocialConnection) bool { return c.DueForContact(now) })
}

func (s *Store) filter(keep func(models.SocialConnection) bool) []models.SocialConnection {
	out := []models.SocialConnection{}
	s.doc.Read(func(conns []models.SocialConnection) {
		for _, c := range conns {
			if keep(c) {
				out = append(out, c.Clone())
			}
		}
	})
	return out
}
