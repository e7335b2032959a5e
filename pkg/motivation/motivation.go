// Package motivation stores quotes, articles and other uplifting content,
// with a list of favorites and a random pick for the home screen.
package motivation

import (
	"context"

	"github.com/lifenav/lifenav/internal/rand"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

type state struct {
	Content   []models.MotivationalContent `json:"content"`
	Favorites []string                     `json:"favorites"`
}

func newState() state {
	return state{Content: []models.MotivationalContent{}, Favorites: []string{}}
}

// Picker chooses an index in [0, n).
type Picker interface {
	IntN(n int) int
}

type Store struct {
	doc  *store.Document[state]
	log  *zerolog.Logger
	pick Picker
}

func New(ctx context.Context, opts store.Options) (*Store, error) {
	doc, err := store.Load(ctx, opts, store.KeyMotivation, newState)
	if err != nil {
		return nil, err
	}
	return &Store{doc: doc, log: doc.Logger(), pick: rand.Default()}, nil
}

// WithPicker replaces the random source, for deterministic picks.
func (s *Store) WithPicker(p Picker) *Store {
	s.pick = p
	return s
}

func index(content []models.MotivationalContent, id string) int {
	for i := range content {
		if content[i].ID == id {
			return i
		}
	}
	return -1
}

func favoriteIndex(favs []string, id string) int {
	for i, f := range favs {
		if f == id {
			return i
		}
	}
	return -1
}

// AddContent stores new content. New content comes first.
func (s *Store) AddContent(ctx context.Context, in models.ContentInput) (*models.MotivationalContent, error) {
	c := models.MotivationalContent{
		ID:       models.NewID(models.PrefixContent),
		Type:     in.Type,
		Title:    in.Title,
		Content:  in.Content,
		Author:   in.Author,
		ImageURL: in.ImageURL,
		URL:      in.URL,
		Category: in.Category,
	}
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		st.Content = append([]models.MotivationalContent{c}, st.Content...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContent merges p into the content. It returns nil for an unknown id.
func (s *Store) UpdateContent(ctx context.Context, id string, p models.ContentPatch) (*models.MotivationalContent, error) {
	var out *models.MotivationalContent
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := index(st.Content, id)
		if i < 0 {
			return false, nil
		}
		p.Apply(&st.Content[i])
		c := st.Content[i]
		out = &c
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.log.Debug().Str("id", id).Msg("content not found")
	}
	return out, nil
}

// DeleteContent removes the content and drops it from the favorites.
func (s *Store) DeleteContent(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		i := index(st.Content, id)
		if i < 0 {
			return false, nil
		}
		st.Content = append(st.Content[:i], st.Content[i+1:]...)
		if f := favoriteIndex(st.Favorites, id); f >= 0 {
			st.Favorites = append(st.Favorites[:f], st.Favorites[f+1:]...)
		}
		found = true
		return true, nil
	})
	return found && err == nil, err
}

// ToggleFavorite adds the id to the favorites or removes it, and reports
// whether it is a favorite afterwards. Any id is accepted, stored or not.
func (s *Store) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	var fav bool
	err := s.doc.Update(ctx, func(st *state) (bool, error) {
		if f := favoriteIndex(st.Favorites, id); f >= 0 {
			st.Favorites = append(st.Favorites[:f], st.Favorites[f+1:]...)
			fav = false
		} else {
			st.Favorites = append(st.Favorites, id)
			fav = true
		}
		return true, nil
	})
	return fav && err == nil, err
}

// Content returns the content with the given id, or nil.
func (s *Store) Content(id string) *models.MotivationalContent {
	var out *models.MotivationalContent
	s.doc.Read(func(st state) {
		if i := index(st.Content, id); i >= 0 {
			c := st.Content[i]
			out = &c
		}
	})
	return out
}

func (s *Store) All() []models.MotivationalContent {
	return s.filter(func(models.MotivationalContent, []string) bool { return true })
}

func (s *Store) ContentByType(t models.ContentType) []models.MotivationalContent {
	return s.filter(func(c models.MotivationalContent, _ []string) bool { return c.Type == t })
}

func (s *Store) ContentByCategory(category string) []models.MotivationalContent {
	return s.filter(func(c models.MotivationalContent, _ []string) bool { return c.Category == category })
}

// Favorites returns the favorite content in stored order.
func (s *Store) Favorites() []models.MotivationalContent {
	return s.filter(func(c models.MotivationalContent, favs []string) bool { return favoriteIndex(favs, c.ID) >= 0 })
}

// Random picks one item, of the given type when typ is not empty. It returns
// nil when nothing matches.
func (s *Store) Random(typ models.ContentType) *models.MotivationalContent {
	candidates := s.All()
	if typ != "" {
		candidates = s.ContentByType(typ)
	}
	if len(candidates) == 0 {
		return nil
	}
	c := candidates[s.pick.IntN(len(candidates))]
	return &c
}

func (s *Store) filter(keep func(models.MotivationalContent, []string) bool) []models.MotivationalContent {
	out := []models.MotivationalContent{}
	s.doc.Read(func(st state) {
		for _, c := range st.Content {
			if keep(c, st.Favorites) {
				out = append(out, c)
			}
		}
	})
	return out
}
