package lifenav

import (
	"context"
	"sync/atomic"

	"github.com/lifenav/lifenav/internal/codec"
	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/finance"
	"github.com/lifenav/lifenav/pkg/goals"
	"github.com/lifenav/lifenav/pkg/kv"
	"github.com/lifenav/lifenav/pkg/learning"
	"github.com/lifenav/lifenav/pkg/mood"
	"github.com/lifenav/lifenav/pkg/motivation"
	"github.com/lifenav/lifenav/pkg/profile"
	"github.com/lifenav/lifenav/pkg/social"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/lifenav/lifenav/pkg/tasks"
	"github.com/rs/zerolog"
)

// Config selects the backend and the shared settings of every store.
type Config struct {
	// Backend defaults to an in-memory backend.
	Backend kv.Backend
	// Codec defaults to JSON.
	Codec  codec.Codec
	Clock  clock.Clock
	Logger *zerolog.Logger
	// KeyPrefix defaults to store.DefaultKeyPrefix.
	KeyPrefix  string
	References store.ReferencePolicy
	ReadOnly   bool
	// SkipRecurring disables materializing recurring transactions in Open.
	SkipRecurring bool
}

// Navigator holds every store of the application over one backend.
type Navigator struct {
	Profile    *profile.Store
	Goals      *goals.Store
	Tasks      *tasks.Store
	Mood       *mood.Store
	Social     *social.Store
	Learning   *learning.Store
	Finance    *finance.Store
	Motivation *motivation.Store

	backend  *kv.ReadOnly
	clock    clock.Clock
	log      zerolog.Logger
	readOnly atomic.Bool
}

// Open loads every store from cfg.Backend. Unless cfg.SkipRecurring is set or
// the navigator is read-only, due recurring transactions are materialized
// before Open returns.
func Open(ctx context.Context, cfg Config) (*Navigator, error) {
	n := &Navigator{}
	n.readOnly.Store(cfg.ReadOnly)

	backend := cfg.Backend
	if backend == nil {
		backend = kv.NewMemory()
	}
	n.backend = kv.NewReadOnly(backend, n.readOnly.Load)

	opts := store.Options{
		Backend:    n.backend,
		Codec:      cfg.Codec,
		Clock:      cfg.Clock,
		Logger:     cfg.Logger,
		KeyPrefix:  cfg.KeyPrefix,
		References: cfg.References,
	}.WithDefaults()
	n.clock = opts.Clock
	n.log = opts.Logger.With().Str("component", "navigator").Logger()

	var err error
	if n.Profile, err = profile.New(ctx, opts); err != nil {
		return nil, &OpenError{Store: store.KeyUser, Err: err}
	}
	if n.Goals, err = goals.New(ctx, opts); err != nil {
		return nil, &OpenError{Store: store.KeyGoals, Err: err}
	}
	if n.Tasks, err = tasks.New(ctx, opts, n.Goals); err != nil {
		return nil, &OpenError{Store: store.KeyTasks, Err: err}
	}
	if n.Mood, err = mood.New(ctx, opts); err != nil {
		return nil, &OpenError{Store: store.KeyMood, Err: err}
	}
	if n.Social, err = social.New(ctx, opts); err != nil {
		return nil, &OpenError{Store: store.KeySocial, Err: err}
	}
	if n.Learning, err = learning.New(ctx, opts); err != nil {
		return nil, &OpenError{Store: store.KeyLearning, Err: err}
	}
	if n.Finance, err = finance.New(ctx, opts); err != nil {
		return nil, &OpenError{Store: store.KeyFinance, Err: err}
	}
	if n.Motivation, err = motivation.New(ctx, opts); err != nil {
		return nil, &OpenError{Store: store.KeyMotivation, Err: err}
	}

	n.log.Debug().
		Str("codec", opts.Codec.Name()).
		Str("references", opts.References.String()).
		Bool("read_only", cfg.ReadOnly).
		Msg("stores loaded")

	if !cfg.SkipRecurring && !cfg.ReadOnly {
		if _, err := n.Finance.ProcessRecurringTransactions(ctx); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// State returns the onboarding gate state.
func (n *Navigator) State() profile.State {
	return n.Profile.State()
}

// RequireOnboarded returns ErrNotOnboarded while the gate is closed.
func (n *Navigator) RequireOnboarded() error {
	if !n.Profile.IsOnboarded() {
		return ErrNotOnboarded
	}
	return nil
}

// SetReadOnly toggles rejecting writes. Mutations fail with store.ErrReadOnly
// and leave the in-memory state untouched while it is set.
func (n *Navigator) SetReadOnly(readOnly bool) {
	if n.readOnly.Swap(readOnly) != readOnly {
		n.log.Info().Bool("read_only", readOnly).Msg("read-only mode changed")
	}
}

func (n *Navigator) IsReadOnly() bool {
	return n.readOnly.Load()
}

// Backend returns the backend the stores write to, without the read-only guard.
func (n *Navigator) Backend() kv.Backend {
	return n.backend.Unwrap()
}

// Close closes the backend.
func (n *Navigator) Close() error {
	return n.backend.Close()
}
