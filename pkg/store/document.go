package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/lifenav/lifenav/internal/codec"
	"github.com/lifenav/lifenav/pkg/kv"
	"github.com/rs/zerolog"
)

// Document is the in-memory state of one store, written through to a single
// backend key on every change.
//
// If a write fails the state is restored from the last persisted encoding, so
// what readers see always matches what is stored.
type Document[T any] struct {
	mu        sync.RWMutex
	key       string
	backend   kv.Backend
	codec     codec.Codec
	log       zerolog.Logger
	init      func() T
	state     T
	persisted []byte
}

// Load reads the named document from the backend. A missing key starts from
// init().
func Load[T any](ctx context.Context, opts Options, name string, init func() T) (*Document[T], error) {
	opts = opts.WithDefaults()
	d := &Document[T]{
		key:     opts.Key(name),
		backend: opts.Backend,
		codec:   opts.Codec,
		log:     opts.Logger.With().Str("store", name).Str("key", opts.Key(name)).Logger(),
		init:    init,
	}

	data, ok, err := d.backend.Get(ctx, d.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", d.key, err)
	}
	if !ok {
		d.state = init()
		d.log.Debug().Msg("no persisted document, starting empty")
		return d, nil
	}
	state, err := d.decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", d.key, ErrCorruptDocument, err)
	}
	d.state = state
	d.persisted = data
	d.log.Debug().Int("bytes", len(data)).Msg("document loaded")
	return d, nil
}

func (d *Document[T]) decode(data []byte) (T, error) {
	state := d.init()
	if err := d.codec.Unmarshal(data, &state); err != nil {
		return d.init(), err
	}
	return state, nil
}

// Key returns the backend key of the document.
func (d *Document[T]) Key() string { return d.key }

// Logger returns the document's logger, tagged with the store name.
func (d *Document[T]) Logger() *zerolog.Logger { return &d.log }

// Read calls fn with the current state under a read lock. fn must not keep
// references into the state after it returns.
func (d *Document[T]) Read(fn func(state T)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(d.state)
}

// Update calls fn with the state under the write lock. fn reports whether it
// changed anything; if so the state is persisted before Update returns.
// An error from fn aborts the update and restores the state.
func (d *Document[T]) Update(ctx context.Context, fn func(state *T) (changed bool, err error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	changed, err := fn(&d.state)
	if err != nil {
		d.rollback()
		return err
	}
	if !changed {
		return nil
	}

	data, err := d.codec.Marshal(d.state)
	if err != nil {
		d.rollback()
		return fmt.Errorf("encode %s: %w", d.key, err)
	}
	if err := d.backend.Set(ctx, d.key, data); err != nil {
		d.log.Error().Err(err).Msg("persisting document failed, state restored")
		d.rollback()
		return fmt.Errorf("persist %s: %w", d.key, err)
	}
	d.persisted = data
	return nil
}

func (d *Document[T]) rollback() {
	if d.persisted == nil {
		d.state = d.init()
		return
	}
	state, err := d.decode(d.persisted)
	if err != nil {
		// The bytes were produced by this codec, so this only happens if
		// the encoding is not a round trip.
		d.log.Error().Err(err).Msg("restoring state failed")
	}
	d.state = state
}

// Reload discards the in-memory state and reads the backend again.
func (d *Document[T]) Reload(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, ok, err := d.backend.Get(ctx, d.key)
	if err != nil {
		return fmt.Errorf("reload %s: %w", d.key, err)
	}
	if !ok {
		d.state, d.persisted = d.init(), nil
		return nil
	}
	state, err := d.decode(data)
	if err != nil {
		return fmt.Errorf("reload %s: %w: %w", d.key, ErrCorruptDocument, err)
	}
	d.state, d.persisted = state, data
	return nil
}
