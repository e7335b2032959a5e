// Package mock provides a kv.Backend whose writes can be made to fail.
package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/lifenav/lifenav/pkg/kv"
)

var ErrInjected = errors.New("injected backend failure")

// Backend is an in-memory kv.Backend with switchable failures.
type Backend struct {
	*kv.Memory

	mu        sync.Mutex
	failSet   bool
	failGet   bool
	setCalls  int
	lastKey   string
	failAfter int
}

func Create() *Backend {
	return &Backend{Memory: kv.NewMemory(), failAfter: -1}
}

// FailWrites makes every following Set and Delete return ErrInjected.
func (b *Backend) FailWrites(fail bool) {
	b.mu.Lock()
	b.failSet = fail
	b.mu.Unlock()
}

// FailReads makes every following Get return ErrInjected.
func (b *Backend) FailReads(fail bool) {
	b.mu.Lock()
	b.failGet = fail
	b.mu.Unlock()
}

// FailAfter lets n more writes succeed and fails the rest.
func (b *Backend) FailAfter(n int) {
	b.mu.Lock()
	b.failAfter = n
	b.mu.Unlock()
}

// SetCalls returns the number of Set calls seen, failed ones included.
func (b *Backend) SetCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setCalls
}

// LastKey returns the key of the latest Set call.
func (b *Backend) LastKey() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastKey
}

func (b *Backend) writeErr() error {
	if b.failSet {
		return ErrInjected
	}
	if b.failAfter == 0 {
		return ErrInjected
	}
	if b.failAfter > 0 {
		b.failAfter--
	}
	return nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	fail := b.failGet
	b.mu.Unlock()
	if fail {
		return nil, false, ErrInjected
	}
	return b.Memory.Get(ctx, key)
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	b.setCalls++
	b.lastKey = key
	err := b.writeErr()
	b.mu.Unlock()
	if err != nil {
		return err
	}
	return b.Memory.Set(ctx, key, value)
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	err := b.writeErr()
	b.mu.Unlock()
	if err != nil {
		return err
	}
	return b.Memory.Delete(ctx, key)
}
