// Package rand is a mutex guarded PCG source seeded from crypto/rand.
package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

const bytesInUint64 = 8

// Source is safe for concurrent use.
type Source struct {
	mut sync.Mutex
	rng *rand.Rand
}

var defaultSource = newSource()

func newSource() *Source {
	seed := make([]byte, bytesInUint64*2)
	if _, err := cryptorand.Read(seed); err != nil {
		panic("unreachable")
	}
	return NewSeeded(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
}

// NewSeeded returns a deterministic source, for tests.
func NewSeeded(seed1, seed2 uint64) *Source {
	//nolint:gosec // no security required
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Default returns the process wide source.
func Default() *Source { return defaultSource }

// IntN returns a number in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.rng.IntN(n)
}
