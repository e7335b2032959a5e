package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntN(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := Default().IntN(4)
		assert.True(t, v >= 0 && v < 4, v)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestNewSeeded(t *testing.T) {
	a, b := NewSeeded(1, 2), NewSeeded(1, 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}
