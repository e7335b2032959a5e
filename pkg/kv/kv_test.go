package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "pln-goals")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`[]`)
	require.NoError(t, m.Set(ctx, "pln-goals", value))
	require.NoError(t, m.Set(ctx, "pln-tasks", []byte(`[{}]`)))
	value[0] = 'x'

	got, ok, err := m.Get(ctx, "pln-goals")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got), "stored values must not alias the caller's slice")

	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pln-goals", "pln-tasks"}, keys)

	require.NoError(t, m.Delete(ctx, "pln-goals"))
	require.NoError(t, m.Delete(ctx, "pln-goals"))
	_, ok, err = m.Get(ctx, "pln-goals")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_zeroValue(t *testing.T) {
	var m Memory
	require.NoError(t, m.Set(context.Background(), "k", []byte("v")))
	got, ok, err := m.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))
}

func TestMemory_canceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemory()
	assert.ErrorIs(t, m.Set(ctx, "k", nil), context.Canceled)
	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadOnly(t *testing.T) {
	ctx := context.Background()
	readOnly := false
	inner := NewMemory()
	b := NewReadOnly(inner, func() bool { return readOnly })

	require.NoError(t, b.Set(ctx, "k", []byte("v1")))

	readOnly = true
	assert.ErrorIs(t, b.Set(ctx, "k", []byte("v2")), ErrReadOnly)
	assert.ErrorIs(t, b.Delete(ctx, "k"), ErrReadOnly)

	got, ok, err := b.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", string(got))

	readOnly = false
	require.NoError(t, b.Delete(ctx, "k"))
	assert.Same(t, inner, b.Unwrap())
}
