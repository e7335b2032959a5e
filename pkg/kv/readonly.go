package kv

import "context"

// ReadOnly wraps a Backend and rejects writes while isReadOnly reports true.
//
// The read-only state is checked on every call, so the application can toggle
// it without reopening the backend. Reads always pass through.
type ReadOnly struct {
	Backend
	isReadOnly func() bool
}

func NewReadOnly(b Backend, isReadOnly func() bool) *ReadOnly {
	return &ReadOnly{Backend: b, isReadOnly: isReadOnly}
}

// Unwrap returns the underlying backend.
func (r *ReadOnly) Unwrap() Backend {
	return r.Backend
}

func (r *ReadOnly) checkReadOnly() error {
	if r.isReadOnly != nil && r.isReadOnly() {
		return ErrReadOnly
	}
	return nil
}

func (r *ReadOnly) Set(ctx context.Context, key string, value []byte) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Backend.Set(ctx, key, value)
}

func (r *ReadOnly) Delete(ctx context.Context, key string) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Backend.Delete(ctx, key)
}
