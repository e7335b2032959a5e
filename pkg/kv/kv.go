// Package kv defines the key-value persistence boundary of the stores.
//
// Every store keeps its whole collection in one document under one key, so a
// backend only needs whole-value reads and writes. [Memory] serves tests and the
// in-memory mode; the sqlitekv subpackage persists to a local database file;
// [ReadOnly] rejects writes while the application is read-only.
package kv

import (
	"context"
	"errors"
)

// ErrReadOnly is returned by a [ReadOnly] backend for any write.
var ErrReadOnly = errors.New("operation denied: storage is read-only")

// Backend stores opaque values by key.
type Backend interface {
	// Get returns the value under key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
	Close() error
}
