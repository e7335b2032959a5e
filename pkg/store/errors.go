package store

import (
	"errors"

	"github.com/lifenav/lifenav/pkg/kv"
)

var (
	// ErrReadOnly is returned by mutators while the application is read-only.
	ErrReadOnly = kv.ErrReadOnly
	// ErrDanglingReference is returned under the Strict reference policy when
	// an entity points at an id that does not exist.
	ErrDanglingReference = errors.New("reference to unknown entity")
	// ErrCorruptDocument is returned when a persisted document cannot be decoded.
	ErrCorruptDocument = errors.New("persisted document cannot be decoded")
)
