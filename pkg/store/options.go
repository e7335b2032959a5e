// Package store holds what every domain store shares: the options they are
// built from and the write-through [Document] that owns their state.
package store

import (
	"github.com/lifenav/lifenav/internal/codec"
	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/kv"
	"github.com/rs/zerolog"
)

// DefaultKeyPrefix namespaces every document key.
const DefaultKeyPrefix = "pln-"

// Document names. The stored key is KeyPrefix + name.
const (
	KeyUser       = "user"
	KeyGoals      = "goals"
	KeyTasks      = "tasks"
	KeyMood       = "mood"
	KeySocial     = "social"
	KeyLearning   = "learning"
	KeyFinance    = "finance"
	KeyMotivation = "motivation"
)

// ReferencePolicy controls what happens when an entity refers to an id that
// does not exist, such as a task whose goal was deleted.
type ReferencePolicy int

const (
	// Permissive stores dangling references as given.
	Permissive ReferencePolicy = iota
	// Strict rejects them with ErrDanglingReference.
	Strict
)

func (p ReferencePolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "permissive"
}

// Options configure a store. Zero fields get defaults from WithDefaults.
type Options struct {
	Backend    kv.Backend
	Codec      codec.Codec
	Clock      clock.Clock
	Logger     *zerolog.Logger
	KeyPrefix  string
	References ReferencePolicy
}

// WithDefaults fills the unset fields: an in-memory backend, JSON, the system
// clock, a no-op logger and DefaultKeyPrefix.
func (o Options) WithDefaults() Options {
	if o.Backend == nil {
		o.Backend = kv.NewMemory()
	}
	if o.Codec == nil {
		o.Codec = codec.JSON{}
	}
	if o.Clock == nil {
		o.Clock = clock.System{}
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.KeyPrefix == "" {
		o.KeyPrefix = DefaultKeyPrefix
	}
	return o
}

// Key returns the backend key of the named document.
func (o Options) Key(name string) string {
	return o.KeyPrefix + name
}
