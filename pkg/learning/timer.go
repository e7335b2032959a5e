package learning

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lifenav/lifenav/pkg/models"
)

// DefaultTickInterval is how often a running timer refreshes its elapsed time.
const DefaultTickInterval = time.Second

// ErrTimerStopped is returned by End on a timer that already ended or was canceled.
var ErrTimerStopped = errors.New("learning timer already stopped")

// Timer measures one study session on a resource. Nothing is stored until End;
// a timer that is canceled, or whose context ends first, loses its time.
type Timer struct {
	store      *Store
	resourceID string
	start      time.Time

	mu      sync.Mutex
	elapsed time.Duration
	stopped bool

	ticks chan time.Duration
	stop  chan struct{}
	done  chan struct{}
}

// StartSession starts a timer for the resource. interval <= 0 selects
// DefaultTickInterval. It returns nil for an unknown resource.
func (s *Store) StartSession(ctx context.Context, resourceID string, interval time.Duration) *Timer {
	if s.Resource(resourceID) == nil {
		s.log.Debug().Str("id", resourceID).Msg("resource not found, timer not started")
		return nil
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	t := &Timer{
		store:      s,
		resourceID: resourceID,
		start:      s.clock.Now(),
		ticks:      make(chan time.Duration, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go t.run(ctx, interval)
	return t
}

func (t *Timer) run(ctx context.Context, interval time.Duration) {
	defer close(t.done)
	defer close(t.ticks)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.mu.Lock()
			t.stopped = true
			t.mu.Unlock()
			return
		case <-t.stop:
			return
		case <-ticker.C:
			elapsed := t.store.clock.Now().Sub(t.start)
			t.mu.Lock()
			t.elapsed = elapsed
			t.mu.Unlock()
			// Readers that fall behind only miss intermediate values.
			select {
			case t.ticks <- elapsed:
			default:
			}
		}
	}
}

// ResourceID returns the resource the timer runs for.
func (t *Timer) ResourceID() string { return t.resourceID }

// StartTime returns when the timer was started.
func (t *Timer) StartTime() time.Time { return t.start }

// Elapsed returns the elapsed time as of the latest tick.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Ticks delivers the elapsed time on every tick. It is closed once the timer
// stops.
func (t *Timer) Ticks() <-chan time.Duration { return t.ticks }

// Done is closed once the timer has stopped ticking.
func (t *Timer) Done() <-chan struct{} { return t.done }

func (t *Timer) halt() bool {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return false
	}
	t.stopped = true
	t.mu.Unlock()
	close(t.stop)
	<-t.done
	return true
}

// End stops the timer, stores the session with its duration in whole seconds
// and adds SessionProgress to the resource.
func (t *Timer) End(ctx context.Context, notes string) (*models.LearningSession, error) {
	if !t.halt() {
		return nil, ErrTimerStopped
	}
	sess := models.LearningSession{
		ID:         models.NewID(models.PrefixSession),
		ResourceID: t.resourceID,
		StartTime:  t.start,
		Duration:   int64(t.store.clock.Now().Sub(t.start) / time.Second),
		Notes:      notes,
	}
	if err := t.store.commitSession(ctx, sess, SessionProgress); err != nil {
		return nil, err
	}
	t.store.log.Debug().Str("id", sess.ID).Str("resource", t.resourceID).Int64("seconds", sess.Duration).Msg("session recorded")
	return &sess, nil
}

// Cancel stops the timer without storing anything.
func (t *Timer) Cancel() {
	t.halt()
}
