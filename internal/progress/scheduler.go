package progress

import (
	"context"
	"sync"
	"time"

	"github.com/blackwell-systems/gameverse/internal/clock"
)

// Scheduler refreshes the challenge generation when it expires. It keeps a
// single pending timer, armed for the current generation's expiry.
type Scheduler struct {
	store *Store
	clock clock.Clock

	mu      sync.Mutex
	timer   clock.Timer
	next    time.Time
	stopped bool
}

// NewScheduler creates a scheduler for store. It does nothing until Start.
func NewScheduler(store *Store, c clock.Clock) *Scheduler {
	if c == nil {
		c = clock.Real{}
	}
	return &Scheduler{store: store, clock: c}
}

// Start refreshes a stale generation immediately and arms the timer.
func (s *Scheduler) Start() {
	s.mu.Lock()
	s.stopped = false
	s.mu.Unlock()
	s.fire()
}

// Run starts the scheduler and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return ctx.Err()
}

// Stop cancels the pending timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.next = time.Time{}
}

// NextRun returns when the timer will fire, or zero when stopped.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

func (s *Scheduler) fire() {
	// Other processes may have written since the last read.
	s.store.Reload()
	s.store.RefreshIfExpired()
	s.arm()
}

func (s *Scheduler) arm() {
	now := s.clock.Now()
	target := NextMidnight(now)
	if snap := s.store.Snapshot(); len(snap.Challenges) > 0 {
		if exp := snap.Challenges[0].ExpiresAt; exp.After(now) {
			target = exp
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.next = target
	s.timer = s.clock.AfterFunc(target.Sub(now), s.fire)
}
