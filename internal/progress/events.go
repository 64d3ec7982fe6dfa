package progress

import (
	"sort"
	"time"
)

// EventKind identifies a store state change.
type EventKind string

const (
	BadgeUnlocked       EventKind = "badge_unlocked"
	ChallengeCompleted  EventKind = "challenge_completed"
	ChallengesRefreshed EventKind = "challenges_refreshed"
	DataReset           EventKind = "data_reset"
	DataImported        EventKind = "data_imported"
)

// Event describes one state change. ID and Title are empty for document-wide
// events; Coins is set for completed challenges.
type Event struct {
	Kind  EventKind
	ID    string
	Title string
	Coins int
	At    time.Time
}

// Subscribe registers fn for every subsequent event. Listeners run on the
// mutating goroutine after the store lock is released, so they may call
// back into the store. The returned func unregisters fn.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextListener++
	id := s.nextListener
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) listenersLocked() []func(Event) {
	if len(s.listeners) == 0 {
		return nil
	}
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(Event), len(ids))
	for i, id := range ids {
		out[i] = s.listeners[id]
	}
	return out
}

func emit(listeners []func(Event), events []Event) {
	for _, ev := range events {
		for _, fn := range listeners {
			fn(ev)
		}
	}
}
