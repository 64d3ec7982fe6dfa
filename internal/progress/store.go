// Package progress owns the persisted progress document: per-game stats,
// badges, daily challenges and session counters. All reads return deep
// copies and all writes go through the Store's named operations.
package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/clock"
	"github.com/blackwell-systems/gameverse/internal/model"
	"github.com/blackwell-systems/gameverse/internal/rules"
	"github.com/blackwell-systems/gameverse/internal/storage"
)

// Store is the single owner of the progress document.
type Store struct {
	kv     storage.KV
	clock  clock.Clock
	logger *slog.Logger
	eval   *rules.Evaluator

	mu              sync.Mutex
	doc             model.GameData
	persistFailures int
	detached        bool
	unsaved         bool
	listeners       map[int]func(Event)
	nextListener    int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source. Defaults to the system clock.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger for load and persistence problems.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEvaluator replaces the built-in rule evaluator.
func WithEvaluator(e *rules.Evaluator) Option {
	return func(s *Store) { s.eval = e }
}

// New creates a Store holding the default document. Call Load to read the
// persisted state.
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		clock:     clock.Real{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		listeners: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.eval == nil {
		s.eval = rules.NewEvaluator(rules.WithLogger(s.logger))
	}
	s.doc = DefaultDocument(s.clock.Now())
	return s
}

// Load reads the persisted document and merges it with the current catalog.
// A missing, unreadable or malformed document yields the default document.
// The merged result is written back, except after a read error: the store
// then works in memory only until a later Load, Reset or Import succeeds.
// Replacing a stale challenge generation emits ChallengesRefreshed.
func (s *Store) Load() {
	s.mu.Lock()
	events := s.loadLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()
	emit(listeners, events)
}

// Reload is Load for a long-running process sharing the document with
// others. It keeps the in-memory document while it holds changes that
// failed to persist.
func (s *Store) Reload() {
	s.mu.Lock()
	if s.unsaved {
		s.mu.Unlock()
		s.logger.Debug("reload skipped, unsaved changes in memory")
		return
	}
	events := s.loadLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()
	emit(listeners, events)
}

func (s *Store) loadLocked() []Event {
	now := s.clock.Now()

	doc := DefaultDocument(now)
	var events []Event
	raw, ok, err := s.kv.Get(DataKey)
	switch {
	case err != nil:
		s.logger.Warn("reading progress failed, keeping changes in memory", "error", err)
		s.doc = doc
		s.detached = true
		return nil
	case ok:
		decoded, err := decodeDocument([]byte(raw))
		if err != nil {
			s.logger.Warn("persisted progress is malformed, starting fresh", "error", err)
			break
		}
		if len(decoded.Challenges) > 0 && NeedsRefresh(decoded.Challenges, now) {
			events = append(events, Event{Kind: ChallengesRefreshed, At: now})
		}
		var notes []string
		doc, notes = normalize(decoded, now)
		for _, n := range notes {
			s.logger.Debug("progress repaired on load", "note", n)
		}
	}
	s.doc = doc
	s.detached = false
	s.migrateLegacyStreakLocked()
	s.persistLocked()
	return events
}

// migrateLegacyStreakLocked folds the old side-channel rps streak counter
// into the rock-paper-scissors record and removes the key.
func (s *Store) migrateLegacyStreakLocked() {
	raw, ok, err := s.kv.Get(LegacyStreakKey)
	if err != nil || !ok {
		return
	}
	if n, valid := parseLegacyStreak(raw); valid {
		st := s.doc.GameProgress[catalog.RockPaperScissors]
		if st == nil {
			st = make(model.Stats)
			s.doc.GameProgress[catalog.RockPaperScissors] = st
		}
		if float64(n) > st[model.FieldStreak] {
			st[model.FieldStreak] = float64(n)
		}
	}
	if err := s.kv.Delete(LegacyStreakKey); err != nil {
		s.logger.Warn("removing legacy streak key failed", "error", err)
	}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() model.GameData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// TotalCoins returns the coins awarded since the last reset.
func (s *Store) TotalCoins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.SessionStats.TotalCoins
}

// Detached reports whether the last Load could not read the persisted
// document, so changes are not being written.
func (s *Store) Detached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detached
}

// PersistFailures returns how many writes have failed since the store was
// created.
func (s *Store) PersistFailures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistFailures
}

// mutate runs fn under the lock. When fn reports a change the document is
// persisted; queued events are delivered after the lock is released.
func (s *Store) mutate(fn func(now time.Time, events *[]Event) bool) {
	var events []Event
	s.mu.Lock()
	changed := fn(s.clock.Now(), &events)
	if changed {
		s.persistLocked()
	}
	listeners := s.listenersLocked()
	s.mu.Unlock()
	emit(listeners, events)
}

// persistLocked writes the full document. Failures are logged and counted;
// the in-memory document stays authoritative.
func (s *Store) persistLocked() {
	if s.detached {
		s.logger.Debug("progress not persisted, store is detached")
		return
	}
	data, err := json.Marshal(s.doc)
	if err == nil {
		err = s.kv.Set(DataKey, string(data))
	}
	s.unsaved = err != nil
	if err != nil {
		s.persistFailures++
		s.logger.Warn("persisting progress failed", "error", err, "failures", s.persistFailures)
	}
}

// UpdateProgress shallow-merges partial into the game's record, creating it
// if needed. Unknown fields and invalid values are ignored. Keeping best
// fields monotonic is the caller's job; RecordOutcome does it for you.
func (s *Store) UpdateProgress(gameID string, partial model.Stats) {
	s.mutate(func(_ time.Time, _ *[]Event) bool {
		return mergeStats(s.statsLocked(gameID), partial, nil)
	})
}

// IncrementPlays counts one play of a game in the game record, the session
// totals, and today's log.
func (s *Store) IncrementPlays(gameID string) {
	s.mutate(func(now time.Time, _ *[]Event) bool {
		s.incrementPlaysLocked(gameID, now)
		return true
	})
}

func (s *Store) incrementPlaysLocked(gameID string, now time.Time) {
	st := s.statsLocked(gameID)
	st[model.FieldPlays]++
	s.doc.SessionStats.TotalPlays++
	s.updateDayLocked(now, func(l *model.DailyLog) { l.GamesPlayed++ })
}

// UnlockBadge unlocks a locked badge. It reports false for unknown or
// already unlocked badges.
func (s *Store) UnlockBadge(id string) bool {
	var unlocked bool
	s.mutate(func(now time.Time, events *[]Event) bool {
		unlocked = s.unlockLocked(id, now, events)
		return unlocked
	})
	return unlocked
}

func (s *Store) unlockLocked(id string, now time.Time, events *[]Event) bool {
	for i := range s.doc.Badges {
		b := &s.doc.Badges[i]
		if b.ID != id {
			continue
		}
		if b.Unlocked {
			return false
		}
		at := now
		b.Unlocked = true
		b.UnlockedAt = &at
		s.doc.SessionStats.BadgesUnlocked++
		*events = append(*events, Event{Kind: BadgeUnlocked, ID: b.ID, Title: b.Title, At: now})
		return true
	}
	return false
}

// CompleteChallenge completes an open challenge and awards its coins once.
// It reports false for unknown, expired or already completed challenges.
func (s *Store) CompleteChallenge(id string) bool {
	var completed bool
	s.mutate(func(now time.Time, events *[]Event) bool {
		completed = s.completeLocked(id, now, events)
		return completed
	})
	return completed
}

func (s *Store) completeLocked(id string, now time.Time, events *[]Event) bool {
	for i := range s.doc.Challenges {
		c := &s.doc.Challenges[i]
		if c.ID != id {
			continue
		}
		if c.Completed || c.Expired(now) {
			return false
		}
		at := now
		c.Completed = true
		c.CompletedAt = &at
		s.doc.SessionStats.ChallengesCompleted++
		s.doc.SessionStats.TotalCoins += c.RewardCoins
		reward := c.RewardCoins
		s.updateDayLocked(now, func(l *model.DailyLog) { l.CoinsEarned += reward })
		*events = append(*events, Event{Kind: ChallengeCompleted, ID: c.ID, Title: c.Title, Coins: c.RewardCoins, At: now})
		return true
	}
	return false
}

// Reset replaces everything with the default document.
func (s *Store) Reset() {
	s.mutate(func(now time.Time, events *[]Event) bool {
		s.doc = DefaultDocument(now)
		s.detached = false
		if err := s.kv.Delete(LegacyStreakKey); err != nil {
			s.logger.Warn("removing legacy streak key failed", "error", err)
		}
		*events = append(*events, Event{Kind: DataReset, At: now})
		return true
	})
}

// RefreshChallenges starts a new challenge generation regardless of expiry.
func (s *Store) RefreshChallenges() {
	s.mutate(func(now time.Time, events *[]Event) bool {
		s.doc.Challenges = Generate(catalog.ChallengeTemplates(), now)
		*events = append(*events, Event{Kind: ChallengesRefreshed, At: now})
		return true
	})
}

// RefreshIfExpired starts a new generation only when the current one is
// stale, and reports whether it did.
func (s *Store) RefreshIfExpired() bool {
	var refreshed bool
	s.mutate(func(now time.Time, events *[]Event) bool {
		if !NeedsRefresh(s.doc.Challenges, now) {
			return false
		}
		s.doc.Challenges = Generate(catalog.ChallengeTemplates(), now)
		*events = append(*events, Event{Kind: ChallengesRefreshed, At: now})
		refreshed = true
		return true
	})
	return refreshed
}

// CheckBadges unlocks every badge whose rule now holds, repeating until no
// more unlock so that badges counting other badges see this pass. It
// returns the unlocked ids in catalog order.
func (s *Store) CheckBadges() []string {
	var ids []string
	s.mutate(func(now time.Time, events *[]Event) bool {
		ids = s.checkBadgesLocked(now, events)
		return len(ids) > 0
	})
	return ids
}

// CheckChallenges completes every open challenge whose rule now holds,
// repeating until none remain, and returns the ids in catalog order.
func (s *Store) CheckChallenges() []string {
	var ids []string
	s.mutate(func(now time.Time, events *[]Event) bool {
		ids = s.checkChallengesLocked(now, events)
		return len(ids) > 0
	})
	return ids
}

func (s *Store) checkBadgesLocked(now time.Time, events *[]Event) []string {
	done := make(map[string]bool)
	for {
		progressed := false
		for _, id := range s.eval.EvaluateBadges(s.doc.Clone()) {
			if s.unlockLocked(id, now, events) {
				done[id] = true
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	var ids []string
	for _, b := range s.doc.Badges {
		if done[b.ID] {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func (s *Store) checkChallengesLocked(now time.Time, events *[]Event) []string {
	done := make(map[string]bool)
	for {
		progressed := false
		for _, id := range s.eval.EvaluateChallenges(s.doc.Clone(), now) {
			if s.completeLocked(id, now, events) {
				done[id] = true
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	var ids []string
	for _, c := range s.doc.Challenges {
		if done[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// statsLocked returns the game's record, creating it if absent.
func (s *Store) statsLocked(gameID string) model.Stats {
	st := s.doc.GameProgress[gameID]
	if st == nil {
		st = make(model.Stats)
		if g, ok := catalog.LookupGame(gameID); ok {
			st = g.Defaults.Clone()
		}
		s.doc.GameProgress[gameID] = st
	}
	return st
}

func (s *Store) updateDayLocked(now time.Time, fn func(*model.DailyLog)) {
	key := DayKey(now)
	l := s.doc.SessionStats.DailyLogs[key]
	fn(&l)
	s.doc.SessionStats.DailyLogs[key] = l
}

// Export writes the document as indented JSON.
func (s *Store) Export(w io.Writer) error {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Import replaces the document with one previously written by Export. The
// input is validated and merged with the catalog like a load.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	decoded, err := decodeDocument(data)
	if err != nil {
		return err
	}
	s.mutate(func(now time.Time, events *[]Event) bool {
		doc, notes := normalize(decoded, now)
		for _, n := range notes {
			s.logger.Debug("progress repaired on import", "note", n)
		}
		s.doc = doc
		s.detached = false
		*events = append(*events, Event{Kind: DataImported, At: now})
		return true
	})
	return nil
}

// ExportFilename is the suggested file name for an export taken at t.
func ExportFilename(t time.Time) string {
	return "gameverse-data-" + DayKey(t) + ".json"
}
