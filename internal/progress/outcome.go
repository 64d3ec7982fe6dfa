package progress

import (
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/model"
)

// Result is one finished round of a game as reported by the game.
type Result struct {
	Game string
	// Add is added to the existing counters.
	Add model.Stats
	// Best is applied only where it improves on the recorded personal best.
	Best model.Stats
	// Set overwrites fields as given.
	Set model.Stats
	// TimeSpent is the round's duration, in seconds, added to the game,
	// the session total and today's log.
	TimeSpent int
	// Play counts the round as a play.
	Play bool
}

// Outcome lists what a recorded result unlocked.
type Outcome struct {
	Badges     []string
	Challenges []string
}

// Empty reports whether nothing was unlocked.
func (o Outcome) Empty() bool {
	return len(o.Badges) == 0 && len(o.Challenges) == 0
}

// RecordOutcome applies a result and then evaluates badges and challenges
// until neither produces anything new.
func (s *Store) RecordOutcome(r Result) Outcome {
	var out Outcome
	s.mutate(func(now time.Time, events *[]Event) bool {
		st := s.statsLocked(r.Game)
		if r.Play {
			s.incrementPlaysLocked(r.Game, now)
		}
		for field, v := range r.Add {
			if !validValue(field, v) {
				continue
			}
			if !model.IsRate(field) {
				v = math.Trunc(v)
			}
			st[field] += v
		}
		mergeStats(st, r.Set, nil)
		mergeStats(st, r.Best, func(field string, old, v float64) bool {
			return improves(r.Game, field, old, v)
		})
		if r.TimeSpent > 0 {
			st[model.FieldTimeSpent] += float64(r.TimeSpent)
			s.doc.SessionStats.TotalTime += r.TimeSpent
			s.updateDayLocked(now, func(l *model.DailyLog) { l.TimeSpent += r.TimeSpent })
		}

		for {
			badges := s.checkBadgesLocked(now, events)
			challenges := s.checkChallengesLocked(now, events)
			out.Badges = append(out.Badges, badges...)
			out.Challenges = append(out.Challenges, challenges...)
			if len(badges) == 0 && len(challenges) == 0 {
				break
			}
		}
		out.Badges = catalogOrder(out.Badges, badgeOrder(s.doc.Badges))
		out.Challenges = catalogOrder(out.Challenges, challengeOrder(s.doc.Challenges))
		return true
	})
	return out
}

// mergeStats copies valid fields of src into dst. When accept is non-nil,
// an existing field is only overwritten if accept approves. It reports
// whether dst changed.
func mergeStats(dst, src model.Stats, accept func(field string, old, v float64) bool) bool {
	changed := false
	for field, v := range src {
		if !validValue(field, v) {
			continue
		}
		if !model.IsRate(field) {
			v = math.Trunc(v)
		}
		if old, ok := dst[field]; ok {
			if old == v {
				continue
			}
			if accept != nil && !accept(field, old, v) {
				continue
			}
		}
		dst[field] = v
		changed = true
	}
	return changed
}

func validValue(field string, v float64) bool {
	return model.IsKnownField(field) && !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// improves reports whether v beats old for a personal-best field. A zero
// best means nothing was recorded yet.
func improves(gameID, field string, old, v float64) bool {
	if model.IsBestField(field) && old == 0 {
		return v > 0
	}
	if catalog.IsLowerBetter(gameID, field) {
		return v < old
	}
	return v > old
}

func badgeOrder(badges []model.Badge) map[string]int {
	m := make(map[string]int, len(badges))
	for i, b := range badges {
		m[b.ID] = i
	}
	return m
}

func challengeOrder(challenges []model.Challenge) map[string]int {
	m := make(map[string]int, len(challenges))
	for i, c := range challenges {
		m[c.ID] = i
	}
	return m
}

func catalogOrder(ids []string, order map[string]int) []string {
	if len(ids) < 2 {
		return ids
	}
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return order[sorted[i]] < order[sorted[j]]
	})
	return sorted
}
