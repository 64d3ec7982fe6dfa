// Package model defines the persisted progress document shared by the
// store, the rule evaluator, and the presentation layer.
package model

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// Recognised per-game stat fields. Games use a subset of these.
const (
	FieldPlays     = "plays"
	FieldWins      = "wins"
	FieldLosses    = "losses"
	FieldDraws     = "draws"
	FieldScore     = "score"
	FieldBestScore = "bestScore"
	FieldBestTime  = "bestTime"
	FieldBestMoves = "bestMoves"
	FieldLevel     = "level"
	FieldSolved    = "solved"
	FieldHintsUsed = "hintsUsed"
	FieldCoins     = "coins"
	FieldCPS       = "cps"
	FieldClicks    = "clicks"
	FieldTimeSpent = "timeSpent"
	FieldStreak    = "streak"
)

// knownFields is the closed vocabulary accepted at the persistence boundary.
var knownFields = map[string]bool{
	FieldPlays: true, FieldWins: true, FieldLosses: true, FieldDraws: true,
	FieldScore: true, FieldBestScore: true, FieldBestTime: true, FieldBestMoves: true,
	FieldLevel: true, FieldSolved: true, FieldHintsUsed: true, FieldCoins: true,
	FieldCPS: true, FieldClicks: true, FieldTimeSpent: true, FieldStreak: true,
}

// IsKnownField reports whether name is part of the stat vocabulary.
func IsKnownField(name string) bool {
	return knownFields[name]
}

// IsBestField reports whether a field records a personal best, where zero
// means "not yet recorded" rather than a real result.
func IsBestField(name string) bool {
	return name == FieldBestScore || name == FieldBestTime || name == FieldBestMoves
}

// IsRate reports whether a field may hold a fractional value.
func IsRate(name string) bool {
	return name == FieldCPS
}

// Stats is one game's statistics record. An absent key means the value has
// not been recorded, which is distinct from zero.
type Stats map[string]float64

// Get returns the value for field and whether it was recorded.
func (s Stats) Get(field string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s[field]
	return v, ok
}

// Int returns the value for field truncated to an int, or 0 when absent.
func (s Stats) Int(field string) int {
	v, _ := s.Get(field)
	return int(v)
}

// Clone returns an independent copy.
func (s Stats) Clone() Stats {
	if s == nil {
		return nil
	}
	cp := make(Stats, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

// Sanitize drops unknown fields and invalid values and truncates counters to
// integers. It returns the names of the fields that were dropped or changed.
func (s Stats) Sanitize() []string {
	var touched []string
	for k, v := range s {
		switch {
		case !knownFields[k], math.IsNaN(v), math.IsInf(v, 0), v < 0:
			delete(s, k)
			touched = append(touched, k)
		case !IsRate(k) && v != math.Trunc(v):
			s[k] = math.Trunc(v)
			touched = append(touched, k)
		}
	}
	return touched
}

// UnmarshalJSON keeps numeric fields and ignores everything else, so one
// malformed value does not invalidate the whole document. A null value is
// treated as not recorded.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Stats, len(raw))
	for k, msg := range raw {
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			continue
		}
		var v float64
		if err := json.Unmarshal(msg, &v); err != nil {
			continue
		}
		out[k] = v
	}
	*s = out
	return nil
}

// GameProgress maps a game id to its statistics record.
type GameProgress map[string]Stats

// GamesPlayed counts games with at least one recorded play.
func (p GameProgress) GamesPlayed() int {
	n := 0
	for _, st := range p {
		if st.Int(FieldPlays) > 0 {
			n++
		}
	}
	return n
}

// TotalPlays sums plays across all games.
func (p GameProgress) TotalPlays() int {
	total := 0
	for _, st := range p {
		total += st.Int(FieldPlays)
	}
	return total
}

// Badge is a one-way achievement flag.
type Badge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Game        string     `json:"game"`
	Requirement string     `json:"requirement"`
	Unlocked    bool       `json:"unlocked"`
	Icon        string     `json:"icon"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// Challenge is a daily objective that awards coins once per generation.
type Challenge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Game        string     `json:"game"`
	Requirement string     `json:"requirement"`
	RewardCoins int        `json:"rewardCoins"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	ExpiresAt   time.Time  `json:"expiresAt"`
}

// Expired reports whether the challenge's generation has ended at now.
func (c Challenge) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// DailyLog aggregates one calendar day of activity.
type DailyLog struct {
	GamesPlayed int `json:"gamesPlayed"`
	TimeSpent   int `json:"timeSpent"`
	CoinsEarned int `json:"coinsEarned"`
}

// SessionStats holds aggregate counters across all games.
type SessionStats struct {
	TotalPlays          int                 `json:"totalPlays"`
	TotalTime           int                 `json:"totalTime"`
	BadgesUnlocked      int                 `json:"badgesUnlocked"`
	ChallengesCompleted int                 `json:"challengesCompleted"`
	TotalCoins          int                 `json:"totalCoins"`
	DailyLogs           map[string]DailyLog `json:"dailyLogs"`
}

// GameData is the root document persisted as a single blob.
type GameData struct {
	GameProgress GameProgress `json:"gameProgress"`
	Badges       []Badge      `json:"badges"`
	Challenges   []Challenge  `json:"challenges"`
	SessionStats SessionStats `json:"sessionStats"`
}

// Clone returns a deep copy; callers may not observe later store mutations
// through it, and mutating it does not affect the store.
func (d GameData) Clone() GameData {
	cp := GameData{
		GameProgress: make(GameProgress, len(d.GameProgress)),
		Badges:       make([]Badge, len(d.Badges)),
		Challenges:   make([]Challenge, len(d.Challenges)),
		SessionStats: d.SessionStats,
	}
	for k, st := range d.GameProgress {
		cp.GameProgress[k] = st.Clone()
	}
	for i, b := range d.Badges {
		b.UnlockedAt = cloneTime(b.UnlockedAt)
		cp.Badges[i] = b
	}
	for i, c := range d.Challenges {
		c.CompletedAt = cloneTime(c.CompletedAt)
		cp.Challenges[i] = c
	}
	cp.SessionStats.DailyLogs = make(map[string]DailyLog, len(d.SessionStats.DailyLogs))
	for k, v := range d.SessionStats.DailyLogs {
		cp.SessionStats.DailyLogs[k] = v
	}
	return cp
}

// UnlockedCount returns the number of unlocked badges.
func (d GameData) UnlockedCount() int {
	n := 0
	for _, b := range d.Badges {
		if b.Unlocked {
			n++
		}
	}
	return n
}

// CompletedCount returns the number of completed challenges in the current
// generation.
func (d GameData) CompletedCount() int {
	n := 0
	for _, c := range d.Challenges {
		if c.Completed {
			n++
		}
	}
	return n
}

// Badge returns the badge with the given id.
func (d GameData) Badge(id string) (Badge, bool) {
	for _, b := range d.Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Challenge returns the challenge with the given id.
func (d GameData) Challenge(id string) (Challenge, bool) {
	for _, c := range d.Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
