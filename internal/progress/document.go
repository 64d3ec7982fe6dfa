package progress

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/model"
)

// Storage keys.
const (
	DataKey         = "gameverse-data"
	LegacyStreakKey = "rps-streak"
)

// ErrInvalidDocument is returned by Import when the input is not a JSON
// object shaped like a progress document.
var ErrInvalidDocument = errors.New("invalid progress document")

// DefaultDocument returns zeroed progress for every known game, the full
// badge catalog locked, and a fresh challenge generation.
func DefaultDocument(now time.Time) model.GameData {
	return model.GameData{
		GameProgress: catalog.DefaultProgress(),
		Badges:       catalog.Badges(),
		Challenges:   Generate(catalog.ChallengeTemplates(), now),
		SessionStats: model.SessionStats{DailyLogs: make(map[string]model.DailyLog)},
	}
}

// decodeDocument parses a persisted or imported document. Anything other
// than a JSON object is rejected.
func decodeDocument(data []byte) (model.GameData, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.GameData{}, ErrInvalidDocument
	}
	var doc model.GameData
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return model.GameData{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// normalize validates a decoded document and merges in the current catalog.
// It returns human-readable notes about anything it dropped or repaired.
func normalize(doc model.GameData, now time.Time) (model.GameData, []string) {
	var notes []string

	if doc.GameProgress == nil {
		doc.GameProgress = make(model.GameProgress)
	}
	for id, st := range doc.GameProgress {
		if st == nil {
			st = make(model.Stats)
			doc.GameProgress[id] = st
		}
		for _, field := range st.Sanitize() {
			notes = append(notes, fmt.Sprintf("%s.%s dropped or truncated", id, field))
		}
	}
	for id, defaults := range catalog.DefaultProgress() {
		if _, ok := doc.GameProgress[id]; !ok {
			doc.GameProgress[id] = defaults
		}
	}

	doc.Badges = mergeBadges(doc.Badges, &notes)

	challenges := doc.Challenges[:0:0]
	for _, c := range doc.Challenges {
		if c.ID == "" {
			notes = append(notes, "challenge without id dropped")
			continue
		}
		if !c.Completed {
			c.CompletedAt = nil
		}
		challenges = append(challenges, c)
	}
	doc.Challenges = Refresh(challenges, catalog.ChallengeTemplates(), now)

	if doc.SessionStats.DailyLogs == nil {
		doc.SessionStats.DailyLogs = make(map[string]model.DailyLog)
	}
	return doc, notes
}

// mergeBadges keeps persisted badges (dropping any without an id or seen
// twice) and appends catalog badges that are missing.
func mergeBadges(persisted []model.Badge, notes *[]string) []model.Badge {
	seen := make(map[string]bool, len(persisted))
	out := make([]model.Badge, 0, len(persisted))
	for _, b := range persisted {
		if b.ID == "" || seen[b.ID] {
			*notes = append(*notes, "badge without id or duplicate dropped")
			continue
		}
		if !b.Unlocked {
			b.UnlockedAt = nil
		}
		seen[b.ID] = true
		out = append(out, b)
	}
	for _, b := range catalog.Badges() {
		if !seen[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

// parseLegacyStreak reads the old side-channel streak counter.
func parseLegacyStreak(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
