package progress

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/clock"
	"github.com/blackwell-systems/gameverse/internal/model"
	"github.com/blackwell-systems/gameverse/internal/storage"
)

var testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.Memory, *clock.Fake) {
	t.Helper()
	kv := storage.NewMemory()
	clk := clock.NewFake(testNow)
	s := New(kv, WithClock(clk))
	s.Load()
	return s, kv, clk
}

func persist(t *testing.T, kv storage.KV, doc model.GameData) {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, kv.Set(DataKey, string(data)))
}

func persisted(t *testing.T, kv storage.KV) model.GameData {
	t.Helper()
	raw, ok, err := kv.Get(DataKey)
	require.NoError(t, err)
	require.True(t, ok, "document was not persisted")
	var doc model.GameData
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestLoad_NoDataWritesDefaults(t *testing.T) {
	s, kv, _ := newTestStore(t)
	snap := s.Snapshot()

	assert.Len(t, snap.Badges, len(catalog.Badges()))
	assert.Len(t, snap.Challenges, len(catalog.ChallengeTemplates()))
	assert.Len(t, snap.GameProgress, len(catalog.Games()))
	assert.Equal(t, NextMidnight(testNow), snap.Challenges[0].ExpiresAt)
	assert.Zero(t, snap.UnlockedCount())

	assert.Equal(t, snap, persisted(t, kv))
}

func TestLoad_MalformedFallsBackToDefaults(t *testing.T) {
	for _, raw := range []string{"{not json", "[]", `"text"`, ""} {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(DataKey, raw))
		s := New(kv, WithClock(clock.NewFake(testNow)))
		s.Load()
		assert.Equal(t, DefaultDocument(testNow), s.Snapshot(), "input %q", raw)
	}
}

func TestLoad_MergesCatalogAndKeepsUnlocked(t *testing.T) {
	kv := storage.NewMemory()
	unlockedAt := testNow.Add(-48 * time.Hour)
	doc := DefaultDocument(testNow)
	doc.Badges = []model.Badge{
		{ID: "rps_novice", Title: "Old Title", Unlocked: true, UnlockedAt: &unlockedAt},
		{ID: "retired_badge", Title: "Retired", Unlocked: true, UnlockedAt: &unlockedAt},
		{Title: "no id"},
	}
	persist(t, kv, doc)

	s := New(kv, WithClock(clock.NewFake(testNow)))
	s.Load()
	snap := s.Snapshot()

	for _, b := range catalog.Badges() {
		_, ok := snap.Badge(b.ID)
		assert.True(t, ok, "catalog badge %q missing after load", b.ID)
	}
	kept, ok := snap.Badge("rps_novice")
	require.True(t, ok)
	assert.True(t, kept.Unlocked)
	assert.Equal(t, unlockedAt, *kept.UnlockedAt)

	_, ok = snap.Badge("retired_badge")
	assert.True(t, ok, "badges no longer in the catalog are preserved")
	assert.Len(t, snap.Badges, len(catalog.Badges())+1)
}

func TestLoad_SanitizesStats(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(DataKey, `{
		"gameProgress": {
			"idle-clicker": {"coins": 12.7, "cps": 1.5, "bogus": 3, "clicks": -4},
			"dice-roller": {"plays": "many"},
			"future-game": {"plays": 2}
		}
	}`))
	s := New(kv, WithClock(clock.NewFake(testNow)))
	s.Load()
	snap := s.Snapshot()

	assert.Equal(t, model.Stats{model.FieldCoins: 12, model.FieldCPS: 1.5}, snap.GameProgress[catalog.IdleClicker])
	assert.Equal(t, model.Stats{}, snap.GameProgress[catalog.DiceRoller])
	assert.Equal(t, model.Stats{model.FieldPlays: 2}, snap.GameProgress["future-game"])
	assert.Contains(t, snap.GameProgress, catalog.CardBattle, "missing games get defaults")
}

func TestLoad_RefreshesStaleChallenges(t *testing.T) {
	kv := storage.NewMemory()
	yesterday := testNow.AddDate(0, 0, -1)
	doc := DefaultDocument(yesterday.AddDate(0, 0, -1))
	completedAt := yesterday
	doc.Challenges[0].Completed = true
	doc.Challenges[0].CompletedAt = &completedAt
	persist(t, kv, doc)

	s := New(kv, WithClock(clock.NewFake(testNow)))
	var kinds []EventKind
	s.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })
	s.Load()
	snap := s.Snapshot()
	for _, c := range snap.Challenges {
		assert.False(t, c.Completed)
		assert.Nil(t, c.CompletedAt)
		assert.Equal(t, NextMidnight(testNow), c.ExpiresAt)
	}
	assert.Equal(t, []EventKind{ChallengesRefreshed}, kinds)

	s.Load()
	assert.Len(t, kinds, 1, "a fresh generation is not refreshed again")
}

// flakyKV fails the next failReads calls to Get, like a database busy with
// another process.
type flakyKV struct {
	*storage.Memory
	failReads int
}

func (f *flakyKV) Get(key string) (string, bool, error) {
	if f.failReads > 0 {
		f.failReads--
		return "", false, errors.New("database is locked")
	}
	return f.Memory.Get(key)
}

func TestLoad_ReadErrorKeepsPersistedDocument(t *testing.T) {
	s, kv, clk := newTestStore(t)
	for i := 0; i < 5; i++ {
		s.IncrementPlays(catalog.DiceRoller)
	}

	other := New(&flakyKV{Memory: kv, failReads: 1}, WithClock(clk))
	other.Load()
	assert.True(t, other.Detached())
	assert.Zero(t, other.Snapshot().GameProgress[catalog.DiceRoller].Int(model.FieldPlays))
	assert.Equal(t, 5, persisted(t, kv).GameProgress[catalog.DiceRoller].Int(model.FieldPlays))

	other.IncrementPlays(catalog.CardBattle)
	assert.Equal(t, 1, other.Snapshot().GameProgress[catalog.CardBattle].Int(model.FieldPlays))
	doc := persisted(t, kv)
	assert.Equal(t, 5, doc.GameProgress[catalog.DiceRoller].Int(model.FieldPlays))
	assert.Zero(t, doc.GameProgress[catalog.CardBattle].Int(model.FieldPlays))

	other.Load()
	assert.False(t, other.Detached())
	assert.Equal(t, 5, other.Snapshot().GameProgress[catalog.DiceRoller].Int(model.FieldPlays))
}

func TestReset_AfterReadErrorPersists(t *testing.T) {
	s, kv, clk := newTestStore(t)
	s.IncrementPlays(catalog.DiceRoller)

	other := New(&flakyKV{Memory: kv, failReads: 1}, WithClock(clk))
	other.Load()
	other.Reset()
	assert.False(t, other.Detached())
	assert.Zero(t, persisted(t, kv).GameProgress[catalog.DiceRoller].Int(model.FieldPlays))
}

func TestReload_KeepsUnsavedChanges(t *testing.T) {
	s, kv, _ := newTestStore(t)
	kv.SetFailWrites(true)
	s.IncrementPlays(catalog.DiceRoller)

	s.Reload()
	assert.Equal(t, 1, s.Snapshot().GameProgress[catalog.DiceRoller].Int(model.FieldPlays))

	kv.SetFailWrites(false)
	s.IncrementPlays(catalog.DiceRoller)
	require.NoError(t, kv.Set(DataKey, mustJSON(t, s.Snapshot(), func(d *model.GameData) {
		d.GameProgress[catalog.DiceRoller][model.FieldPlays] = 7
	})))
	s.Reload()
	assert.Equal(t, 7, s.Snapshot().GameProgress[catalog.DiceRoller].Int(model.FieldPlays))
}

func mustJSON(t *testing.T, doc model.GameData, edit func(*model.GameData)) string {
	t.Helper()
	edit(&doc)
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func TestLoad_MigratesLegacyStreak(t *testing.T) {
	kv := storage.NewMemory()
	doc := DefaultDocument(testNow)
	doc.GameProgress[catalog.RockPaperScissors][model.FieldStreak] = 2
	persist(t, kv, doc)
	require.NoError(t, kv.Set(LegacyStreakKey, "7"))

	s := New(kv, WithClock(clock.NewFake(testNow)))
	s.Load()

	assert.Equal(t, 7, s.Snapshot().GameProgress[catalog.RockPaperScissors].Int(model.FieldStreak))
	_, ok, _ := kv.Get(LegacyStreakKey)
	assert.False(t, ok, "legacy key should be removed")
	assert.Equal(t, 7, persisted(t, kv).GameProgress[catalog.RockPaperScissors].Int(model.FieldStreak))
}

func TestLoad_LegacyStreakNeverLowersStreak(t *testing.T) {
	kv := storage.NewMemory()
	doc := DefaultDocument(testNow)
	doc.GameProgress[catalog.RockPaperScissors][model.FieldStreak] = 9
	persist(t, kv, doc)
	require.NoError(t, kv.Set(LegacyStreakKey, "4"))

	s := New(kv, WithClock(clock.NewFake(testNow)))
	s.Load()
	assert.Equal(t, 9, s.Snapshot().GameProgress[catalog.RockPaperScissors].Int(model.FieldStreak))
}

func TestRPSWinsUnlockNoviceOnly(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.IncrementPlays(catalog.RockPaperScissors)
	s.UpdateProgress(catalog.RockPaperScissors, model.Stats{model.FieldWins: 3})

	got := s.CheckBadges()
	assert.Contains(t, got, "rps_novice")
	assert.NotContains(t, got, "rps_intermediate")
	assert.Empty(t, s.CheckBadges(), "second check unlocks nothing new")
}

func TestUnlockBadge_Idempotent(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.True(t, s.UnlockBadge("memory_novice"))
	assert.False(t, s.UnlockBadge("memory_novice"))
	assert.False(t, s.UnlockBadge("no_such_badge"))

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.SessionStats.BadgesUnlocked)
	b, _ := snap.Badge("memory_novice")
	assert.True(t, b.Unlocked)
	require.NotNil(t, b.UnlockedAt)
	assert.Equal(t, testNow, *b.UnlockedAt)
}

func TestIncrementPlays_Monotonic(t *testing.T) {
	s, _, clk := newTestStore(t)
	prev := 0
	for i := 0; i < 5; i++ {
		s.IncrementPlays(catalog.DiceRoller)
		plays := s.Snapshot().GameProgress[catalog.DiceRoller].Int(model.FieldPlays)
		assert.Greater(t, plays, prev)
		prev = plays
	}
	clk.Advance(12 * time.Hour)
	s.IncrementPlays(catalog.DiceRoller)

	snap := s.Snapshot()
	assert.Equal(t, 6, snap.SessionStats.TotalPlays)
	assert.Equal(t, 5, snap.SessionStats.DailyLogs[DayKey(testNow)].GamesPlayed)
	assert.Equal(t, 1, snap.SessionStats.DailyLogs[DayKey(clk.Now())].GamesPlayed)
}

func TestIncrementPlays_UnknownGameCreatesRecord(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.IncrementPlays("pinball")
	assert.Equal(t, 1, s.Snapshot().GameProgress["pinball"].Int(model.FieldPlays))
}

func TestCompleteChallenge_AwardsOnce(t *testing.T) {
	s, _, _ := newTestStore(t)
	c, ok := s.Snapshot().Challenge("rps_daily_win_3")
	require.True(t, ok)
	require.Equal(t, 50, c.RewardCoins)

	assert.True(t, s.CompleteChallenge("rps_daily_win_3"))
	assert.False(t, s.CompleteChallenge("rps_daily_win_3"))

	snap := s.Snapshot()
	assert.Equal(t, 50, snap.SessionStats.TotalCoins)
	assert.Equal(t, 1, snap.SessionStats.ChallengesCompleted)
	assert.Equal(t, 50, snap.SessionStats.DailyLogs[DayKey(testNow)].CoinsEarned)
	assert.Equal(t, 50, s.TotalCoins())
}

func TestCompleteChallenge_ExpiredOrUnknown(t *testing.T) {
	s, _, clk := newTestStore(t)
	assert.False(t, s.CompleteChallenge("no_such_challenge"))

	clk.Set(NextMidnight(testNow))
	assert.False(t, s.CompleteChallenge("rps_daily_win_3"), "expired generation cannot be completed")
	assert.Zero(t, s.TotalCoins())
}

func TestReset_RestoresDefaults(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.UpdateProgress(catalog.RockPaperScissors, model.Stats{model.FieldStreak: 6, model.FieldWins: 12})
	s.CheckBadges()
	s.CompleteChallenge("battle_daily_win")
	require.NoError(t, kv.Set(LegacyStreakKey, "6"))

	var kinds []EventKind
	s.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })
	s.Reset()

	assert.Equal(t, DefaultDocument(testNow), s.Snapshot())
	assert.Equal(t, []EventKind{DataReset}, kinds)
	_, ok, _ := kv.Get(LegacyStreakKey)
	assert.False(t, ok)
}

func TestRefreshChallenges_Forced(t *testing.T) {
	s, _, clk := newTestStore(t)
	s.CompleteChallenge("battle_daily_win")
	clk.Advance(time.Hour)

	assert.False(t, s.RefreshIfExpired())
	s.RefreshChallenges()
	c, _ := s.Snapshot().Challenge("battle_daily_win")
	assert.False(t, c.Completed)
	assert.Equal(t, 40, s.TotalCoins(), "coins survive a refresh")
}

func TestRecordOutcome_BestFieldsAndFixpoint(t *testing.T) {
	s, _, _ := newTestStore(t)

	out := s.RecordOutcome(Result{
		Game: catalog.RockPaperScissors,
		Play: true,
		Add:  model.Stats{model.FieldWins: 3},
	})
	assert.Equal(t, []string{"rps_novice"}, out.Badges)
	assert.Contains(t, out.Challenges, "rps_daily_win_3")
	assert.Contains(t, out.Challenges, "daily_unlock_badge", "badge unlocked in the same call counts")

	s.RecordOutcome(Result{Game: catalog.ReactionSpeed, Play: true, Best: model.Stats{model.FieldBestTime: 450}})
	s.RecordOutcome(Result{Game: catalog.ReactionSpeed, Play: true, Best: model.Stats{model.FieldBestTime: 520}})
	assert.Equal(t, 450, s.Snapshot().GameProgress[catalog.ReactionSpeed].Int(model.FieldBestTime))

	out = s.RecordOutcome(Result{Game: catalog.ReactionSpeed, Play: true, Best: model.Stats{model.FieldBestTime: 280}, TimeSpent: 30})
	assert.Contains(t, out.Badges, "reaction_advanced")
	assert.NotContains(t, out.Badges, "reaction_expert")
	assert.NotContains(t, out.Badges, "reaction_novice", "already unlocked earlier")

	snap := s.Snapshot()
	assert.Equal(t, 280, snap.GameProgress[catalog.ReactionSpeed].Int(model.FieldBestTime))
	assert.Equal(t, 30, snap.SessionStats.TotalTime)
	assert.Equal(t, 30, snap.SessionStats.DailyLogs[DayKey(testNow)].TimeSpent)
}

func TestRecordOutcome_HigherBestScoreForTrivia(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.RecordOutcome(Result{Game: catalog.TriviaQuiz, Play: true, Set: model.Stats{model.FieldScore: 4}, Best: model.Stats{model.FieldBestScore: 4}})
	s.RecordOutcome(Result{Game: catalog.TriviaQuiz, Play: true, Set: model.Stats{model.FieldScore: 2}, Best: model.Stats{model.FieldBestScore: 2}})

	st := s.Snapshot().GameProgress[catalog.TriviaQuiz]
	assert.Equal(t, 4, st.Int(model.FieldBestScore))
	assert.Equal(t, 2, st.Int(model.FieldScore))
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	s, kv, _ := newTestStore(t)
	kv.SetFailWrites(true)

	s.IncrementPlays(catalog.CardBattle)
	assert.True(t, s.UnlockBadge("battle_novice"))
	assert.True(t, s.CompleteChallenge("battle_daily_win"))

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.GameProgress[catalog.CardBattle].Int(model.FieldPlays))
	assert.Equal(t, 40, snap.SessionStats.TotalCoins)
	assert.Equal(t, 3, s.PersistFailures())

	kv.SetFailWrites(false)
	s.IncrementPlays(catalog.CardBattle)
	assert.Equal(t, 2, persisted(t, kv).GameProgress[catalog.CardBattle].Int(model.FieldPlays))
}

func TestExportImport_RoundTrip(t *testing.T) {
	s, _, clk := newTestStore(t)
	s.RecordOutcome(Result{Game: catalog.MemoryMatch, Play: true, Set: model.Stats{model.FieldLevel: 3}, Best: model.Stats{model.FieldBestScore: 14}, TimeSpent: 95})
	s.RecordOutcome(Result{Game: catalog.IdleClicker, Set: model.Stats{model.FieldCoins: 640, model.FieldCPS: 12.5}})

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"gameProgress\""))

	other := New(storage.NewMemory(), WithClock(clk))
	other.Load()
	require.NoError(t, other.Import(&buf))
	assert.Equal(t, s.Snapshot(), other.Snapshot())
}

func TestImport_RejectsNonObject(t *testing.T) {
	s, _, _ := newTestStore(t)
	before := s.Snapshot()
	for _, in := range []string{"[]", "42", "nope", `{"gameProgress": []}`} {
		err := s.Import(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInvalidDocument, "input %q", in)
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestSubscribe_EventsAfterUnlock(t *testing.T) {
	s, _, _ := newTestStore(t)
	var got []Event
	cancel := s.Subscribe(func(e Event) {
		// Listeners may read the store.
		_ = s.Snapshot()
		got = append(got, e)
	})

	s.UnlockBadge("clicker_novice")
	s.CompleteChallenge("clicker_daily_100")
	cancel()
	s.UnlockBadge("clicker_intermediate")

	require.Len(t, got, 2)
	assert.Equal(t, BadgeUnlocked, got[0].Kind)
	assert.Equal(t, "clicker_novice", got[0].ID)
	assert.NotEmpty(t, got[0].Title)
	assert.Equal(t, ChallengeCompleted, got[1].Kind)
	assert.Equal(t, 25, got[1].Coins)
}

func TestSnapshot_IsIsolated(t *testing.T) {
	s, _, _ := newTestStore(t)
	snap := s.Snapshot()
	snap.GameProgress[catalog.DiceRoller][model.FieldPlays] = 99
	snap.Badges[0].Unlocked = true
	assert.Zero(t, s.Snapshot().GameProgress[catalog.DiceRoller].Int(model.FieldPlays))
	assert.False(t, s.Snapshot().Badges[0].Unlocked)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "gameverse-data-2026-03-14.json", ExportFilename(testNow))
}
