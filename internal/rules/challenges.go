package rules

import (
	c "github.com/blackwell-systems/gameverse/internal/catalog"
	m "github.com/blackwell-systems/gameverse/internal/model"
)

var challengeRules = []namedRule{
	{"rps_daily_win_3", onGame(c.RockPaperScissors, atLeast(m.FieldWins, 3))},
	{"rps_daily_play_5", onGame(c.RockPaperScissors, atLeast(m.FieldPlays, 5))},
	{"guess_daily_win", onGame(c.NumberGuess, both(atLeast(m.FieldPlays, 1), Threshold{Field: m.FieldScore, Cmp: AtLeast, Value: 1}))},
	{"guess_daily_under_5", onGame(c.NumberGuess, atMost(m.FieldBestScore, 5))},
	{"memory_daily_complete", onGame(c.MemoryMatch, atLeast(m.FieldPlays, 1))},
	{"memory_daily_level_2", onGame(c.MemoryMatch, atLeast(m.FieldLevel, 2))},
	{"trivia_daily_score_3", onGame(c.TriviaQuiz, atLeast(m.FieldScore, 3))},
	{"trivia_daily_perfect", onGame(c.TriviaQuiz, atLeast(m.FieldScore, 5))},
	{"word_daily_solve_3", onGame(c.WordUnscramble, atLeast(m.FieldSolved, 3))},
	{"word_daily_no_hints", onGame(c.WordUnscramble, both(atLeast(m.FieldSolved, 1), equal(m.FieldHintsUsed, 0)))},
	{"puzzle_daily_complete", onGame(c.GridPuzzle, atLeast(m.FieldPlays, 1))},
	{"puzzle_daily_under_50", onGame(c.GridPuzzle, atMost(m.FieldBestMoves, 50))},
	{"clicker_daily_100", onGame(c.IdleClicker, atLeast(m.FieldCoins, 100))},
	{"clicker_daily_clicks_50", onGame(c.IdleClicker, atLeast(m.FieldClicks, 50))},
	{"battle_daily_win", onGame(c.CardBattle, atLeast(m.FieldWins, 1))},
	{"battle_daily_win_3", onGame(c.CardBattle, atLeast(m.FieldWins, 3))},
	{"reaction_daily_under_400", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 400))},
	{"reaction_daily_play_5", onGame(c.ReactionSpeed, atLeast(m.FieldPlays, 5))},
	{"daily_play_3_games", gamesPlayedAtLeast(3)},
	{"daily_play_5_games", gamesPlayedAtLeast(5)},
	{"daily_total_plays_10", totalPlaysAtLeast(10)},
	{"daily_unlock_badge", func(snap Snapshot) bool { return snap.SessionStats.BadgesUnlocked > 0 }},
	{"daily_complete_5_challenges", func(snap Snapshot) bool { return snap.CompletedCount() >= 5 }},
}
