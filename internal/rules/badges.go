package rules

import (
	c "github.com/blackwell-systems/gameverse/internal/catalog"
	m "github.com/blackwell-systems/gameverse/internal/model"
)

func gamesPlayedAtLeast(n int) Predicate {
	return func(snap Snapshot) bool { return snap.GameProgress.GamesPlayed() >= n }
}

func totalPlaysAtLeast(n int) Predicate {
	return func(snap Snapshot) bool { return snap.GameProgress.TotalPlays() >= n }
}

func badgesUnlockedAtLeast(n int) Predicate {
	return func(snap Snapshot) bool { return snap.UnlockedCount() >= n }
}

var badgeRules = []namedRule{
	{"rps_novice", onGame(c.RockPaperScissors, atLeast(m.FieldWins, 3))},
	{"rps_intermediate", onGame(c.RockPaperScissors, atLeast(m.FieldWins, 10))},
	{"rps_advanced", onGame(c.RockPaperScissors, atLeast(m.FieldWins, 25))},
	{"rps_expert", onGame(c.RockPaperScissors, atLeast(m.FieldWins, 50))},
	{"rps_master", onGame(c.RockPaperScissors, atLeast(m.FieldWins, 100))},
	{"rps_streak_3", onGame(c.RockPaperScissors, atLeast(m.FieldStreak, 3))},
	{"rps_streak_5", onGame(c.RockPaperScissors, atLeast(m.FieldStreak, 5))},
	{"rps_streak_10", onGame(c.RockPaperScissors, atLeast(m.FieldStreak, 10))},
	{"rps_plays_50", onGame(c.RockPaperScissors, atLeast(m.FieldPlays, 50))},
	{"rps_plays_100", onGame(c.RockPaperScissors, atLeast(m.FieldPlays, 100))},

	{"guess_novice", onGame(c.NumberGuess, atLeast(m.FieldPlays, 3))},
	{"guess_intermediate", onGame(c.NumberGuess, atLeast(m.FieldPlays, 10))},
	{"guess_advanced", onGame(c.NumberGuess, atLeast(m.FieldPlays, 25))},
	{"guess_expert", onGame(c.NumberGuess, atMost(m.FieldBestScore, 5))},
	{"guess_master", onGame(c.NumberGuess, atMost(m.FieldBestScore, 3))},
	{"guess_plays_50", onGame(c.NumberGuess, atLeast(m.FieldPlays, 50))},
	{"guess_plays_100", onGame(c.NumberGuess, atLeast(m.FieldPlays, 100))},
	{"guess_perfect", onGame(c.NumberGuess, equal(m.FieldBestScore, 1))},
	{"guess_persistent", onGame(c.NumberGuess, both(atLeast(m.FieldPlays, 5), atMost(m.FieldBestScore, 7)))},
	{"guess_lucky", onGame(c.NumberGuess, atMost(m.FieldBestScore, 2))},

	{"memory_novice", onGame(c.MemoryMatch, both(atLeast(m.FieldPlays, 1), atLeast(m.FieldLevel, 1)))},
	{"memory_intermediate", onGame(c.MemoryMatch, atLeast(m.FieldLevel, 2))},
	{"memory_advanced", onGame(c.MemoryMatch, atLeast(m.FieldLevel, 3))},
	{"memory_expert", onGame(c.MemoryMatch, atLeast(m.FieldLevel, 4))},
	{"memory_master", onGame(c.MemoryMatch, both(atLeast(m.FieldLevel, 4), atMost(m.FieldBestScore, 20)))},
	{"memory_quick", onGame(c.MemoryMatch, atMost(m.FieldBestScore, 15))},
	{"memory_efficient", onGame(c.MemoryMatch, atMost(m.FieldBestScore, 12))},
	{"memory_plays_25", onGame(c.MemoryMatch, atLeast(m.FieldPlays, 25))},
	{"memory_plays_50", onGame(c.MemoryMatch, atLeast(m.FieldPlays, 50))},
	{"memory_perfect", onGame(c.MemoryMatch, both(atLeast(m.FieldLevel, 4), atMost(m.FieldBestScore, 16)))},

	{"trivia_novice", onGame(c.TriviaQuiz, atLeast(m.FieldScore, 3))},
	{"trivia_intermediate", onGame(c.TriviaQuiz, atLeast(m.FieldScore, 5))},
	{"trivia_advanced", onGame(c.TriviaQuiz, atLeast(m.FieldBestScore, 5))},
	{"trivia_expert", onGame(c.TriviaQuiz, both(atLeast(m.FieldBestScore, 5), atLeast(m.FieldPlays, 10)))},
	{"trivia_master", onGame(c.TriviaQuiz, both(atLeast(m.FieldBestScore, 5), atLeast(m.FieldPlays, 25)))},
	{"trivia_perfect", onGame(c.TriviaQuiz, both(atLeast(m.FieldBestScore, 5), atLeast(m.FieldPlays, 5)))},
	{"trivia_quick", onGame(c.TriviaQuiz, both(atLeast(m.FieldBestScore, 4), atLeast(m.FieldPlays, 3)))},
	{"trivia_plays_25", onGame(c.TriviaQuiz, atLeast(m.FieldPlays, 25))},
	{"trivia_plays_50", onGame(c.TriviaQuiz, atLeast(m.FieldPlays, 50))},
	{"trivia_knowledgeable", onGame(c.TriviaQuiz, both(atLeast(m.FieldBestScore, 4), atLeast(m.FieldPlays, 15)))},

	{"word_novice", onGame(c.WordUnscramble, atLeast(m.FieldSolved, 3))},
	{"word_intermediate", onGame(c.WordUnscramble, atLeast(m.FieldSolved, 10))},
	{"word_advanced", onGame(c.WordUnscramble, atLeast(m.FieldSolved, 25))},
	{"word_expert", onGame(c.WordUnscramble, atLeast(m.FieldSolved, 50))},
	{"word_master", onGame(c.WordUnscramble, atLeast(m.FieldSolved, 100))},
	{"word_no_hints", onGame(c.WordUnscramble, both(atLeast(m.FieldSolved, 10), equal(m.FieldHintsUsed, 0)))},
	{"word_efficient", onGame(c.WordUnscramble, both(atLeast(m.FieldSolved, 20), atMost(m.FieldHintsUsed, 5)))},
	{"word_plays_25", onGame(c.WordUnscramble, atLeast(m.FieldPlays, 25))},
	{"word_plays_50", onGame(c.WordUnscramble, atLeast(m.FieldPlays, 50))},
	{"word_vocabulary", onGame(c.WordUnscramble, atLeast(m.FieldSolved, 30))},

	{"puzzle_novice", onGame(c.GridPuzzle, atLeast(m.FieldPlays, 1))},
	{"puzzle_intermediate", onGame(c.GridPuzzle, atLeast(m.FieldPlays, 5))},
	{"puzzle_advanced", onGame(c.GridPuzzle, atLeast(m.FieldPlays, 15))},
	{"puzzle_expert", onGame(c.GridPuzzle, atMost(m.FieldBestMoves, 50))},
	{"puzzle_master", onGame(c.GridPuzzle, atMost(m.FieldBestMoves, 30))},
	{"puzzle_quick", onGame(c.GridPuzzle, atMost(m.FieldBestTime, 60))},
	{"puzzle_efficient", onGame(c.GridPuzzle, atMost(m.FieldBestMoves, 40))},
	{"puzzle_plays_25", onGame(c.GridPuzzle, atLeast(m.FieldPlays, 25))},
	{"puzzle_plays_50", onGame(c.GridPuzzle, atLeast(m.FieldPlays, 50))},
	{"puzzle_speed_demon", onGame(c.GridPuzzle, atMost(m.FieldBestTime, 45))},

	{"clicker_novice", onGame(c.IdleClicker, atLeast(m.FieldCoins, 100))},
	{"clicker_intermediate", onGame(c.IdleClicker, atLeast(m.FieldCoins, 500))},
	{"clicker_advanced", onGame(c.IdleClicker, atLeast(m.FieldCoins, 1000))},
	{"clicker_expert", onGame(c.IdleClicker, atLeast(m.FieldCoins, 5000))},
	{"clicker_master", onGame(c.IdleClicker, atLeast(m.FieldCoins, 10000))},
	{"clicker_clicks_100", onGame(c.IdleClicker, atLeast(m.FieldClicks, 100))},
	{"clicker_clicks_500", onGame(c.IdleClicker, atLeast(m.FieldClicks, 500))},
	{"clicker_cps_10", onGame(c.IdleClicker, atLeast(m.FieldCPS, 10))},
	{"clicker_cps_50", onGame(c.IdleClicker, atLeast(m.FieldCPS, 50))},
	{"clicker_cps_100", onGame(c.IdleClicker, atLeast(m.FieldCPS, 100))},

	{"battle_novice", onGame(c.CardBattle, atLeast(m.FieldWins, 3))},
	{"battle_intermediate", onGame(c.CardBattle, atLeast(m.FieldWins, 10))},
	{"battle_advanced", onGame(c.CardBattle, atLeast(m.FieldWins, 25))},
	{"battle_expert", onGame(c.CardBattle, atLeast(m.FieldWins, 50))},
	{"battle_master", onGame(c.CardBattle, atLeast(m.FieldWins, 100))},
	{"battle_strategist", onGame(c.CardBattle, both(atLeast(m.FieldWins, 15), atMost(m.FieldLosses, 5)))},
	{"battle_comeback", onGame(c.CardBattle, both(atLeast(m.FieldWins, 10), atLeast(m.FieldLosses, 10)))},
	{"battle_plays_25", onGame(c.CardBattle, atLeast(m.FieldPlays, 25))},
	{"battle_plays_50", onGame(c.CardBattle, atLeast(m.FieldPlays, 50))},
	{"battle_undefeated", onGame(c.CardBattle, both(atLeast(m.FieldWins, 5), equal(m.FieldLosses, 0)))},

	{"reaction_novice", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 500))},
	{"reaction_intermediate", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 400))},
	{"reaction_advanced", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 300))},
	{"reaction_expert", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 250))},
	{"reaction_master", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 200))},
	{"reaction_lightning", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 180))},
	{"reaction_superhuman", onGame(c.ReactionSpeed, atMost(m.FieldBestTime, 150))},
	{"reaction_plays_25", onGame(c.ReactionSpeed, atLeast(m.FieldPlays, 25))},
	{"reaction_plays_50", onGame(c.ReactionSpeed, atLeast(m.FieldPlays, 50))},
	{"reaction_consistent", onGame(c.ReactionSpeed, both(atLeast(m.FieldPlays, 10), atMost(m.FieldBestTime, 300)))},

	{"gameverse_novice", gamesPlayedAtLeast(3)},
	{"gameverse_intermediate", gamesPlayedAtLeast(5)},
	{"gameverse_advanced", gamesPlayedAtLeast(7)},
	{"gameverse_expert", gamesPlayedAtLeast(9)},
	{"gameverse_master", gamesPlayedAtLeast(10)},
	{"gameverse_addict", totalPlaysAtLeast(100)},
	{"badge_collector_bronze", badgesUnlockedAtLeast(10)},
	{"badge_collector_silver", badgesUnlockedAtLeast(25)},
	{"badge_collector_gold", badgesUnlockedAtLeast(50)},
	{"badge_collector_platinum", badgesUnlockedAtLeast(75)},
	{"challenge_master", func(snap Snapshot) bool { return snap.SessionStats.ChallengesCompleted >= 25 }},
}
