package catalog

import "github.com/blackwell-systems/gameverse/internal/model"

func challenge(id, game string, coins int, title, description, requirement string) model.Challenge {
	return model.Challenge{
		ID:          id,
		Title:       title,
		Description: description,
		Game:        game,
		Requirement: requirement,
		RewardCoins: coins,
	}
}

var challenges = []model.Challenge{
	challenge("rps_daily_win_3", RockPaperScissors, 50, "Triple Victory", "Win three rounds of Rock Paper Scissors", "Win 3 games"),
	challenge("rps_daily_play_5", RockPaperScissors, 25, "Hand Warm-up", "Play a few rounds of Rock Paper Scissors", "Play 5 games"),
	challenge("guess_daily_win", NumberGuess, 30, "Number Found", "Find the hidden number", "Complete a game of Number Guess"),
	challenge("guess_daily_under_5", NumberGuess, 60, "Sharp Guess", "Find the number quickly", "Guess in 5 attempts or fewer"),
	challenge("memory_daily_complete", MemoryMatch, 30, "Memory Workout", "Play a round of Memory Match", "Play 1 game"),
	challenge("memory_daily_level_2", MemoryMatch, 50, "Level Up", "Move up to a harder board", "Reach level 2"),
	challenge("trivia_daily_score_3", TriviaQuiz, 40, "Know-it-all", "Answer trivia questions correctly", "Score 3 in a quiz"),
	challenge("trivia_daily_perfect", TriviaQuiz, 75, "Perfect Quiz", "Get every question right", "Score 5 in a quiz"),
	challenge("word_daily_solve_3", WordUnscramble, 40, "Word Hunt", "Unscramble some words", "Solve 3 words"),
	challenge("word_daily_no_hints", WordUnscramble, 50, "No Help Needed", "Solve a word on your own", "Solve a word without hints"),
	challenge("puzzle_daily_complete", GridPuzzle, 30, "Slide Session", "Play the sliding puzzle", "Play 1 game"),
	challenge("puzzle_daily_under_50", GridPuzzle, 60, "Efficient Slider", "Solve the puzzle in few moves", "Solve in 50 moves or fewer"),
	challenge("clicker_daily_100", IdleClicker, 25, "Coin Drive", "Build up your clicker coins", "Earn 100 coins"),
	challenge("clicker_daily_clicks_50", IdleClicker, 25, "Click Practice", "Give the clicker some exercise", "Click 50 times"),
	challenge("battle_daily_win", CardBattle, 40, "First Blood", "Win a card battle", "Win 1 battle"),
	challenge("battle_daily_win_3", CardBattle, 75, "Warlord", "Win several card battles", "Win 3 battles"),
	challenge("reaction_daily_under_400", ReactionSpeed, 50, "Quick Draw", "Show off your reflexes", "React in 400 ms or less"),
	challenge("reaction_daily_play_5", ReactionSpeed, 25, "Reflex Drills", "Practise your reactions", "Play 5 games"),
	challenge("daily_play_3_games", AllGames, 50, "Variety Pack", "Try several different games", "Play 3 different games"),
	challenge("daily_play_5_games", AllGames, 100, "Arcade Tour", "Tour the arcade", "Play 5 different games"),
	challenge("daily_total_plays_10", AllGames, 50, "Marathon", "Play a lot of games", "Play 10 games in total"),
	challenge("daily_unlock_badge", AllGames, 75, "Badge Hunter", "Earn a badge", "Unlock any badge"),
	challenge("daily_complete_5_challenges", AllGames, 100, "Overachiever", "Complete other daily challenges", "Complete 5 daily challenges"),
}

// ChallengeTemplates returns the canonical challenge templates. Expiry and
// completion fields are zero; the refresh scheduler fills them in.
func ChallengeTemplates() []model.Challenge {
	out := make([]model.Challenge, len(challenges))
	copy(out, challenges)
	return out
}
