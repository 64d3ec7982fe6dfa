// Package catalog holds the static, versioned game, badge and challenge
// definitions shipped with gameverse.
package catalog

import "github.com/blackwell-systems/gameverse/internal/model"

// Game ids.
const (
	RockPaperScissors = "rock-paper-scissors"
	NumberGuess       = "number-guess"
	DiceRoller        = "dice-roller"
	MemoryMatch       = "memory-match"
	TriviaQuiz        = "trivia-quiz"
	WordUnscramble    = "word-unscramble"
	GridPuzzle        = "grid-puzzle"
	IdleClicker       = "idle-clicker"
	CardBattle        = "card-battle"
	ReactionSpeed     = "reaction-speed"

	// AllGames marks badges and challenges that span every game.
	AllGames = "all"
)

// Game describes one mini-game.
type Game struct {
	ID       string
	Name     string
	Info     string
	Defaults model.Stats
	// LowerIsBetter lists best-fields where a smaller value is an improvement.
	LowerIsBetter []string
}

var games = []Game{
	{
		ID:       RockPaperScissors,
		Name:     "Rock Paper Scissors",
		Info:     "Rock Paper Scissors is a classic game where you choose rock, paper, or scissors. Rock beats scissors, scissors beats paper, and paper beats rock. Try to predict your opponent's move to win!",
		Defaults: model.Stats{model.FieldWins: 0, model.FieldLosses: 0, model.FieldDraws: 0, model.FieldPlays: 0, model.FieldStreak: 0},
	},
	{
		ID:            NumberGuess,
		Name:          "Number Guess",
		Info:          "In Number Guess, you try to guess a number between 1 and 100. After each guess, you'll get a hint whether the target number is higher or lower.",
		Defaults:      model.Stats{model.FieldPlays: 0, model.FieldBestScore: 0, model.FieldScore: 0},
		LowerIsBetter: []string{model.FieldBestScore},
	},
	{
		ID:       DiceRoller,
		Name:     "Dice Roller",
		Info:     "Dice Roller lets you roll virtual dice. It's a simple game of chance - see what numbers you can roll!",
		Defaults: model.Stats{model.FieldPlays: 0},
	},
	{
		ID:            MemoryMatch,
		Name:          "Memory Match",
		Info:          "Memory Match tests your memory skills. Flip cards to find matching pairs. The fewer moves you make, the better your score!",
		Defaults:      model.Stats{model.FieldPlays: 0, model.FieldBestScore: 0, model.FieldLevel: 1},
		LowerIsBetter: []string{model.FieldBestScore},
	},
	{
		ID:       TriviaQuiz,
		Name:     "Trivia Quiz",
		Info:     "Trivia Quiz challenges your knowledge with questions across various topics. Answer correctly before the timer runs out!",
		Defaults: model.Stats{model.FieldPlays: 0, model.FieldScore: 0, model.FieldBestScore: 0},
	},
	{
		ID:       WordUnscramble,
		Name:     "Word Unscramble",
		Info:     "In Word Unscramble, you're given jumbled letters and need to rearrange them to form a valid word. You can use hints if you get stuck.",
		Defaults: model.Stats{model.FieldPlays: 0, model.FieldSolved: 0, model.FieldHintsUsed: 0},
	},
	{
		ID:            GridPuzzle,
		Name:          "Grid Puzzle",
		Info:          "Grid Puzzle is a sliding tile puzzle where you rearrange tiles to form the correct sequence. The fewer moves, the better!",
		Defaults:      model.Stats{model.FieldPlays: 0, model.FieldBestMoves: 0, model.FieldBestTime: 0},
		LowerIsBetter: []string{model.FieldBestMoves, model.FieldBestTime},
	},
	{
		ID:       IdleClicker,
		Name:     "Idle Clicker",
		Info:     "Idle Clicker is a game where you click to earn coins and buy upgrades that automatically generate more coins for you.",
		Defaults: model.Stats{model.FieldCoins: 0, model.FieldCPS: 0, model.FieldClicks: 0},
	},
	{
		ID:       CardBattle,
		Name:     "Card Battle",
		Info:     "Card Battle is a strategic card game where you battle against the computer. Choose your actions wisely to defeat your opponent!",
		Defaults: model.Stats{model.FieldWins: 0, model.FieldLosses: 0, model.FieldPlays: 0},
	},
	{
		ID:            ReactionSpeed,
		Name:          "Reaction Speed",
		Info:          "Reaction Speed tests how quickly you can respond. Wait for the green light, then click as fast as you can!",
		Defaults:      model.Stats{model.FieldPlays: 0, model.FieldBestTime: 0},
		LowerIsBetter: []string{model.FieldBestTime},
	},
}

// Games returns every known game in display order.
func Games() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

// LookupGame returns the game with the given id.
func LookupGame(id string) (Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// IsLowerBetter reports whether smaller values of field are improvements
// for the given game.
func IsLowerBetter(gameID, field string) bool {
	g, ok := LookupGame(gameID)
	if !ok {
		return false
	}
	for _, f := range g.LowerIsBetter {
		if f == field {
			return true
		}
	}
	return false
}

// DefaultProgress returns zeroed statistics for every known game.
func DefaultProgress() model.GameProgress {
	p := make(model.GameProgress, len(games))
	for _, g := range games {
		p[g.ID] = g.Defaults.Clone()
	}
	return p
}

// PopularGames lists the games recommended to new players.
var PopularGames = []string{RockPaperScissors, MemoryMatch, TriviaQuiz}
