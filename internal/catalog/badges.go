package catalog

import "github.com/blackwell-systems/gameverse/internal/model"

func badge(id, game, icon, title, description, requirement string) model.Badge {
	return model.Badge{
		ID:          id,
		Title:       title,
		Description: description,
		Game:        game,
		Requirement: requirement,
		Icon:        icon,
	}
}

// badges is the shipped catalog. Entries may be appended in later versions
// but ids are never reused or removed.
var badges = []model.Badge{
	// Rock Paper Scissors
	badge("rps_novice", RockPaperScissors, "trophy", "RPS Novice", "Win your first few rounds of Rock Paper Scissors", "Win 3 games"),
	badge("rps_intermediate", RockPaperScissors, "trophy", "RPS Intermediate", "Show you know your rock from your paper", "Win 10 games"),
	badge("rps_advanced", RockPaperScissors, "trophy", "RPS Advanced", "A seasoned hand at Rock Paper Scissors", "Win 25 games"),
	badge("rps_expert", RockPaperScissors, "trophy", "RPS Expert", "Outguess the computer time and again", "Win 50 games"),
	badge("rps_master", RockPaperScissors, "crown", "RPS Master", "The undisputed champion of the hand game", "Win 100 games"),
	badge("rps_streak_3", RockPaperScissors, "flame", "Hot Hand", "Win several rounds in a row", "Win 3 games in a row"),
	badge("rps_streak_5", RockPaperScissors, "flame", "On Fire", "Keep a winning streak going", "Win 5 games in a row"),
	badge("rps_streak_10", RockPaperScissors, "flame", "Unstoppable", "A streak the computer cannot break", "Win 10 games in a row"),
	badge("rps_plays_50", RockPaperScissors, "repeat", "RPS Regular", "Keep coming back for another round", "Play 50 games"),
	badge("rps_plays_100", RockPaperScissors, "repeat", "RPS Devotee", "Rock Paper Scissors is your game", "Play 100 games"),

	// Number Guess
	badge("guess_novice", NumberGuess, "target", "Guesser", "Start guessing numbers", "Play 3 games"),
	badge("guess_intermediate", NumberGuess, "target", "Keen Guesser", "Getting the hang of higher and lower", "Play 10 games"),
	badge("guess_advanced", NumberGuess, "target", "Seasoned Guesser", "A veteran of the number line", "Play 25 games"),
	badge("guess_expert", NumberGuess, "target", "Sharp Mind", "Find the number quickly", "Guess the number in 5 attempts or fewer"),
	badge("guess_master", NumberGuess, "crown", "Number Master", "Find the number very quickly", "Guess the number in 3 attempts or fewer"),
	badge("guess_plays_50", NumberGuess, "repeat", "Guess Regular", "Keep on guessing", "Play 50 games"),
	badge("guess_plays_100", NumberGuess, "repeat", "Guess Devotee", "Number Guess is your game", "Play 100 games"),
	badge("guess_perfect", NumberGuess, "star", "Mind Reader", "Get it right the very first time", "Guess the number on the first attempt"),
	badge("guess_persistent", NumberGuess, "shield", "Persistent", "Practice pays off", "Play 5 games and guess in 7 attempts or fewer"),
	badge("guess_lucky", NumberGuess, "clover", "Lucky Guess", "Fortune favours the bold", "Guess the number in 2 attempts or fewer"),

	// Memory Match
	badge("memory_novice", MemoryMatch, "brain", "Memory Novice", "Take on the first memory level", "Reach level 1"),
	badge("memory_intermediate", MemoryMatch, "brain", "Memory Intermediate", "Move up a memory level", "Reach level 2"),
	badge("memory_advanced", MemoryMatch, "brain", "Memory Advanced", "Handle a bigger board", "Reach level 3"),
	badge("memory_expert", MemoryMatch, "brain", "Memory Expert", "Master the hardest board", "Reach level 4"),
	badge("memory_master", MemoryMatch, "crown", "Memory Master", "The hardest board with few mistakes", "Reach level 4 with a best of 20 moves or fewer"),
	badge("memory_quick", MemoryMatch, "zap", "Quick Recall", "Clear the board in few moves", "Finish in 15 moves or fewer"),
	badge("memory_efficient", MemoryMatch, "zap", "Efficient Recall", "Clear the board in very few moves", "Finish in 12 moves or fewer"),
	badge("memory_plays_25", MemoryMatch, "repeat", "Memory Regular", "Keep exercising your memory", "Play 25 games"),
	badge("memory_plays_50", MemoryMatch, "repeat", "Memory Devotee", "Memory Match is your game", "Play 50 games"),
	badge("memory_perfect", MemoryMatch, "star", "Photographic Memory", "The hardest board, almost perfectly", "Reach level 4 with a best of 16 moves or fewer"),

	// Trivia Quiz
	badge("trivia_novice", TriviaQuiz, "book", "Trivia Novice", "Answer a few questions right", "Score 3 in a quiz"),
	badge("trivia_intermediate", TriviaQuiz, "book", "Trivia Buff", "A solid quiz performance", "Score 5 in a quiz"),
	badge("trivia_advanced", TriviaQuiz, "book", "Trivia Ace", "Post a top best score", "Reach a best score of 5"),
	badge("trivia_expert", TriviaQuiz, "book", "Trivia Expert", "Consistently top of the class", "Best score of 5 and 10 quizzes played"),
	badge("trivia_master", TriviaQuiz, "crown", "Trivia Master", "A quiz legend", "Best score of 5 and 25 quizzes played"),
	badge("trivia_perfect", TriviaQuiz, "star", "Perfect Round", "Nail a perfect quiz", "Best score of 5 and 5 quizzes played"),
	badge("trivia_quick", TriviaQuiz, "zap", "Quick Thinker", "Strong scores early on", "Best score of 4 and 3 quizzes played"),
	badge("trivia_plays_25", TriviaQuiz, "repeat", "Trivia Regular", "Keep the questions coming", "Play 25 quizzes"),
	badge("trivia_plays_50", TriviaQuiz, "repeat", "Trivia Devotee", "Trivia Quiz is your game", "Play 50 quizzes"),
	badge("trivia_knowledgeable", TriviaQuiz, "graduation-cap", "Knowledgeable", "Broad knowledge over many quizzes", "Best score of 4 and 15 quizzes played"),

	// Word Unscramble
	badge("word_novice", WordUnscramble, "type", "Word Novice", "Unscramble your first words", "Solve 3 words"),
	badge("word_intermediate", WordUnscramble, "type", "Word Solver", "Letters fall into place", "Solve 10 words"),
	badge("word_advanced", WordUnscramble, "type", "Word Advanced", "A way with words", "Solve 25 words"),
	badge("word_expert", WordUnscramble, "type", "Word Expert", "Scrambles hold no fear", "Solve 50 words"),
	badge("word_master", WordUnscramble, "crown", "Word Master", "Lord of the letters", "Solve 100 words"),
	badge("word_no_hints", WordUnscramble, "eye-off", "No Peeking", "Solve without any help", "Solve 10 words without using hints"),
	badge("word_efficient", WordUnscramble, "zap", "Efficient Solver", "Rarely need a hint", "Solve 20 words using 5 hints or fewer"),
	badge("word_plays_25", WordUnscramble, "repeat", "Word Regular", "Keep unscrambling", "Play 25 games"),
	badge("word_plays_50", WordUnscramble, "repeat", "Word Devotee", "Word Unscramble is your game", "Play 50 games"),
	badge("word_vocabulary", WordUnscramble, "book-open", "Vocabulary Builder", "A growing vocabulary", "Solve 30 words"),

	// Grid Puzzle
	badge("puzzle_novice", GridPuzzle, "puzzle", "Puzzle Novice", "Try the sliding puzzle", "Play 1 game"),
	badge("puzzle_intermediate", GridPuzzle, "puzzle", "Puzzle Solver", "Slide some more tiles", "Play 5 games"),
	badge("puzzle_advanced", GridPuzzle, "puzzle", "Puzzle Advanced", "Tiles are second nature", "Play 15 games"),
	badge("puzzle_expert", GridPuzzle, "puzzle", "Puzzle Expert", "Solve with few moves", "Solve in 50 moves or fewer"),
	badge("puzzle_master", GridPuzzle, "crown", "Puzzle Master", "Solve with very few moves", "Solve in 30 moves or fewer"),
	badge("puzzle_quick", GridPuzzle, "clock", "Quick Slider", "Solve against the clock", "Solve in 60 seconds or less"),
	badge("puzzle_efficient", GridPuzzle, "zap", "Efficient Slider", "Economy of movement", "Solve in 40 moves or fewer"),
	badge("puzzle_plays_25", GridPuzzle, "repeat", "Puzzle Regular", "Keep sliding", "Play 25 games"),
	badge("puzzle_plays_50", GridPuzzle, "repeat", "Puzzle Devotee", "Grid Puzzle is your game", "Play 50 games"),
	badge("puzzle_speed_demon", GridPuzzle, "rocket", "Speed Demon", "Blazing fast solve", "Solve in 45 seconds or less"),

	// Idle Clicker
	badge("clicker_novice", IdleClicker, "coins", "Pocket Change", "Start your coin pile", "Earn 100 coins"),
	badge("clicker_intermediate", IdleClicker, "coins", "Coin Collector", "A respectable stash", "Earn 500 coins"),
	badge("clicker_advanced", IdleClicker, "coins", "Coin Hoarder", "Four digits of coins", "Earn 1,000 coins"),
	badge("clicker_expert", IdleClicker, "coins", "Tycoon", "A serious fortune", "Earn 5,000 coins"),
	badge("clicker_master", IdleClicker, "crown", "Clicker Master", "Rolling in coins", "Earn 10,000 coins"),
	badge("clicker_clicks_100", IdleClicker, "mouse-pointer", "Clicker", "Put that finger to work", "Click 100 times"),
	badge("clicker_clicks_500", IdleClicker, "mouse-pointer", "Super Clicker", "A tireless finger", "Click 500 times"),
	badge("clicker_cps_10", IdleClicker, "trending-up", "Automation", "Let upgrades do the work", "Reach 10 coins per second"),
	badge("clicker_cps_50", IdleClicker, "trending-up", "Factory", "A coin factory", "Reach 50 coins per second"),
	badge("clicker_cps_100", IdleClicker, "trending-up", "Coin Empire", "An empire of coins", "Reach 100 coins per second"),

	// Card Battle
	badge("battle_novice", CardBattle, "swords", "Battle Novice", "Win your first battles", "Win 3 battles"),
	badge("battle_intermediate", CardBattle, "swords", "Battler", "Growing in strength", "Win 10 battles"),
	badge("battle_advanced", CardBattle, "swords", "Veteran Battler", "Many victories behind you", "Win 25 battles"),
	badge("battle_expert", CardBattle, "swords", "Battle Expert", "A feared opponent", "Win 50 battles"),
	badge("battle_master", CardBattle, "crown", "Battle Master", "Master of the cards", "Win 100 battles"),
	badge("battle_strategist", CardBattle, "chess", "Strategist", "Win often, lose rarely", "Win 15 battles with 5 losses or fewer"),
	badge("battle_comeback", CardBattle, "refresh", "Comeback Kid", "Never give up", "Win 10 battles and lose 10 battles"),
	badge("battle_plays_25", CardBattle, "repeat", "Battle Regular", "Keep battling", "Play 25 battles"),
	badge("battle_plays_50", CardBattle, "repeat", "Battle Devotee", "Card Battle is your game", "Play 50 battles"),
	badge("battle_undefeated", CardBattle, "shield", "Undefeated", "A flawless record", "Win 5 battles without a loss"),

	// Reaction Speed
	badge("reaction_novice", ReactionSpeed, "timer", "Quick Reflexes", "Respond in half a second", "React in 500 ms or less"),
	badge("reaction_intermediate", ReactionSpeed, "timer", "Fast Reflexes", "Getting quicker", "React in 400 ms or less"),
	badge("reaction_advanced", ReactionSpeed, "timer", "Sharp Reflexes", "Faster than most", "React in 300 ms or less"),
	badge("reaction_expert", ReactionSpeed, "timer", "Reflex Expert", "Serious speed", "React in 250 ms or less"),
	badge("reaction_master", ReactionSpeed, "crown", "Reflex Master", "Elite reaction time", "React in 200 ms or less"),
	badge("reaction_lightning", ReactionSpeed, "zap", "Lightning", "Faster than lightning", "React in 180 ms or less"),
	badge("reaction_superhuman", ReactionSpeed, "rocket", "Superhuman", "Barely human reflexes", "React in 150 ms or less"),
	badge("reaction_plays_25", ReactionSpeed, "repeat", "Reaction Regular", "Keep testing your reflexes", "Play 25 games"),
	badge("reaction_plays_50", ReactionSpeed, "repeat", "Reaction Devotee", "Reaction Speed is your game", "Play 50 games"),
	badge("reaction_consistent", ReactionSpeed, "activity", "Consistent", "Fast over many attempts", "Play 10 games with a best of 300 ms or less"),

	// Special
	badge("gameverse_novice", AllGames, "compass", "Explorer", "Try out different games", "Play 3 different games"),
	badge("gameverse_intermediate", AllGames, "compass", "Adventurer", "A taste for variety", "Play 5 different games"),
	badge("gameverse_advanced", AllGames, "compass", "Voyager", "Most of the arcade explored", "Play 7 different games"),
	badge("gameverse_expert", AllGames, "compass", "Globetrotter", "Nearly every game tried", "Play 9 different games"),
	badge("gameverse_master", AllGames, "crown", "GameVerse Master", "Every game played", "Play all 10 games"),
	badge("gameverse_addict", AllGames, "gamepad", "GameVerse Addict", "Can't stop playing", "Play 100 games in total"),
	badge("badge_collector_bronze", AllGames, "award", "Bronze Collector", "Start a badge collection", "Unlock 10 badges"),
	badge("badge_collector_silver", AllGames, "award", "Silver Collector", "A growing collection", "Unlock 25 badges"),
	badge("badge_collector_gold", AllGames, "award", "Gold Collector", "An impressive collection", "Unlock 50 badges"),
	badge("badge_collector_platinum", AllGames, "award", "Platinum Collector", "A legendary collection", "Unlock 75 badges"),
	badge("challenge_master", AllGames, "calendar-check", "Challenge Master", "Dedicated to the daily grind", "Complete 25 daily challenges"),
}

// Badges returns a fresh copy of the badge catalog with every badge locked.
func Badges() []model.Badge {
	out := make([]model.Badge, len(badges))
	copy(out, badges)
	return out
}
