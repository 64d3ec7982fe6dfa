package intent

import "github.com/blackwell-systems/gameverse/internal/catalog"

// Route ids accepted by the navigator.
const (
	RouteHome            = "home"
	RouteGames           = "games"
	RouteDailyChallenges = "daily-challenges"
	RouteDashboard       = "dashboard"
	RouteBadges          = "badges"
	RouteAbout           = "about"
	RouteSettings        = "settings"
)

// keywordSet maps a canonical id to the phrasings that select it. Tables are
// ordered; the first entry with a matching phrase wins.
type keywordSet struct {
	ID      string
	Phrases []string
}

var destinations = []keywordSet{
	{RouteHome, []string{"home", "main page", "start", "landing page", "homepage", "front page", "welcome page"}},
	{RouteGames, []string{"games", "game list", "all games", "play games", "game library", "games page", "game collection"}},
	{RouteDailyChallenges, []string{"daily challenges", "challenges", "daily", "challenge", "tasks", "missions", "quests", "daily tasks", "daily missions"}},
	{RouteDashboard, []string{"dashboard", "stats", "statistics", "progress", "analytics", "data", "performance", "my stats", "my progress", "my dashboard"}},
	{RouteBadges, []string{"badges", "achievements", "trophies", "awards", "medals", "accomplishments", "my badges", "my achievements", "my trophies"}},
	{RouteAbout, []string{"about", "info", "information", "details", "learn more", "about page", "about us", "about gameverse"}},
	{RouteSettings, []string{"settings", "preferences", "options", "configuration", "setup", "settings page", "my settings", "game settings"}},
}

var games = []keywordSet{
	{catalog.RockPaperScissors, []string{"rock paper scissors", "rock paper", "rps", "rock", "scissors", "paper game", "rock paper scissor"}},
	{catalog.NumberGuess, []string{"number guess", "guess number", "number guessing", "number game", "guessing game", "guess the number", "number guessing game"}},
	{catalog.DiceRoller, []string{"dice roller", "dice", "roll dice", "dice game", "rolling dice", "dice rolling", "roll the dice"}},
	{catalog.MemoryMatch, []string{"memory match", "memory game", "matching game", "match cards", "memory cards", "card matching", "memory matching"}},
	{catalog.TriviaQuiz, []string{"trivia quiz", "trivia", "quiz", "questions", "trivia game", "quiz game", "question game", "trivia questions"}},
	{catalog.WordUnscramble, []string{"word unscramble", "unscramble", "word game", "scramble", "word puzzle", "unscramble words", "word scramble"}},
	{catalog.GridPuzzle, []string{"grid puzzle", "puzzle", "sliding puzzle", "tile puzzle", "grid game", "sliding tiles", "puzzle game"}},
	{catalog.IdleClicker, []string{"idle clicker", "clicker", "clicking game", "idle game", "click game", "clicker game", "idle clicking"}},
	{catalog.CardBattle, []string{"card battle", "battle", "card game", "battle cards", "card fight", "card wars", "battle card game"}},
	{catalog.ReactionSpeed, []string{"reaction speed", "reaction", "speed test", "reaction test", "reflex test", "reaction time", "speed reaction"}},
}

// Category trigger phrases, checked in resolution order.
var (
	navPhrases        = []string{"go to", "open", "navigate to", "take me to"}
	playPhrases       = []string{"play", "start game", "launch game"}
	helpPhrases       = []string{"help", "what can you do", "commands", "how to use"}
	statsPhrases      = []string{"stats", "statistics", "progress", "my performance"}
	badgePhrases      = []string{"badges", "achievements", "trophies", "awards"}
	challengePhrases  = []string{"challenges", "daily challenges", "tasks", "missions"}
	closePhrases      = []string{"close", "exit", "bye", "goodbye"}
	themePhrases      = []string{"dark mode", "light mode", "theme", "change color"}
	timePhrases       = []string{"time", "date", "day", "today"}
	gameInfoPhrases   = []string{"tell me about", "what is", "how to play"}
	settingsPhrases   = []string{"settings", "preferences", "options"}
	aboutPhrases      = []string{"about", "information", "info"}
	reloadPhrases     = []string{"refresh", "reload", "update"}
	homePhrases       = []string{"home", "main page", "start page"}
	gamesListPhrases  = []string{"games list", "all games", "show games"}
	popularPhrases    = []string{"popular games", "best games", "recommended games"}
	coinPhrases       = []string{"coins", "how many coins", "my coins"}
	clearChatPhrases  = []string{"clear chat", "clear messages", "reset chat"}
	volumeUpPhrases   = []string{"volume up", "louder", "increase volume"}
	volumeDownPhrases = []string{"volume down", "quieter", "decrease volume"}
	mutePhrases       = []string{"mute", "silent", "stop speaking"}
)
