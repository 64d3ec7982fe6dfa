package intent

import "strings"

// Canned replies.
const (
	ReplyWakePrompt   = "How can I help you?"
	ReplyClose        = "Goodbye! Closing the chat window."
	ReplyDarkMode     = "Switching to dark mode."
	ReplyLightMode    = "Switching to light mode."
	ReplyThemeHint    = "You can say 'dark mode' or 'light mode' to change the theme."
	ReplyReload       = "Refreshing the page..."
	ReplyPopularGames = "Our most popular games are Rock Paper Scissors, Memory Match, and Trivia Quiz. Would you like to play one of these?"
	ReplyClearChat    = "Chat history cleared. How can I help you?"
	ReplyVolumeUp     = "I've increased the volume."
	ReplyVolumeDown   = "I've decreased the volume."
	ReplyMute         = "I've muted the audio."

	replyGreeting  = "Hello! How can I help you with GameVerse today?"
	replyThanks    = "You're welcome! Is there anything else I can help you with?"
	replyIdentity  = "I'm GameVerse Buddy, your virtual assistant for the GameVerse platform. I can help you navigate the site, play games, and check your progress."
	replyHowToPlay = "You can browse our games by saying 'Open Games' or directly start a specific game by saying 'Play' followed by the game name, like 'Play Rock Paper Scissors'."
	replyRecommend = "I'd recommend trying Memory Match or Trivia Quiz if you're new. Rock Paper Scissors is also a classic favorite!"
	replyFallback  = "I'm not sure how to help with that. Try asking me to open a game, show your stats, or navigate to a specific page. Say 'help' for more options."
)

// HelpText lists the supported commands.
const HelpText = `I can help you navigate GameVerse and provide information. Here are some commands you can try:

Navigation:
- "Open Games" to see all games
- "Go to Dashboard" to see your stats
- "Show my badges" to view your achievements
- "Open daily challenges" to see today's challenges
- "Take me to settings" to access settings

Games:
- "Play Rock Paper Scissors" to start a specific game
- "Tell me about Memory Match" to learn about a game
- "What are the popular games?" to get recommendations

Other Commands:
- "Dark mode" or "Light mode" to change theme
- "What time is it?" to check the current time
- "Clear chat" to reset our conversation
- "Close" or "Exit" to close this chat

You can activate me anytime by saying "Hey Buddy" followed by a command.`

type cannedReply struct {
	phrases []string
	reply   string
}

var canned = []cannedReply{
	{[]string{"hello", "hi "}, replyGreeting},
	{[]string{"thank"}, replyThanks},
	{[]string{"who are you", "what are you"}, replyIdentity},
	{[]string{"how do i play", "how to play"}, replyHowToPlay},
	{[]string{"best game", "recommend", "suggestion"}, replyRecommend},
}

// fallbackReply picks a canned answer for input no category claimed.
func fallbackReply(s string) string {
	for _, c := range canned {
		if containsAny(s, c.phrases) {
			return c.reply
		}
	}
	return replyFallback
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
