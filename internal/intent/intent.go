// Package intent turns a spoken or typed command into a structured intent.
// Resolution is pure and total: any input yields an intent, never an error.
package intent

import (
	"regexp"
	"strings"

	"github.com/blackwell-systems/gameverse/internal/catalog"
)

// Kind is the category of a resolved command.
type Kind string

const (
	Navigate       Kind = "navigate"
	PlayGame       Kind = "play-game"
	Help           Kind = "help"
	SettingsChange Kind = "settings-change"
	Query          Kind = "query"
	Close          Kind = "close"
	Unknown        Kind = "unknown"
)

// Settings carried by SettingsChange intents.
const (
	SettingThemeDark  = "theme-dark"
	SettingThemeLight = "theme-light"
	SettingThemeHint  = "theme-hint"
	SettingVolumeUp   = "volume-up"
	SettingVolumeDown = "volume-down"
	SettingMute       = "mute"
	SettingReload     = "reload"
	SettingClearChat  = "clear-chat"
)

// Queries carried by Query intents.
const (
	QueryTime         = "time"
	QueryGameInfo     = "game-info"
	QueryPopularGames = "popular-games"
	QueryCoins        = "coins"
)

// Intent is the resolver's output. Target holds a route id for Navigate and
// a game id for PlayGame and game-info queries. Reply is set whenever the
// answer does not depend on runtime state.
type Intent struct {
	Kind    Kind
	Target  string
	Setting string
	Query   string
	Reply   string
}

var wakePhrases = []string{"hey buddy", "hey body", "hay buddy", "hey but", "hey bud"}

var wakePattern = regexp.MustCompile(`(?:hey|hay)\s+(?:buddy|body|budy|budie|bud|but)\b[,.!?\s]*(.*)`)

// DetectWake reports whether transcript contains the wake phrase, or one of
// its common mishearings, and returns any command spoken after it.
func DetectWake(transcript string) (command string, ok bool) {
	t := strings.ToLower(transcript)
	if !containsAny(t, wakePhrases) {
		return "", false
	}
	m := wakePattern.FindStringSubmatch(t)
	if m == nil {
		return "", true
	}
	return strings.TrimSpace(m[1]), true
}

// ExtractDestination finds the first route whose phrasing appears in s.
func ExtractDestination(s string) (string, bool) {
	return lookup(destinations, strings.ToLower(s))
}

// ExtractGame finds the first game whose phrasing appears in s.
func ExtractGame(s string) (string, bool) {
	return lookup(games, strings.ToLower(s))
}

func lookup(table []keywordSet, s string) (string, bool) {
	for _, entry := range table {
		if containsAny(s, entry.Phrases) {
			return entry.ID, true
		}
	}
	return "", false
}

// afterPhrase returns the text following the first phrase found in s, or s
// itself when none is found.
func afterPhrase(s string, phrases []string) string {
	for _, p := range phrases {
		if i := strings.Index(s, p); i >= 0 {
			return s[i+len(p):]
		}
	}
	return s
}

// Resolve maps a transcript to an intent. A leading wake phrase is removed
// first. Categories are checked in a fixed order and the first one that
// claims the command wins.
func Resolve(transcript string) Intent {
	s := strings.ToLower(strings.TrimSpace(transcript))
	if cmd, ok := DetectWake(s); ok && cmd != "" {
		s = cmd
	}

	if containsAny(s, navPhrases) {
		// Prefer the words after the verb, so "open" itself never picks a route.
		if dest, ok := ExtractDestination(afterPhrase(s, navPhrases)); ok {
			return Intent{Kind: Navigate, Target: dest}
		}
		if dest, ok := ExtractDestination(s); ok {
			return Intent{Kind: Navigate, Target: dest}
		}
	}
	if containsAny(s, playPhrases) {
		if game, ok := ExtractGame(s); ok {
			return Intent{Kind: PlayGame, Target: game}
		}
	}

	switch {
	case containsAny(s, helpPhrases):
		return Intent{Kind: Help, Reply: HelpText}
	case containsAny(s, statsPhrases):
		return Intent{Kind: Navigate, Target: RouteDashboard}
	case containsAny(s, badgePhrases):
		return Intent{Kind: Navigate, Target: RouteBadges}
	case containsAny(s, challengePhrases):
		return Intent{Kind: Navigate, Target: RouteDailyChallenges}
	case containsAny(s, closePhrases):
		return Intent{Kind: Close, Reply: ReplyClose}
	case containsAny(s, themePhrases):
		return resolveTheme(s)
	case containsAny(s, timePhrases):
		return Intent{Kind: Query, Query: QueryTime}
	}

	if containsAny(s, gameInfoPhrases) {
		if game, ok := ExtractGame(s); ok {
			return Intent{Kind: Query, Query: QueryGameInfo, Target: game, Reply: GameInfo(game)}
		}
	}

	switch {
	case containsAny(s, settingsPhrases):
		return Intent{Kind: Navigate, Target: RouteSettings}
	case containsAny(s, aboutPhrases):
		return Intent{Kind: Navigate, Target: RouteAbout}
	case containsAny(s, reloadPhrases):
		return Intent{Kind: SettingsChange, Setting: SettingReload, Reply: ReplyReload}
	case containsAny(s, homePhrases):
		return Intent{Kind: Navigate, Target: RouteHome}
	case containsAny(s, gamesListPhrases):
		return Intent{Kind: Navigate, Target: RouteGames}
	case containsAny(s, popularPhrases):
		return Intent{Kind: Query, Query: QueryPopularGames, Reply: ReplyPopularGames}
	case containsAny(s, coinPhrases):
		return Intent{Kind: Query, Query: QueryCoins, Target: RouteDashboard}
	case containsAny(s, clearChatPhrases):
		return Intent{Kind: SettingsChange, Setting: SettingClearChat, Reply: ReplyClearChat}
	case containsAny(s, volumeUpPhrases):
		return Intent{Kind: SettingsChange, Setting: SettingVolumeUp, Reply: ReplyVolumeUp}
	case containsAny(s, volumeDownPhrases):
		return Intent{Kind: SettingsChange, Setting: SettingVolumeDown, Reply: ReplyVolumeDown}
	case containsAny(s, mutePhrases):
		return Intent{Kind: SettingsChange, Setting: SettingMute, Reply: ReplyMute}
	}

	return Intent{Kind: Unknown, Reply: fallbackReply(s)}
}

func resolveTheme(s string) Intent {
	switch {
	case strings.Contains(s, "dark"):
		return Intent{Kind: SettingsChange, Setting: SettingThemeDark, Reply: ReplyDarkMode}
	case strings.Contains(s, "light"):
		return Intent{Kind: SettingsChange, Setting: SettingThemeLight, Reply: ReplyLightMode}
	default:
		return Intent{Kind: SettingsChange, Setting: SettingThemeHint, Reply: ReplyThemeHint}
	}
}

// GameInfo returns the spoken description of a game.
func GameInfo(gameID string) string {
	if g, ok := catalog.LookupGame(gameID); ok && g.Info != "" {
		return g.Info
	}
	return catalog.DisplayName(gameID) + " is one of our fun mini-games. Try it out to learn more!"
}
