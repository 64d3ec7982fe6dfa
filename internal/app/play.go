package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/model"
	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/progress"
)

var playTime int

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Count one play of a game",
	Long: `Record that a game was played. Badges and daily challenges earned by
the play are unlocked and listed.

Examples:
  gameverse play dice-roller
  gameverse play trivia-quiz --time 90`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playTime, "time", 0, "Seconds spent in the round")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := resolveGame(args[0])
	if err != nil {
		return err
	}
	if playTime < 0 {
		return fmt.Errorf("--time must not be negative, got %d", playTime)
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	out := s.store.RecordOutcome(progress.Result{Game: game.ID, Play: true, TimeSpent: playTime})
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s Played %s (%d plays)\n", output.Check(true), game.Name,
		s.store.Snapshot().GameProgress[game.ID].Int(model.FieldPlays))
	printOutcome(w, s.store.Snapshot(), out)
	return nil
}

// resolveGame accepts a game id or its display name.
func resolveGame(arg string) (catalog.Game, error) {
	id := strings.ToLower(strings.TrimSpace(arg))
	if g, ok := catalog.LookupGame(id); ok {
		return g, nil
	}
	for _, g := range catalog.Games() {
		if strings.EqualFold(g.Name, arg) {
			return g, nil
		}
	}
	ids := make([]string, 0, len(catalog.Games()))
	for _, g := range catalog.Games() {
		ids = append(ids, g.ID)
	}
	sort.Strings(ids)
	return catalog.Game{}, fmt.Errorf("unknown game %q; known games: %s", arg, strings.Join(ids, ", "))
}

// printOutcome lists newly unlocked badges and completed challenges.
func printOutcome(w io.Writer, doc model.GameData, out progress.Outcome) {
	for _, id := range out.Badges {
		b, _ := doc.Badge(id)
		fmt.Fprintf(w, "%s Badge unlocked: %s\n", output.StyleSuccess.Render("★"), output.StyleBold.Render(b.Title))
	}
	for _, id := range out.Challenges {
		c, _ := doc.Challenge(id)
		fmt.Fprintf(w, "%s Challenge complete: %s (+%s)\n", output.Check(true), output.StyleBold.Render(c.Title), output.Coins(c.RewardCoins))
	}
}
