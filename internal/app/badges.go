package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/output"
)

var (
	badgesGame     string
	badgesUnlocked bool
	badgesCheck    bool
	badgesLimit    int
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges and their requirements",
	Long: `List the badge catalog with unlock state. Use --check to evaluate every
badge rule against the current progress first.

Examples:
  gameverse badges
  gameverse badges --game memory-match
  gameverse badges --unlocked
  gameverse badges --limit 20`,
	Args: cobra.NoArgs,
	RunE: runBadges,
}

func init() {
	badgesCmd.Flags().StringVar(&badgesGame, "game", "", "Only show badges for this game (or 'all' for cross-game badges)")
	badgesCmd.Flags().BoolVar(&badgesUnlocked, "unlocked", false, "Only show unlocked badges")
	badgesCmd.Flags().BoolVar(&badgesCheck, "check", false, "Evaluate badge rules before listing")
	badgesCmd.Flags().IntVar(&badgesLimit, "limit", 0, "Show at most this many badges (0 for all)")
	rootCmd.AddCommand(badgesCmd)
}

func runBadges(cmd *cobra.Command, args []string) error {
	game := ""
	if badgesGame != "" && badgesGame != catalog.AllGames {
		g, err := resolveGame(badgesGame)
		if err != nil {
			return err
		}
		game = g.ID
	} else if badgesGame == catalog.AllGames {
		game = catalog.AllGames
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	w := cmd.OutOrStdout()
	if badgesCheck {
		for _, id := range s.store.CheckBadges() {
			b, _ := s.store.Snapshot().Badge(id)
			fmt.Fprintf(w, "%s Badge unlocked: %s\n", output.StyleSuccess.Render("★"), b.Title)
		}
	}

	doc := s.store.Snapshot()
	tbl := output.NewTable("", "Badge", "Game", "Requirement", "Unlocked").Limit(badgesLimit)
	for _, b := range doc.Badges {
		if game != "" && b.Game != game {
			continue
		}
		if badgesUnlocked && !b.Unlocked {
			continue
		}
		when := ""
		if b.UnlockedAt != nil {
			when = b.UnlockedAt.Local().Format("2006-01-02 15:04")
		}
		tbl.AddRow(output.Check(b.Unlocked), b.Title, b.Game, b.Requirement, when)
	}

	fmt.Fprintln(w, output.Section(fmt.Sprintf("Badges %d/%d", doc.UnlockedCount(), len(doc.Badges))))
	fmt.Fprintln(w)
	if tbl.Len() == 0 {
		fmt.Fprintln(w, " No badges match.")
		return nil
	}
	return tbl.Fprint(w)
}
