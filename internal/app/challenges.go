package app

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/model"
	"github.com/blackwell-systems/gameverse/internal/output"
)

var challengesCheck bool

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List today's daily challenges",
	Long: `List the current generation of daily challenges with rewards and expiry.
A new generation starts at local midnight.`,
	Args: cobra.NoArgs,
	RunE: runChallenges,
}

var challengesRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Start a fresh generation of daily challenges now",
	Args:  cobra.NoArgs,
	RunE:  runChallengesRefresh,
}

func init() {
	challengesCmd.Flags().BoolVar(&challengesCheck, "check", false, "Evaluate challenge rules before listing")
	challengesCmd.AddCommand(challengesRefreshCmd)
	rootCmd.AddCommand(challengesCmd)
}

func runChallenges(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	w := cmd.OutOrStdout()
	if challengesCheck {
		for _, id := range s.store.CheckChallenges() {
			c, _ := s.store.Snapshot().Challenge(id)
			fmt.Fprintf(w, "%s Challenge complete: %s (+%s)\n", output.Check(true), c.Title, output.Coins(c.RewardCoins))
		}
	}
	return renderChallenges(w, s.store.Snapshot(), time.Now())
}

func runChallengesRefresh(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.store.RefreshChallenges()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s Daily challenges refreshed\n", output.Check(true))
	return renderChallenges(w, s.store.Snapshot(), time.Now())
}

func renderChallenges(w io.Writer, doc model.GameData, now time.Time) error {
	title := fmt.Sprintf("Daily Challenges %d/%d", doc.CompletedCount(), len(doc.Challenges))
	if len(doc.Challenges) > 0 {
		title += " (expires " + output.Until(doc.Challenges[0].ExpiresAt, now) + ")"
	}
	fmt.Fprintln(w, output.Section(title))
	fmt.Fprintln(w)

	tbl := output.NewTable("", "Challenge", "Game", "Requirement", "Reward").AlignRight(4)
	for _, c := range doc.Challenges {
		tbl.AddRow(output.Check(c.Completed), c.Title, c.Game, c.Requirement, output.Coins(c.RewardCoins))
	}
	return tbl.Fprint(w)
}
