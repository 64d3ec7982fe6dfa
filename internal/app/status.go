package app

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/model"
	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/progress"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the dashboard summary",
	Long: `Show coins, badge and challenge progress, the most played game, the best
performance and today's activity.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	renderDashboard(cmd.OutOrStdout(), s.store.Snapshot(), time.Now())
	return nil
}

func renderDashboard(w io.Writer, doc model.GameData, now time.Time) {
	row := func(label, value string) {
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render(label), value)
	}

	fmt.Fprintln(w, output.Section("GameVerse Dashboard"))
	fmt.Fprintln(w)

	row("Coins", output.Coins(doc.SessionStats.TotalCoins))
	row("Badges", output.ProgressBar(doc.UnlockedCount(), len(doc.Badges), 20))

	challenges := output.ProgressBar(doc.CompletedCount(), len(doc.Challenges), 20)
	if len(doc.Challenges) > 0 {
		challenges += output.StyleMuted.Render("  resets " + output.Until(doc.Challenges[0].ExpiresAt, now))
	}
	row("Daily challenges", challenges)
	row("Games played", fmt.Sprintf("%d/%d", doc.GameProgress.GamesPlayed(), len(catalog.Games())))
	row("Total plays", humanize.Comma(int64(doc.SessionStats.TotalPlays)))
	row("Time played", formatSeconds(doc.SessionStats.TotalTime))
	row("Most played", mostPlayed(doc.GameProgress))
	row("Best performance", bestPerformance(doc.GameProgress))

	today := doc.SessionStats.DailyLogs[progress.DayKey(now)]
	row("Today", fmt.Sprintf("%d games, %s, %s",
		today.GamesPlayed, formatSeconds(today.TimeSpent), humanize.Comma(int64(today.CoinsEarned))+" coins earned"))
}

// formatSeconds renders a duration in seconds, like "1h 5m" or "45s".
func formatSeconds(sec int) string {
	d := time.Duration(sec) * time.Second
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), sec%60)
	default:
		return fmt.Sprintf("%ds", sec)
	}
}
