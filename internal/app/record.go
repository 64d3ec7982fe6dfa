package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/model"
	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/progress"
)

var (
	recordPlay bool
	recordTime int
)

var recordCmd = &cobra.Command{
	Use:   "record <game> <field=value|field+=value>...",
	Short: "Record the result of a round",
	Long: `Apply a round's statistics to a game. "field+=n" adds to a counter,
"field=n" sets it. Personal bests (bestScore, bestTime, bestMoves) given with
"=" only replace the recorded value when they improve on it.

Examples:
  gameverse record rock-paper-scissors wins+=1 streak=3 --play
  gameverse record reaction-speed bestTime=280 --play
  gameverse record idle-clicker coins+=150 clicks+=60 cps=2.5 --time 120`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().BoolVar(&recordPlay, "play", false, "Also count the round as a play")
	recordCmd.Flags().IntVar(&recordTime, "time", 0, "Seconds spent in the round")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	game, err := resolveGame(args[0])
	if err != nil {
		return err
	}
	r, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	if recordTime < 0 {
		return fmt.Errorf("--time must not be negative, got %d", recordTime)
	}
	r.Game = game.ID
	r.Play = recordPlay
	r.TimeSpent = recordTime

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	out := s.store.RecordOutcome(r)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s Recorded %s\n", output.Check(true), game.Name)
	printOutcome(w, s.store.Snapshot(), out)
	return nil
}

// parseAssignments turns "field=value" and "field+=value" arguments into a
// result without a game.
func parseAssignments(args []string) (progress.Result, error) {
	r := progress.Result{Add: model.Stats{}, Best: model.Stats{}, Set: model.Stats{}}
	for _, arg := range args {
		add := false
		key, raw, ok := strings.Cut(arg, "+=")
		if ok {
			add = true
		} else if key, raw, ok = strings.Cut(arg, "="); !ok {
			return progress.Result{}, fmt.Errorf("invalid assignment %q: expected field=value or field+=value", arg)
		}
		key = strings.TrimSpace(key)
		if !model.IsKnownField(key) {
			return progress.Result{}, fmt.Errorf("unknown stat field %q", key)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return progress.Result{}, fmt.Errorf("parsing %s: %w", key, err)
		}
		if v < 0 {
			return progress.Result{}, fmt.Errorf("%s must not be negative, got %g", key, v)
		}
		switch {
		case add:
			r.Add[key] += v
		case model.IsBestField(key):
			r.Best[key] = v
		default:
			r.Set[key] = v
		}
	}
	return r, nil
}
