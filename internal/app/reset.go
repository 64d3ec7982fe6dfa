package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/output"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress, badges and coins",
	Long: `Replace the saved progress with a fresh document. This cannot be undone;
run 'gameverse export' first to keep a copy.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return fmt.Errorf("reset erases all progress; re-run with --yes to confirm")
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.store.Reset()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Progress reset\n", output.Check(true))
	return nil
}
