// Package app contains the Cobra command tree for gameverse.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagVerbose bool
	flagNotify  bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "gameverse",
	Short: "Progress, achievements and voice commands for the GameVerse arcade",
	Long: `gameverse tracks per-game progress for the GameVerse mini-games, unlocks
badges, rotates daily challenges at midnight and resolves spoken or typed
assistant commands such as "hey buddy, play trivia".

Run 'gameverse' with no arguments to see the dashboard summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStatus,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/gameverse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNotify, "notify", false, "Send desktop notifications for unlocked badges and completed challenges")
}
