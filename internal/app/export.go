package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all progress to a JSON file",
	Long: `Export the progress document as indented JSON. Without a file name the
export is written to gameverse-data-YYYY-MM-DD.json in the current directory.
Use "-" to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all progress with a previously exported file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path := progress.ExportFilename(time.Now())
	if len(args) == 1 {
		path = args[0]
	}
	if path == "-" {
		return s.store.Export(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := s.store.Export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Exported progress to %s\n", output.Check(true), path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.Import(f); err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}
	doc := s.store.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Imported progress: %d/%d badges, %s\n",
		output.Check(true), doc.UnlockedCount(), len(doc.Badges), output.Coins(doc.SessionStats.TotalCoins))
	return nil
}
