package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantyard/lgd/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List past pipeline runs from the journal",
	Long: `Journal prints the recorded runs in the SQLite journal, newest
first: run ID, timestamp, dataset size, hyperparameters and metrics.

Example:
  lgd journal --db ./runs.sqlite`,
	RunE: runJournal,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)

	journalCmd.Flags().StringVarP(&journalDBPath, "db", "d", "./runs.sqlite", "path to SQLite run journal")
}

func runJournal(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-26s  %-20s  %6s  %7s  %5s  %8s  %8s\n",
		"RUN", "TIME", "SEED", "RECORDS", "TREES", "MSE", "ACC")
	for _, r := range runs {
		fmt.Printf("%-26s  %-20s  %6d  %7d  %5d  %8.6f  %8.4f\n",
			r.RunID, r.Time.Format(time.DateTime), r.Seed, r.Records, r.Trees, r.MSE, r.TrainAccuracy)
	}
	return nil
}
