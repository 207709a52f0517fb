package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lgd",
	Short: "Loss Given Default estimation for consumer loans",
	Long: `lgd estimates Loss Given Default for consumer loans by decomposing
the estimate into three sub-models:

  - a classifier for P(repossession)
  - a regressor for loss given repossession
  - a regressor for loss given cure

The final figure blends the two conditional losses weighted by the
repossession probability. It provides tools for:
  - Running the full synthesize/fit/evaluate pipeline
  - Generating synthetic loan datasets as CSV
  - Journaling runs and their metrics to SQLite or CSV
  - Persisting and reloading fitted models`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
