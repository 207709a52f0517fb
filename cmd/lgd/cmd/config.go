package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantyard/lgd/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pipeline configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Init writes the default configuration to the given path (default
lgd.yaml); the format follows the file extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "lgd.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.Default().SaveToFile(path); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
