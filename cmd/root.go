package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	workspaceDir = ".gluescan"
	dbPath       = ".gluescan/steps.db"
)

var rootCmd = &cobra.Command{
	Use:   "gluescan",
	Short: "gluescan — turn Cucumber glue code into gherkin-builder steps",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
