package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gherkin-tools/gluescan/internal/db"
	"github.com/gherkin-tools/gluescan/internal/ui"
	"github.com/spf13/cobra"
)

var enumsCmd = &cobra.Command{
	Use:   "enums",
	Short: "List recorded enum types awaiting resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunEnums(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(enumsCmd)
}

func RunEnums(w io.Writer) error {
	if _, err := os.Stat(workspaceDir); os.IsNotExist(err) {
		return fmt.Errorf("run `gluescan init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`SELECT type_name FROM enums ORDER BY type_name`)
	if err != nil {
		return fmt.Errorf("querying enums: %w", err)
	}
	defer rows.Close()

	var found bool
	for rows.Next() {
		var typeName string
		if err := rows.Scan(&typeName); err != nil {
			return fmt.Errorf("scanning enum: %w", err)
		}
		ui.EnumLine(w, typeName)
		found = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading enums: %w", err)
	}

	if !found {
		fmt.Fprintln(w, "no enum types recorded")
	}

	return nil
}
