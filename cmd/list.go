package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gherkin-tools/gluescan/internal/db"
	"github.com/gherkin-tools/gluescan/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer) error {
	if _, err := os.Stat(workspaceDir); os.IsNotExist(err) {
		return fmt.Errorf("run `gluescan init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT s.id, s.phrase
		FROM steps s
		JOIN files f ON s.file_id = f.id
		ORDER BY f.file_path, s.position
	`)
	if err != nil {
		return fmt.Errorf("querying steps: %w", err)
	}
	defer rows.Close()

	type stepRow struct {
		id     int64
		phrase string
	}
	var steps []stepRow
	for rows.Next() {
		var r stepRow
		if err := rows.Scan(&r.id, &r.phrase); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		steps = append(steps, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading steps: %w", err)
	}

	for _, step := range steps {
		ui.StepLine(w, step.phrase)

		params, err := sqlDB.Query(`SELECT name, kind FROM params WHERE step_id = ? ORDER BY position`, step.id)
		if err != nil {
			return fmt.Errorf("querying params: %w", err)
		}
		for params.Next() {
			var name, kind string
			if err := params.Scan(&name, &kind); err != nil {
				params.Close()
				return fmt.Errorf("scanning param: %w", err)
			}
			ui.ParamLine(w, name, kind)
		}
		params.Close()
	}

	if len(steps) == 0 {
		fmt.Fprintln(w, "no steps recorded, run `gluescan sync` first")
	}

	return nil
}
