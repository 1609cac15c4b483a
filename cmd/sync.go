package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/gherkin-tools/gluescan/internal/db"
	"github.com/gherkin-tools/gluescan/internal/glue"
	"github.com/gherkin-tools/gluescan/internal/ui"
	"github.com/spf13/cobra"
)

var syncDirs []string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan glue-code directories and record the steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSync(cmd.OutOrStdout(), syncDirs)
	},
}

func init() {
	syncCmd.Flags().StringArrayVar(&syncDirs, "dir", nil, "Glue-code directory to scan (repeatable)")
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer, dirs []string) error {
	if len(dirs) == 0 {
		return fmt.Errorf("at least one --dir is required")
	}
	if _, err := os.Stat(workspaceDir); os.IsNotExist(err) {
		return fmt.Errorf("run `gluescan init` first")
	}

	parser := glue.NewParser()
	files, err := scanInto(parser, w, dirs)
	if err != nil {
		return err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	for _, f := range files {
		if err := syncFile(w, sqlDB, f); err != nil {
			return err
		}
	}

	for _, typeName := range parser.Registry().Enumerations() {
		if _, err := sqlDB.Exec(`INSERT OR IGNORE INTO enums (type_name) VALUES (?)`, typeName); err != nil {
			return fmt.Errorf("recording enum %s: %w", typeName, err)
		}
	}

	ui.SummaryLine(w, len(files), len(parser.Steps()))
	return nil
}

// syncFile records one scanned file, replacing its previously recorded
// steps wholesale.
func syncFile(w io.Writer, sqlDB *sql.DB, f scannedFile) error {
	var fileID int64
	err := sqlDB.QueryRow(`SELECT id FROM files WHERE file_path = ?`, f.path).Scan(&fileID)
	if err == sql.ErrNoRows {
		res, err := sqlDB.Exec(`INSERT INTO files (file_path) VALUES (?)`, f.path)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", f.path, err)
		}
		fileID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("inserting %s: %w", f.path, err)
		}
		ui.NewLine(w, f.path)
	} else if err != nil {
		return fmt.Errorf("querying %s: %w", f.path, err)
	} else {
		if _, err := sqlDB.Exec(`UPDATE files SET updated_at = datetime('now') WHERE id = ?`, fileID); err != nil {
			return fmt.Errorf("updating %s: %w", f.path, err)
		}
		if _, err := sqlDB.Exec(`DELETE FROM params WHERE step_id IN (SELECT id FROM steps WHERE file_id = ?)`, fileID); err != nil {
			return fmt.Errorf("clearing params for %s: %w", f.path, err)
		}
		if _, err := sqlDB.Exec(`DELETE FROM steps WHERE file_id = ?`, fileID); err != nil {
			return fmt.Errorf("clearing steps for %s: %w", f.path, err)
		}
		ui.TrkLine(w, f.path)
	}

	for i, step := range f.steps {
		res, err := sqlDB.Exec(`INSERT INTO steps (file_id, phrase, position) VALUES (?, ?, ?)`, fileID, step.Phrase, i)
		if err != nil {
			return fmt.Errorf("inserting step %q: %w", step.Phrase, err)
		}
		stepID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("inserting step %q: %w", step.Phrase, err)
		}
		for j, param := range step.Params {
			_, err := sqlDB.Exec(
				`INSERT INTO params (step_id, name, kind, enum_type, position) VALUES (?, ?, ?, ?, ?)`,
				stepID, param.Name, param.Kind.String(), param.EnumType, j,
			)
			if err != nil {
				return fmt.Errorf("inserting param %q: %w", param.Name, err)
			}
		}
	}
	return nil
}
