package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gherkin-tools/gluescan/internal/glue"
	"github.com/gherkin-tools/gluescan/internal/render"
	"github.com/gherkin-tools/gluescan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	scanDirs []string
	scanOut  string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan glue-code directories and print gherkin-builder steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunScan(cmd.OutOrStdout(), cmd.ErrOrStderr(), scanDirs, scanOut)
	},
}

func init() {
	scanCmd.Flags().StringArrayVar(&scanDirs, "dir", nil, "Glue-code directory to scan (repeatable)")
	scanCmd.Flags().StringVarP(&scanOut, "out", "o", "", "Write the generated steps to a file instead of stdout")
	rootCmd.AddCommand(scanCmd)
}

// scannedFile pairs a source path with the steps discovered in it.
type scannedFile struct {
	path  string
	steps []glue.Step
}

func RunScan(w, ew io.Writer, dirs []string, outPath string) error {
	if len(dirs) == 0 {
		return fmt.Errorf("at least one --dir is required")
	}

	parser := glue.NewParser()
	files, err := scanInto(parser, ew, dirs)
	if err != nil {
		return err
	}

	js := render.Steps(parser.Steps())
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(js), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
	} else {
		fmt.Fprint(w, js)
	}

	for _, typeName := range parser.Registry().Enumerations() {
		ui.EnumLine(ew, typeName)
	}
	ui.SummaryLine(ew, len(files), len(parser.Steps()))
	return nil
}

// scanInto registers dirs with the parser, then feeds it every .java file
// underneath them, line by line in walk order. Malformed lines are reported
// to ew and scanning continues; the parser keeps its documented state so the
// rest of the file still scans.
func scanInto(parser *glue.Parser, ew io.Writer, dirs []string) ([]scannedFile, error) {
	for _, dir := range dirs {
		parser.AddBaseDirectory(dir)
	}

	var files []scannedFile
	done := 0
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".java") {
				return nil
			}
			if err := scanFile(parser, ew, path); err != nil {
				return err
			}
			files = append(files, scannedFile{path: path, steps: parser.Steps()[done:]})
			done = len(parser.Steps())
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
	}
	return files, nil
}

func scanFile(parser *glue.Parser, ew io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	for i, line := range strings.Split(string(content), "\n") {
		if err := parser.ProcessLine(line); err != nil {
			ui.WarnLine(ew, fmt.Sprintf("%s:%d", path, i+1), err.Error())
		}
	}
	return nil
}
