package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/councils/internal/config"
	"github.com/limaJavier/councils/internal/input"
	"github.com/limaJavier/councils/internal/pipeline"
	"github.com/limaJavier/councils/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var arrangeFlags struct {
	file     string
	sep      string
	mode     string
	strict   bool
	grouping string
	solver   string
	letters  string
	workers  int
	out      string
}

var arrangeCmd = &cobra.Command{
	Use:   "arrange",
	Short: "Arrange a roster and report row conflicts",
	Long: `Reads a CSV (or JSON) roster with a "Docente" column and one column per class label,
arranges the classes and prints the boards followed by the conflict list.

Exit codes: 0 when no row holds a shared teacher, 3 when conflicts were found, 1 on error.

Example:
  councils arrange --file roster.csv --sep ";" --mode free --out report.zip`,
	RunE: runArrange,
}

func init() {
	flags := arrangeCmd.Flags()
	flags.StringVarP(&arrangeFlags.file, "file", "f", "", "Path to the roster (.csv or .json)")
	flags.StringVar(&arrangeFlags.sep, "sep", ";", `CSV separator: ";", "," or "\t"`)
	flags.StringVar(&arrangeFlags.mode, "mode", "fixed", `Arrangement mode: "fixed" (letter = column) or "free" (columns are searched)`)
	flags.BoolVar(&arrangeFlags.strict, "strict", false, "Fail in free mode when some year has no conflict-free selection")
	flags.StringVar(&arrangeFlags.grouping, "grouping", "greedy", `Letter grouping for alphabets wider than four letters: "greedy" or "sat"`)
	flags.StringVar(&arrangeFlags.solver, "solver", "gini", `SAT solver used by the "sat" grouping: "gini", "kissat", "cadical" or "cryptominisat"`)
	flags.StringVar(&arrangeFlags.letters, "letters", "ABCD", "Accepted section letters")
	flags.IntVar(&arrangeFlags.workers, "workers", 0, "Years solved concurrently in free mode (0 means all)")
	flags.StringVarP(&arrangeFlags.out, "out", "o", "", "Write the report to a .zip (CSV bundle) or .json file")
	_ = arrangeCmd.MarkFlagRequired("file")
}

func runArrange(cmd *cobra.Command, args []string) error {
	applyArrangeFlags(cmd, cfg)

	options, err := pipeline.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	separator, err := input.ParseSeparator(cfg.Separator)
	if err != nil {
		return err
	}
	marker, err := input.NewMarker(cfg.Marker)
	if err != nil {
		return err
	}

	source, err := input.ReadFile(arrangeFlags.file, separator, marker)
	if err != nil {
		return fmt.Errorf("cannot read %v: %w", arrangeFlags.file, err)
	}

	result, err := pipeline.New(options, logger).Run(cmd.Context(), source)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Render(result.Grid))

	if arrangeFlags.out != "" {
		if err := writeReport(arrangeFlags.out, result.Grid); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", arrangeFlags.out))
	}

	if result.Grid.HasConflicts {
		return errConflicts
	}
	return nil
}

// Flags given on the command line win over the configuration file and the environment
func applyArrangeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("sep") {
		cfg.Separator = arrangeFlags.sep
	}
	if flags.Changed("mode") {
		cfg.Mode = arrangeFlags.mode
	}
	if flags.Changed("strict") {
		cfg.Strict = arrangeFlags.strict
	}
	if flags.Changed("grouping") {
		cfg.Grouping = arrangeFlags.grouping
	}
	if flags.Changed("solver") {
		cfg.Solver = arrangeFlags.solver
	}
	if flags.Changed("letters") {
		cfg.Letters = arrangeFlags.letters
	}
	if flags.Changed("workers") {
		cfg.Workers = arrangeFlags.workers
	}
}

func writeReport(path string, grid report.DisplayGrid) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		err = report.WriteZip(file, grid)
	case ".json":
		err = report.WriteJSON(file, grid)
	default:
		return fmt.Errorf("unsupported report format %q, use .zip or .json", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("cannot write %v: %w", path, err)
	}
	return file.Close()
}
