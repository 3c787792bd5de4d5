package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/limaJavier/councils/internal/config"
	"github.com/limaJavier/councils/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exitValid     = 0
	exitError     = 1
	exitConflicts = 3
)

// Returned by arrange when the arrangement holds conflicts, so that main can exit with exitConflicts
var errConflicts = errors.New("conflicts found")

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "councils",
	Short: "Arrange school classes into 5x4 class-council boards",
	Long: `councils reads a teacher/classes table and places every class into a board of
5 year rows by 4 letter columns, reporting every row in which a teacher sits twice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "councils.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(arrangeCmd, serveCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitValid
	case errors.Is(err, errConflicts):
		return exitConflicts
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return exitError
}
