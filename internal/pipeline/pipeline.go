package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/limaJavier/councils/internal/config"
	"github.com/limaJavier/councils/internal/input"
	"github.com/limaJavier/councils/pkg/model"
	"github.com/limaJavier/councils/pkg/report"
	"github.com/limaJavier/councils/pkg/sat"
	"go.uber.org/zap"
)

// Options selects how a roster is arranged
type Options struct {
	Letters  string
	Mode     model.Mode
	Strict   bool
	Grouping string // greedy | sat
	Solver   sat.SATSolver
	Workers  int
}

// OptionsFromConfig resolves the configured mode, grouping strategy and SAT backend
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	mode, err := model.ParseMode(cfg.Mode)
	if err != nil {
		return Options{}, err
	}

	options := Options{
		Letters:  cfg.Letters,
		Mode:     mode,
		Strict:   cfg.Strict,
		Grouping: cfg.Grouping,
		Workers:  cfg.Workers,
	}

	switch cfg.Grouping {
	case "", "greedy":
		options.Grouping = "greedy"
	case "sat":
		path, err := cfg.SolverPath(cfg.Solver)
		if err != nil {
			return Options{}, err
		}
		options.Solver, err = sat.NewSolver(cfg.Solver, path)
		if err != nil {
			return Options{}, err
		}
	default:
		return Options{}, fmt.Errorf("unknown grouping strategy %q", cfg.Grouping)
	}

	return options, nil
}

// Result carries every stage's output of a run
type Result struct {
	ID          string
	Roster      model.Roster
	Arrangement model.Arrangement
	Grid        report.DisplayGrid
}

type Pipeline struct {
	options Options
	logger  *zap.Logger
}

func New(options Options, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		options: options,
		logger:  logger,
	}
}

func (pipeline *Pipeline) Arranger(logger *zap.Logger) model.Arranger {
	if pipeline.options.Mode == model.FreeAssignment {
		return model.NewFreeAssignmentArranger(pipeline.options.Strict, pipeline.options.Workers, logger)
	}

	var grouper model.LetterGrouper
	if pipeline.options.Grouping == "sat" {
		grouper = model.NewSATGrouper(pipeline.options.Solver, logger)
	} else {
		grouper = model.NewGreedyGrouper()
	}
	return model.NewFixedSlotArranger(grouper, logger)
}

// Run builds the roster from the source, arranges it and formats the result
func (pipeline *Pipeline) Run(ctx context.Context, source input.Source) (Result, error) {
	result := Result{ID: uuid.NewString()}
	logger := pipeline.logger.With(zap.String("run", result.ID))

	//** Roster
	roster, err := model.BuildRoster(source.Rows,
		model.WithLetters(pipeline.options.Letters),
		model.WithClasses(source.Classes...),
	)
	if err != nil {
		return Result{}, err
	}
	result.Roster = roster
	logger.Debug("roster built",
		zap.Int("teachers", len(roster.Teachers)),
		zap.Int("sections", len(roster.Sections)),
		zap.String("letters", roster.Letters),
	)

	//** Arrangement
	arranger := pipeline.Arranger(logger)
	arrangement, err := arranger.Arrange(ctx, roster)
	if err != nil {
		return Result{}, err
	}
	if !arranger.Verify(arrangement, roster) {
		return Result{}, fmt.Errorf("arrangement does not match the roster")
	}
	result.Arrangement = arrangement

	//** Report
	result.Grid = report.Format(arrangement)
	logger.Info("arrangement completed",
		zap.Stringer("mode", arrangement.Mode),
		zap.Int("boards", len(arrangement.Boards)),
		zap.Int("conflicts", len(arrangement.Conflicts)),
		zap.Int("unplaced", len(arrangement.Unplaced)),
	)

	return result, nil
}
