package model

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type freeAssignmentArranger struct {
	strict  bool
	workers int
	logger  *zap.Logger
}

// NewFreeAssignmentArranger treats the sections of each year as a candidate pool for the board's four columns.
// When strict is set, a year without a conflict-free selection makes Arrange fail with UnsatisfiableError.
// Years are solved concurrently by at most workers goroutines (unbounded when workers <= 0).
func NewFreeAssignmentArranger(strict bool, workers int, logger *zap.Logger) Arranger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &freeAssignmentArranger{
		strict:  strict,
		workers: workers,
		logger:  logger,
	}
}

type yearSolution struct {
	row       [Columns]*Section
	unplaced  []Section
	conflicts []ConflictEdge
}

func (arranger *freeAssignmentArranger) Arrange(ctx context.Context, roster Roster) (Arrangement, error) {
	letters := alphabet(roster.Letters)
	board := newBoard(1, letters[:min(Columns, len(letters))])

	//** Solve every year independently
	solutions := make([]yearSolution, Years)
	group, groupCtx := errgroup.WithContext(ctx)
	if arranger.workers > 0 {
		group.SetLimit(arranger.workers)
	}
	for year := Year(1); year <= Years; year++ {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			solution, err := arranger.solveYear(roster, year, board.Letters)
			if err != nil {
				return fmt.Errorf("cannot arrange year %d: %w", year, err)
			}
			solutions[year-1] = solution
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Arrangement{}, err
	}

	//** Recombine in year order
	conflicts, unplaced, failing := make([]ConflictEdge, 0), make([]Section, 0), make([]Year, 0)
	for i, solution := range solutions {
		board.Cells[i] = solution.row
		unplaced = append(unplaced, solution.unplaced...)
		for _, conflict := range solution.conflicts {
			conflict.Board = board.Index
			conflicts = append(conflicts, conflict)
		}
		if len(solution.conflicts) > 0 {
			failing = append(failing, Year(i+1))
		}
	}
	sortConflicts(conflicts)

	if arranger.strict && len(failing) > 0 {
		return Arrangement{}, UnsatisfiableError{Years: failing, Conflicts: conflicts}
	}

	if len(unplaced) > 0 {
		arranger.logger.Info("sections left out of the board", zap.Stringers("sections", unplaced))
	}

	return Arrangement{
		Mode:         FreeAssignment,
		Boards:       []Board{board},
		Conflicts:    conflicts,
		Unplaced:     unplaced,
		HasConflicts: len(conflicts) > 0,
	}, nil
}

func (arranger *freeAssignmentArranger) Verify(arrangement Arrangement, roster Roster) bool {
	return verify(arrangement, roster)
}

// Selects min(Columns, n) of the year's n candidates: the first conflict-free selection in input order or,
// if there is none, the one with the fewest conflicts (ties go to the smallest sequence of section identifiers)
func (arranger *freeAssignmentArranger) solveYear(roster Roster, year Year, letters [Columns]Letter) (yearSolution, error) {
	candidates := roster.SectionsOfYear(year)
	slots := min(Columns, len(candidates))
	if slots == 0 {
		return yearSolution{unplaced: []Section{}}, nil
	}

	generator := newPermutationGenerator(uint64(len(candidates)), uint64(slots))

	// Candidate indices must increase along the selection: a set is only produced once, in input order
	increasing := func(permutation []uint64) bool {
		last := lastFilled(permutation)
		return last <= 0 || permutation[last] > permutation[last-1]
	}
	// The last chosen candidate shares no teacher with the previous ones
	conflictFree := func(permutation []uint64) bool {
		last := lastFilled(permutation)
		if last <= 0 {
			return true
		}
		candidate := candidates[permutation[last]]
		return !lo.SomeBy(permutation[:last], func(previous uint64) bool {
			return inConflict(roster, candidates[previous], candidate)
		})
	}

	var chosen []Section
	if selections := generator.ConstrainedPermutations([]func(permutation []uint64) bool{increasing, conflictFree}); len(selections) > 0 {
		chosen = pick(candidates, selections[0])
	} else {
		bestConflicts := math.MaxInt
		for _, selection := range generator.ConstrainedPermutations([]func(permutation []uint64) bool{increasing}) {
			sections := pick(candidates, selection)
			count := len(conflictsAmong(roster, sections))
			if count < bestConflicts || (count == bestConflicts && compareIdentifiers(sections, chosen) < 0) {
				chosen, bestConflicts = sections, count
			}
		}
	}

	row, err := assignColumns(chosen, letters)
	if err != nil {
		return yearSolution{}, err
	}

	solution := yearSolution{
		row:       row,
		unplaced:  lo.Filter(candidates, func(section Section, _ int) bool { return !slices.Contains(chosen, section) }),
		conflicts: conflictsAmong(roster, chosen),
	}

	arranger.logger.Debug("year arranged",
		zap.Int("year", int(year)),
		zap.Int("candidates", len(candidates)),
		zap.Int("conflicts", len(solution.conflicts)),
	)

	return solution, nil
}

func lastFilled(permutation []uint64) int {
	last := -1
	for i, value := range permutation {
		if value == math.MaxUint64 {
			break
		}
		last = i
	}
	return last
}

func pick(candidates []Section, selection []uint64) []Section {
	return lo.Map(selection, func(index uint64, _ int) Section { return candidates[index] })
}

// Compares two selections by their sequences of section identifiers
func compareIdentifiers(a, b []Section) int {
	sortedA, sortedB := slices.Clone(a), slices.Clone(b)
	slices.SortFunc(sortedA, Section.Compare)
	slices.SortFunc(sortedB, Section.Compare)
	return slices.CompareFunc(sortedA, sortedB, Section.Compare)
}
