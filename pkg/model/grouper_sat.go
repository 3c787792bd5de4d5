package model

import (
	"fmt"
	"slices"
	"sync"

	"github.com/limaJavier/councils/pkg/sat"

	"go.uber.org/zap"
)

type satGrouper struct {
	solver sat.SATSolver
	logger *zap.Logger
}

// NewSATGrouper finds the minimum number of boards by solving one SAT instance per candidate board count,
// starting from the trivial lower bound and stopping below the greedy heuristic's count
func NewSATGrouper(solver sat.SATSolver, logger *zap.Logger) LetterGrouper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &satGrouper{
		solver: solver,
		logger: logger,
	}
}

type groupingState struct {
	indexer   indexer
	letters   []Letter
	conflicts map[Letter]map[Letter]bool
	boards    uint64
}

// First variable of the board's cardinality counter
func (state groupingState) auxiliary(board uint64) uint64 {
	return state.indexer.Variables() + 1 + board*uint64(len(state.letters))*Columns
}

func (state groupingState) variables() uint64 {
	return state.indexer.Variables() + state.boards*uint64(len(state.letters))*Columns
}

func (grouper *satGrouper) Group(letters []Letter, conflicts map[Letter]map[Letter]bool) ([][]Letter, error) {
	if len(letters) == 0 {
		return [][]Letter{}, nil
	}

	sorted := slices.Clone(letters)
	slices.Sort(sorted)

	//** Upper bound
	greedy, err := NewGreedyGrouper().Group(sorted, conflicts)
	if err != nil {
		return nil, err
	}

	//** Search the smallest feasible board count
	lowerBound := (len(sorted) + Columns - 1) / Columns
	for boards := lowerBound; boards < len(greedy); boards++ {
		groups, err := grouper.solve(sorted, conflicts, uint64(boards))
		if err != nil {
			return nil, fmt.Errorf("cannot solve grouping with %d boards: %w", boards, err)
		} else if groups != nil {
			grouper.logger.Debug("letters grouped by SAT", zap.Int("boards", boards), zap.Int("greedy", len(greedy)))
			return groups, nil
		}
	}

	grouper.logger.Debug("greedy grouping is optimal", zap.Int("boards", len(greedy)))
	return greedy, nil
}

func (grouper *satGrouper) solve(letters []Letter, conflicts map[Letter]map[Letter]bool, boards uint64) ([][]Letter, error) {
	//** Initialize dependencies
	indexer := newIndexer(uint64(len(letters)), boards)
	state := groupingState{
		indexer:   indexer,
		letters:   letters,
		conflicts: conflicts,
		boards:    boards,
	}

	//** Build SAT instance
	constraints := []func(state groupingState) [][]int64{
		completenessConstraints,
		uniquenessConstraints,
		conflictConstraints,
		capacityConstraints,
		symmetryConstraints,
	}
	satInstance := buildSat(state.variables(), constraints, state)

	//** Solve SAT instance
	solution, err := grouper.solver.Solve(satInstance)
	if err != nil {
		return nil, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, nil
	}

	groups := make([][]Letter, boards)
	for _, variable := range solution {
		// Acknowledge only positive placement variables, auxiliaries are meaningless here
		if variable > 0 && uint64(variable) <= indexer.Variables() {
			letter, board := indexer.Attributes(uint64(variable))
			groups[board] = append(groups[board], letters[letter])
		}
	}

	return normalizeGroups(groups), nil
}

func buildSat(variables uint64, constraints []func(state groupingState) [][]int64, state groupingState) sat.SAT {
	satInstance := sat.SAT{
		Variables: variables,
		Clauses:   [][]int64{},
	}

	// Execute constraints functions on different goroutines; results are collected in declaration order so
	// that the same input always yields the same instance
	generated := make([][][]int64, len(constraints))
	var wg sync.WaitGroup
	for i, constraint := range constraints {
		wg.Add(1)
		go func() {
			defer wg.Done()
			generated[i] = constraint(state)
		}()
	}
	wg.Wait()

	for _, clauses := range generated {
		satInstance.Clauses = append(satInstance.Clauses, clauses...)
	}
	return satInstance
}

// Every letter is placed on at least one board
func completenessConstraints(state groupingState) [][]int64 {
	clauses := make([][]int64, 0, len(state.letters))
	for letter := range uint64(len(state.letters)) {
		clause := make([]int64, 0, state.boards)
		for board := range state.boards {
			clause = append(clause, int64(state.indexer.Index(letter, board)))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// No letter is placed on two boards
func uniquenessConstraints(state groupingState) [][]int64 {
	clauses := make([][]int64, 0)
	for letter := range uint64(len(state.letters)) {
		for board1 := range state.boards {
			for board2 := board1 + 1; board2 < state.boards; board2++ {
				index1 := state.indexer.Index(letter, board1)
				index2 := state.indexer.Index(letter, board2)
				clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
			}
		}
	}
	return clauses
}

// Conflicting letters never share a board
func conflictConstraints(state groupingState) [][]int64 {
	clauses := make([][]int64, 0)
	for letter1 := range uint64(len(state.letters)) {
		for letter2 := letter1 + 1; letter2 < uint64(len(state.letters)); letter2++ {
			if !state.conflicts[state.letters[letter1]][state.letters[letter2]] {
				continue
			}
			for board := range state.boards {
				index1 := state.indexer.Index(letter1, board)
				index2 := state.indexer.Index(letter2, board)
				clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
			}
		}
	}
	return clauses
}

// A board holds at most Columns letters
func capacityConstraints(state groupingState) [][]int64 {
	clauses := make([][]int64, 0)
	for board := range state.boards {
		literals := make([]int64, 0, len(state.letters))
		for letter := range uint64(len(state.letters)) {
			literals = append(literals, int64(state.indexer.Index(letter, board)))
		}
		boardClauses, _ := sat.AtMost(Columns, literals, state.auxiliary(board))
		clauses = append(clauses, boardClauses...)
	}
	return clauses
}

// Boards are interchangeable: the i-th letter may only open boards up to the i-th one
func symmetryConstraints(state groupingState) [][]int64 {
	clauses := make([][]int64, 0)
	for letter := range uint64(len(state.letters)) {
		for board := letter + 1; board < state.boards; board++ {
			clauses = append(clauses, []int64{-int64(state.indexer.Index(letter, board))})
		}
	}
	return clauses
}
