package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Mode int

const (
	FixedSlot      Mode = iota // Class labels are immutable (year, letter) slots
	FreeAssignment             // Year is fixed, column placement is searched
)

func (mode Mode) String() string {
	switch mode {
	case FixedSlot:
		return "fixed"
	case FreeAssignment:
		return "free"
	}
	return "unknown"
}

func ParseMode(mode string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "fixed":
		return FixedSlot, nil
	case "free":
		return FreeAssignment, nil
	}
	return FixedSlot, fmt.Errorf("unknown mode %q", mode)
}

// Board is a 5x4 grid: row i holds year i+1, column j holds letter Letters[j] (zero for an unused column).
// A nil cell is an empty slot.
type Board struct {
	Index   int
	Letters [Columns]Letter
	Cells   [Years][Columns]*Section
}

func newBoard(index int, letters []Letter) Board {
	board := Board{Index: index}
	copy(board.Letters[:], letters)
	return board
}

func (board *Board) place(section Section, column int) {
	placed := section
	board.Cells[section.Year-1][column] = &placed
}

// Row returns the sections placed in the year's row, left to right
func (board Board) Row(year Year) []Section {
	row := make([]Section, 0, Columns)
	for _, cell := range board.Cells[year-1] {
		if cell != nil {
			row = append(row, *cell)
		}
	}
	return row
}

// Sections returns every placed section, row by row
func (board Board) Sections() []Section {
	sections := make([]Section, 0, Years*Columns)
	for year := Year(1); year <= Years; year++ {
		sections = append(sections, board.Row(year)...)
	}
	return sections
}

// Arrangement is the immutable outcome of an Arranger
type Arrangement struct {
	Mode         Mode
	Boards       []Board
	Conflicts    []ConflictEdge // Row conflicts, sorted by year and section identifiers
	Unplaced     []Section      // Free-assignment overflow, in input order
	HasConflicts bool
}

func (arrangement Arrangement) Placed() []Section {
	return lo.FlatMap(arrangement.Boards, func(board Board, _ int) []Section { return board.Sections() })
}

type Arranger interface {
	Arrange(ctx context.Context, roster Roster) (Arrangement, error)

	// Checks that the arrangement places every roster section exactly once (or reports it unplaced)
	// and that its conflict list matches the conflicts derivable from the roster
	Verify(arrangement Arrangement, roster Roster) bool
}
