package model

import (
	"fmt"
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

func verify(arrangement Arrangement, roster Roster) bool {
	//** Every section placed or reported exactly once
	seen := make(map[Section]bool)
	for _, section := range append(arrangement.Placed(), arrangement.Unplaced...) {
		if seen[section] || !roster.Has(section) {
			return false
		}
		seen[section] = true
	}
	if len(seen) != len(roster.Sections) {
		return false
	}

	//** Every placed section sits in its year's row, and in its letter's column in fixed-slot mode
	for _, board := range arrangement.Boards {
		for row := range Years {
			for column, cell := range board.Cells[row] {
				if cell == nil {
					continue
				}
				if cell.Year != Year(row+1) {
					return false
				}
				if arrangement.Mode == FixedSlot && cell.Letter != board.Letters[column] {
					return false
				}
			}
		}
	}

	//** Conflict list matches the roster
	derived := lo.FlatMap(arrangement.Boards, func(board Board, _ int) []ConflictEdge { return boardConflicts(roster, board) })
	sortConflicts(derived)
	if len(derived) != len(arrangement.Conflicts) {
		return false
	}
	for i := range derived {
		expected, actual := derived[i], arrangement.Conflicts[i]
		if expected.compare(actual) != 0 || !slices.Equal(expected.Teachers, actual.Teachers) {
			return false
		}
	}
	return arrangement.HasConflicts == (len(derived) > 0)
}

// Returns the conflicts of every row of the board, tagged with the board index
func boardConflicts(roster Roster, board Board) []ConflictEdge {
	conflicts := make([]ConflictEdge, 0)
	for year := Year(1); year <= Years; year++ {
		for _, conflict := range conflictsAmong(roster, board.Row(year)) {
			conflict.Board = board.Index
			conflicts = append(conflicts, conflict)
		}
	}
	return conflicts
}

// Places the sections of a single row into the board's columns so that the largest possible number of them
// keep their own letter's column; the rest fill the free columns left to right, in the given order
func assignColumns(sections []Section, letters [Columns]Letter) ([Columns]*Section, error) {
	var row [Columns]*Section
	if len(sections) == 0 {
		return row, nil
	} else if len(sections) > Columns {
		return row, fmt.Errorf("cannot place %d sections into %d columns", len(sections), Columns)
	}

	neighbors := func(sectionAny any, columnAny any) (bool, error) {
		section := sectionAny.(Section)
		column := columnAny.(int)

		return letters[column] != 0 && section.Letter == letters[column], nil
	}

	sectionsAny := lo.Map(sections, func(section Section, _ int) any { return section })
	columnsAny := lo.Map(lo.Range(Columns), func(column int, _ int) any { return column })

	graph, err := bipartitegraph.NewBipartiteGraph(sectionsAny, columnsAny, neighbors)
	if err != nil {
		return row, err
	}

	matched := make(map[int]bool)
	for _, edge := range graph.LargestMatching() {
		sectionIndex, column := edge.Node1, edge.Node2-len(sections)
		section := sections[sectionIndex]
		row[column] = &section
		matched[sectionIndex] = true
	}

	free := 0
	for i, section := range sections {
		if matched[i] {
			continue
		}
		for row[free] != nil {
			free++
		}
		row[free] = &section
	}

	return row, nil
}

func alphabet(letters string) []Letter {
	return lo.Map([]rune(letters), func(letter rune, _ int) Letter { return Letter(letter) })
}
