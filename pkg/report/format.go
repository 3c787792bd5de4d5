package report

import (
	"github.com/limaJavier/councils/pkg/model"
	"github.com/samber/lo"
)

// Text shown in a slot that holds no section
const Empty = "empty"

type DisplayGrid struct {
	Boards       []DisplayBoard  `json:"boards"`
	Conflicts    []ConflictLine  `json:"conflicts"`
	Validation   []RowValidation `json:"validation"`
	Unplaced     []string        `json:"unplaced"`
	HasConflicts bool            `json:"hasConflicts"`
}

type DisplayBoard struct {
	Index   int                     `json:"index"`
	Columns []string                `json:"columns"` // Letter heading of every column, "" when unused
	Rows    [model.Years]DisplayRow `json:"rows"`
}

type DisplayRow struct {
	Year  int      `json:"year"`
	Cells []string `json:"cells"`
}

type ConflictLine struct {
	Board    int      `json:"board"`
	Year     int      `json:"year"`
	SectionA string   `json:"sectionA"`
	SectionB string   `json:"sectionB"`
	Teachers []string `json:"teachers"`
}

// RowValidation tells whether a row of a board is free of shared teachers
type RowValidation struct {
	Board int  `json:"board"`
	Year  int  `json:"year"`
	Valid bool `json:"valid"`
}

// Format converts an arrangement into its display form. Conflicts keep the arrangement's order
// (year, then section identifiers).
func Format(arrangement model.Arrangement) DisplayGrid {
	grid := DisplayGrid{
		Boards:       make([]DisplayBoard, 0, len(arrangement.Boards)),
		Conflicts:    make([]ConflictLine, 0, len(arrangement.Conflicts)),
		Validation:   make([]RowValidation, 0, len(arrangement.Boards)*model.Years),
		Unplaced:     lo.Map(arrangement.Unplaced, func(section model.Section, _ int) string { return section.String() }),
		HasConflicts: arrangement.HasConflicts,
	}

	invalid := make(map[[2]int]bool)
	for _, conflict := range arrangement.Conflicts {
		grid.Conflicts = append(grid.Conflicts, ConflictLine{
			Board:    conflict.Board,
			Year:     int(conflict.Year),
			SectionA: conflict.A.String(),
			SectionB: conflict.B.String(),
			Teachers: lo.Map(conflict.Teachers, func(teacher model.Teacher, _ int) string { return string(teacher) }),
		})
		invalid[[2]int{conflict.Board, int(conflict.Year)}] = true
	}

	for _, board := range arrangement.Boards {
		display := DisplayBoard{
			Index:   board.Index,
			Columns: lo.Map(board.Letters[:], func(letter model.Letter, _ int) string { return letter.String() }),
		}
		for row := range model.Years {
			display.Rows[row] = DisplayRow{
				Year: row + 1,
				Cells: lo.Map(board.Cells[row][:], func(cell *model.Section, _ int) string {
					if cell == nil {
						return Empty
					}
					return cell.String()
				}),
			}
			grid.Validation = append(grid.Validation, RowValidation{
				Board: board.Index,
				Year:  row + 1,
				Valid: !invalid[[2]int{board.Index, row + 1}],
			})
		}
		grid.Boards = append(grid.Boards, display)
	}

	return grid
}
