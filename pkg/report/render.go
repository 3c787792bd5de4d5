package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle   = cellStyle.Foreground(lipgloss.Color("#d6dae0"))
	invalidStyle = cellStyle.Foreground(lipgloss.Color("#e53935"))
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850"))
)

// Render draws every board as a terminal table followed by the conflict list
func Render(grid DisplayGrid) string {
	var sb strings.Builder

	valid := make(map[[2]int]bool)
	for _, validation := range grid.Validation {
		valid[[2]int{validation.Board, validation.Year}] = validation.Valid
	}

	for _, board := range grid.Boards {
		if len(grid.Boards) > 1 {
			sb.WriteString(titleStyle.Render(fmt.Sprintf("Board %d", board.Index)))
			sb.WriteString("\n")
		}
		sb.WriteString(renderBoard(board, valid))
		sb.WriteString("\n")
	}

	if len(grid.Unplaced) > 0 {
		sb.WriteString(fmt.Sprintf("Unplaced: %v\n", strings.Join(grid.Unplaced, ", ")))
	}

	if !grid.HasConflicts {
		sb.WriteString(validStyle.Render("VALID: no teacher sits twice in the same row"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(invalidStyle.UnsetPadding().Render(fmt.Sprintf("CONFLICTS (%d)", len(grid.Conflicts))))
	sb.WriteString("\n")
	for _, line := range grid.Conflicts {
		prefix := ""
		if len(grid.Boards) > 1 {
			prefix = fmt.Sprintf("board %d, ", line.Board)
		}
		sb.WriteString(fmt.Sprintf("  %vyear %d: %v - %v share %v\n",
			prefix, line.Year, line.SectionA, line.SectionB, strings.Join(line.Teachers, ", ")))
	}
	return sb.String()
}

func renderBoard(board DisplayBoard, valid map[[2]int]bool) string {
	rows := make([][]string, 0, len(board.Rows))
	for _, row := range board.Rows {
		rows = append(rows, append([]string{strconv.Itoa(row.Year)}, row.Cells...))
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(append([]string{"Year"}, board.Columns...)...).
		Rows(rows...).
		StyleFunc(func(row, column int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case column > 0 && rows[row][column] == Empty:
				return emptyStyle
			case !valid[[2]int{board.Index, row + 1}]:
				return invalidStyle
			}
			return cellStyle
		}).
		String()
}
