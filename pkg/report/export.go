package report

import (
	"archive/zip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	SummaryFile    = "summary.csv"
	ValidationFile = "validation.csv"
	ConflictsFile  = "conflicts.csv"
)

func BoardFile(index int) string {
	return fmt.Sprintf("board_%d.csv", index)
}

// WriteZip writes the export bundle: one CSV per board plus the summary, validation and conflicts CSVs
func WriteZip(writer io.Writer, grid DisplayGrid) error {
	archive := zip.NewWriter(writer)

	for _, board := range grid.Boards {
		if err := writeEntry(archive, BoardFile(board.Index), boardRecords(board)); err != nil {
			return err
		}
	}

	entries := []struct {
		name    string
		records [][]string
	}{
		{SummaryFile, summaryRecords(grid)},
		{ValidationFile, validationRecords(grid)},
		{ConflictsFile, conflictRecords(grid)},
	}
	for _, entry := range entries {
		if err := writeEntry(archive, entry.name, entry.records); err != nil {
			return err
		}
	}

	return archive.Close()
}

func WriteJSON(writer io.Writer, grid DisplayGrid) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(grid)
}

func writeEntry(archive *zip.Writer, name string, records [][]string) error {
	file, err := archive.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", name, err)
	}
	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write %v: %w", name, err)
	}
	return nil
}

func boardRecords(board DisplayBoard) [][]string {
	records := [][]string{append([]string{"Year"}, board.Columns...)}
	for _, row := range board.Rows {
		records = append(records, append([]string{strconv.Itoa(row.Year)}, row.Cells...))
	}
	return records
}

func summaryRecords(grid DisplayGrid) [][]string {
	records := [][]string{{"Board", "Letters", "Sections", "Conflicts", "Valid"}}
	for _, board := range grid.Boards {
		sections := lo.SumBy(board.Rows[:], func(row DisplayRow) int {
			return lo.CountBy(row.Cells, func(cell string) bool { return cell != Empty })
		})
		conflicts := lo.CountBy(grid.Conflicts, func(line ConflictLine) bool { return line.Board == board.Index })
		records = append(records, []string{
			strconv.Itoa(board.Index),
			strings.Join(lo.Compact(board.Columns), ""),
			strconv.Itoa(sections),
			strconv.Itoa(conflicts),
			strconv.FormatBool(conflicts == 0),
		})
	}
	if len(grid.Unplaced) > 0 {
		records = append(records, []string{"unplaced", "", strings.Join(grid.Unplaced, " "), "", ""})
	}
	return records
}

func validationRecords(grid DisplayGrid) [][]string {
	records := [][]string{{"Board", "Year", "Valid"}}
	for _, validation := range grid.Validation {
		records = append(records, []string{
			strconv.Itoa(validation.Board),
			strconv.Itoa(validation.Year),
			strconv.FormatBool(validation.Valid),
		})
	}
	return records
}

func conflictRecords(grid DisplayGrid) [][]string {
	records := [][]string{{"Board", "Year", "SectionA", "SectionB", "Teachers"}}
	for _, line := range grid.Conflicts {
		records = append(records, []string{
			strconv.Itoa(line.Board),
			strconv.Itoa(line.Year),
			line.SectionA,
			line.SectionB,
			strings.Join(line.Teachers, ", "),
		})
	}
	return records
}
