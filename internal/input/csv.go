package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/councils/pkg/model"
)

// TeacherColumn is the header of the teacher column, matched case-insensitively
const TeacherColumn = "Docente"

var ErrMissingTeacherColumn = fmt.Errorf("column %q not found", TeacherColumn)

// Source is the parsed content of an input file: the class headers it declares and its rows
type Source struct {
	Classes []string
	Rows    []model.Row
}

// ParseSeparator accepts ";", ",", and a tab given either literally or as `\t`
func ParseSeparator(separator string) (rune, error) {
	switch separator {
	case "", ";":
		return ';', nil
	case ",":
		return ',', nil
	case "\t", `\t`, "tab":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported separator %q", separator)
}

// ReadFile reads a JSON file when its extension is .json and a CSV file otherwise
func ReadFile(path string, separator rune, marker *Marker) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(file, marker)
	}
	return ReadCSV(file, separator, marker)
}

// ReadCSV reads a table whose header holds the teacher column and the class columns. Headers that do not
// look like class labels are ignored.
func ReadCSV(reader io.Reader, separator rune, marker *Marker) (Source, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = separator
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return Source{}, ErrMissingTeacherColumn
	} else if err != nil {
		return Source{}, fmt.Errorf("cannot read header: %w", err)
	}

	//** Classify columns
	teacherColumn := -1
	classColumns := make([]int, 0)
	source := Source{
		Classes: make([]string, 0),
		Rows:    make([]model.Row, 0),
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		header[i] = name
		if strings.EqualFold(name, TeacherColumn) && teacherColumn < 0 {
			teacherColumn = i
		} else if model.LooksLikeClassLabel(name) {
			classColumns = append(classColumns, i)
			source.Classes = append(source.Classes, name)
		}
	}
	if teacherColumn < 0 {
		return Source{}, ErrMissingTeacherColumn
	}

	//** Read rows
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return Source{}, fmt.Errorf("cannot read row: %w", err)
		}

		row := model.Row{Teacher: strings.TrimSpace(cell(record, teacherColumn))}
		for _, column := range classColumns {
			marked, err := marker.Marks(cell(record, column))
			if err != nil {
				return Source{}, err
			}
			if marked {
				row.Classes = append(row.Classes, header[column])
			}
		}
		source.Rows = append(source.Rows, row)
	}

	return source, nil
}

// Short records leave their trailing cells blank
func cell(record []string, column int) string {
	if column < len(record) {
		return record[column]
	}
	return ""
}
