package report

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/limaJavier/councils/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidArrangement(t *testing.T) {
	//** Arrange
	arrangement := arrange(t, []model.Row{
		{Teacher: "Bianchi", Classes: []string{"1A"}},
		{Teacher: "Verdi", Classes: []string{"1B"}},
	})

	//** Act
	grid := Format(arrangement)

	//** Assert
	assert.False(t, grid.HasConflicts)
	assert.Empty(t, grid.Conflicts)
	assert.Empty(t, grid.Unplaced)
	require.Len(t, grid.Boards, 1)
	assert.Equal(t, []string{"A", "B", "C", "D"}, grid.Boards[0].Columns)
	assert.Equal(t, DisplayRow{Year: 1, Cells: []string{"1A", "1B", Empty, Empty}}, grid.Boards[0].Rows[0])
	assert.Equal(t, DisplayRow{Year: 5, Cells: []string{Empty, Empty, Empty, Empty}}, grid.Boards[0].Rows[4])
	assert.Len(t, grid.Validation, model.Years)
	for _, validation := range grid.Validation {
		assert.True(t, validation.Valid)
	}
}

func TestFormatConflicts(t *testing.T) {
	//** Arrange
	arrangement := arrange(t, []model.Row{
		{Teacher: "Rossi", Classes: []string{"3D", "3B", "1A", "1C"}},
		{Teacher: "Verdi", Classes: []string{"3B", "3D"}},
	})

	//** Act
	grid := Format(arrangement)

	//** Assert
	assert.True(t, grid.HasConflicts)
	assert.Equal(t, []ConflictLine{
		{Board: 1, Year: 1, SectionA: "1A", SectionB: "1C", Teachers: []string{"Rossi"}},
		{Board: 1, Year: 3, SectionA: "3B", SectionB: "3D", Teachers: []string{"Rossi", "Verdi"}},
	}, grid.Conflicts)
	assert.Equal(t, []RowValidation{
		{Board: 1, Year: 1, Valid: false},
		{Board: 1, Year: 2, Valid: true},
		{Board: 1, Year: 3, Valid: false},
		{Board: 1, Year: 4, Valid: true},
		{Board: 1, Year: 5, Valid: true},
	}, grid.Validation)
}

func TestFormatIsDeterministic(t *testing.T) {
	rows := []model.Row{
		{Teacher: "Rossi", Classes: []string{"2A", "2B", "4C"}},
		{Teacher: "Neri", Classes: []string{"4C", "4D", "5A"}},
	}

	first := Format(arrange(t, rows))
	second := Format(arrange(t, rows))

	assert.Empty(t, cmp.Diff(first, second))
}

func TestWriteZip(t *testing.T) {
	//** Arrange
	grid := Format(arrange(t, []model.Row{{Teacher: "Rossi", Classes: []string{"1A", "1B"}}}))
	var buffer bytes.Buffer

	//** Act
	err := WriteZip(&buffer, grid)

	//** Assert
	require.NoError(t, err)
	archive, err := zip.NewReader(bytes.NewReader(buffer.Bytes()), int64(buffer.Len()))
	require.NoError(t, err)

	files := make(map[string][][]string)
	for _, file := range archive.File {
		reader, err := file.Open()
		require.NoError(t, err)
		records, err := csv.NewReader(reader).ReadAll()
		require.NoError(t, err)
		reader.Close()
		files[file.Name] = records
	}

	assert.Len(t, files, 4)
	assert.Equal(t, []string{"Year", "A", "B", "C", "D"}, files[BoardFile(1)][0])
	assert.Equal(t, []string{"1", "1A", "1B", Empty, Empty}, files[BoardFile(1)][1])
	assert.Equal(t, []string{"1", "ABCD", "2", "1", "false"}, files[SummaryFile][1])
	assert.Equal(t, []string{"1", "1", "false"}, files[ValidationFile][1])
	assert.Equal(t, []string{"1", "1", "1A", "1B", "Rossi"}, files[ConflictsFile][1])
}

func TestWriteJSON(t *testing.T) {
	grid := Format(arrange(t, []model.Row{{Teacher: "Rossi", Classes: []string{"2C"}}}))
	var buffer bytes.Buffer

	require.NoError(t, WriteJSON(&buffer, grid))

	var decoded DisplayGrid
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Empty(t, cmp.Diff(grid, decoded))
}

func TestRender(t *testing.T) {
	valid := Render(Format(arrange(t, []model.Row{{Teacher: "Bianchi", Classes: []string{"1A"}}})))
	assert.Contains(t, valid, "1A")
	assert.Contains(t, valid, "VALID")

	invalid := Render(Format(arrange(t, []model.Row{{Teacher: "Rossi", Classes: []string{"1A", "1B"}}})))
	assert.Contains(t, invalid, "CONFLICTS (1)")
	assert.Contains(t, invalid, "1A - 1B share Rossi")
}

func arrange(t *testing.T, rows []model.Row) model.Arrangement {
	t.Helper()
	roster, err := model.BuildRoster(rows)
	require.NoError(t, err)
	arrangement, err := model.NewFixedSlotArranger(nil, nil).Arrange(context.Background(), roster)
	require.NoError(t, err)
	return arrangement
}
