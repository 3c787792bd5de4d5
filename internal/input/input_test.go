package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/limaJavier/councils/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	type tc struct {
		Expression string
		Value      string
		Marks      bool
	}

	for _, tt := range []tc{
		{Expression: "", Value: "x", Marks: true},
		{Expression: "", Value: "   ", Marks: false},
		{Expression: "", Value: "", Marks: false},
		{Expression: `value in ["x", "X"]`, Value: " X ", Marks: true},
		{Expression: `value in ["x", "X"]`, Value: "1", Marks: false},
		{Expression: `value != "" && value != "0"`, Value: "0", Marks: false},
	} {
		t.Run(tt.Expression+"/"+tt.Value, func(t *testing.T) {
			marker, err := NewMarker(tt.Expression)
			require.NoError(t, err)

			marks, err := marker.Marks(tt.Value)

			require.NoError(t, err)
			assert.Equal(t, tt.Marks, marks)
		})
	}
}

func TestMarkerRejectsNonBooleanExpressions(t *testing.T) {
	_, err := NewMarker(`value + "x"`)
	assert.Error(t, err)

	_, err = NewMarker(`value ==`)
	assert.Error(t, err)
}

func TestParseSeparator(t *testing.T) {
	for separator, expected := range map[string]rune{"": ';', ";": ';', ",": ',', "\t": '\t', `\t`: '\t'} {
		parsed, err := ParseSeparator(separator)
		require.NoError(t, err)
		assert.Equal(t, expected, parsed)
	}

	_, err := ParseSeparator("|")
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	//** Arrange
	content := "\ufeffdocente ;1A;1B; Note ;2C\n" +
		"Rossi;x;x;part-time;\n" +
		"Verdi;;;;x\n" +
		" ;x;;;\n" +
		"Neri;x\n"

	//** Act
	source, err := ReadCSV(strings.NewReader(content), ';', defaultMarker(t))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B", "2C"}, source.Classes)
	assert.Equal(t, []model.Row{
		{Teacher: "Rossi", Classes: []string{"1A", "1B"}},
		{Teacher: "Verdi", Classes: []string{"2C"}},
		{Teacher: "", Classes: []string{"1A"}},
		{Teacher: "Neri", Classes: []string{"1A"}},
	}, source.Rows)
}

func TestReadCSVWithComma(t *testing.T) {
	source, err := ReadCSV(strings.NewReader("Docente,3D\n\"Bianchi, M.\",x\n"), ',', defaultMarker(t))

	require.NoError(t, err)
	assert.Equal(t, []model.Row{{Teacher: "Bianchi, M.", Classes: []string{"3D"}}}, source.Rows)
}

func TestReadCSVKeepsOutOfRangeHeaders(t *testing.T) {
	source, err := ReadCSV(strings.NewReader("Docente;6A\nRossi;x\n"), ';', defaultMarker(t))
	require.NoError(t, err)

	_, err = model.BuildRoster(source.Rows, model.WithClasses(source.Classes...))

	var labelErr model.InvalidClassLabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, "6A", labelErr.Label)
}

func TestReadCSVMissingTeacherColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Teacher;1A\nRossi;x\n"), ';', defaultMarker(t))
	assert.ErrorIs(t, err, ErrMissingTeacherColumn)

	_, err = ReadCSV(strings.NewReader(""), ';', defaultMarker(t))
	assert.ErrorIs(t, err, ErrMissingTeacherColumn)
}

func TestReadJSON(t *testing.T) {
	//** Arrange
	content := `[
		{"docente": "Rossi", "1B": "x", "1A": true, "note": "x"},
		{"Docente": "Verdi", "1A": false, "2C": 1, "1B": null}
	]`

	//** Act
	source, err := ReadJSON(strings.NewReader(content), defaultMarker(t))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B", "2C"}, source.Classes)
	assert.Equal(t, []model.Row{
		{Teacher: "Rossi", Classes: []string{"1A", "1B"}},
		{Teacher: "Verdi", Classes: []string{"2C"}},
	}, source.Rows)
}

func TestReadJSONMissingTeacher(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`[{"1A": "x"}]`), defaultMarker(t))
	assert.ErrorIs(t, err, ErrMissingTeacherColumn)

	_, err = ReadJSON(strings.NewReader(`{"Docente": "Rossi"}`), defaultMarker(t))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "roster.csv")
	jsonPath := filepath.Join(dir, "roster.JSON")
	require.NoError(t, os.WriteFile(csvPath, []byte("Docente\t4B\nRossi\tx\n"), 0644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"Docente": "Rossi", "4B": "x"}]`), 0644))

	for _, path := range []string{csvPath, jsonPath} {
		source, err := ReadFile(path, '\t', defaultMarker(t))
		require.NoError(t, err)
		assert.Equal(t, []model.Row{{Teacher: "Rossi", Classes: []string{"4B"}}}, source.Rows)
	}

	_, err := ReadFile(filepath.Join(dir, "missing.csv"), ';', defaultMarker(t))
	assert.Error(t, err)
}

func defaultMarker(t *testing.T) *Marker {
	t.Helper()
	marker, err := NewMarker(DefaultMarker)
	require.NoError(t, err)
	return marker
}
