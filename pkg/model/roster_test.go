package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	type tc struct {
		Label   string
		Section Section
		Valid   bool
	}

	for _, tt := range []tc{
		{Label: "1A", Section: Section{1, 'A'}, Valid: true},
		{Label: " 5d ", Section: Section{5, 'D'}, Valid: true},
		{Label: "3C", Section: Section{3, 'C'}, Valid: true},
		{Label: "6A"},
		{Label: "0B"},
		{Label: "1E"},
		{Label: "1AB"},
		{Label: "A1"},
		{Label: ""},
		{Label: "12"},
	} {
		t.Run(tt.Label, func(t *testing.T) {
			section, err := ParseSection(tt.Label, DefaultLetters)
			if tt.Valid {
				assert.NoError(t, err)
				assert.Equal(t, tt.Section, section)
				return
			}
			var labelErr InvalidClassLabelError
			assert.ErrorAs(t, err, &labelErr)
			assert.Equal(t, tt.Label, labelErr.Label)
		})
	}
}

func TestParseSectionWiderAlphabet(t *testing.T) {
	section, err := ParseSection("2F", "ABCDEF")
	assert.NoError(t, err)
	assert.Equal(t, "2F", section.String())
}

func TestLooksLikeClassLabel(t *testing.T) {
	assert.True(t, LooksLikeClassLabel("1A"))
	assert.True(t, LooksLikeClassLabel("6a"))
	assert.True(t, LooksLikeClassLabel("9Z"))
	assert.False(t, LooksLikeClassLabel("Docente"))
	assert.False(t, LooksLikeClassLabel("Note"))
	assert.False(t, LooksLikeClassLabel("10A"))
}

func TestBuildRoster(t *testing.T) {
	//** Arrange
	rows := []Row{
		{Teacher: " Rossi ", Classes: []string{"1A", "2B", "1A"}},
		{Teacher: "Bianchi", Classes: []string{"2B"}},
		{Teacher: "Rossi", Classes: []string{"2b"}},
	}

	//** Act
	roster, err := BuildRoster(rows)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []Section{{1, 'A'}, {2, 'B'}}, roster.Sections)
	assert.Equal(t, []Teacher{"Rossi", "Bianchi"}, roster.Teachers)
	assert.Equal(t, []Section{{1, 'A'}, {2, 'B'}}, roster.SectionsOf("Rossi"))
	assert.Equal(t, []Teacher{"Rossi", "Bianchi"}, roster.TeachersOf(Section{2, 'B'}))
	assert.Equal(t, []Teacher{"Rossi"}, roster.TeachersOf(Section{1, 'A'}))
}

func TestBuildRosterIndexIsBidirectional(t *testing.T) {
	roster, err := BuildRoster(randomRows(12, 30, 3))
	require.NoError(t, err)

	for teacher, sections := range roster.TeacherSections {
		for _, section := range sections {
			assert.Equal(t, 1, countOf(roster.TeachersOf(section), teacher))
		}
	}
	for section, teachers := range roster.SectionTeachers {
		for _, teacher := range teachers {
			assert.Equal(t, 1, countOf(roster.SectionsOf(teacher), section))
		}
	}
}

func TestBuildRosterDeclaredClasses(t *testing.T) {
	roster, err := BuildRoster([]Row{{Teacher: "Rossi", Classes: []string{"1B"}}}, WithClasses("1A", "1B", "1C"))

	require.NoError(t, err)
	assert.Equal(t, []Section{{1, 'A'}, {1, 'B'}, {1, 'C'}}, roster.Sections)
	assert.Empty(t, roster.TeachersOf(Section{1, 'A'}))
	assert.True(t, roster.Has(Section{1, 'C'}))
}

func TestBuildRosterInvalidLabel(t *testing.T) {
	_, err := BuildRoster([]Row{{Teacher: "Rossi", Classes: []string{"6A"}}})
	assert.ErrorAs(t, err, &InvalidClassLabelError{})

	_, err = BuildRoster([]Row{{Teacher: "Rossi", Classes: []string{"1A"}}}, WithClasses("6A"))
	assert.ErrorAs(t, err, &InvalidClassLabelError{})

	_, err = BuildRoster([]Row{{Teacher: "Rossi", Classes: []string{"1E"}}})
	assert.ErrorAs(t, err, &InvalidClassLabelError{})
}

func TestBuildRosterEmpty(t *testing.T) {
	for name, rows := range map[string][]Row{
		"no rows":       nil,
		"blank teacher": {{Teacher: "  ", Classes: []string{"1A"}}},
		"no classes":    {{Teacher: "Rossi"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := BuildRoster(rows)
			assert.ErrorAs(t, err, &EmptyRosterError{})
		})
	}
}

func TestBuildRosterLetters(t *testing.T) {
	roster, err := BuildRoster([]Row{{Teacher: "Rossi", Classes: []string{"1F", "1A"}}}, WithLetters("abcdef"))

	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", roster.Letters)
	assert.Equal(t, []Letter{'A', 'F'}, roster.PresentLetters())
}

func countOf[T comparable](values []T, value T) int {
	count := 0
	for _, v := range values {
		if v == value {
			count++
		}
	}
	return count
}
