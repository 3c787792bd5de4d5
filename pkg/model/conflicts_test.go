package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConflicts(t *testing.T) {
	//** Arrange
	roster := mustRoster([]Row{
		{Teacher: "Rossi", Classes: []string{"1A", "1B", "2A"}},
		{Teacher: "Verdi", Classes: []string{"1B", "1A"}},
		{Teacher: "Bianchi", Classes: []string{"1C", "2B"}},
	})

	//** Act
	conflicts := BuildConflicts(roster, 1)

	//** Assert
	assert.Equal(t, []ConflictEdge{
		{Year: 1, A: Section{1, 'A'}, B: Section{1, 'B'}, Teachers: []Teacher{"Rossi", "Verdi"}},
	}, conflicts)
	assert.Empty(t, BuildConflicts(roster, 2))
	assert.Empty(t, BuildConflicts(roster, 5))
}

func TestConflictIffSharedTeacher(t *testing.T) {
	for seed := range uint64(20) {
		roster := mustRoster(randomRows(15, seed, 4))
		graph := BuildConflictGraph(roster)

		for year := Year(1); year <= Years; year++ {
			sections := roster.SectionsOfYear(year)
			for _, a := range sections {
				for _, b := range sections {
					if !a.Less(b) {
						continue
					}
					shared := len(intersection(roster.TeachersOf(a), roster.TeachersOf(b))) > 0
					reported := slices.ContainsFunc(graph[year], func(edge ConflictEdge) bool { return edge.A == a && edge.B == b })
					assert.Equal(t, shared, reported, "seed %d: %v-%v", seed, a, b)
				}
			}
		}
	}
}

func TestSectionsWithoutTeachersNeverConflict(t *testing.T) {
	roster := mustRoster([]Row{{Teacher: "Rossi", Classes: []string{"1A"}}}, WithClasses("1B", "1C"))
	assert.Empty(t, BuildConflicts(roster, 1))
}

func TestLetterConflicts(t *testing.T) {
	roster := mustRoster([]Row{
		{Teacher: "Rossi", Classes: []string{"1A", "1B"}},
		{Teacher: "Verdi", Classes: []string{"3C", "4D"}},
		{Teacher: "Neri", Classes: []string{"5E"}},
	}, WithLetters("ABCDE"))

	conflicts := LetterConflicts(roster)

	assert.True(t, conflicts['A']['B'])
	assert.True(t, conflicts['B']['A'])
	assert.False(t, conflicts['C']['D']) // Different years
	assert.Contains(t, conflicts, Letter('E'))
	assert.Empty(t, conflicts['E'])
}

func intersection(a, b []Teacher) []Teacher {
	return slices.DeleteFunc(slices.Clone(a), func(teacher Teacher) bool { return !slices.Contains(b, teacher) })
}
