package model

import (
	"slices"

	"github.com/samber/lo"
)

// ConflictEdge is an unordered pair of same-year sections sharing at least one teacher (A precedes B by identifier)
type ConflictEdge struct {
	Board    int // Board the pair was placed on; zero before arrangement
	Year     Year
	A        Section
	B        Section
	Teachers []Teacher // Shared teachers, sorted
}

func (edge ConflictEdge) compare(other ConflictEdge) int {
	if edge.Year != other.Year {
		return int(edge.Year) - int(other.Year)
	}
	if comparison := edge.A.Compare(other.A); comparison != 0 {
		return comparison
	}
	if comparison := edge.B.Compare(other.B); comparison != 0 {
		return comparison
	}
	return edge.Board - other.Board
}

func sortConflicts(conflicts []ConflictEdge) {
	slices.SortFunc(conflicts, func(a, b ConflictEdge) int { return a.compare(b) })
}

// BuildConflicts returns the conflict edges among the sections of the given year, sorted by section identifiers
func BuildConflicts(roster Roster, year Year) []ConflictEdge {
	return conflictsAmong(roster, roster.SectionsOfYear(year))
}

// BuildConflictGraph returns the conflict edges of every year
func BuildConflictGraph(roster Roster) map[Year][]ConflictEdge {
	graph := make(map[Year][]ConflictEdge, Years)
	for year := Year(1); year <= Years; year++ {
		graph[year] = BuildConflicts(roster, year)
	}
	return graph
}

// LetterConflicts marks two letters as conflicting when, in at least one year, their sections share a teacher.
// Every present letter has an entry, conflicting or not.
func LetterConflicts(roster Roster) map[Letter]map[Letter]bool {
	conflicts := make(map[Letter]map[Letter]bool)
	for _, letter := range roster.PresentLetters() {
		conflicts[letter] = make(map[Letter]bool)
	}

	for _, edges := range BuildConflictGraph(roster) {
		for _, edge := range edges {
			if edge.A.Letter == edge.B.Letter {
				continue
			}
			conflicts[edge.A.Letter][edge.B.Letter] = true
			conflicts[edge.B.Letter][edge.A.Letter] = true
		}
	}
	return conflicts
}

// Pairs of sections belonging to different years are never in conflict, since they never share a row
func conflictsAmong(roster Roster, sections []Section) []ConflictEdge {
	sorted := slices.Clone(sections)
	slices.SortFunc(sorted, func(a, b Section) int { return a.Compare(b) })

	conflicts := make([]ConflictEdge, 0)
	for i := range len(sorted) {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if a.Year != b.Year {
				continue
			}
			if shared := sharedTeachers(roster, a, b); len(shared) > 0 {
				conflicts = append(conflicts, ConflictEdge{Year: a.Year, A: a, B: b, Teachers: shared})
			}
		}
	}
	return conflicts
}

func sharedTeachers(roster Roster, a, b Section) []Teacher {
	shared := lo.Intersect(roster.TeachersOf(a), roster.TeachersOf(b))
	slices.Sort(shared)
	return shared
}

func inConflict(roster Roster, a, b Section) bool {
	return lo.SomeBy(roster.TeachersOf(a), func(teacher Teacher) bool {
		return slices.Contains(roster.TeachersOf(b), teacher)
	})
}
