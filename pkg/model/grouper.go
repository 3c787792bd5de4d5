package model

import (
	"slices"

	"github.com/samber/lo"
)

// LetterGrouper partitions letters into boards of at most Columns letters, so that no two letters sharing a
// board conflict
type LetterGrouper interface {
	Group(letters []Letter, conflicts map[Letter]map[Letter]bool) ([][]Letter, error)
}

// Sorts the letters of every board and orders boards by their first letter; empty boards are dropped
func normalizeGroups(groups [][]Letter) [][]Letter {
	groups = lo.Filter(groups, func(group []Letter, _ int) bool { return len(group) > 0 })
	for _, group := range groups {
		slices.Sort(group)
	}
	slices.SortFunc(groups, func(a, b []Letter) int { return int(a[0]) - int(b[0]) })
	return groups
}
