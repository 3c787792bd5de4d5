package model

import (
	"slices"

	"github.com/samber/lo"
)

type greedyGrouper struct{}

// NewGreedyGrouper places the most conflicting letters first, each into the first board that has room and
// holds no conflicting letter
func NewGreedyGrouper() LetterGrouper {
	return &greedyGrouper{}
}

func (grouper *greedyGrouper) Group(letters []Letter, conflicts map[Letter]map[Letter]bool) ([][]Letter, error) {
	sorted := slices.Clone(letters)
	slices.Sort(sorted)
	slices.SortStableFunc(sorted, func(a, b Letter) int { return len(conflicts[b]) - len(conflicts[a]) })

	groups := make([][]Letter, 0)
	for _, letter := range sorted {
		index := slices.IndexFunc(groups, func(group []Letter) bool {
			return len(group) < Columns && !lo.SomeBy(group, func(other Letter) bool { return conflicts[letter][other] })
		})
		if index < 0 {
			groups = append(groups, []Letter{letter})
		} else {
			groups[index] = append(groups[index], letter)
		}
	}

	return normalizeGroups(groups), nil
}
