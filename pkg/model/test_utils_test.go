package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/limaJavier/councils/pkg/sat"
)

// Generates rows for the given number of teachers, each teaching up to perTeacher random classes
// picked among all (year, letter) pairs of the first letters of the alphabet
func randomRows(teachers, seed uint64, perTeacher int) []Row {
	random := rand.New(rand.NewPCG(seed, seed*31+7))
	rows := make([]Row, 0, teachers)
	for teacher := range teachers {
		row := Row{Teacher: fmt.Sprintf("teacher-%d", teacher)}
		for range random.IntN(perTeacher) + 1 {
			year := random.IntN(Years) + 1
			letter := DefaultLetters[random.IntN(len(DefaultLetters))]
			row.Classes = append(row.Classes, fmt.Sprintf("%d%c", year, letter))
		}
		rows = append(rows, row)
	}
	return rows
}

func mustRoster(rows []Row, options ...RosterOption) Roster {
	roster, err := BuildRoster(rows, options...)
	if err != nil {
		panic(err)
	}
	return roster
}

func newTestSolver() sat.SATSolver {
	return sat.NewGiniSolver()
}
