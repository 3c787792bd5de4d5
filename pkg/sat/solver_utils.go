package sat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Extracts the model from the "v ..." lines of a solver's output, dropping the terminating zero
func parseSolution(solverOutput string) (SATSolution, error) {
	var parseErr error
	values := lo.Map(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 1 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[2:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) int64 {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil && parseErr == nil {
				parseErr = fmt.Errorf("invalid literal in solver output: %w", err)
			}
			return value
		},
	)
	if parseErr != nil {
		return nil, parseErr
	}

	values = lo.Filter(values, func(value int64, _ int) bool { return value != 0 })
	return values, nil
}

// Checks that a solution holds no contradiction and satisfies every clause
func Satisfies(satInstance SAT, satSolution SATSolution) bool {
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	for _, clause := range satInstance.Clauses {
		if !lo.SomeBy(clause, func(literal int64) bool { return literals[literal] }) {
			return false
		}
	}

	return true
}
