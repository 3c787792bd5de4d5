package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver, so no executable has to be configured
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.NewV(int(sat.Variables))

	// Variables beyond the largest one mentioned in the clauses are unconstrained and never reach the solver
	var maxVariable int64
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			variable := max(literal, -literal)
			if literal == 0 || uint64(variable) > sat.Variables {
				return nil, fmt.Errorf("literal %d is out of range for %d variables", literal, sat.Variables)
			}
			maxVariable = max(maxVariable, variable)
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull) // Terminate clause
	}

	switch g.Solve() {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini could not decide the instance")
	}

	solution := make(SATSolution, 0, sat.Variables)
	for variable := int64(1); variable <= int64(sat.Variables); variable++ {
		if variable <= maxVariable && g.Value(z.Dimacs2Lit(int(variable))) {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}
