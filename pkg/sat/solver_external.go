package sat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Arguments that make each supported executable read DIMACS from standard input and print a quiet model
var externalArguments = map[string][]string{
	"kissat":        {"-q", "--relaxed"},
	"cadical":       {"-q"},
	"cryptominisat": {"--verb=0"},
}

type externalSolver struct {
	name string
	path string
	args []string
}

// NewExternalSolver runs a SAT-competition style executable (exit code 10 for satisfiable, 20 for unsatisfiable)
func NewExternalSolver(name, path string, args ...string) SATSolver {
	return &externalSolver{
		name: name,
		path: path,
		args: args,
	}
}

// NewSolver resolves a solver by name: "gini" runs in process, any other known name runs the executable at path
// (or found in PATH when path is empty)
func NewSolver(name, path string) (SATSolver, error) {
	name = strings.ToLower(name)
	if name == "" || name == "gini" {
		return NewGiniSolver(), nil
	}

	args, ok := externalArguments[name]
	if !ok {
		return nil, fmt.Errorf("solver %q is not supported", name)
	}
	if path == "" {
		path = name
	}
	return NewExternalSolver(name, path, args...), nil
}

func (solver *externalSolver) Solve(sat SAT) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	cmd := exec.Command(solver.path, solver.args...)
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into the solver's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if cmd.ProcessState == nil {
		return nil, fmt.Errorf("cannot start %v: %w", solver.name, err)
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != 10 && exitCode != 20 {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", solver.name, err.Error(), stderr.String())
	} else if exitCode == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String())
}
