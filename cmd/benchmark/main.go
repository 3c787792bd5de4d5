package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/limaJavier/councils/pkg/model"
	"github.com/limaJavier/councils/pkg/sat"

	"github.com/samber/lo"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type GrouperType int

const (
	greedy GrouperType = iota
	exact
)

var grouperTypes = map[GrouperType]string{
	greedy: "greedy",
	exact:  "sat",
}

type TestMetadata struct {
	Name      string
	Seed      uint64
	Letters   int
	Teachers  int
	Sections  int
	Conflicts int // Conflicting letter pairs
}

type BenchmarkResult struct {
	Grouper  GrouperType
	Solver   string
	Test     TestMetadata
	Duration int64 // Microseconds
	Boards   int
}

func main() {
	lettersPtr := flag.Int("letters", 12, "Largest alphabet size to benchmark (between 5 and 26)")
	teachersPtr := flag.Int("teachers", 30, "Teachers per generated roster")
	perTeacherPtr := flag.Int("per-teacher", 4, "Largest number of classes assigned to a teacher")
	seedsPtr := flag.Int("seeds", 5, "Rosters generated per alphabet size")
	solverPtr := flag.String("solver", "gini", "SAT solver used by the exact grouper")
	solverPathPtr := flag.String("solver-path", "", "Executable of an external solver; defaults to its name")
	outPtr := flag.String("out", "benchmark_results.csv", "Path of the CSV file where the results are written")
	flag.Parse()

	if *lettersPtr < model.Columns+1 || *lettersPtr > len(alphabet) {
		log.Fatalf("letters must be between %d and %d: %v", model.Columns+1, len(alphabet), *lettersPtr)
	}

	solver, err := sat.NewSolver(*solverPtr, *solverPathPtr)
	if err != nil {
		log.Fatalf("cannot initialize solver: %v", err)
	}
	groupers := map[GrouperType]model.LetterGrouper{
		greedy: model.NewGreedyGrouper(),
		exact:  model.NewSATGrouper(solver, nil),
	}

	results := make([]BenchmarkResult, 0)
	for letters := model.Columns + 1; letters <= *lettersPtr; letters++ {
		for seed := range uint64(*seedsPtr) {
			roster, err := randomRoster(letters, *teachersPtr, *perTeacherPtr, seed)
			if err != nil {
				log.Fatalf("cannot generate roster: %v", err)
			}
			conflicts := model.LetterConflicts(roster)
			test := TestMetadata{
				Name:      fmt.Sprintf("%d-letters-%d", letters, seed),
				Seed:      seed,
				Letters:   letters,
				Teachers:  len(roster.Teachers),
				Sections:  len(roster.Sections),
				Conflicts: lo.SumBy(lo.Values(conflicts), func(neighbors map[model.Letter]bool) int { return len(neighbors) }) / 2,
			}

			for _, grouperType := range []GrouperType{greedy, exact} {
				fmt.Printf("Benchmarking test \"%v\" with grouper \"%v\"\n", test.Name, grouperTypes[grouperType])

				duration, boards := measure(groupers[grouperType], roster.PresentLetters(), conflicts)
				results = append(results, BenchmarkResult{
					Grouper:  grouperType,
					Solver:   lo.Ternary(grouperType == exact, *solverPtr, ""),
					Test:     test,
					Duration: duration,
					Boards:   boards,
				})
			}
		}
	}

	toCsv(*outPtr, results)
}

// Builds a roster over the first letters of the alphabet, every teacher holding up to perTeacher random classes
func randomRoster(letters, teachers, perTeacher int, seed uint64) (model.Roster, error) {
	random := rand.New(rand.NewPCG(seed, uint64(letters)))
	rows := make([]model.Row, 0, teachers)
	for teacher := range teachers {
		row := model.Row{Teacher: fmt.Sprintf("teacher-%d", teacher)}
		for range random.IntN(perTeacher) + 1 {
			row.Classes = append(row.Classes, fmt.Sprintf("%d%c", random.IntN(model.Years)+1, alphabet[random.IntN(letters)]))
		}
		rows = append(rows, row)
	}
	return model.BuildRoster(rows, model.WithLetters(alphabet[:letters]))
}

func measure(grouper model.LetterGrouper, letters []model.Letter, conflicts map[model.Letter]map[model.Letter]bool) (duration int64, boards int) {
	start := time.Now()
	groups, err := grouper.Group(letters, conflicts)
	if err != nil {
		log.Fatalf("an error occurred during grouping: %v", err)
	}
	return time.Since(start).Microseconds(), len(groups)
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Grouper", "Solver", "Test", "Seed", "Letters", "Teachers", "Sections", "Conflicts", "Duration(us)", "Boards"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		grouperTypes[result.Grouper],
		result.Solver,
		result.Test.Name,
		fmt.Sprintf("%d", result.Test.Seed),
		fmt.Sprintf("%d", result.Test.Letters),
		fmt.Sprintf("%d", result.Test.Teachers),
		fmt.Sprintf("%d", result.Test.Sections),
		fmt.Sprintf("%d", result.Test.Conflicts),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%d", result.Boards),
	}
}
