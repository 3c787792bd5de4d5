package model

type permutationGenerator interface {
	// Builds every ordered selection of candidate indices (one per slot) that holds all the constraints.
	// Slots are filled left to right; a slot whose value is math.MaxUint64 has not been filled yet, so every
	// constraint must accept a selection in which the slots it relies on are still unset
	//
	// Example:
	//
	//	generator := newPermutationGenerator(Candidates, Slots)
	//
	//	permutations := generator.ConstrainedPermutations([]func(permutation []uint64) bool{
	//				func(permutation []uint64) bool {
	//	       		// Verify "permutation[1] == math.MaxUint64", since the predicate "permutation[1] != 0" relies in this index
	//					return permutation[1] == math.MaxUint64 || permutation[1] != 0
	//				},
	//			})
	ConstrainedPermutations(constraints []func(permutation []uint64) bool) [][]uint64
}

func newPermutationGenerator(candidates, slots uint64) permutationGenerator {
	return &permutationGeneratorImplementation{candidates, slots}
}
