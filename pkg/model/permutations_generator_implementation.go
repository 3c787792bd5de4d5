package model

import "math"

type permutationGeneratorImplementation struct {
	candidates, slots uint64
}

func (generator permutationGeneratorImplementation) ConstrainedPermutations(constraints []func(permutation []uint64) bool) [][]uint64 {
	permutations := make([][]uint64, 0)
	if generator.slots == 0 {
		return permutations
	}

	permutation := make([]uint64, generator.slots)
	for i := range permutation {
		permutation[i] = math.MaxUint64
	}

	generator.constrainedPermutations(constraints, 0, permutation, &permutations)
	return permutations
}

func (generator permutationGeneratorImplementation) constrainedPermutations(
	constraints []func(permutation []uint64) bool,
	currentSlot uint64,
	permutation []uint64,
	permutations *[][]uint64) {

	if currentSlot >= generator.slots {
		permutationCopy := make([]uint64, len(permutation))
		copy(permutationCopy, permutation)
		*permutations = append(*permutations, permutationCopy)
		return
	}

	for candidate := uint64(0); candidate < generator.candidates; candidate++ {
		permutation[currentSlot] = candidate
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(permutation) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		generator.constrainedPermutations(constraints, currentSlot+1, permutation, permutations)
	}

	permutation[currentSlot] = math.MaxUint64
}
