package sat

// AtMost encodes "no more than k of the literals are true" with a sequential counter.
// Auxiliary variables are numbered from firstAuxiliary; the number of auxiliaries used is returned.
func AtMost(k int, literals []int64, firstAuxiliary uint64) (clauses [][]int64, auxiliaries uint64) {
	n := len(literals)
	clauses = make([][]int64, 0)

	if k < 0 {
		return [][]int64{{}}, 0 // Empty clause: unsatisfiable
	} else if n <= k {
		return clauses, 0
	} else if k == 0 {
		for _, literal := range literals {
			clauses = append(clauses, []int64{-literal})
		}
		return clauses, 0
	}

	// s(i, j) holds when at least j of the first i literals are true (1 <= i < n, 1 <= j <= k)
	s := func(i, j int) int64 {
		return int64(firstAuxiliary) + int64((i-1)*k+(j-1))
	}

	clauses = append(clauses, []int64{-literals[0], s(1, 1)})
	for j := 2; j <= k; j++ {
		clauses = append(clauses, []int64{-s(1, j)})
	}

	for i := 2; i < n; i++ {
		x := literals[i-1]
		clauses = append(clauses,
			[]int64{-x, s(i, 1)},
			[]int64{-s(i-1, 1), s(i, 1)},
		)
		for j := 2; j <= k; j++ {
			clauses = append(clauses,
				[]int64{-x, -s(i-1, j-1), s(i, j)},
				[]int64{-s(i-1, j), s(i, j)},
			)
		}
		clauses = append(clauses, []int64{-x, -s(i-1, k)})
	}

	clauses = append(clauses, []int64{-literals[n-1], -s(n-1, k)})

	return clauses, uint64((n - 1) * k)
}
