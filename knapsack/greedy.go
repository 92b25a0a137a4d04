package knapsack

// SolveGreedy scans items by descending density and takes every item that
// still fits. It is fast and always feasible but not optimal, so the
// returned Solution has Optimal=false.
//
// Complexity: O(n log n) for the catalog sort, O(n) for the scan.
func SolveGreedy(inst Instance) (Solution, error) {
	cat, err := NewCatalog(inst.Items, inst.Capacity)
	if err != nil {
		return Solution{}, err
	}

	var (
		n         = cat.Len()
		taken     = make([]bool, n)
		remaining = cat.Capacity()
		objective int
		r         int
		it        Item
	)
	for r = 0; r < n; r++ {
		it = cat.At(r)
		if it.Weight <= remaining {
			taken[r] = true
			remaining -= it.Weight
			objective += it.Value
		}
	}

	return Solution{
		Algo:      Greedy,
		Decisions: cat.ToOriginal(taken),
		Objective: objective,
		Optimal:   false,
	}, nil
}
