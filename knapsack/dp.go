package knapsack

import "fmt"

// SolveDP solves inst exactly with the classic dynamic-programming table.
//
// table[i][k] = best value using the first i items (input order) within
// capacity k. After filling, the decision vector is rebuilt by walking i
// from n down to 1: item i-1 was taken iff table[i][k] != table[i-1][k].
//
// Errors:
//   - ErrInvalidInput (wrapped) from Instance.Validate.
//   - ErrTableTooLarge if (n+1)·(capacity+1) > maxCells (maxCells <= 0 means
//     DefaultMaxTableCells).
//
// Time complexity:   O(n · capacity)
// Memory complexity: O(n · capacity)
func SolveDP(inst Instance, maxCells int) (Solution, error) {
	if err := inst.Validate(); err != nil {
		return Solution{}, err
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxTableCells
	}

	n := len(inst.Items)
	// Compare before adding 1 so a capacity near MaxInt cannot overflow.
	if inst.Capacity >= maxCells/(n+1) {
		return Solution{}, fmt.Errorf("%w: %d x (%d+1) cells, limit %d", ErrTableTooLarge, n+1, inst.Capacity, maxCells)
	}
	cols := inst.Capacity + 1

	// Items by input position; Validate guarantees a permutation.
	byIndex := make([]Item, n)
	for _, it := range inst.Items {
		byIndex[it.Index] = it
	}

	// --- 1. Fill the table row by row ---
	table := make([][]int, n+1)
	table[0] = make([]int, cols)
	var (
		i, k int
		it   Item
	)
	for i = 1; i <= n; i++ {
		table[i] = make([]int, cols)
		it = byIndex[i-1]
		for k = 0; k < cols; k++ {
			table[i][k] = table[i-1][k]
			if it.Weight <= k {
				if with := it.Value + table[i-1][k-it.Weight]; with > table[i][k] {
					table[i][k] = with
				}
			}
		}
	}

	// --- 2. Rebuild the decision vector ---
	decisions := make([]int, n)
	k = inst.Capacity
	for i = n; i >= 1; i-- {
		if table[i][k] != table[i-1][k] {
			decisions[i-1] = 1
			k -= byIndex[i-1].Weight
		}
	}

	return Solution{
		Algo:      DynamicProgramming,
		Decisions: decisions,
		Objective: table[n][inst.Capacity],
		Optimal:   true,
	}, nil
}
