// Package knapsack_test provides lightweight helpers shared across the
// *_test.go files of this package.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tdw75/knapsack-problem/knapsack"
	"github.com/tdw75/knapsack-problem/textio"
)

const (
	// ks4Optimum is the optimal objective of testdata/ks_4_0.
	ks4Optimum = 19

	// ks30Optimum is the optimal objective of testdata/ks_30_0.
	ks30Optimum = 99798

	// seedDet is the deterministic seed for generated instances.
	seedDet = int64(20240611)
)

// ks4Items is testdata/ks_4_0 inline: capacity 11.
// Density order is 0 (2.0), 1 (2.0), 2 (1.875), 3 (1.33); 0 and 1 tie.
func ks4Items() []knapsack.Item {
	return []knapsack.Item{
		{Index: 0, Value: 8, Weight: 4},
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 15, Weight: 8},
		{Index: 3, Value: 4, Weight: 3},
	}
}

func ks4() knapsack.Instance {
	return knapsack.Instance{Items: ks4Items(), Capacity: 11}
}

// mustParseFile loads a fixture from testdata/.
func mustParseFile(t testing.TB, name string) knapsack.Instance {
	t.Helper()
	inst, err := textio.ParseFile("testdata/" + name)
	require.NoError(t, err)

	return inst
}

// randomInstance builds n items with values in [0,maxV] and weights in
// [1,maxW]; the capacity is in [0, Σw].
func randomInstance(rng *rand.Rand, n, maxV, maxW int) knapsack.Instance {
	items := make([]knapsack.Item, n)
	var sumW int
	for i := range items {
		items[i] = knapsack.Item{Index: i, Value: rng.Intn(maxV + 1), Weight: 1 + rng.Intn(maxW)}
		sumW += items[i].Weight
	}

	return knapsack.Instance{Items: items, Capacity: rng.Intn(sumW + 1)}
}

// bruteForce enumerates all 2^n subsets and returns the best objective.
func bruteForce(inst knapsack.Instance) int {
	var (
		n    = len(inst.Items)
		best int
	)
	for mask := 0; mask < 1<<n; mask++ {
		var w, v int
		for i, it := range inst.Items {
			if mask&(1<<i) != 0 {
				w += it.Weight
				v += it.Value
			}
		}
		if w <= inst.Capacity && v > best {
			best = v
		}
	}

	return best
}

// requireValid asserts feasibility and objective consistency.
func requireValid(t testing.TB, inst knapsack.Instance, sol knapsack.Solution) {
	t.Helper()
	require.NoError(t, sol.Verify(inst))
	require.LessOrEqual(t, sol.Weight(inst), inst.Capacity)
	require.Equal(t, sol.Value(inst), sol.Objective)
}
