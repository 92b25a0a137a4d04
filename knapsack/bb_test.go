package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdw75/knapsack-problem/knapsack"
)

func TestBranchAndBound_KS4(t *testing.T) {
	inst := mustParseFile(t, "ks_4_0")

	sol, err := knapsack.SolveBranchAndBound(inst)
	require.NoError(t, err)
	requireValid(t, inst, sol)

	assert.Equal(t, knapsack.BranchAndBound, sol.Algo)
	assert.Equal(t, []int{0, 0, 1, 1}, sol.Decisions)
	assert.Equal(t, ks4Optimum, sol.Objective)
	assert.True(t, sol.Optimal)
	assert.Equal(t, knapsack.Stats{
		Nodes:       14,
		Pruned:      2,
		Infeasible:  4,
		Incumbents:  2,
		MaxFrontier: 4,
	}, sol.Stats)
}

func TestBranchAndBound_KS30(t *testing.T) {
	inst := mustParseFile(t, "ks_30_0")

	sol, err := knapsack.SolveBranchAndBound(inst)
	require.NoError(t, err)
	requireValid(t, inst, sol)

	assert.Equal(t, ks30Optimum, sol.Objective)
	assert.LessOrEqual(t, sol.Stats.MaxFrontier, 2*len(inst.Items))
}

func TestBranchAndBound_ZeroCapacity(t *testing.T) {
	inst := knapsack.Instance{Items: ks4Items(), Capacity: 0}

	sol, err := knapsack.SolveBranchAndBound(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, sol.Decisions)
	assert.Equal(t, 0, sol.Objective)
}

func TestBranchAndBound_EverythingFits(t *testing.T) {
	inst := knapsack.Instance{Items: ks4Items(), Capacity: 100}

	sol, err := knapsack.SolveBranchAndBound(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, sol.Decisions)
	assert.Equal(t, 37, sol.Objective)
	// The root relaxation is already integer.
	assert.Equal(t, 0, sol.Stats.Nodes)
}

func TestBranchAndBound_Empty(t *testing.T) {
	sol, err := knapsack.SolveBranchAndBound(knapsack.Instance{Capacity: 5})
	require.NoError(t, err)
	assert.Empty(t, sol.Decisions)
	assert.Equal(t, 0, sol.Objective)
}

func TestBranchAndBound_AllValuesZero(t *testing.T) {
	items := []knapsack.Item{
		{Index: 0, Value: 0, Weight: 1},
		{Index: 1, Value: 0, Weight: 2},
	}
	sol, err := knapsack.SolveBranchAndBound(knapsack.Instance{Items: items, Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Objective)
	assert.Equal(t, []int{0, 0}, sol.Decisions)
}

func TestBranchAndBound_InvalidInput(t *testing.T) {
	inst := knapsack.Instance{Items: []knapsack.Item{{Index: 0, Value: 1, Weight: 0}}, Capacity: 1}
	_, err := knapsack.SolveBranchAndBound(inst)
	assert.ErrorIs(t, err, knapsack.ErrInvalidInput)
}

func TestBranchAndBound_SolveIsIdempotent(t *testing.T) {
	inst := mustParseFile(t, "ks_30_0")
	e := knapsack.NewBranchAndBound(knapsack.MustCatalog(inst.Items, inst.Capacity))

	first := e.Solve()
	second := e.Solve()
	assert.Equal(t, first, second)
}

func TestBranchAndBound_StepByStep(t *testing.T) {
	inst := mustParseFile(t, "ks_4_0")
	e := knapsack.NewBranchAndBound(knapsack.MustCatalog(inst.Items, inst.Capacity))

	_, obj := e.Incumbent()
	require.Equal(t, 0, obj)

	var (
		steps   int
		lastObj int
	)
	for more := true; more; {
		more = e.Step()
		steps++
		require.LessOrEqual(t, e.FrontierLen(), 2*len(inst.Items))

		// The incumbent objective never decreases.
		_, obj = e.Incumbent()
		require.GreaterOrEqual(t, obj, lastObj)
		lastObj = obj

		// Fixed ranks form a prefix and no fraction is ever stored.
		work := e.Working()
		seenUnassigned := false
		for _, d := range work {
			require.False(t, d.IsFraction())
			if !d.IsAssigned() {
				seenUnassigned = true
			} else {
				require.False(t, seenUnassigned, "assigned slot after an unassigned one: %v", work)
			}
		}
	}
	assert.False(t, e.Step())

	decisions, obj := e.Incumbent()
	assert.Equal(t, []int{0, 0, 1, 1}, decisions)
	assert.Equal(t, ks4Optimum, obj)
	// Root evaluation plus one step per popped node.
	assert.Equal(t, e.Stats().Nodes+1, steps)
}

func TestBranchAndBound_ResetRestoresInitialState(t *testing.T) {
	inst := mustParseFile(t, "ks_4_0")
	e := knapsack.NewBranchAndBound(knapsack.MustCatalog(inst.Items, inst.Capacity))
	for i := 0; i < 5; i++ {
		e.Step()
	}
	e.Reset()

	decisions, obj := e.Incumbent()
	assert.Equal(t, []int{0, 0, 0, 0}, decisions)
	assert.Equal(t, 0, obj)
	assert.Equal(t, 0, e.FrontierLen())
	assert.Equal(t, knapsack.Stats{}, e.Stats())
	for _, d := range e.Working() {
		assert.False(t, d.IsAssigned())
	}
}

func TestBranchAndBound_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < 200; i++ {
		inst := randomInstance(rng, 1+rng.Intn(12), 30, 20)

		sol, err := knapsack.SolveBranchAndBound(inst)
		require.NoError(t, err)
		requireValid(t, inst, sol)
		require.Equal(t, bruteForce(inst), sol.Objective, "instance %d: %+v", i, inst)
		require.LessOrEqual(t, sol.Stats.MaxFrontier, 2*len(inst.Items))
	}
}

func TestBranchAndBound_HugeWeightNeverOverfills(t *testing.T) {
	const w = 1 << 60
	inst := knapsack.Instance{Items: []knapsack.Item{{Index: 0, Value: 1, Weight: w}}, Capacity: w - 1}

	sol, err := knapsack.SolveBranchAndBound(inst)
	require.NoError(t, err)
	requireValid(t, inst, sol)
	assert.Equal(t, []int{0}, sol.Decisions)
	assert.Equal(t, 0, sol.Objective)
}
