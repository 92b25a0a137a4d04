package knapsack

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
)

// SolvePseudoBoolean solves inst exactly through gophersat's weighted
// partial MaxSAT solver. It is an independent oracle for the other exact
// strategies and is practical for small and medium instances only.
//
// Encoding, with one boolean x_i per item:
//   - hard:  Σ w_i·¬x_i ≥ Σw − C   (equivalent to Σ w_i·x_i ≤ C)
//   - soft:  clause (x_i) with weight v_i for every item with v_i > 0
//
// Minimising the violated soft weight maximises the packed value.
func SolvePseudoBoolean(inst Instance) (Solution, error) {
	if err := inst.Validate(); err != nil {
		return Solution{}, err
	}

	var (
		n         = len(inst.Items)
		lits      = make([]maxsat.Lit, n)
		coeffs    = make([]int, n)
		constrs   = make([]maxsat.Constr, 0, n+1)
		sumWeight int
		sumValue  int
		i         int
		it        Item
	)
	for i, it = range inst.Items {
		lits[i] = maxsat.Not(pbVar(it.Index))
		coeffs[i] = it.Weight
		sumWeight += it.Weight
		sumValue += it.Value
	}
	// Degenerate encodings (no hard bound or no objective) are answered
	// directly instead of being handed to the solver.
	if sumWeight <= inst.Capacity || !anyValue(inst.Items) {
		return trivialSolution(inst, sumWeight <= inst.Capacity), nil
	}
	constrs = append(constrs, maxsat.HardPBConstr(lits, coeffs, sumWeight-inst.Capacity))
	for _, it = range inst.Items {
		// Weight 0 would make the clause hard; valueless items need no clause.
		if it.Value > 0 {
			constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Var(pbVar(it.Index))}, it.Value))
		}
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil {
		return Solution{}, ErrSolverFailed
	}

	return decodeModel(inst, model, cost, sumValue)
}

// decodeModel maps a MaxSAT model back to a decision vector. cost is the
// weight of the violated soft clauses and must equal sumValue − objective.
func decodeModel(inst Instance, model maxsat.Model, cost, sumValue int) (Solution, error) {
	// Variables absent from the model were never constrained: leave them out.
	var (
		decisions = make([]int, len(inst.Items))
		objective int
	)
	for _, it := range inst.Items {
		if model[pbVar(it.Index)] {
			decisions[it.Index] = 1
			objective += it.Value
		}
	}
	if cost != sumValue-objective {
		return Solution{}, fmt.Errorf("%w: cost %d, but model leaves %d of value %d", ErrSolverFailed, cost, sumValue-objective, sumValue)
	}

	return Solution{
		Algo:      PseudoBoolean,
		Decisions: decisions,
		Objective: objective,
		Optimal:   true,
	}, nil
}

// pbVar names the boolean of item index i.
func pbVar(i int) string { return "x" + strconv.Itoa(i) }

// anyValue reports whether at least one item is worth taking.
func anyValue(items []Item) bool {
	for _, it := range items {
		if it.Value > 0 {
			return true
		}
	}

	return false
}

// trivialSolution takes every item (takeAll) or none.
func trivialSolution(inst Instance, takeAll bool) Solution {
	var (
		decisions = make([]int, len(inst.Items))
		objective int
	)
	if takeAll {
		for _, it := range inst.Items {
			decisions[it.Index] = 1
			objective += it.Value
		}
	}

	return Solution{
		Algo:      PseudoBoolean,
		Decisions: decisions,
		Objective: objective,
		Optimal:   true,
	}
}
