// Package knapsack: Branch-and-Bound (exact search with a fractional bound).
//
// Engine enumerates 0/1 assignments over the density-ordered
// catalog by depth-first search, pruning with the fractional-knapsack
// relaxation (see relax.go).
//
// Rationale (succinct):
//  1. The catalog is sorted once; the search mutates only one working
//     assignment vector indexed by rank.
//  2. Traversal uses an explicit Frontier instead of recursion. Memory is
//     O(n) and the search can be driven one Step at a time.
//  3. Each evaluated node is classified as:
//     Infeasible         → fixed items exceed capacity; backtrack.
//     Bound-Exceeded     → relaxed objective ≤ incumbent; prune.
//     Integer-Feasible   → relaxation is all-integer; record if strictly better.
//     Promising          → relaxation is fractional and beats the incumbent;
//     branch on the rank after the deepest fixed one.
//  4. Branching order: ranks in density order, take-branch first.
//
// Complexity:
//   - Worst case O(2^n) nodes; O(n) per node for the relaxation.
//   - Memory: O(n) for the working vector, relaxation buffer and frontier.

package knapsack

import "errors"

// Engine is the exact branch-and-bound search over one catalog. It owns its
// working state; one engine must not be used from several goroutines at
// once. Independent engines may share the same Catalog.
type Engine struct {
	cat *Catalog
	n   int

	// Current search state
	work     []Decision // partial assignment by rank; fixed ranks form a prefix
	scratch  []Decision // relaxation output buffer
	frontier *Frontier

	// Current best incumbent
	best    []bool // by rank
	bestObj int

	stats   Stats
	started bool
}

// NewBranchAndBound prepares an engine for cat. Call Solve, or Reset and
// then Step until it returns false.
func NewBranchAndBound(cat *Catalog) *Engine {
	n := cat.Len()
	e := &Engine{
		cat:      cat,
		n:        n,
		work:     make([]Decision, n),
		scratch:  make([]Decision, n),
		frontier: NewFrontier(n),
		best:     make([]bool, n),
	}
	e.Reset()

	return e
}

// Reset restores the initial state: every slot Unassigned, empty frontier,
// incumbent = all-zero vector with objective 0.
func (e *Engine) Reset() {
	var r int
	for r = 0; r < e.n; r++ {
		e.work[r] = Unassigned
		e.best[r] = false
	}
	e.bestObj = 0
	e.frontier.Reset()
	e.stats = Stats{}
	e.started = false
}

// Step advances the search by one node. The first call evaluates the root;
// every later call pops one frontier entry. It returns false once the
// frontier is exhausted.
func (e *Engine) Step() bool {
	if !e.started {
		e.started = true
		e.evaluate(-1)

		return !e.frontier.Empty()
	}

	b, ok := e.frontier.Pop()
	if !ok {
		return false
	}
	e.stats.Nodes++
	e.backtrack(b.Rank)
	e.work[b.Rank] = Take(b.Take)
	e.evaluate(b.Rank)

	return !e.frontier.Empty()
}

// Solve runs the search from scratch to exhaustion and returns the
// incumbent in original item order. Calling it twice yields the same result.
func (e *Engine) Solve() Solution {
	e.Reset()
	for e.Step() {
	}

	decisions, objective := e.Incumbent()

	return Solution{
		Algo:      BranchAndBound,
		Decisions: decisions,
		Objective: objective,
		Optimal:   true,
		Stats:     e.Stats(),
	}
}

// Incumbent returns the best solution found so far in original item order.
func (e *Engine) Incumbent() ([]int, int) {
	return e.cat.ToOriginal(e.best), e.bestObj
}

// Working returns a copy of the current partial assignment by rank.
func (e *Engine) Working() []Decision {
	out := make([]Decision, e.n)
	copy(out, e.work)

	return out
}

// FrontierLen returns the number of pending branches.
func (e *Engine) FrontierLen() int { return e.frontier.Len() }

// Stats returns the counters collected so far.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.MaxFrontier = e.frontier.HighWater()

	return s
}

// backtrack clears every slot at or after rank so that values fixed in an
// abandoned subtree never leak into a sibling.
func (e *Engine) backtrack(rank int) {
	var r int
	for r = rank; r < e.n; r++ {
		e.work[r] = Unassigned
	}
}

// evaluate classifies the working assignment whose deepest fixed rank is
// depth (-1 for the root) and prunes, records or branches.
func (e *Engine) evaluate(depth int) {
	rel, err := e.cat.relaxInto(e.work, e.scratch)
	switch {
	case errors.Is(err, ErrInfeasibleAssignment):
		e.stats.Infeasible++

		return
	case err != nil:
		// The engine builds every partial assignment itself.
		panic(err)
	}

	// Bound-Exceeded: no completion can strictly beat the incumbent.
	if !(rel.Objective > float64(e.bestObj)) {
		e.stats.Pruned++

		return
	}

	if rel.Integer {
		e.record(rel.Decisions)

		return
	}

	// A fractional slot implies an unassigned rank after depth.
	e.frontier.Branch(depth + 1)
}

// record commits an all-integer relaxation if it strictly beats the incumbent.
// The objective is recomputed in integers to stay exact.
func (e *Engine) record(decisions []Decision) {
	var (
		obj int
		r   int
	)
	for r = 0; r < e.n; r++ {
		if decisions[r].IsOne() {
			obj += e.cat.items[r].Value
		}
	}
	if obj <= e.bestObj {
		return
	}
	for r = 0; r < e.n; r++ {
		e.best[r] = decisions[r].IsOne()
	}
	e.bestObj = obj
	e.stats.Incumbents++
}

// SolveBranchAndBound validates inst and runs a fresh engine over it.
func SolveBranchAndBound(inst Instance) (Solution, error) {
	cat, err := NewCatalog(inst.Items, inst.Capacity)
	if err != nil {
		return Solution{}, err
	}

	return NewBranchAndBound(cat).Solve(), nil
}
