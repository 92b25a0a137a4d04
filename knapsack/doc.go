// Package knapsack provides 0/1 knapsack solvers.
//
// Given items with integer values and positive integer weights and a
// capacity C, choose a subset maximising total value with total weight ≤ C.
//
// Strategies:
//   - BranchAndBound: exact depth-first search over the density-ordered
//     catalog with an explicit frontier and a fractional-knapsack bound.
//     O(2ⁿ) nodes worst case, O(n) per node, O(n) memory.
//   - DynamicProgramming: exact (n+1)×(C+1) tabulation. O(n·C) time and
//     memory, guarded by Options.MaxTableCells.
//   - Greedy: density-ordered fill. Feasible, not optimal.
//   - PseudoBoolean: weighted partial MaxSAT via gophersat; an independent
//     exact oracle.
//
// Building blocks of the branch-and-bound search are exported so the
// search can be inspected and driven step by step:
//
//	cat, err := knapsack.NewCatalog(items, capacity)  // density order + rank↔index
//	rel, err := cat.Relax(partial)                    // fractional completion / ErrInfeasibleAssignment
//	f := knapsack.NewFrontier(cat.Len())              // LIFO of pending branches
//	e := knapsack.NewBranchAndBound(cat)
//	for e.Step() { ... }                              // or e.Solve()
//
// All returned decision vectors are 0/1 in ORIGINAL input order.
package knapsack
