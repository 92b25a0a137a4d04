// Package knapsack_test provides runnable, deterministic examples for the
// knapsack solvers. Each example prints a stable // Output: block.
//
// Contents:
//  1. ExampleSolve                    (dispatcher, default strategy)
//  2. ExampleEngine_Step      (driving the search one node at a time)
//  3. ExampleCatalog_Relax            (fractional bound of a partial assignment)
//  4. ExampleCompare                  (all strategies side by side)
package knapsack_test

import (
	"context"
	"fmt"

	"github.com/tdw75/knapsack-problem/knapsack"
)

// ExampleSolve solves the four-item instance with branch-and-bound.
func ExampleSolve() {
	inst := knapsack.Instance{
		Capacity: 11,
		Items: []knapsack.Item{
			{Index: 0, Value: 8, Weight: 4},
			{Index: 1, Value: 10, Weight: 5},
			{Index: 2, Value: 15, Weight: 8},
			{Index: 3, Value: 4, Weight: 3},
		},
	}

	sol, err := knapsack.Solve(inst, knapsack.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Objective, sol.Decisions, sol.Optimal)
	// Output:
	// 19 [0 0 1 1] true
}

// ExampleEngine_Step shows the incremental API: the incumbent is
// available after every step.
func ExampleEngine_Step() {
	cat := knapsack.MustCatalog([]knapsack.Item{
		{Index: 0, Value: 8, Weight: 4},
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 15, Weight: 8},
		{Index: 3, Value: 4, Weight: 3},
	}, 11)
	e := knapsack.NewBranchAndBound(cat)

	steps := 1
	for e.Step() {
		steps++
	}
	decisions, obj := e.Incumbent()
	fmt.Println(steps, obj, decisions)
	// Output:
	// 15 19 [0 0 1 1]
}

// ExampleCatalog_Relax prints the fractional completion of the empty
// assignment, by catalog rank.
func ExampleCatalog_Relax() {
	cat := knapsack.MustCatalog([]knapsack.Item{
		{Index: 0, Value: 8, Weight: 4},
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 15, Weight: 8},
		{Index: 3, Value: 4, Weight: 3},
	}, 11)

	rel, _ := cat.Relax(make([]knapsack.Decision, cat.Len()))
	fmt.Println(rel.Decisions, rel.Objective, rel.Integer)
	// Output:
	// [1 1 0.25 0] 21.75 false
}

// ExampleCompare runs every strategy side by side.
func ExampleCompare() {
	inst := knapsack.Instance{
		Capacity: 11,
		Items: []knapsack.Item{
			{Index: 0, Value: 8, Weight: 4},
			{Index: 1, Value: 10, Weight: 5},
			{Index: 2, Value: 15, Weight: 8},
			{Index: 3, Value: 4, Weight: 3},
		},
	}

	sols, err := knapsack.Compare(context.Background(), inst, knapsack.Algorithms(), knapsack.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, sol := range sols {
		fmt.Printf("%-6s %d %v\n", sol.Algo, sol.Objective, sol.Decisions)
	}
	// Output:
	// bb     19 [0 0 1 1]
	// dp     19 [0 0 1 1]
	// greedy 18 [1 1 0 0]
	// pb     19 [0 0 1 1]
}
