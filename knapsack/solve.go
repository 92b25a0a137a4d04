// Package knapsack - unified dispatcher for knapsack solvers.
//
// Solve validates the instance, routes to the requested strategy, verifies
// the returned solution against the instance, and reports to the optional
// logger and observer.
//
// Design principles:
//   - Deterministic: every strategy has a fixed tie-break order.
//   - Strict sentinels: only errors from types.go, wrapped with context.
//   - No logging inside search loops; one summary line per solve.

package knapsack

import (
	"time"

	"go.uber.org/zap"
)

// Solve runs opts.Algo on inst.
//
// Errors: ErrInvalidInput (wrapped), ErrUnsupportedAlgorithm,
// ErrTableTooLarge, ErrSolverFailed, or ErrInconsistentSolution when a
// strategy returns a vector that fails Solution.Verify (a defect).
func Solve(inst Instance, opts Options) (Solution, error) {
	start := time.Now()
	sol, err := dispatch(inst, opts)
	if err == nil {
		err = sol.Verify(inst)
	}
	elapsed := time.Since(start)

	if opts.Observer != nil {
		opts.Observer.ObserveSolve(opts.Algo, sol, elapsed, err)
	}
	if opts.Logger != nil {
		logSolve(opts.Logger, opts.Algo, len(inst.Items), sol, elapsed, err)
	}
	if err != nil {
		return Solution{}, err
	}

	return sol, nil
}

// dispatch routes by algorithm.
func dispatch(inst Instance, opts Options) (Solution, error) {
	switch opts.Algo {
	case BranchAndBound:
		return SolveBranchAndBound(inst)
	case DynamicProgramming:
		return SolveDP(inst, opts.MaxTableCells)
	case Greedy:
		return SolveGreedy(inst)
	case PseudoBoolean:
		return SolvePseudoBoolean(inst)
	default:
		return Solution{}, ErrUnsupportedAlgorithm
	}
}

func logSolve(l *zap.Logger, algo Algorithm, n int, sol Solution, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("solve failed",
			zap.Stringer("algo", algo),
			zap.Int("items", n),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)

		return
	}
	l.Info("solve finished",
		zap.Stringer("algo", algo),
		zap.Int("items", n),
		zap.Int("objective", sol.Objective),
		zap.Bool("optimal", sol.Optimal),
		zap.Duration("elapsed", elapsed),
	)
	if algo == BranchAndBound {
		l.Debug("search stats",
			zap.Int("nodes", sol.Stats.Nodes),
			zap.Int("pruned", sol.Stats.Pruned),
			zap.Int("infeasible", sol.Stats.Infeasible),
			zap.Int("incumbents", sol.Stats.Incumbents),
			zap.Int("max_frontier", sol.Stats.MaxFrontier),
		)
	}
}
