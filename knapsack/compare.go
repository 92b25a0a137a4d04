package knapsack

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Compare runs every strategy in algos on inst concurrently and returns the
// solutions in the order requested. Each strategy builds its own catalog
// and search state; inst is only read.
//
// A strategy that has not started when ctx is cancelled (or when another
// strategy fails) is skipped. A running search is not interrupted.
func Compare(ctx context.Context, inst Instance, algos []Algorithm, opts Options) ([]Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	var (
		out  = make([]Solution, len(algos))
		g, c = errgroup.WithContext(ctx)
	)
	for i, algo := range algos {
		i, algo := i, algo
		g.Go(func() error {
			if err := c.Err(); err != nil {
				return err
			}
			o := opts
			o.Algo = algo
			sol, err := Solve(inst, o)
			if err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			out[i] = sol

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
