package knapsack

import "fmt"

// Relaxation is the fractional-knapsack completion of a partial assignment.
type Relaxation struct {
	// Decisions is fully assigned, by catalog rank. At most one slot is a
	// Fraction.
	Decisions []Decision

	// Objective is Σ value·x over Decisions. It bounds from above the value
	// of every integer completion of the partial assignment.
	Objective float64

	// Integer is true when no slot is fractional.
	Integer bool
}

// Relax completes partial by filling the remaining capacity greedily in
// density order:
//
//  1. remaining = capacity − Σ weight over slots fixed to One.
//     remaining < 0 ⇒ ErrInfeasibleAssignment.
//  2. Walk ranks in order. Slots fixed to Zero or One are kept. The first
//     Unassigned slot that does not fit becomes Fraction(remaining/weight)
//     (Zero when remaining is 0) and every later Unassigned slot becomes Zero.
//
// partial must have Len() slots and contain no Fraction, otherwise
// ErrMalformedAssignment is returned. partial is not modified.
//
// Complexity: O(n).
func (c *Catalog) Relax(partial []Decision) (Relaxation, error) {
	out := make([]Decision, len(c.items))
	rel, err := c.relaxInto(partial, out)
	if err != nil {
		return Relaxation{}, err
	}

	return rel, nil
}

// relaxInto is Relax writing into a caller-owned buffer of length Len().
func (c *Catalog) relaxInto(partial, out []Decision) (Relaxation, error) {
	var (
		n         = len(c.items)
		remaining = c.capacity
		r         int
		d         Decision
	)
	if len(partial) != n {
		return Relaxation{}, fmt.Errorf("%w: %d slots for %d items", ErrMalformedAssignment, len(partial), n)
	}

	// Stage 1: capacity left after the fixed ones.
	for r, d = range partial {
		if d.IsFraction() {
			return Relaxation{}, fmt.Errorf("%w: rank %d is fractional", ErrMalformedAssignment, r)
		}
		if d.IsOne() {
			remaining -= c.items[r].Weight
		}
	}
	if remaining < 0 {
		return Relaxation{}, ErrInfeasibleAssignment
	}

	// Stage 2: greedy fill of the unassigned slots.
	var (
		objective float64
		integer   = true
		stopped   bool
		it        Item
	)
	for r, d = range partial {
		it = c.items[r]
		switch {
		case d.IsAssigned():
			out[r] = d
		case stopped:
			out[r] = Zero
		case it.Weight <= remaining:
			out[r] = One
			remaining -= it.Weight
		default:
			out[r] = fractionOf(remaining, it.Weight)
			stopped = true
		}

		objective += float64(it.Value) * out[r].Float()
		if out[r].IsFraction() {
			integer = false
		}
	}

	return Relaxation{Decisions: out, Objective: objective, Integer: integer}, nil
}
