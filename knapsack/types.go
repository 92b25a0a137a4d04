package knapsack

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned by the knapsack solvers.
var (
	// ErrInvalidInput indicates a structurally invalid instance: a malformed
	// input line, a non-positive weight, a negative value or capacity, or an
	// item index set that is not a permutation of 0..n-1.
	ErrInvalidInput = errors.New("knapsack: invalid input")

	// ErrInfeasibleAssignment is returned by Relax when the items already
	// fixed to 1 exceed the capacity. The search recovers from it locally by
	// backtracking; Solve never returns it.
	ErrInfeasibleAssignment = errors.New("knapsack: fixed items exceed capacity")

	// ErrMalformedAssignment indicates a partial assignment of the wrong
	// length or one that carries a fractional slot.
	ErrMalformedAssignment = errors.New("knapsack: malformed partial assignment")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrTableTooLarge is returned by SolveDP when the (n+1)x(capacity+1)
	// table would exceed Options.MaxTableCells.
	ErrTableTooLarge = errors.New("knapsack: dynamic-programming table too large")

	// ErrInconsistentSolution indicates a solution whose decision vector is
	// infeasible or disagrees with its reported objective.
	ErrInconsistentSolution = errors.New("knapsack: inconsistent solution")

	// ErrSolverFailed indicates that an external solver returned no model, or
	// a cost that disagrees with its model.
	ErrSolverFailed = errors.New("knapsack: external solver failed")
)

// Item is one candidate for the knapsack. Index is the position in the
// original input order and is the identity used for output.
type Item struct {
	Index  int
	Value  int
	Weight int
}

// Density returns Value/Weight as a real number.
// Only meaningful for Weight > 0; catalogs reject anything else.
func (it Item) Density() float64 {
	return float64(it.Value) / float64(it.Weight)
}

// Instance is a parsed problem: items in input order plus the capacity.
type Instance struct {
	Items    []Item
	Capacity int
}

// Validate runs the structural checks shared by every solver.
func (inst Instance) Validate() error {
	if inst.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidInput, inst.Capacity)
	}
	var (
		n    = len(inst.Items)
		seen = make([]bool, n)
		it   Item
	)
	for _, it = range inst.Items {
		if it.Weight <= 0 {
			return fmt.Errorf("%w: item %d has non-positive weight %d", ErrInvalidInput, it.Index, it.Weight)
		}
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d has negative value %d", ErrInvalidInput, it.Index, it.Value)
		}
		if it.Index < 0 || it.Index >= n || seen[it.Index] {
			return fmt.Errorf("%w: item index %d is out of range or repeated", ErrInvalidInput, it.Index)
		}
		seen[it.Index] = true
	}

	return nil
}

// Algorithm selects the strategy used by Solve.
type Algorithm int

const (
	// BranchAndBound is the exact depth-first search with a fractional bound.
	BranchAndBound Algorithm = iota

	// DynamicProgramming is the exact (n+1)x(capacity+1) tabulation.
	DynamicProgramming

	// Greedy takes items by descending density while they fit. Not optimal.
	Greedy

	// PseudoBoolean encodes the instance as weighted partial MaxSAT and hands
	// it to gophersat.
	PseudoBoolean
)

// String returns the short name used on the command line.
func (a Algorithm) String() string {
	switch a {
	case BranchAndBound:
		return "bb"
	case DynamicProgramming:
		return "dp"
	case Greedy:
		return "greedy"
	case PseudoBoolean:
		return "pb"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a short name (see Algorithm.String) back to its value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Algorithms lists every supported strategy in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BranchAndBound, DynamicProgramming, Greedy, PseudoBoolean}
}

// DefaultMaxTableCells caps the DP table at 2^28 cells (2 GiB of int64).
const DefaultMaxTableCells = 1 << 28

// Observer receives one report per finished solve. metrics.Recorder is the
// production implementation.
type Observer interface {
	ObserveSolve(algo Algorithm, sol Solution, elapsed time.Duration, err error)
}

// Options configures Solve and Compare.
//
// Fields:
//   - Algo:          strategy to run (default BranchAndBound).
//   - MaxTableCells: DP table guard; <= 0 means DefaultMaxTableCells.
//   - Logger:        optional; nil disables logging.
//   - Observer:      optional; nil disables reporting.
type Options struct {
	Algo          Algorithm
	MaxTableCells int
	Logger        *zap.Logger
	Observer      Observer
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithAlgorithm selects the strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithMaxTableCells overrides the DP table guard.
func WithMaxTableCells(cells int) Option {
	return func(o *Options) {
		o.MaxTableCells = cells
	}
}

// WithLogger attaches a zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver attaches a solve observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns branch-and-bound with the default table guard and
// no logging or observation.
func DefaultOptions() Options {
	return Options{
		Algo:          BranchAndBound,
		MaxTableCells: DefaultMaxTableCells,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Stats counts search events of the branch-and-bound engine.
type Stats struct {
	Nodes       int // frontier entries popped and evaluated (root excluded)
	Pruned      int // relaxations not strictly better than the incumbent
	Infeasible  int // partial assignments over capacity
	Incumbents  int // strict incumbent improvements
	MaxFrontier int // high-water mark of the frontier
}

// Solution is the result of one solver run.
//
// Decisions holds 0/1 per item in ORIGINAL input order.
type Solution struct {
	Algo      Algorithm
	Decisions []int
	Objective int
	Optimal   bool
	Stats     Stats
}

// Weight recomputes the packed weight from Decisions.
func (s Solution) Weight(inst Instance) int {
	var total int
	for _, it := range inst.Items {
		if s.Decisions[it.Index] == 1 {
			total += it.Weight
		}
	}

	return total
}

// Value recomputes the packed value from Decisions.
func (s Solution) Value(inst Instance) int {
	var total int
	for _, it := range inst.Items {
		if s.Decisions[it.Index] == 1 {
			total += it.Value
		}
	}

	return total
}

// Verify checks that the solution is feasible for inst and that Objective
// matches the decision vector.
func (s Solution) Verify(inst Instance) error {
	if len(s.Decisions) != len(inst.Items) {
		return fmt.Errorf("%w: %d decisions for %d items", ErrInconsistentSolution, len(s.Decisions), len(inst.Items))
	}
	for i, d := range s.Decisions {
		if d != 0 && d != 1 {
			return fmt.Errorf("%w: decision %d is %d", ErrInconsistentSolution, i, d)
		}
	}
	if w := s.Weight(inst); w > inst.Capacity {
		return fmt.Errorf("%w: weight %d exceeds capacity %d", ErrInconsistentSolution, w, inst.Capacity)
	}
	if v := s.Value(inst); v != s.Objective {
		return fmt.Errorf("%w: objective %d but decisions sum to %d", ErrInconsistentSolution, s.Objective, v)
	}

	return nil
}
