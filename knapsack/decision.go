package knapsack

import (
	"fmt"
	"math"
	"strconv"
)

// decisionKind tags a slot of an assignment vector.
type decisionKind uint8

const (
	kindUnassigned decisionKind = iota
	kindZero
	kindOne
	kindFraction
)

// Decision is one slot of an assignment vector indexed by catalog rank:
// Unassigned, Zero, One, or a Fraction strictly inside (0,1).
//
// The zero value is Unassigned, so make([]Decision, n) is an empty
// partial assignment.
type Decision struct {
	kind decisionKind
	frac float64
}

// Predefined slot values.
var (
	Unassigned = Decision{kind: kindUnassigned}
	Zero       = Decision{kind: kindZero}
	One        = Decision{kind: kindOne}
)

// Fraction returns a fractional slot. f is clamped to the integer slots at
// the ends: f <= 0 yields Zero and f >= 1 yields One.
func Fraction(f float64) Decision {
	switch {
	case f <= 0:
		return Zero
	case f >= 1:
		return One
	default:
		return Decision{kind: kindFraction, frac: f}
	}
}

// fractionOf is the slot of an item that does not fit in remaining
// (remaining < weight). It is Zero for remaining == 0 and otherwise strictly
// fractional, even where the float ratio rounds to 1.
func fractionOf(remaining, weight int) Decision {
	if remaining <= 0 {
		return Zero
	}
	f := float64(remaining) / float64(weight)
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}

	return Decision{kind: kindFraction, frac: f}
}

// Take returns One when take is true and Zero otherwise.
func Take(take bool) Decision {
	if take {
		return One
	}

	return Zero
}

// IsAssigned reports whether the slot holds any value.
func (d Decision) IsAssigned() bool { return d.kind != kindUnassigned }

// IsInteger reports whether the slot is Zero or One.
func (d Decision) IsInteger() bool { return d.kind == kindZero || d.kind == kindOne }

// IsOne reports whether the slot is One.
func (d Decision) IsOne() bool { return d.kind == kindOne }

// IsFraction reports whether the slot is strictly fractional.
func (d Decision) IsFraction() bool { return d.kind == kindFraction }

// Float returns the numeric value of an assigned slot. It panics on
// Unassigned: an undecided slot has no value.
func (d Decision) Float() float64 {
	switch d.kind {
	case kindZero:
		return 0
	case kindOne:
		return 1
	case kindFraction:
		return d.frac
	default:
		panic("knapsack: Float of an unassigned decision")
	}
}

// String renders "_", "0", "1" or the fraction.
func (d Decision) String() string {
	switch d.kind {
	case kindZero:
		return "0"
	case kindOne:
		return "1"
	case kindFraction:
		return strconv.FormatFloat(d.frac, 'g', -1, 64)
	default:
		return "_"
	}
}

// GoString makes %#v output readable in test failures.
func (d Decision) GoString() string {
	return fmt.Sprintf("knapsack.Decision(%s)", d.String())
}
