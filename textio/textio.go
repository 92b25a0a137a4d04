// Package textio reads knapsack instances and writes solutions in the
// plain-text course format.
//
// Input:
//
//	<item_count> <capacity>
//	<value_1> <weight_1>
//	...
//	<value_n> <weight_n>
//
// Output:
//
//	<objective> <optimal 0|1>
//	<d_1> <d_2> ... <d_n>
package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdw75/knapsack-problem/knapsack"
)

// itemsHint caps the preallocation taken from the untrusted header count.
const itemsHint = 1024

// Parse reads an instance from r. Blank lines are ignored. Every error
// wraps knapsack.ErrInvalidInput and names the offending line.
func Parse(r io.Reader) (knapsack.Instance, error) {
	var (
		sc       = bufio.NewScanner(r)
		lineNo   int
		header   bool
		count    int
		inst     knapsack.Instance
		fields   []string
		a, b     int
		parseErr error
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return knapsack.Instance{}, fmt.Errorf("%w: line %d: want 2 fields, got %d", knapsack.ErrInvalidInput, lineNo, len(fields))
		}
		if a, b, parseErr = parsePair(fields); parseErr != nil {
			return knapsack.Instance{}, fmt.Errorf("%w: line %d: %v", knapsack.ErrInvalidInput, lineNo, parseErr)
		}

		if !header {
			if a < 0 {
				return knapsack.Instance{}, fmt.Errorf("%w: line %d: negative item count %d", knapsack.ErrInvalidInput, lineNo, a)
			}
			header = true
			count = a
			inst.Capacity = b
			inst.Items = make([]knapsack.Item, 0, min(count, itemsHint))

			continue
		}
		if len(inst.Items) == count {
			return knapsack.Instance{}, fmt.Errorf("%w: line %d: more items than the declared %d", knapsack.ErrInvalidInput, lineNo, count)
		}
		inst.Items = append(inst.Items, knapsack.Item{Index: len(inst.Items), Value: a, Weight: b})
	}
	if err := sc.Err(); err != nil {
		return knapsack.Instance{}, fmt.Errorf("textio: read: %w", err)
	}
	if !header {
		return knapsack.Instance{}, fmt.Errorf("%w: missing header line", knapsack.ErrInvalidInput)
	}
	if len(inst.Items) != count {
		return knapsack.Instance{}, fmt.Errorf("%w: declared %d items, found %d", knapsack.ErrInvalidInput, count, len(inst.Items))
	}
	if err := inst.Validate(); err != nil {
		return knapsack.Instance{}, err
	}

	return inst, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (knapsack.Instance, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses it.
func ParseFile(path string) (knapsack.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return knapsack.Instance{}, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	inst, err := Parse(f)
	if err != nil {
		return knapsack.Instance{}, fmt.Errorf("could not parse %q: %w", path, err)
	}

	return inst, nil
}

func parsePair(fields []string) (int, int, error) {
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("not an integer: %q", fields[0])
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("not an integer: %q", fields[1])
	}

	return a, b, nil
}

// Format writes sol as two lines: objective and optimality flag, then the
// decision vector.
func Format(w io.Writer, sol knapsack.Solution) error {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(sol.Objective))
	if sol.Optimal {
		sb.WriteString(" 1\n")
	} else {
		sb.WriteString(" 0\n")
	}
	for i, d := range sol.Decisions {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}

// FormatString is Format into a string.
func FormatString(sol knapsack.Solution) string {
	var sb strings.Builder
	_ = Format(&sb, sol)

	return sb.String()
}
