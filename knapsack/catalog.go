package knapsack

import (
	"fmt"
	"sort"
)

// Catalog holds the items of one instance ordered by density, descending,
// with ties kept in index order. It is immutable after NewCatalog and safe
// to share read-only between goroutines.
type Catalog struct {
	capacity int
	items    []Item // by rank
	rankOf   []int  // rankOf[original index] = rank
}

// byDensity orders items by descending density. Used with sort.Stable so
// equal densities keep their input order.
type byDensity []Item

func (b byDensity) Len() int           { return len(b) }
func (b byDensity) Less(i, j int) bool { return b[i].Density() > b[j].Density() }
func (b byDensity) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

// NewCatalog validates items and capacity and builds the density order.
//
// Errors: ErrInvalidInput (wrapped) for non-positive weights, negative
// values, a negative capacity, or indices that are not a permutation of
// 0..len(items)-1.
//
// Complexity: O(n log n).
func NewCatalog(items []Item, capacity int) (*Catalog, error) {
	inst := Instance{Items: items, Capacity: capacity}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	var (
		n      = len(items)
		sorted = make([]Item, n)
		rankOf = make([]int, n)
		r      int
	)
	// Place by index first so ties break on index whatever the slice order.
	for _, it := range items {
		sorted[it.Index] = it
	}
	sort.Stable(byDensity(sorted))
	for r = 0; r < n; r++ {
		rankOf[sorted[r].Index] = r
	}

	return &Catalog{capacity: capacity, items: sorted, rankOf: rankOf}, nil
}

// MustCatalog is NewCatalog for fixtures; it panics on error.
func MustCatalog(items []Item, capacity int) *Catalog {
	c, err := NewCatalog(items, capacity)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Capacity returns the knapsack capacity.
func (c *Catalog) Capacity() int { return c.capacity }

// At returns the item at catalog rank r.
func (c *Catalog) At(r int) Item { return c.items[r] }

// Items returns a copy of the density-sorted sequence.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)

	return out
}

// Rank maps an original item index to its catalog rank.
func (c *Catalog) Rank(index int) (int, error) {
	if index < 0 || index >= len(c.rankOf) {
		return 0, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidInput, index, len(c.rankOf))
	}

	return c.rankOf[index], nil
}

// Index maps a catalog rank back to the original item index.
func (c *Catalog) Index(rank int) int { return c.items[rank].Index }

// ToOriginal converts a by-rank 0/1 vector into original input order.
func (c *Catalog) ToOriginal(byRank []bool) []int {
	out := make([]int, len(c.items))
	for r, take := range byRank {
		if take {
			out[c.items[r].Index] = 1
		}
	}

	return out
}
