package knapsack

// Branch is one pending choice: fix catalog rank Rank to One (Take) or Zero.
type Branch struct {
	Rank int
	Take bool
}

// Frontier is the explicit LIFO stack of pending branches that replaces
// recursion in the branch-and-bound search.
//
// Pop order is pinned: Branch(r) pushes (r,Zero) then (r,One), so the
// take-branch is always explored first.
type Frontier struct {
	entries []Branch
	limit   int
	high    int
}

// NewFrontier returns an empty frontier for n items. Its size never exceeds
// 2n; Branch panics if that would happen.
func NewFrontier(n int) *Frontier {
	limit := 2 * n
	if limit < 2 {
		limit = 2
	}

	return &Frontier{entries: make([]Branch, 0, limit), limit: limit}
}

// Branch pushes both options for rank.
func (f *Frontier) Branch(rank int) {
	if len(f.entries)+2 > f.limit {
		panic("knapsack: frontier exceeds 2n entries")
	}
	f.entries = append(f.entries, Branch{Rank: rank, Take: false}, Branch{Rank: rank, Take: true})
	if len(f.entries) > f.high {
		f.high = len(f.entries)
	}
}

// Pop removes and returns the most recently pushed entry. ok is false on an
// empty frontier.
func (f *Frontier) Pop() (b Branch, ok bool) {
	last := len(f.entries) - 1
	if last < 0 {
		return Branch{}, false
	}
	b = f.entries[last]
	f.entries = f.entries[:last]

	return b, true
}

// Len returns the number of pending entries.
func (f *Frontier) Len() int { return len(f.entries) }

// Empty reports whether the search is exhausted.
func (f *Frontier) Empty() bool { return len(f.entries) == 0 }

// HighWater returns the largest size reached since the last Reset.
func (f *Frontier) HighWater() int { return f.high }

// Reset drops all entries and the high-water mark, keeping the buffer.
func (f *Frontier) Reset() {
	f.entries = f.entries[:0]
	f.high = 0
}
