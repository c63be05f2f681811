package ds

import (
	"fmt"
	"math/bits"
)

// SumTree is a complete binary tree where each parent node holds the
// sum of its children. Leaves hold per-slot priorities, so the root is
// the total priority mass and a weighted random draw resolves in
// O(log n) with Find.
type SumTree struct {
	tree     []float32
	max      float32
	capacity int
}

// NewSumTree creates a SumTree with the given capacity rounded up to
// the next power of two. All leaves start at zero. Panics if capacity
// is less than 1.
func NewSumTree(capacity int) *SumTree {
	if capacity < 1 {
		panic(fmt.Sprintf("ds: sum tree capacity must be positive, got %d", capacity))
	}
	capacity = nextPowerOfTwo(capacity)
	return &SumTree{
		tree:     make([]float32, 2*capacity-1),
		max:      0,
		capacity: capacity,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Update sets the leaf at the given slot index to value and propagates
// the change up to the root.
func (s *SumTree) Update(ix int, value float32) {
	ix += s.capacity - 1
	change := value - s.tree[ix]

	s.tree[ix] = value

	for ix > 0 {
		ix = (ix - 1) / 2
		s.tree[ix] += change
	}

	if value > s.max {
		s.max = value
	}
}

// Find locates the first leaf index i where the sum of leaf values
// from 0 through i exceeds target, descending left when target is at
// most the left child's sum and right otherwise. Returns the slot
// index and the value stored at that leaf. A target drawn uniformly
// from [0, Sum()) lands in a leaf with probability proportional to its
// value.
func (s *SumTree) Find(target float32) (int, float32) {
	ix := 0
	for ix < s.capacity-1 {
		left := 2*ix + 1
		right := left + 1
		if target <= s.tree[left] {
			ix = left
		} else {
			target -= s.tree[left]
			ix = right
		}
	}

	ix -= s.capacity - 1
	return ix, s.tree[ix+s.capacity-1]
}

// Get returns the value of the leaf at the given slot index.
func (s *SumTree) Get(ix int) float32 {
	return s.tree[ix+s.capacity-1]
}

// Sum returns the sum of all leaf values.
func (s *SumTree) Sum() float32 {
	return s.tree[0]
}

// Max returns the largest value ever written to a leaf.
func (s *SumTree) Max() float32 {
	return s.max
}
