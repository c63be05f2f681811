package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumTreeSumInvariant(t *testing.T) {
	tree := NewSumTree(8)
	assert.Len(t, tree.tree, 15, "8 leaves need 15 nodes")

	for i := 0; i < 8; i++ {
		tree.Update(i, float32(i))
	}

	assert.Equal(t, float32(28), tree.Sum(), "root holds the sum of all leaves")

	// Repeating an identical update changes nothing.
	tree.Update(5, 5)
	assert.Equal(t, float32(28), tree.Sum())

	tree.Update(0, 10)
	assert.Equal(t, float32(38), tree.Sum())
}

func TestSumTreeFind(t *testing.T) {
	tree := NewSumTree(8)
	for i := 0; i < 8; i++ {
		tree.Update(i, float32(i))
	}

	ix, val := tree.Find(4.0)
	assert.Equal(t, 3, ix, "find descends the left side")
	assert.Equal(t, float32(3), val)

	ix, val = tree.Find(18.0)
	assert.Equal(t, 6, ix, "find descends the right side")
	assert.Equal(t, float32(6), val)
}

func TestSumTreeMaxTracking(t *testing.T) {
	tree := NewSumTree(8)
	for i := 0; i < 8; i++ {
		tree.Update(i, float32(i))
	}

	tree.Update(3, 12)
	assert.Equal(t, float32(12), tree.Max())

	// Max is monotone; smaller later updates do not lower it.
	tree.Update(3, 1)
	assert.Equal(t, float32(12), tree.Max())
	assert.Equal(t, float32(1), tree.Get(3))
}

func TestSumTreeRoundsCapacityUp(t *testing.T) {
	tree := NewSumTree(5)
	assert.Equal(t, 8, tree.capacity)
	assert.Len(t, tree.tree, 15)

	assert.Panics(t, func() { NewSumTree(0) })
}
