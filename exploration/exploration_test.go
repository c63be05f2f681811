package exploration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbaarber/rl/decay"
)

func TestEpsilonGreedyExtremes(t *testing.T) {
	always := NewEpsilonGreedy(decay.NewConstant(1))
	never := NewEpsilonGreedy(decay.NewConstant(0))

	for i := 0; i < 100; i++ {
		assert.Equal(t, Explore, always.Choose(i))
		assert.Equal(t, Exploit, never.Choose(i))
	}
}

func TestSoftmaxPrefersHighValues(t *testing.T) {
	s := NewSoftmax(decay.NewConstant(0.1))
	qValues := []float32{0, 0, 5, 0}

	counts := make([]int, 4)
	for i := 0; i < 200; i++ {
		ix, ok := s.Choose(0, qValues)
		require.True(t, ok)
		require.Less(t, ix, 4)
		counts[ix]++
	}

	assert.Greater(t, counts[2], 190, "low temperature concentrates on the best arm")
}

func TestUCBVisitsEveryArm(t *testing.T) {
	u := NewUCB(1, 4)
	qValues := []float32{0, 0, 0, 0}

	seen := make(map[int]bool)
	for i := 1; i <= 8; i++ {
		seen[u.Choose(float32(i), qValues)] = true
	}

	assert.Len(t, seen, 4, "equal values cycle through all arms via the visit bonus")
}

func TestUCBExploitsWithoutBonus(t *testing.T) {
	u := NewUCB(0, 3)
	assert.Equal(t, 1, u.Choose(1, []float32{0.1, 0.9, 0.5}))
}
