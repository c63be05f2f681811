package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBufferWraparound(t *testing.T) {
	buf := NewRingBuffer[int](4)
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 4, buf.Cap())

	for i := 0; i < 4; i++ {
		ix := buf.Push(i * 2)
		assert.Equal(t, i, ix)
	}

	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, []int{0, 2, 4, 6}, buf.View())

	ix := buf.Push(1)
	assert.Equal(t, 0, ix, "first overwrite lands on the oldest slot")
	ix = buf.Push(3)
	assert.Equal(t, 1, ix)

	assert.Equal(t, 4, buf.Len(), "length stays at capacity")
	assert.Equal(t, []int{1, 3, 4, 6}, buf.View())
	assert.Equal(t, 4, buf.At(2))
}

func TestRingBufferFrom(t *testing.T) {
	buf := RingBufferFrom([]string{"a", "b", "c"})
	require.Equal(t, 3, buf.Len())
	require.Equal(t, 3, buf.Cap())

	ix := buf.Push("d")
	assert.Equal(t, 0, ix)
	assert.Equal(t, []string{"d", "b", "c"}, buf.View())
}

func TestRingBufferInvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewRingBuffer[int](0) })
	assert.Panics(t, func() { RingBufferFrom([]int{}) })
}
