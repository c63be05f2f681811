package memory

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/benbaarber/rl/ds"
)

// ReplayMemory is a fixed-size store of experiences sampled uniformly
// at random. It overwrites the oldest experiences once it reaches its
// capacity.
type ReplayMemory[S, A any] struct {
	memory    *ds.RingBuffer[Exp[S, A]]
	batchSize int
	rand      *rand.Rand
}

// NewReplayMemory creates a ReplayMemory.
//
// Panics if capacity or batchSize is less than 1, or if batchSize
// exceeds capacity.
func NewReplayMemory[S, A any](capacity, batchSize int) *ReplayMemory[S, A] {
	validateSizes(capacity, batchSize)
	return &ReplayMemory[S, A]{
		memory:    ds.NewRingBuffer[Exp[S, A]](capacity),
		batchSize: batchSize,
		rand:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// ReplayMemoryFrom creates a ReplayMemory pre-filled with the given
// experiences. The capacity is the length of the slice.
func ReplayMemoryFrom[S, A any](data []Exp[S, A], batchSize int) *ReplayMemory[S, A] {
	validateSizes(len(data), batchSize)
	return &ReplayMemory[S, A]{
		memory:    ds.RingBufferFrom(data),
		batchSize: batchSize,
		rand:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func validateSizes(capacity, batchSize int) {
	if capacity < 1 {
		panic(fmt.Sprintf("memory: capacity must be positive, got %d", capacity))
	}
	if batchSize < 1 || batchSize > capacity {
		panic(fmt.Sprintf("memory: batch size must be in [1, capacity], got %d with capacity %d", batchSize, capacity))
	}
}

// Push adds a new experience to the memory.
func (m *ReplayMemory[S, A]) Push(exp Exp[S, A]) {
	m.memory.Push(exp)
}

// Len returns the number of stored experiences.
func (m *ReplayMemory[S, A]) Len() int {
	return m.memory.Len()
}

// Sample draws a batch of distinct experiences uniformly at random.
// Returns false if fewer experiences are stored than fill a batch;
// the caller should skip the learning step for that iteration.
func (m *ReplayMemory[S, A]) Sample() ([]Exp[S, A], bool) {
	if m.batchSize > m.memory.Len() {
		return nil, false
	}

	view := m.memory.View()
	batch := make([]Exp[S, A], m.batchSize)
	for i, ix := range m.rand.Perm(len(view))[:m.batchSize] {
		batch[i] = view[ix]
	}
	return batch, true
}

// SampleZipped draws a batch like Sample and zips it into an ExpBatch.
func (m *ReplayMemory[S, A]) SampleZipped() (ExpBatch[S, A], bool) {
	exps, ok := m.Sample()
	if !ok {
		return ExpBatch[S, A]{}, false
	}
	return NewExpBatch(exps, m.batchSize), true
}
