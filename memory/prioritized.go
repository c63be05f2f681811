package memory

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/benbaarber/rl/ds"
)

// minPriority is the floor assigned to experiences that have never had
// their priority updated. A zero seed would exclude a slot from ever
// being drawn.
const minPriority = 1e-5

// PrioritizedReplayMemory is a replay memory that samples experiences
// in proportion to their priority, as described in
// https://arxiv.org/abs/1511.05952. Priorities are derived from
// temporal difference error magnitudes, so "surprising" transitions
// are replayed more often, and importance sampling weights are
// returned with each batch to correct the induced bias.
//
// Hyperparameters:
//   - alpha: prioritization exponent. 0 yields uniform sampling; 1 is
//     a sensible maximum.
//   - beta0: initial importance sampling exponent, annealed linearly
//     to 1 over numEpisodes. Episodes past the horizon yield beta
//     greater than 1, which is accepted as documented behavior.
type PrioritizedReplayMemory[S, A any] struct {
	memory      *ds.RingBuffer[Exp[S, A]]
	priorities  *ds.SumTree
	alpha       float32
	beta0       float32
	numEpisodes int
	batchSize   int
	rand        *rand.Rand
}

// NewPrioritizedReplayMemory creates a PrioritizedReplayMemory.
//
// Panics if capacity or batchSize is less than 1, if batchSize exceeds
// capacity, or if numEpisodes is less than 1.
func NewPrioritizedReplayMemory[S, A any](capacity, batchSize int, alpha, beta0 float32, numEpisodes int) *PrioritizedReplayMemory[S, A] {
	validateSizes(capacity, batchSize)
	if numEpisodes < 1 {
		panic(fmt.Sprintf("memory: numEpisodes must be positive, got %d", numEpisodes))
	}
	return &PrioritizedReplayMemory[S, A]{
		memory:      ds.NewRingBuffer[Exp[S, A]](capacity),
		priorities:  ds.NewSumTree(capacity),
		alpha:       alpha,
		beta0:       beta0,
		numEpisodes: numEpisodes,
		batchSize:   batchSize,
		rand:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// Push adds a new experience to the memory, seeding its priority with
// the maximum priority seen so far. This guarantees every experience
// is eligible for at least one draw before it is down-weighted.
func (m *PrioritizedReplayMemory[S, A]) Push(exp Exp[S, A]) {
	ix := m.memory.Push(exp)
	maxPriority := m.priorities.Max()
	if maxPriority < minPriority {
		maxPriority = minPriority
	}
	m.priorities.Update(ix, maxPriority)
}

// Len returns the number of stored experiences.
func (m *PrioritizedReplayMemory[S, A]) Len() int {
	return m.memory.Len()
}

// beta anneals linearly from beta0 at episode 0 to 1 at numEpisodes.
// It is intentionally not clamped past the horizon.
func (m *PrioritizedReplayMemory[S, A]) beta(episode int) float32 {
	return m.beta0 + (1-m.beta0)*float32(episode)/float32(m.numEpisodes)
}

// computeWeights converts sampling probabilities into importance
// sampling weights (N*p)^(-beta), normalized so the largest weight in
// the batch is exactly 1.
func (m *PrioritizedReplayMemory[S, A]) computeWeights(episode int, probs []float32) []float32 {
	beta := float64(m.beta(episode))
	n := float64(m.memory.Len())

	weights := make([]float32, len(probs))
	var wMax float32
	for i, p := range probs {
		w := float32(math.Pow(n*float64(p), -beta))
		weights[i] = w
		if w > wMax {
			wMax = w
		}
	}
	for i := range weights {
		weights[i] /= wMax
	}
	return weights
}

// Sample draws a batch of experiences with probability proportional to
// their priorities. Draws are independent, so the same slot may appear
// more than once in a batch.
//
// Returns the sampled experiences, their normalized importance
// sampling weights, and the sampled slot indices. Hold on to the
// indices and pass them back to UpdatePriorities along with the
// computed TD errors. Returns false if fewer experiences are stored
// than fill a batch.
func (m *PrioritizedReplayMemory[S, A]) Sample(episode int) ([]Exp[S, A], []float32, []int, bool) {
	n := m.memory.Len()
	if m.batchSize > n {
		return nil, nil, nil, false
	}

	totalPriority := m.priorities.Sum()

	batch := make([]Exp[S, A], 0, m.batchSize)
	probs := make([]float32, 0, m.batchSize)
	indices := make([]int, 0, m.batchSize)
	for i := 0; i < m.batchSize; i++ {
		target := float32(m.rand.Float64()) * totalPriority
		ix, _ := m.priorities.Find(target)
		// Rounding in the descent can land in a leaf beyond the
		// occupied region when capacity was rounded up past Len.
		if ix > n-1 {
			ix = n - 1
		}
		val := m.priorities.Get(ix)

		batch = append(batch, m.memory.At(ix))
		probs = append(probs, val/totalPriority)
		indices = append(indices, ix)
	}

	weights := m.computeWeights(episode, probs)

	return batch, weights, indices, true
}

// SampleZipped draws a batch like Sample and zips it into an ExpBatch.
func (m *PrioritizedReplayMemory[S, A]) SampleZipped(episode int) (ExpBatch[S, A], []float32, []int, bool) {
	exps, weights, indices, ok := m.Sample(episode)
	if !ok {
		return ExpBatch[S, A]{}, nil, nil, false
	}
	return NewExpBatch(exps, m.batchSize), weights, indices, true
}

// UpdatePriorities sets the priority of each sampled experience to
// |tdError|^alpha after the caller has computed fresh temporal
// difference errors for a sampled batch.
//
// Panics if indices and tdErrors differ in length.
func (m *PrioritizedReplayMemory[S, A]) UpdatePriorities(indices []int, tdErrors []float32) {
	if len(indices) != len(tdErrors) {
		panic(fmt.Sprintf("memory: indices and tdErrors must have the same length, got %d and %d", len(indices), len(tdErrors)))
	}

	for i, ix := range indices {
		tde := math.Abs(float64(tdErrors[i]))
		m.priorities.Update(ix, float32(math.Pow(tde, float64(m.alpha))))
	}
}
