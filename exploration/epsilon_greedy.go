package exploration

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/benbaarber/rl/decay"
)

// EpsilonGreedy explores with a probability epsilon that decays over
// training.
type EpsilonGreedy struct {
	epsilon decay.Schedule
	rand    *rand.Rand
}

// NewEpsilonGreedy creates an epsilon greedy policy with the given
// epsilon schedule.
func NewEpsilonGreedy(epsilon decay.Schedule) *EpsilonGreedy {
	return &EpsilonGreedy{
		epsilon: epsilon,
		rand:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// Choose decides between exploring and exploiting at the given
// episode.
func (e *EpsilonGreedy) Choose(episode int) Choice {
	if float32(e.rand.Float64()) > e.epsilon.Evaluate(float32(episode)) {
		return Exploit
	}
	return Explore
}
