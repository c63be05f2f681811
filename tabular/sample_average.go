package tabular

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/benbaarber/rl/exploration"
	"github.com/benbaarber/rl/memory"
	"github.com/benbaarber/rl/rl"
)

// entry is one cell of an incremental value table.
type entry struct {
	value float32
	count int
}

// SampleAverageAgent is the simplest tabular agent: it estimates each
// state-action value as the running mean of observed rewards,
// Q_{n+1} = Q_n + (R_n - Q_n)/n, and explores with epsilon greedy.
type SampleAverageAgent[S, A comparable] struct {
	table       map[S]map[A]*entry
	exploration *exploration.EpsilonGreedy
	episode     int
	rand        *rand.Rand
}

var _ rl.Agent[int, int] = &SampleAverageAgent[int, int]{}

// NewSampleAverageAgent creates a SampleAverageAgent with the given
// exploration policy.
func NewSampleAverageAgent[S, A comparable](explorer *exploration.EpsilonGreedy) *SampleAverageAgent[S, A] {
	return &SampleAverageAgent[S, A]{
		table:       make(map[S]map[A]*entry),
		exploration: explorer,
		rand:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (s *SampleAverageAgent[S, A]) Act(state S, actions []A) A {
	if s.exploration.Choose(s.episode) == exploration.Explore {
		return actions[s.rand.Intn(len(actions))]
	}

	best := actions[0]
	bestValue := s.value(state, best)
	for _, a := range actions[1:] {
		if v := s.value(state, a); v > bestValue {
			best = a
			bestValue = v
		}
	}
	return best
}

func (s *SampleAverageAgent[S, A]) value(state S, action A) float32 {
	if e, ok := s.table[state][action]; ok {
		return e.value
	}
	return 0
}

func (s *SampleAverageAgent[S, A]) Learn(exp memory.Exp[S, A], _ []A) {
	row, ok := s.table[exp.State]
	if !ok {
		row = make(map[A]*entry)
		s.table[exp.State] = row
	}
	e, ok := row[exp.Action]
	if !ok {
		row[exp.Action] = &entry{value: exp.Reward, count: 1}
		return
	}
	e.count++
	e.value += (exp.Reward - e.value) / float32(e.count)
}

func (s *SampleAverageAgent[S, A]) EndEpisode() {
	s.episode++
}
