package tabular

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbaarber/rl/decay"
	"github.com/benbaarber/rl/exploration"
	"github.com/benbaarber/rl/memory"
)

func TestQTable(t *testing.T) {
	q := NewQTable()

	assert.Equal(t, 0.5, q.Get("s", "a", 0.5), "unseen pair registers the default")
	q.Set("s", "a", 2)
	assert.Equal(t, 2.0, q.Get("s", "a", 0.5))

	q.Set("s", "b", 3)
	action, val := q.MaxAmong("s", []string{"a", "b", "c"}, 0)
	assert.Equal(t, "b", action)
	assert.Equal(t, 3.0, val)
}

func TestQTableRecordRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qtable.json")

	q := NewQTable()
	q.Set("s1", "up", 1.5)
	q.Set("s2", "down", -0.5)
	require.NoError(t, q.Record(path))

	loaded := NewQTable()
	require.NoError(t, loaded.Read(path))
	assert.Equal(t, 1.5, loaded.Get("s1", "up", 0))
	assert.Equal(t, -0.5, loaded.Get("s2", "down", 0))
}

func greedy() *exploration.EpsilonGreedy {
	return exploration.NewEpsilonGreedy(decay.NewConstant(0))
}

func TestQAgentLearnsGreedyAction(t *testing.T) {
	agent := NewQAgent(QAgentConfig[int, int]{
		Alpha:       0.5,
		Gamma:       0.9,
		Exploration: greedy(),
	})

	// Terminal transitions from state 0: action 1 pays, action 0
	// does not.
	for i := 0; i < 10; i++ {
		agent.Learn(memory.Exp[int, int]{State: 0, Action: 1, Reward: 1}, nil)
		agent.Learn(memory.Exp[int, int]{State: 0, Action: 0, Reward: 0}, nil)
	}

	assert.Equal(t, 1, agent.Act(0, []int{0, 1}))
}

func TestQAgentBootstrapsFromNextState(t *testing.T) {
	agent := NewQAgent(QAgentConfig[int, int]{
		Alpha:       1,
		Gamma:       0.5,
		Exploration: greedy(),
	})

	// Make state 1 valuable, then propagate it back to state 0.
	agent.Learn(memory.Exp[int, int]{State: 1, Action: 0, Reward: 4}, nil)
	next := 1
	agent.Learn(memory.Exp[int, int]{State: 0, Action: 0, NextState: &next, Reward: 0}, []int{0})

	assert.Equal(t, 2.0, agent.qTable.Get("0", "0", 0), "reward + gamma * max next Q")
}

func TestQAgentConfigValidation(t *testing.T) {
	assert.Panics(t, func() { NewQAgent(QAgentConfig[int, int]{Alpha: 1.5, Gamma: 0.9}) })
	assert.Panics(t, func() { NewQAgent(QAgentConfig[int, int]{Alpha: 0.5, Gamma: -0.1}) })
}

func TestSampleAverageAgent(t *testing.T) {
	agent := NewSampleAverageAgent[struct{}, int](greedy())
	s := struct{}{}

	// Arm 2 averages highest.
	rewards := map[int][]float32{
		0: {0, 1, 0},
		1: {1, 1, 0},
		2: {1, 2, 3},
	}
	for a, rs := range rewards {
		for _, r := range rs {
			agent.Learn(memory.Exp[struct{}, int]{State: s, Action: a, Reward: r}, nil)
		}
	}

	assert.Equal(t, 2, agent.Act(s, []int{0, 1, 2}))
	assert.InDelta(t, 2.0, float64(agent.value(s, 2)), 1e-6, "running mean of 1, 2, 3")
}

func TestUCBAgentConvergesToBestArm(t *testing.T) {
	agent := NewUCBAgent[struct{}, int](UCBAgentConfig{C: 1, Arms: 3})
	s := struct{}{}
	actions := []int{0, 1, 2}

	means := []float32{0.1, 0.9, 0.3}
	for i := 0; i < 300; i++ {
		a := agent.Act(s, actions)
		agent.Learn(memory.Exp[struct{}, int]{State: s, Action: a, Reward: means[a]}, nil)
	}

	counts := make([]int, 3)
	for i := 0; i < 100; i++ {
		counts[agent.Act(s, actions)]++
	}
	assert.Greater(t, counts[1], counts[0])
	assert.Greater(t, counts[1], counts[2])
}
