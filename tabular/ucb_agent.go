package tabular

import (
	"github.com/benbaarber/rl/exploration"
	"github.com/benbaarber/rl/memory"
	"github.com/benbaarber/rl/rl"
)

// UCBAgentConfig configures a UCBAgent.
type UCBAgentConfig struct {
	// Exploration parameter for the UCB bonus; 1 is a good default
	C float32
	// Number of arms, which must match the environment's action count
	Arms int
	// AlphaFn returns the learning rate given the number of visits of
	// a state-action pair; nil defaults to 1/n
	AlphaFn func(n int) float32
}

// UCBAgent learns the same incremental value table as
// SampleAverageAgent but selects actions with the upper confidence
// bound policy instead of epsilon greedy. It assumes the environment
// presents its actions in a stable order, as bandit testbeds do.
type UCBAgent[S, A comparable] struct {
	table   map[S]map[A]*entry
	ucb     *exploration.UCB
	alphaFn func(n int) float32
	t       int
}

var _ rl.Agent[int, int] = &UCBAgent[int, int]{}

// NewUCBAgent creates a UCBAgent.
func NewUCBAgent[S, A comparable](config UCBAgentConfig) *UCBAgent[S, A] {
	if config.AlphaFn == nil {
		config.AlphaFn = func(n int) float32 { return 1 / float32(n) }
	}
	return &UCBAgent[S, A]{
		table:   make(map[S]map[A]*entry),
		ucb:     exploration.NewUCB(config.C, config.Arms),
		alphaFn: config.AlphaFn,
	}
}

func (u *UCBAgent[S, A]) Act(state S, actions []A) A {
	qValues := make([]float32, len(actions))
	for i, a := range actions {
		if e, ok := u.table[state][a]; ok {
			qValues[i] = e.value
		}
	}
	u.t++
	return actions[u.ucb.Choose(float32(u.t), qValues)]
}

func (u *UCBAgent[S, A]) Learn(exp memory.Exp[S, A], _ []A) {
	row, ok := u.table[exp.State]
	if !ok {
		row = make(map[A]*entry)
		u.table[exp.State] = row
	}
	e, ok := row[exp.Action]
	if !ok {
		row[exp.Action] = &entry{value: exp.Reward, count: 1}
		return
	}
	e.count++
	e.value += u.alphaFn(e.count) * (exp.Reward - e.value)
}

func (u *UCBAgent[S, A]) EndEpisode() {}
