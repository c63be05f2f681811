package tabular

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/benbaarber/rl/decay"
	"github.com/benbaarber/rl/exploration"
	"github.com/benbaarber/rl/memory"
	"github.com/benbaarber/rl/rl"
)

// QAgentConfig configures a QAgent.
type QAgentConfig[S, A any] struct {
	// Learning rate in [0, 1]
	Alpha float64
	// Discount factor in [0, 1]
	Gamma float64
	// Exploration policy; nil defaults to epsilon greedy with
	// exponential decay from 1 to 0.01 at rate 0.1
	Exploration *exploration.EpsilonGreedy
	// HashState and HashAction produce table keys; nil defaults to
	// fmt.Sprint
	HashState  func(S) string
	HashAction func(A) string
}

// QAgent is a Q-learning agent backed by a QTable. State and action
// spaces must both be discrete, since a value is recorded per
// state-action pair.
type QAgent[S, A any] struct {
	qTable      *QTable
	alpha       float64
	gamma       float64
	exploration *exploration.EpsilonGreedy
	hashState   func(S) string
	hashAction  func(A) string
	episode     int
	rand        *rand.Rand
}

var _ rl.Agent[int, int] = &QAgent[int, int]{}

// NewQAgent creates a QAgent. Panics if Alpha or Gamma is outside
// [0, 1].
func NewQAgent[S, A any](config QAgentConfig[S, A]) *QAgent[S, A] {
	if config.Alpha < 0 || config.Alpha > 1 {
		panic(fmt.Sprintf("tabular: alpha must be in [0, 1], got %v", config.Alpha))
	}
	if config.Gamma < 0 || config.Gamma > 1 {
		panic(fmt.Sprintf("tabular: gamma must be in [0, 1], got %v", config.Gamma))
	}
	if config.Exploration == nil {
		eps, err := decay.NewExponential(0.1, 1.0, 0.01)
		if err != nil {
			panic(err)
		}
		config.Exploration = exploration.NewEpsilonGreedy(eps)
	}
	if config.HashState == nil {
		config.HashState = func(s S) string { return fmt.Sprint(s) }
	}
	if config.HashAction == nil {
		config.HashAction = func(a A) string { return fmt.Sprint(a) }
	}
	return &QAgent[S, A]{
		qTable:      NewQTable(),
		alpha:       config.Alpha,
		gamma:       config.Gamma,
		exploration: config.Exploration,
		hashState:   config.HashState,
		hashAction:  config.HashAction,
		rand:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// Act chooses an action with the epsilon greedy policy: a random
// action when exploring, the argmax of the Q table otherwise.
func (q *QAgent[S, A]) Act(state S, actions []A) A {
	if q.exploration.Choose(q.episode) == exploration.Explore {
		return actions[q.rand.Intn(len(actions))]
	}

	actionsMap := make(map[string]A, len(actions))
	hashes := make([]string, len(actions))
	for i, a := range actions {
		h := q.hashAction(a)
		actionsMap[h] = a
		hashes[i] = h
	}
	best, _ := q.qTable.MaxAmong(q.hashState(state), hashes, 0)
	return actionsMap[best]
}

// Learn applies the Q-learning update rule
// Q(s,a) <- (1-alpha)*Q(s,a) + alpha*(r + gamma*max_a' Q(s',a')).
func (q *QAgent[S, A]) Learn(exp memory.Exp[S, A], nextActions []A) {
	stateHash := q.hashState(exp.State)
	actionHash := q.hashAction(exp.Action)

	qValue := q.qTable.Get(stateHash, actionHash, 0)

	maxNext := 0.0
	if exp.NextState != nil && len(nextActions) > 0 {
		hashes := make([]string, len(nextActions))
		for i, a := range nextActions {
			hashes[i] = q.hashAction(a)
		}
		_, maxNext = q.qTable.MaxAmong(q.hashState(*exp.NextState), hashes, 0)
	}

	newQ := float64(exp.Reward) + q.gamma*maxNext
	q.qTable.Set(stateHash, actionHash, (1-q.alpha)*qValue+q.alpha*newQ)
}

// EndEpisode advances the exploration schedule.
func (q *QAgent[S, A]) EndEpisode() {
	q.episode++
}

// Record saves the agent's Q table as JSON for offline exploration.
func (q *QAgent[S, A]) Record(path string) error {
	return q.qTable.Record(path)
}
