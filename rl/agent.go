package rl

import "github.com/benbaarber/rl/memory"

// Agent selects actions and learns from experience.
type Agent[S, A any] interface {
	// Act chooses an action for the given state.
	Act(state S, actions []A) A

	// Learn updates the agent from a single experience. nextActions
	// holds the actions available in the experience's next state and
	// is empty for terminal transitions.
	Learn(exp memory.Exp[S, A], nextActions []A)

	// EndEpisode signals that the current episode has finished, so
	// agents can advance annealing schedules.
	EndEpisode()
}
