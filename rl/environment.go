// Package rl defines the environment and agent contracts and the
// experiment harness that ties them together.
package rl

// Environment is a discrete-time Markov decision process with one
// agent and a finite action space.
//
// State and action types should be simple values that are cheap to
// copy; they are duplicated whenever experiences are stored or
// batched.
type Environment[S, A any] interface {
	// Actions returns the available actions for the current state.
	// It is never empty while the episode is active; environments
	// should expose a do-nothing action if necessary.
	Actions() []A

	// Step advances the environment in response to an action and
	// returns the next state and the associated reward. A nil next
	// state marks the transition as terminal.
	Step(action A) (*S, float32)

	// Reset returns the environment to an initial state.
	Reset() S

	// RandomAction returns a uniformly random valid action, used by
	// exploring agents.
	RandomAction() A
}
