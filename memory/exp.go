// Package memory implements experience replay stores for training
// value-function approximators: a uniform-sampling replay memory and a
// prioritized replay memory backed by a sum tree.
package memory

// Exp is a single experience, or transition, recorded from one
// environment step.
//
// State and action types are expected to be cheap to copy; experiences
// are duplicated when collected into a batch.
type Exp[S, A any] struct {
	// State of the environment before taking the action
	State S
	// Action taken in the given state
	Action A
	// State of the environment after the action, or nil if the
	// transition was terminal
	NextState *S
	// Reward received after taking the action
	Reward float32
}

// ExpBatch is a batch of experiences zipped into parallel columns.
// Element i of every column describes the same original transition.
// Downstream numeric consumers operate on per-field arrays, which is
// why the batch is stored column-wise rather than as a slice of
// records.
type ExpBatch[S, A any] struct {
	States     []S
	Actions    []A
	NextStates []*S
	Rewards    []float32
}

// NewExpBatch zips a slice of experiences into an ExpBatch, preserving
// the order of the input. batchSize is used to size the columns up
// front.
func NewExpBatch[S, A any](exps []Exp[S, A], batchSize int) ExpBatch[S, A] {
	batch := ExpBatch[S, A]{
		States:     make([]S, 0, batchSize),
		Actions:    make([]A, 0, batchSize),
		NextStates: make([]*S, 0, batchSize),
		Rewards:    make([]float32, 0, batchSize),
	}

	for _, e := range exps {
		batch.States = append(batch.States, e.State)
		batch.Actions = append(batch.Actions, e.Action)
		batch.NextStates = append(batch.NextStates, e.NextState)
		batch.Rewards = append(batch.Rewards, e.Reward)
	}

	return batch
}
