// Package gym provides small test environments for exercising agents,
// inspired by the python gymnasium suite.
package gym

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/benbaarber/rl/rl"
)

// Arm is the unit state of a bandit problem; the environment is
// stateless between pulls.
type Arm struct{}

// KArmedBandit is the classic K-armed testbed: each arm pays a reward
// drawn from its own normal distribution, with arm means drawn from a
// standard normal at construction. An episode ends after a fixed
// number of pulls.
type KArmedBandit struct {
	arms      []distuv.Normal
	steps     int
	stepLimit int
	actions   []int
	report    *rl.Report
	rand      *rand.Rand
}

var _ rl.Environment[Arm, int] = &KArmedBandit{}

// NewKArmedBandit creates a bandit with k arms and the given number of
// pulls per episode. Panics if k or stepLimit is less than 1.
func NewKArmedBandit(k, stepLimit int) *KArmedBandit {
	if k < 1 || stepLimit < 1 {
		panic(fmt.Sprintf("gym: bandit needs k >= 1 and stepLimit >= 1, got %d and %d", k, stepLimit))
	}

	src := rand.NewSource(uint64(time.Now().UnixNano()))
	meanDist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	arms := make([]distuv.Normal, k)
	actions := make([]int, k)
	for i := range arms {
		arms[i] = distuv.Normal{Mu: meanDist.Rand(), Sigma: 1, Src: src}
		actions[i] = i
	}

	return &KArmedBandit{
		arms:      arms,
		stepLimit: stepLimit,
		actions:   actions,
		report:    rl.NewReport("reward"),
		rand:      rand.New(src),
	}
}

// Actions returns the arm indices, always in the same order.
func (k *KArmedBandit) Actions() []int {
	return k.actions
}

// Step pulls an arm. Panics on an out-of-range arm index.
func (k *KArmedBandit) Step(action int) (*Arm, float32) {
	if action < 0 || action >= len(k.arms) {
		panic(fmt.Sprintf("gym: invalid arm %d", action))
	}

	reward := float32(k.arms[action].Rand())
	k.report.Add("reward", float64(reward))
	k.steps++

	if k.steps >= k.stepLimit {
		return nil, reward
	}
	return &Arm{}, reward
}

// Reset starts a new episode.
func (k *KArmedBandit) Reset() Arm {
	k.steps = 0
	return Arm{}
}

// RandomAction returns a uniformly random arm.
func (k *KArmedBandit) RandomAction() int {
	return k.rand.Intn(len(k.arms))
}

// Report exposes the cumulative reward report for the current episode.
func (k *KArmedBandit) Report() *rl.Report {
	return k.report
}

// BestArm returns the arm with the highest true mean, for evaluating
// how often an agent finds it.
func (k *KArmedBandit) BestArm() int {
	best := 0
	for i, arm := range k.arms {
		if arm.Mu > k.arms[best].Mu {
			best = i
		}
	}
	return best
}
