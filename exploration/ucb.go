package exploration

import "math"

// UCB is the upper confidence bound exploration policy. Each arm's Q
// value is inflated by a bonus that shrinks with the number of times
// the arm has been chosen, so rarely tried arms stay attractive.
type UCB struct {
	c       float32
	counter []float32
}

// NewUCB creates a UCB policy over a fixed number of arms. A higher c
// means more exploration; 1 is a good default.
func NewUCB(c float32, arms int) *UCB {
	counter := make([]float32, arms)
	for i := range counter {
		counter[i] = 1
	}
	return &UCB{c: c, counter: counter}
}

// Choose returns the arm maximizing q + c*sqrt(log10(t))/sqrt(n) at
// time t and records the visit. qValues must have one entry per arm.
func (u *UCB) Choose(t float32, qValues []float32) int {
	k := u.c * float32(math.Sqrt(math.Log10(float64(t))))

	choice := 0
	best := float32(math.Inf(-1))
	for i, q := range qValues {
		v := q + k/float32(math.Sqrt(float64(u.counter[i])))
		if v > best {
			best = v
			choice = i
		}
	}

	u.counter[choice]++
	return choice
}
