package exploration

import (
	"math"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/benbaarber/rl/decay"
)

// Softmax is the Boltzmann exploration policy: actions are drawn with
// probability proportional to e^(q/T), with a temperature T that
// decays over training. High temperatures approach uniform selection,
// low temperatures approach greedy selection.
type Softmax struct {
	temperature decay.Schedule
}

// NewSoftmax creates a softmax policy with the given temperature
// schedule.
func NewSoftmax(temperature decay.Schedule) *Softmax {
	return &Softmax{temperature: temperature}
}

// Choose draws an action index from the softmax distribution over the
// given Q values at episode t. Returns false only if the weighted draw
// fails, which cannot happen for a non-empty qValues slice.
func (s *Softmax) Choose(episode int, qValues []float32) (int, bool) {
	temp := float64(s.temperature.Evaluate(float32(episode)))

	sum := 0.0
	weights := make([]float64, len(qValues))
	for i, q := range qValues {
		v := math.Exp(float64(q) / temp)
		weights[i] = v
		sum += v
	}
	for i := range weights {
		weights[i] /= sum
	}

	return sampleuv.NewWeighted(weights, nil).Take()
}
