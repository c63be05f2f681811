// Package decay provides time-annealed hyperparameter schedules, used
// for exploration rates and similar values that shrink over training.
package decay

import (
	"errors"
	"math"
)

// Schedule is a value that decays over time.
type Schedule interface {
	// Evaluate returns the value at time t.
	Evaluate(t float32) float32
}

var errSign = errors.New("decay: vi - vf must have the same sign as rate")

func validate(rate, vi, vf float32) error {
	if (rate >= 0 && vi > vf) || (rate < 0 && vi < vf) {
		return nil
	}
	return errSign
}

// Constant is a schedule that never changes.
type Constant struct {
	value float32
}

func NewConstant(value float32) Constant {
	return Constant{value: value}
}

func (c Constant) Evaluate(_ float32) float32 {
	return c.value
}

// Exponential decays as v(t) = vf + (vi - vf) * e^(-rate*t).
type Exponential struct {
	rate float32
	vi   float32
	vf   float32
}

func NewExponential(rate, vi, vf float32) (Exponential, error) {
	if err := validate(rate, vi, vf); err != nil {
		return Exponential{}, err
	}
	return Exponential{rate: rate, vi: vi, vf: vf}, nil
}

func (e Exponential) Evaluate(t float32) float32 {
	return e.vf + (e.vi-e.vf)*float32(math.Exp(float64(-e.rate*t)))
}

// InverseTime decays as v(t) = vf + (vi - vf) / (1 + rate*t).
type InverseTime struct {
	rate float32
	vi   float32
	vf   float32
}

func NewInverseTime(rate, vi, vf float32) (InverseTime, error) {
	if err := validate(rate, vi, vf); err != nil {
		return InverseTime{}, err
	}
	return InverseTime{rate: rate, vi: vi, vf: vf}, nil
}

func (i InverseTime) Evaluate(t float32) float32 {
	return i.vf + (i.vi-i.vf)/(1+i.rate*t)
}

// Linear decays as v(t) = max(vi - rate*t, vf).
type Linear struct {
	rate float32
	vi   float32
	vf   float32
}

func NewLinear(rate, vi, vf float32) (Linear, error) {
	if err := validate(rate, vi, vf); err != nil {
		return Linear{}, err
	}
	return Linear{rate: rate, vi: vi, vf: vf}, nil
}

func (l Linear) Evaluate(t float32) float32 {
	v := l.vi - l.rate*t
	if v < l.vf {
		return l.vf
	}
	return v
}

// Step decays as v(t) = max(vi * rate^floor(t/step), vf).
type Step struct {
	rate float32
	vi   float32
	vf   float32
	step float32
}

func NewStep(rate, vi, vf, step float32) (Step, error) {
	if err := validate(rate, vi, vf); err != nil {
		return Step{}, err
	}
	return Step{rate: rate, vi: vi, vf: vf, step: step}, nil
}

func (s Step) Evaluate(t float32) float32 {
	v := s.vi * float32(math.Pow(float64(s.rate), math.Floor(float64(t/s.step))))
	if v < s.vf {
		return s.vf
	}
	return v
}
