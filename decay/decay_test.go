package decay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, validate(1, 1, 0))
	assert.Error(t, validate(1, -1, 0))
	assert.Error(t, validate(-1, 1, 0))
	assert.NoError(t, validate(-1, -1, 0))
}

func TestConstant(t *testing.T) {
	c := NewConstant(1)
	assert.Equal(t, float32(1), c.Evaluate(0))
	assert.Equal(t, float32(1), c.Evaluate(100))
}

func TestExponential(t *testing.T) {
	e, err := NewExponential(2, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(2), e.Evaluate(0))
	assert.InDelta(t, 0.5+1.5*math.Exp(-2), float64(e.Evaluate(1)), 1e-6)

	_, err = NewExponential(2, 0.5, 2)
	assert.Error(t, err, "value below floor with positive rate")
}

func TestInverseTime(t *testing.T) {
	i, err := NewInverseTime(2, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(2), i.Evaluate(0))
	assert.Equal(t, float32(1), i.Evaluate(1))
}

func TestLinear(t *testing.T) {
	l, err := NewLinear(0.5, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(2), l.Evaluate(0))
	assert.Equal(t, float32(1.5), l.Evaluate(1))
	assert.Equal(t, float32(0.5), l.Evaluate(10), "clamps at the floor")
}

func TestStep(t *testing.T) {
	s, err := NewStep(0.5, 2, 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(2), s.Evaluate(0.25))
	assert.Equal(t, float32(1), s.Evaluate(0.75))
	assert.Equal(t, float32(0.5), s.Evaluate(1))
}
