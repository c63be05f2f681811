package gym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKArmedBandit(t *testing.T) {
	env := NewKArmedBandit(3, 10)
	assert.Equal(t, []int{0, 1, 2}, env.Actions())

	action := env.RandomAction()
	assert.Less(t, action, 3)

	env.Reset()
	next, reward := env.Step(action)
	require.NotNil(t, next)
	assert.False(t, reward != reward, "reward is not NaN")

	for i := 0; i < 8; i++ {
		next, _ = env.Step(env.RandomAction())
		require.NotNil(t, next)
	}
	next, _ = env.Step(env.RandomAction())
	assert.Nil(t, next, "episode terminates at the step limit")

	env.Reset()
	next, _ = env.Step(0)
	assert.NotNil(t, next, "reset starts a fresh episode")

	assert.Panics(t, func() { env.Step(7) })
	assert.Panics(t, func() { NewKArmedBandit(0, 10) })
}

func TestKArmedBanditReport(t *testing.T) {
	env := NewKArmedBandit(2, 5)
	env.Reset()
	for i := 0; i < 5; i++ {
		env.Step(0)
	}

	got := env.Report().Take()
	_, ok := got["reward"]
	assert.True(t, ok, "report accumulates the reward metric")
	assert.Equal(t, 0.0, env.Report().Get("reward"), "take resets the report")
}
