package control

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadijoo/SwingUp_GO/cartpole"
)

func TestStepOrderRearrangesResetObservation(t *testing.T) {
	// Reset ordering: (sin th, cos th, th_dot, x, x_dot).
	reset := cartpole.Observation{0.1, 0.2, 0.3, 0.4, 0.5}

	got := StepOrder(reset)
	// Step ordering: (x, x_dot, cos th, sin th, th_dot).
	assert.Equal(t, cartpole.Observation{0.4, 0.5, 0.2, 0.1, 0.3}, got)
}

func TestRandomActionsInRangeAndSeeded(t *testing.T) {
	a := NewRandom(21)
	b := NewRandom(21)
	for i := 0; i < 100; i++ {
		av := a.Act(cartpole.Observation{})
		bv := b.Act(cartpole.Observation{})
		assert.Equal(t, av, bv)
		assert.GreaterOrEqual(t, av, -1.0)
		assert.LessOrEqual(t, av, 1.0)
	}
}

func obsFor(s cartpole.State) cartpole.Observation {
	return cartpole.Observation{
		s.X, s.XDot, math.Cos(s.Theta), math.Sin(s.Theta), s.ThetaDot,
	}
}

func TestSwingUpCatchOpposesTilt(t *testing.T) {
	c := NewSwingUp(cartpole.DefaultParams())

	right := c.Act(obsFor(cartpole.State{Theta: 0.05}))
	assert.Less(t, right, 0.0)

	left := c.Act(obsFor(cartpole.State{Theta: -0.05}))
	assert.Greater(t, left, 0.0)

	assert.LessOrEqual(t, math.Abs(right), 1.0)
	assert.LessOrEqual(t, math.Abs(left), 1.0)
}

func TestSwingUpKicksOutOfHangingRest(t *testing.T) {
	c := NewSwingUp(cartpole.DefaultParams())
	u := c.Act(obsFor(cartpole.State{Theta: math.Pi}))
	assert.Equal(t, c.Kick, u)
}

func TestSwingUpActionsBounded(t *testing.T) {
	c := NewSwingUp(cartpole.DefaultParams())
	for theta := -math.Pi; theta <= math.Pi; theta += 0.17 {
		for _, w := range []float64{-4, -0.5, 0, 0.5, 4} {
			u := c.Act(obsFor(cartpole.State{Theta: theta, ThetaDot: w}))
			assert.LessOrEqual(t, math.Abs(u), 1.0)
		}
	}
}

func TestSwingUpPumpsPendulumEnergy(t *testing.T) {
	params := cartpole.DefaultParams()
	sim, err := cartpole.New(params)
	require.NoError(t, err)

	c := NewSwingUp(params)

	resetObs, _ := sim.Reset(cartpole.WithSeed(3))
	obs := StepOrder(resetObs)

	start, err := sim.CurrentState()
	require.NoError(t, err)
	before := cartpole.MechanicalEnergy(params, start)

	best := before
	for i := 0; i < 500; i++ {
		res, err := sim.Step(c.Act(obs))
		require.NoError(t, err)
		obs = res.Obs

		st, err := sim.CurrentState()
		require.NoError(t, err)
		best = math.Max(best, cartpole.MechanicalEnergy(params, st))
	}

	assert.Greater(t, best, before+0.05,
		"energy pump must raise the pendulum energy from the hanging start")
}
