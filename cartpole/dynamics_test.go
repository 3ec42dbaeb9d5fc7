package cartpole

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivativeIsPure(t *testing.T) {
	p := DefaultParams()
	s := State{X: 0.1, XDot: -0.4, Theta: 2.5, ThetaDot: 1.2}

	d1 := derivative(p, s, 3.0)
	d2 := derivative(p, s, 3.0)
	assert.Equal(t, d1, d2)

	// A hypothetical intermediate state must produce its own derivative.
	d3 := derivative(p, s.addScaled(d1, 0.005), 3.0)
	assert.NotEqual(t, d1, d3)
}

func TestDerivativeHangingRestIsEquilibrium(t *testing.T) {
	p := DefaultParams()
	d := derivative(p, State{Theta: math.Pi}, 0)

	assert.InDelta(t, 0, d.XDot, 1e-12)
	assert.InDelta(t, 0, d.XAcc, 1e-10)
	assert.InDelta(t, 0, d.ThetaDot, 1e-12)
	assert.InDelta(t, 0, d.ThetaAcc, 1e-10)
}

func TestDerivativeForceEntersLinearly(t *testing.T) {
	p := DefaultParams()
	s := State{Theta: 2.0, ThetaDot: 0.5}

	d0 := derivative(p, s, 0)
	d1 := derivative(p, s, 1)
	d2 := derivative(p, s, 2)

	assert.InDelta(t, 2*(d1.XAcc-d0.XAcc), d2.XAcc-d0.XAcc, 1e-9)
	assert.InDelta(t, 2*(d1.ThetaAcc-d0.ThetaAcc), d2.ThetaAcc-d0.ThetaAcc, 1e-9)
}

func TestDerivativeGravityDestabilizesUpright(t *testing.T) {
	p := DefaultParams()
	d := derivative(p, State{Theta: 0.1}, 0)

	// A tilted pole accelerates away from upright and drags the cart with it.
	assert.Greater(t, d.ThetaAcc, 0.0)
	assert.Greater(t, d.XAcc, 0.0)
}

func TestDerivativeMotorDampingOpposesCartVelocity(t *testing.T) {
	p := DefaultParams()

	fwd := derivative(p, State{XDot: 1, Theta: math.Pi}, 0)
	assert.Less(t, fwd.XAcc, 0.0)

	back := derivative(p, State{XDot: -1, Theta: math.Pi}, 0)
	assert.Greater(t, back.XAcc, 0.0)
}

func TestDerivativeFiniteAcrossAngles(t *testing.T) {
	p := DefaultParams()
	for theta := -10.0; theta <= 10.0; theta += 0.1 {
		d := derivative(p, State{Theta: theta, ThetaDot: 2, XDot: 1}, 5)
		for _, v := range d.vec() {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
				"non-finite derivative at theta=%g", theta)
		}
	}
}
