package cartpole

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEulerStepMatchesDefinition(t *testing.T) {
	p := DefaultParams()
	s := State{X: 0.05, XDot: 0.2, Theta: 2.8, ThetaDot: -0.3}
	const force, dt = 4.0, 0.01

	d := derivative(p, s, force)
	got := Euler{}.Step(p, s, force, dt)

	assert.Equal(t, s.X+dt*d.XDot, got.X)
	assert.Equal(t, s.XDot+dt*d.XAcc, got.XDot)
	assert.Equal(t, s.Theta+dt*d.ThetaDot, got.Theta)
	assert.Equal(t, s.ThetaDot+dt*d.ThetaAcc, got.ThetaDot)
}

func TestSemiImplicitEulerUsesUpdatedVelocities(t *testing.T) {
	p := DefaultParams()
	s := State{X: 0.05, XDot: 0.2, Theta: 2.8, ThetaDot: -0.3}
	const force, dt = 4.0, 0.01

	d := derivative(p, s, force)
	got := SemiImplicitEuler{}.Step(p, s, force, dt)

	xDot := s.XDot + dt*d.XAcc
	thetaDot := s.ThetaDot + dt*d.ThetaAcc
	assert.Equal(t, xDot, got.XDot)
	assert.Equal(t, thetaDot, got.ThetaDot)
	assert.Equal(t, s.X+dt*xDot, got.X)
	assert.Equal(t, s.Theta+dt*thetaDot, got.Theta)
}

// stateError is the Euclidean distance between two states.
func stateError(a, b State) float64 {
	dx := a.X - b.X
	dv := a.XDot - b.XDot
	dth := a.Theta - b.Theta
	dw := a.ThetaDot - b.ThetaDot
	return math.Sqrt(dx*dx + dv*dv + dth*dth + dw*dw)
}

func TestRK4TighterThanEulerNearUnstableEquilibrium(t *testing.T) {
	p := DefaultParams()
	s0 := State{Theta: 1e-3}
	const dt = 0.01

	// Reference trajectory: RK4 with a far finer step.
	ref := s0
	const sub = 1000
	for i := 0; i < sub; i++ {
		ref = RK4{}.Step(p, ref, 0, dt/sub)
	}

	errRK4 := stateError(RK4{}.Step(p, s0, 0, dt), ref)
	errEuler := stateError(Euler{}.Step(p, s0, 0, dt), ref)

	assert.Less(t, errRK4, errEuler,
		"4th-order scheme must beat forward Euler at the same step size")
}

func TestRK4ZeroForceHangingStationary(t *testing.T) {
	p := DefaultParams()
	s := State{Theta: math.Pi}

	next := RK4{}.Step(p, s, 0, p.Tau)
	assert.InDelta(t, 0, next.X, 1e-9)
	assert.InDelta(t, 0, next.XDot, 1e-9)
	assert.InDelta(t, math.Pi, next.Theta, 1e-9)
	assert.InDelta(t, 0, next.ThetaDot, 1e-9)
}

func TestIntegratorNames(t *testing.T) {
	assert.Equal(t, "rk4", RK4{}.Name())
	assert.Equal(t, "euler", Euler{}.Name())
	assert.Equal(t, "semi-euler", SemiImplicitEuler{}.Name())
}
