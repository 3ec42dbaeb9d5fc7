// ------------------------------------------------------------
// Fixed-step integrators
// ------------------------------------------------------------

package cartpole

// An Integrator advances a state by dt seconds under a constant force
// (zero-order hold). RK4 is the canonical scheme; the two Euler variants
// are kept as lower-fidelity alternatives for validation.
type Integrator interface {
	Step(p Params, s State, force, dt float64) State
	Name() string
}

// RK4 is the classical 4th-order Runge-Kutta scheme, four derivative
// evaluations combined with 1:2:2:1 weights.
type RK4 struct{}

func (RK4) Name() string { return "rk4" }

func (RK4) Step(p Params, s State, force, dt float64) State {
	k1 := derivative(p, s, force)
	k2 := derivative(p, s.addScaled(k1, dt/2), force)
	k3 := derivative(p, s.addScaled(k2, dt/2), force)
	k4 := derivative(p, s.addScaled(k3, dt), force)

	s.X += dt / 6 * (k1.XDot + 2*k2.XDot + 2*k3.XDot + k4.XDot)
	s.XDot += dt / 6 * (k1.XAcc + 2*k2.XAcc + 2*k3.XAcc + k4.XAcc)
	s.Theta += dt / 6 * (k1.ThetaDot + 2*k2.ThetaDot + 2*k3.ThetaDot + k4.ThetaDot)
	s.ThetaDot += dt / 6 * (k1.ThetaAcc + 2*k2.ThetaAcc + 2*k3.ThetaAcc + k4.ThetaAcc)
	return s
}

// Euler is the explicit forward-Euler scheme: positions advance with the
// old velocities.
type Euler struct{}

func (Euler) Name() string { return "euler" }

func (Euler) Step(p Params, s State, force, dt float64) State {
	d := derivative(p, s, force)
	return State{
		X:        s.X + dt*d.XDot,
		XDot:     s.XDot + dt*d.XAcc,
		Theta:    s.Theta + dt*d.ThetaDot,
		ThetaDot: s.ThetaDot + dt*d.ThetaAcc,
	}
}

// SemiImplicitEuler updates the velocities first and advances the
// positions with the new velocities.
type SemiImplicitEuler struct{}

func (SemiImplicitEuler) Name() string { return "semi-euler" }

func (SemiImplicitEuler) Step(p Params, s State, force, dt float64) State {
	d := derivative(p, s, force)
	xDot := s.XDot + dt*d.XAcc
	thetaDot := s.ThetaDot + dt*d.ThetaAcc
	return State{
		X:        s.X + dt*xDot,
		XDot:     xDot,
		Theta:    s.Theta + dt*thetaDot,
		ThetaDot: thetaDot,
	}
}
