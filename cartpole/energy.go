package cartpole

import "math"

// Energy returns the swing-up energy signal used by the rig software.
// It is computed for diagnostics only and deliberately kept out of the
// reward path; wiring it in would change training dynamics. The first
// term is linear in theta_dot, matching the signal as deployed.
func Energy(p Params, s State) float64 {
	return 2.0/3.0*p.MassPole*p.Length*p.Length*s.ThetaDot +
		p.MassPole*p.Length*p.Gravity*(math.Cos(s.Theta)-1)
}

// Lyapunov returns the candidate Lyapunov value built on the energy
// signal. Diagnostic only, like Energy.
func Lyapunov(p Params, s State) float64 {
	e := Energy(p, s)
	c := math.Cos(s.Theta)
	return 0.5*e*e + 1e-4*(1-c*c*c)
}

// MechanicalEnergy returns the pendulum's mechanical energy relative to
// the upright rest position: rotational kinetic energy of the rod about
// the pivot plus potential energy, zero at upright rest and -2*m*g*L at
// hanging rest. Energy-pumping controllers drive this toward zero.
func MechanicalEnergy(p Params, s State) float64 {
	return 2.0/3.0*p.MassPole*p.Length*p.Length*s.ThetaDot*s.ThetaDot +
		p.MassPole*p.Gravity*p.Length*(math.Cos(s.Theta)-1)
}
