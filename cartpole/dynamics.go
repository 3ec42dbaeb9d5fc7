// ------------------------------------------------------------
// Equations of motion
// ------------------------------------------------------------
// Closed-form Lagrangian dynamics of an inverted pendulum on a motorized
// cart. Both accelerations share the state-dependent denominator
//
//	den(theta) = d + 3*r^2*m_p*sin^2(theta),
//	d          = 4*m_c*r^2 + m_p*r^2 + 4*J_m*K_g^2
//
// and are linear combinations of a velocity-damping term in x_dot, a
// cross-damping term in theta_dot, a centrifugal term in theta_dot^2, a
// gravity term, and the force drive. The gearbox ratio enters squared in
// the damping and linearly in the drive; the armature resistance divides
// every drive-related term.
// ------------------------------------------------------------

package cartpole

import (
	"fmt"
	"math"
)

// derivative returns the plant time derivative for an arbitrary state and
// a constant applied force (N). It is a pure function: the integrator
// calls it with hypothetical intermediate states.
func derivative(p Params, s State, force float64) Deriv {
	sinT := math.Sin(s.Theta)
	cosT := math.Cos(s.Theta)

	r := p.PinionRadius
	r2 := r * r
	kg2 := p.GearRatio * p.GearRatio

	den := p.driveInertia() + 3*r2*p.MassPole*sinT*sinT
	if !(den > 0) {
		// Validate-passing constants make den a sum of strictly positive
		// terms; reaching this means the constants are misconfigured.
		panic(fmt.Sprintf("cartpole: degenerate dynamics denominator %g", den))
	}

	// Motor damping as seen from the rail: viscous drag at the pinion plus
	// the back-EMF brake reflected through the gearbox.
	driveDamp := p.MotorResistance*r2*p.DampingPinion + kg2*p.TorqueConst*p.BackEMFConst

	// Cart-side inertia of the pole hub.
	hub := p.MassCart*r2 + p.MassPole*r2 + p.RotorInertia*kg2

	xAcc := (-4*driveDamp/p.MotorResistance*s.XDot -
		3*p.DampingPole*r2*cosT/p.Length*s.ThetaDot -
		4*p.MassPole*p.Length*r2*sinT*s.ThetaDot*s.ThetaDot +
		3*p.MassPole*p.Gravity*r2*cosT*sinT +
		4*r*p.GearRatio*p.TorqueConst/p.MotorResistance*force) / den

	thetaAcc := (-3*driveDamp*cosT/(p.Length*p.MotorResistance)*s.XDot -
		3*hub*p.DampingPole/(p.MassPole*p.Length*p.Length)*s.ThetaDot -
		3*p.MassPole*r2*sinT*cosT*s.ThetaDot*s.ThetaDot +
		3*hub*p.Gravity*sinT/p.Length +
		3*r*p.GearRatio*p.TorqueConst*cosT/(p.Length*p.MotorResistance)*force) / den

	return Deriv{
		XDot:     s.XDot,
		XAcc:     xAcc,
		ThetaDot: s.ThetaDot,
		ThetaAcc: thetaAcc,
	}
}
