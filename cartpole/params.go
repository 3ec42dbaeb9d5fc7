// ------------------------------------------------------------
// Physical constants of the motor-driven cart-pole rig
// ------------------------------------------------------------
// The plant is a cart on a bounded rail carrying a pendulum free to
// rotate, driven by a voltage-controlled DC motor through a planetary
// gearbox. Unlike the textbook frictionless cart-pole, the model keeps
// the full electromechanical coupling: rotor inertia reflected through
// the gearbox, armature resistance, back-EMF, and two independent
// viscous damping coefficients (motor pinion and pendulum axis).
// ------------------------------------------------------------

package cartpole

import "fmt"

// Params holds the immutable physical constants of the plant. A value is
// passed to New and never mutated afterwards; independent simulator
// instances may share one Params value freely.
type Params struct {
	Gravity  float64 // gravitational acceleration (m/s^2)
	MassCart float64 // cart mass including attached load (kg)
	MassPole float64 // pole mass (kg)
	Length   float64 // half the pole's length (m)

	PinionRadius    float64 // motor pinion radius r_mp (m)
	RotorInertia    float64 // rotor moment of inertia J_m (kg*m^2)
	GearRatio       float64 // planetary gearbox ratio K_g
	MotorResistance float64 // armature resistance R_m (ohm)
	TorqueConst     float64 // motor torque constant K_t (N*m/A)
	BackEMFConst    float64 // back-EMF constant K_m (V*s/rad)
	DampingPinion   float64 // equivalent viscous damping at the pinion B_eq (N*m*s/rad)
	DampingPole     float64 // viscous damping at the pendulum axis B_p (N*m*s/rad)

	ForceMag float64 // force applied per unit of normalized action (N)
	Tau      float64 // control period, seconds between state updates

	ThetaThreshold float64 // rad; a quarter of this classifies the pole as upright
	XThreshold     float64 // m; rail half-length, beyond it the cart is off track
	MaxAction      float64 // normalized action bound
}

// DefaultParams returns the hardware-derived constants of the lab rig,
// sampled at 100 Hz.
func DefaultParams() Params {
	return Params{
		Gravity:  9.81,
		MassCart: 0.57 + 0.37,
		MassPole: 0.230,
		Length:   0.3302,

		PinionRadius:    6.35e-3,
		RotorInertia:    3.90e-7,
		GearRatio:       3.71,
		MotorResistance: 2.6,
		TorqueConst:     0.00767,
		BackEMFConst:    0.00767,
		DampingPinion:   5.4,
		DampingPole:     0.0024,

		ForceMag: 10.0,
		Tau:      1.0 / 100.0,

		ThetaThreshold: 0.2,
		XThreshold:     0.25,
		MaxAction:      1.0,
	}
}

// TotalMass returns the combined cart and pole mass.
func (p Params) TotalMass() float64 { return p.MassCart + p.MassPole }

// PoleMassLength returns the pole-mass times half-length product.
func (p Params) PoleMassLength() float64 { return p.MassPole * p.Length }

// driveInertia is the constant part of the dynamics denominator:
// d = 4*m_c*r^2 + m_p*r^2 + 4*J_m*K_g^2.
func (p Params) driveInertia() float64 {
	r2 := p.PinionRadius * p.PinionRadius
	return 4*p.MassCart*r2 + p.MassPole*r2 + 4*p.RotorInertia*p.GearRatio*p.GearRatio
}

// Validate checks the structural positivity constraints of the constants.
// When Validate passes, the state-dependent dynamics denominator
// d + 3*r^2*m_p*sin^2(theta) is a sum of strictly positive terms and is
// therefore bounded away from zero for every state.
func (p Params) Validate() error {
	pos := []struct {
		name string
		v    float64
	}{
		{"gravity", p.Gravity},
		{"cart mass", p.MassCart},
		{"pole mass", p.MassPole},
		{"pole half-length", p.Length},
		{"pinion radius", p.PinionRadius},
		{"rotor inertia", p.RotorInertia},
		{"gear ratio", p.GearRatio},
		{"motor resistance", p.MotorResistance},
		{"torque constant", p.TorqueConst},
		{"back-EMF constant", p.BackEMFConst},
		{"force magnitude", p.ForceMag},
		{"control period", p.Tau},
		{"theta threshold", p.ThetaThreshold},
		{"x threshold", p.XThreshold},
		{"max action", p.MaxAction},
	}
	for _, c := range pos {
		if !(c.v > 0) {
			return fmt.Errorf("cartpole: %s must be positive, got %g", c.name, c.v)
		}
	}
	if p.DampingPinion < 0 || p.DampingPole < 0 {
		return fmt.Errorf("cartpole: damping coefficients must be non-negative, got B_eq=%g B_p=%g",
			p.DampingPinion, p.DampingPole)
	}
	return nil
}
