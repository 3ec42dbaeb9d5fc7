package cartpole

import "math"

// State is the raw 4-component plant state. Theta is measured from the
// upright position: theta = 0 is the pole standing up, theta = pi is the
// hanging start position.
type State struct {
	X        float64 // cart position (m)
	XDot     float64 // cart velocity (m/s)
	Theta    float64 // pole angle (rad, 0 = upright)
	ThetaDot float64 // pole angular velocity (rad/s)
}

// Deriv is the time derivative of a State.
type Deriv struct {
	XDot     float64
	XAcc     float64
	ThetaDot float64
	ThetaAcc float64
}

// addScaled returns s + h*k, used for the intermediate integrator stages.
func (s State) addScaled(k Deriv, h float64) State {
	return State{
		X:        s.X + h*k.XDot,
		XDot:     s.XDot + h*k.XAcc,
		Theta:    s.Theta + h*k.ThetaDot,
		ThetaDot: s.ThetaDot + h*k.ThetaAcc,
	}
}

// component returns the i-th state component in (x, x_dot, theta, theta_dot)
// order.
func (s State) component(i int) float64 {
	switch i {
	case 0:
		return s.X
	case 1:
		return s.XDot
	case 2:
		return s.Theta
	default:
		return s.ThetaDot
	}
}

// withComponent returns a copy of s with the i-th component replaced.
func (s State) withComponent(i int, v float64) State {
	switch i {
	case 0:
		s.X = v
	case 1:
		s.XDot = v
	case 2:
		s.Theta = v
	default:
		s.ThetaDot = v
	}
	return s
}

// vec returns the derivative components in (x_dot, x_acc, theta_dot,
// theta_acc) order, matching the state component order.
func (d Deriv) vec() [4]float64 {
	return [4]float64{d.XDot, d.XAcc, d.ThetaDot, d.ThetaAcc}
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapAngle folds an angle into (-pi, pi] through its sine and cosine.
// atan2 keeps the quadrant, so arbitrarily large accumulated angles map
// back onto the principal range without losing the pole's side.
func wrapAngle(a float64) float64 {
	return math.Atan2(math.Sin(a), math.Cos(a))
}
