// ------------------------------------------------------------
// Energy-pumping swing-up controller with a gated PD catch
// ------------------------------------------------------------
// Far from upright the controller pumps pendulum energy toward the
// upright rest level with a saturated bang-bang-like law; inside the
// catch cone it switches to a PD regulator on the pole angle with a
// weaker cart-centering term.
// ------------------------------------------------------------

package control

import (
	"math"

	"github.com/mohammadijoo/SwingUp_GO/cartpole"
)

// SwingUp is a hand-tuned baseline policy for the swing-up task. It is
// deterministic and stateless between steps.
type SwingUp struct {
	Params cartpole.Params

	// Energy pump: action = PumpGain * E * th_dot * cos(th), saturated.
	// E is the mechanical energy error (zero at upright rest), so the law
	// injects energy while below the target and vanishes as it is met.
	PumpGain float64

	// Kick applied when the pendulum rests at the bottom, where the pump
	// term is identically zero.
	Kick float64

	// Catch region half-angle (rad) and its gains.
	CatchAngle float64
	Kp, Kd     float64 // pole angle / angular velocity
	KxP, KxD   float64 // cart centering
}

// NewSwingUp returns the controller with gains tuned for the default rig
// constants.
func NewSwingUp(p cartpole.Params) *SwingUp {
	return &SwingUp{
		Params:     p,
		PumpGain:   10.0,
		Kick:       0.4,
		CatchAngle: 0.35,
		Kp:         2.0,
		Kd:         0.3,
		KxP:        0.5,
		KxD:        0.5,
	}
}

// Act expects Step-ordered observations (x, x_dot, cos th, sin th, th_dot).
func (c *SwingUp) Act(obs cartpole.Observation) float64 {
	x, xDot := obs[0], obs[1]
	cosT, sinT := obs[2], obs[3]
	thetaDot := obs[4]
	theta := math.Atan2(sinT, cosT)

	lim := c.Params.MaxAction

	if math.Abs(theta) < c.CatchAngle {
		u := -c.Kp*theta - c.Kd*thetaDot - c.KxP*x - c.KxD*xDot
		return clamp(u, -lim, lim)
	}

	e := cartpole.MechanicalEnergy(c.Params, cartpole.State{Theta: theta, ThetaDot: thetaDot})
	u := c.PumpGain * e * thetaDot * cosT
	if math.Abs(u) < 1e-6 {
		// Resting at the bottom: break the equilibrium.
		return c.Kick
	}
	return clamp(u, -lim, lim)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
