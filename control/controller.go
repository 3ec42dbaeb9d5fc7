// Package control provides policies that drive the cart-pole plant. The
// simulator treats every controller as opaque: it only ever sees one
// scalar action per step.
package control

import "github.com/mohammadijoo/SwingUp_GO/cartpole"

// A Controller maps one observation to one normalized action in [-1, 1].
// Implementations may be stochastic.
type Controller interface {
	Act(obs cartpole.Observation) float64
}

// StepOrder rearranges a Reset observation, ordered
// (sin th, cos th, th_dot, x, x_dot), into Step's ordering
// (x, x_dot, cos th, sin th, th_dot). The two orderings are distinct
// contracts of the plant; controllers in this package expect Step's.
func StepOrder(reset cartpole.Observation) cartpole.Observation {
	return cartpole.Observation{reset[3], reset[4], reset[1], reset[0], reset[2]}
}
