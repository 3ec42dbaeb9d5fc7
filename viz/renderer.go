// Package viz renders the cart-pole plant state. Renderers are pure
// sinks: they read the state through the simulator's read-only accessor
// and never feed anything back, so the physics core runs correctly with
// no renderer at all.
package viz

import "github.com/mohammadijoo/SwingUp_GO/cartpole"

// Renderer consumes one plant state per frame. A failed Render must not
// corrupt the simulation loop; callers log and continue.
type Renderer interface {
	Render(s cartpole.State) error
	Close() error
}

// Nop discards every frame.
type Nop struct{}

func (Nop) Render(cartpole.State) error { return nil }
func (Nop) Close() error                { return nil }
