// ------------------------------------------------------------
// Interactive window renderer (Ebitengine)
// ------------------------------------------------------------

package viz

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mohammadijoo/SwingUp_GO/cartpole"
	"github.com/mohammadijoo/SwingUp_GO/control"
)

// Window runs the plant interactively at the control rate: one simulator
// step per tick, driven by the given controller. Space pauses, R resets
// the episode. The cart is reset automatically when it leaves the rail.
type Window struct {
	sim    *cartpole.Simulator
	ctrl   control.Controller
	params cartpole.Params

	obs    cartpole.Observation
	paused bool
}

// NewWindow resets the simulator and returns the game.
func NewWindow(sim *cartpole.Simulator, ctrl control.Controller) *Window {
	w := &Window{sim: sim, ctrl: ctrl, params: sim.Params()}
	reset, _ := sim.Reset()
	w.obs = control.StepOrder(reset)
	return w
}

// Update advances the plant by one control period.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		reset, _ := w.sim.Reset()
		w.obs = control.StepOrder(reset)
	}
	if w.paused {
		return nil
	}

	res, err := w.sim.Step(w.ctrl.Act(w.obs))
	if err != nil {
		return err
	}
	w.obs = res.Obs

	if res.OffTrack {
		reset, _ := w.sim.Reset()
		w.obs = control.StepOrder(reset)
	}
	return nil
}

// Draw renders the current state directly from the read-only accessor.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{255, 255, 255, 255})

	s, err := w.sim.CurrentState()
	if err != nil {
		return
	}

	scale := float64(ScreenWidth) / (2 * w.params.XThreshold)
	poleLen := scale * (2 * w.params.Length)

	cartX := float32(s.X*scale + ScreenWidth/2)
	cartY := float32(ScreenHeight - cartBaseline)

	// Rail.
	vector.StrokeLine(screen, 0, cartY, ScreenWidth, cartY, 1,
		color.RGBA{0, 0, 0, 255}, true)

	// Cart.
	vector.DrawFilledRect(screen,
		cartX-cartWidth/2, cartY-cartHeight/2, cartWidth, cartHeight,
		color.RGBA{0, 0, 0, 255}, true)

	// Pole.
	axleY := cartY - cartHeight/4
	tipX := cartX + float32(poleLen*math.Sin(s.Theta))
	tipY := axleY - float32(poleLen*math.Cos(s.Theta))
	vector.StrokeLine(screen, cartX, axleY, tipX, tipY, poleWidth,
		color.RGBA{202, 152, 101, 255}, true)

	// Axle.
	vector.DrawFilledCircle(screen, cartX, axleY, poleWidth/2,
		color.RGBA{129, 132, 203, 255}, true)
}

// Layout reports the fixed display size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("cart-pole swing-up")
	ebiten.SetTPS(int(math.Round(1 / w.params.Tau)))
	return ebiten.RunGame(w)
}
