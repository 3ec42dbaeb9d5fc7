// ------------------------------------------------------------
// Offline frame renderer
// ------------------------------------------------------------
// Draws one PNG per frame with the rig's display geometry (600x400
// screen, 50x30 cart, pole width 10, rail mapped to the full screen
// width) and can mux the frames into an MP4 when ffmpeg is on PATH.
// ------------------------------------------------------------

package viz

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/mohammadijoo/SwingUp_GO/cartpole"
)

// Display geometry, in pixels.
const (
	ScreenWidth  = 600
	ScreenHeight = 400

	cartWidth  = 50.0
	cartHeight = 30.0
	poleWidth  = 10.0

	// Height of the cart baseline above the bottom edge.
	cartBaseline = 100.0
)

// Frames writes numbered PNG frames into a directory.
type Frames struct {
	params cartpole.Params
	dir    string
	frame  int
}

// NewFrames creates the output directory and returns the renderer.
func NewFrames(p cartpole.Params, dir string) (*Frames, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("viz: cannot create frames directory: %w", err)
	}
	return &Frames{params: p, dir: dir}, nil
}

// FrameCount returns the number of frames rendered so far.
func (f *Frames) FrameCount() int { return f.frame }

// Render draws the current state and saves it as the next frame.
func (f *Frames) Render(s cartpole.State) error {
	dc := gg.NewContext(ScreenWidth, ScreenHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	p := f.params
	scale := ScreenWidth / (2 * p.XThreshold)
	poleLen := scale * (2 * p.Length)

	cartX := s.X*scale + ScreenWidth/2
	cartY := ScreenHeight - cartBaseline

	// Rail.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(0, cartY, ScreenWidth, cartY)
	dc.Stroke()

	// Cart body.
	dc.DrawRectangle(cartX-cartWidth/2, cartY-cartHeight/2, cartWidth, cartHeight)
	dc.Fill()

	// Pole, drawn from the axle toward the tip; theta = 0 points up.
	axleY := cartY - cartHeight/4
	tipX := cartX + poleLen*math.Sin(s.Theta)
	tipY := axleY - poleLen*math.Cos(s.Theta)
	dc.SetRGB255(202, 152, 101)
	dc.SetLineWidth(poleWidth)
	dc.DrawLine(cartX, axleY, tipX, tipY)
	dc.Stroke()

	// Axle.
	dc.SetRGB255(129, 132, 203)
	dc.DrawCircle(cartX, axleY, poleWidth/2)
	dc.Fill()

	name := filepath.Join(f.dir, fmt.Sprintf("frame_%06d.png", f.frame))
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("viz: cannot save frame: %w", err)
	}
	f.frame++
	return nil
}

// Close is a no-op; every frame is flushed as it is rendered.
func (f *Frames) Close() error { return nil }

// EncodeMP4 muxes the rendered frames into an MP4 using ffmpeg.
func (f *Frames) EncodeMP4(fps int, outMP4 string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("viz: ffmpeg not found on PATH: %w", err)
	}
	cmd := exec.Command("ffmpeg",
		"-y",
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", filepath.Join(f.dir, "frame_%06d.png"),
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		outMP4,
	)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viz: ffmpeg encoding failed: %w", err)
	}
	return nil
}
