// Episode trajectory logging: CSV dump and Gonum Plot trajectory plots.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mohammadijoo/SwingUp_GO/cartpole"
)

type trajectory struct {
	t, x, theta    []float64
	action, reward []float64
	energy         []float64
}

func newTrajectory(capacity int) *trajectory {
	return &trajectory{
		t:      make([]float64, 0, capacity),
		x:      make([]float64, 0, capacity),
		theta:  make([]float64, 0, capacity),
		action: make([]float64, 0, capacity),
		reward: make([]float64, 0, capacity),
		energy: make([]float64, 0, capacity),
	}
}

func (tr *trajectory) record(t float64, s cartpole.State, action, reward, energy float64) {
	tr.t = append(tr.t, t)
	tr.x = append(tr.x, s.X)
	tr.theta = append(tr.theta, s.Theta)
	tr.action = append(tr.action, action)
	tr.reward = append(tr.reward, reward)
	tr.energy = append(tr.energy, energy)
}

func (tr *trajectory) len() int { return len(tr.t) }

func (tr *trajectory) writeCSV(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("CSV: cannot create directory: %w", err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("CSV: cannot open %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t", "x", "theta", "action", "reward", "energy"}); err != nil {
		return fmt.Errorf("CSV: cannot write header: %w", err)
	}
	cols := [][]float64{tr.t, tr.x, tr.theta, tr.action, tr.reward, tr.energy}
	for r := range tr.t {
		row := make([]string, len(cols))
		for c := range cols {
			row[c] = fmt.Sprintf("%.15g", cols[c][r])
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("CSV: cannot write row: %w", err)
		}
	}
	return nil
}

func (tr *trajectory) savePlots(outDir string) error {
	plots := []struct {
		file, title, ylabel string
		ys                  []float64
	}{
		{"cart_position.png", "Cart Position x(t)", "x (m)", tr.x},
		{"pole_angle.png", "Pole Angle theta(t) (0 = upright)", "theta (rad)", tr.theta},
		{"action.png", "Normalized Action a(t)", "a", tr.action},
		{"reward.png", "Reward r(t)", "r", tr.reward},
		{"pendulum_energy.png", "Pendulum Mechanical Energy E(t)", "E (J)", tr.energy},
	}
	for _, pl := range plots {
		if err := saveLinePlot(filepath.Join(outDir, pl.file), pl.title, pl.ylabel, tr.t, pl.ys); err != nil {
			return err
		}
	}
	return nil
}

func saveLinePlot(filename, title, ylabel string, xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("plot %s: data invalid", filename)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = ylabel
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("plot %s: cannot create directory: %w", filename, err)
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
