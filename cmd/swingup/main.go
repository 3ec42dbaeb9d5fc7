// ------------------------------------------------------------
// Cart-pole swing-up episode runner
// ------------------------------------------------------------
// Runs the voltage-actuated swing-up plant for a number of episodes with
// a chosen controller and integrator, logs each episode to CSV, saves
// trajectory plots, and optionally renders PNG frames (plus an MP4 when
// ffmpeg is available) or an interactive window.
//
// Output folder:
//   output/swingup/episode_000/trajectory.csv
//   output/swingup/episode_000/*.png plots
//   output/swingup/episode_000/frames/frame_000000.png ...
// ------------------------------------------------------------

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mohammadijoo/SwingUp_GO/cartpole"
	"github.com/mohammadijoo/SwingUp_GO/control"
	"github.com/mohammadijoo/SwingUp_GO/viz"
)

func main() {
	var (
		episodes   = flag.Int("episodes", 1, "number of episodes to run")
		steps      = flag.Int("steps", 1000, "maximum steps per episode")
		seed       = flag.Uint64("seed", 1, "base seed; episode i uses seed+i")
		controller = flag.String("controller", "swingup", "controller: swingup or random")
		integrator = flag.String("integrator", "rk4", "integrator: rk4, euler or semi-euler")
		render     = flag.String("render", "none", "render mode: none, frames or window")
		outDir     = flag.String("out", filepath.Join("output", "swingup"), "output directory")
		mp4        = flag.Bool("mp4", false, "encode rendered frames into an MP4 (needs ffmpeg)")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	params := cartpole.DefaultParams()

	integ, err := selectIntegrator(*integrator)
	if err != nil {
		logger.Fatal("bad flag", zap.Error(err))
	}

	sim, err := cartpole.New(params,
		cartpole.WithIntegrator(integ),
		cartpole.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("cannot construct simulator", zap.Error(err))
	}
	defer sim.Close()

	ctrl, err := selectController(*controller, params, *seed)
	if err != nil {
		logger.Fatal("bad flag", zap.Error(err))
	}

	if *render == "window" {
		if err := viz.NewWindow(sim, ctrl).Run(); err != nil {
			logger.Fatal("window closed with error", zap.Error(err))
		}
		return
	}

	for ep := 0; ep < *episodes; ep++ {
		epDir := filepath.Join(*outDir, fmt.Sprintf("episode_%03d", ep))
		if err := runEpisode(logger, sim, ctrl, params, episodeConfig{
			seed:   *seed + uint64(ep),
			steps:  *steps,
			dir:    epDir,
			frames: *render == "frames",
			mp4:    *mp4,
		}); err != nil {
			logger.Fatal("episode failed", zap.Int("episode", ep), zap.Error(err))
		}
	}
}

type episodeConfig struct {
	seed   uint64
	steps  int
	dir    string
	frames bool
	mp4    bool
}

func runEpisode(logger *zap.Logger, sim *cartpole.Simulator, ctrl control.Controller,
	params cartpole.Params, cfg episodeConfig) error {

	var renderer viz.Renderer = viz.Nop{}
	var frames *viz.Frames
	if cfg.frames {
		f, err := viz.NewFrames(params, filepath.Join(cfg.dir, "frames"))
		if err != nil {
			return err
		}
		frames = f
		renderer = f
	}
	defer renderer.Close()

	resetObs, _ := sim.Reset(cartpole.WithSeed(cfg.seed))
	obs := control.StepOrder(resetObs)

	tr := newTrajectory(cfg.steps)
	var total float64

	for i := 0; i < cfg.steps; i++ {
		action := ctrl.Act(obs)
		res, err := sim.Step(action)
		if err != nil {
			return err
		}
		obs = res.Obs
		total += res.Reward

		state, err := sim.CurrentState()
		if err != nil {
			return err
		}
		tr.record(float64(i)*params.Tau, state, action, res.Reward,
			cartpole.MechanicalEnergy(params, state))

		// Render failures must not stop the physics loop.
		if err := renderer.Render(state); err != nil {
			logger.Warn("render failed", zap.Error(err))
		}

		if res.Terminated || res.OffTrack {
			logger.Info("episode ended",
				zap.Uint64("seed", cfg.seed),
				zap.Int("steps", i+1),
				zap.Bool("upright", res.Terminated),
				zap.Bool("off_track", res.OffTrack))
			break
		}
	}

	logger.Info("episode summary",
		zap.Uint64("seed", cfg.seed),
		zap.Float64("total_reward", total),
		zap.Int("steps", tr.len()))

	if err := tr.writeCSV(filepath.Join(cfg.dir, "trajectory.csv")); err != nil {
		return err
	}
	if err := tr.savePlots(cfg.dir); err != nil {
		return err
	}

	if frames != nil && cfg.mp4 {
		fps := int(math.Round(1 / params.Tau))
		out := filepath.Join(cfg.dir, "swingup.mp4")
		if err := frames.EncodeMP4(fps, out); err != nil {
			logger.Warn("mp4 encoding skipped", zap.Error(err))
		}
	}
	return nil
}

func selectIntegrator(name string) (cartpole.Integrator, error) {
	switch name {
	case "rk4":
		return cartpole.RK4{}, nil
	case "euler":
		return cartpole.Euler{}, nil
	case "semi-euler":
		return cartpole.SemiImplicitEuler{}, nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

func selectController(name string, params cartpole.Params, seed uint64) (control.Controller, error) {
	switch name {
	case "swingup":
		return control.NewSwingUp(params), nil
	case "random":
		return control.NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown controller %q", name)
	}
}
