// ------------------------------------------------------------
// Plant simulator: swing-up episode lifecycle
// ------------------------------------------------------------
// The pendulum starts hanging down (theta near pi) and must be driven,
// via cart motion, to the inverted equilibrium. One Simulator owns one
// State; nothing here is safe for concurrent use against the same
// instance, and nothing needs to be: host systems that parallelize run
// one Simulator per goroutine and may share a Params value read-only.
// ------------------------------------------------------------

package cartpole

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNotReset is returned when Step or CurrentState is called before the
// first Reset. This is a programming error in the caller, not a
// recoverable condition.
var ErrNotReset = errors.New("cartpole: call Reset before using the simulator")

// Default bounds of the uniform perturbation applied to every state
// component on Reset.
const (
	DefaultResetLow  = -0.08
	DefaultResetHigh = 0.08
)

// Observation is the 5-component derived observation. The angle is
// trig-encoded so the controller never sees the +-pi wraparound.
//
// Step and Reset order the components differently (see their docs); both
// orderings are long-standing contracts of the external controller and
// are kept distinct on purpose.
type Observation [5]float64

// Info is the auxiliary record returned alongside observations. It is
// always empty today.
type Info map[string]any

// StepResult bundles the outputs of one Step call.
type StepResult struct {
	Obs        Observation
	Reward     float64
	Terminated bool // upright success: |theta| under a quarter of ThetaThreshold
	OffTrack   bool // cart left the rail bounds; reported like a truncation signal
	Info       Info
}

// Simulator owns the physical state and advances it one control period
// per Step. Construct with New, populate with Reset.
type Simulator struct {
	params     Params
	integrator Integrator
	log        *zap.Logger
	rng        *rand.Rand

	state       State
	initialized bool

	// -1 until the first terminal step, then counts steps taken past it.
	// Drives only the one-time advisory; never feeds back into physics,
	// reward, or termination.
	stepsBeyondTerminated int
}

// Option configures a Simulator at construction time.
type Option func(*Simulator)

// WithIntegrator selects the integration scheme. RK4 is the default.
func WithIntegrator(i Integrator) Option {
	return func(s *Simulator) { s.integrator = i }
}

// WithLogger sets the logger used for advisories. Defaults to a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// New validates the constants and returns an uninitialized simulator.
// Step and CurrentState fail until the first Reset.
func New(p Params, opts ...Option) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sim := &Simulator{
		params:                p,
		integrator:            RK4{},
		log:                   zap.NewNop(),
		rng:                   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		stepsBeyondTerminated: -1,
	}
	for _, opt := range opts {
		opt(sim)
	}
	return sim, nil
}

// Params returns the constants the simulator was built with.
func (sim *Simulator) Params() Params { return sim.params }

// ResetOption tweaks one Reset call.
type ResetOption func(*resetConfig)

type resetConfig struct {
	seed      *uint64
	low, high float64
}

// WithSeed reseeds the uniform sampler so the produced initial state is
// reproducible bit for bit. Without it the sampler continues its current
// stream.
func WithSeed(seed uint64) ResetOption {
	return func(c *resetConfig) { c.seed = &seed }
}

// WithBounds overrides the perturbation interval for this Reset.
func WithBounds(low, high float64) ResetOption {
	return func(c *resetConfig) { c.low, c.high = low, high }
}

// Reset draws all four state components independently from U[low, high]
// and then shifts the angle by -pi, so the pole starts near the hanging
// position with a small perturbation on every component. The post-terminal
// counter is cleared.
//
// The returned observation is ordered (sin th, cos th, th_dot, x, x_dot).
// Note this differs from Step's ordering; both are preserved verbatim.
func (sim *Simulator) Reset(opts ...ResetOption) (Observation, Info) {
	cfg := resetConfig{low: DefaultResetLow, high: DefaultResetHigh}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed != nil {
		sim.rng = rand.New(rand.NewSource(*cfg.seed))
	}

	u := distuv.Uniform{Min: cfg.low, Max: cfg.high, Src: sim.rng}
	sim.state = State{
		X:        u.Rand(),
		XDot:     u.Rand(),
		Theta:    u.Rand() - math.Pi,
		ThetaDot: u.Rand(),
	}
	sim.initialized = true
	sim.stepsBeyondTerminated = -1

	s := sim.state
	obs := Observation{math.Sin(s.Theta), math.Cos(s.Theta), s.ThetaDot, s.X, s.XDot}
	return obs, Info{}
}

// Step applies one normalized action for one control period. Actions
// outside [-MaxAction, MaxAction] are clamped, not rejected. The angle is
// folded into (-pi, pi] before derivative evaluation so that angles
// accumulated over long episodes keep full trig precision.
//
// The returned observation is ordered (x, x_dot, cos th, sin th, th_dot).
func (sim *Simulator) Step(action float64) (StepResult, error) {
	if !sim.initialized {
		return StepResult{}, ErrNotReset
	}
	p := sim.params

	a := clamp(p.MaxAction*action, -p.MaxAction, p.MaxAction)
	force := p.ForceMag * a

	s := sim.state
	s.Theta = wrapAngle(s.Theta)
	s = sim.integrator.Step(p, s, force, p.Tau)
	sim.state = s

	terminated := math.Abs(s.Theta) < p.ThetaThreshold/4
	offTrack := math.Abs(s.X) > p.XThreshold

	var reward float64
	switch {
	case !terminated && offTrack:
		reward = -1000
	case !terminated:
		reward = 1000
	case sim.stepsBeyondTerminated < 0:
		// Pole just reached upright.
		sim.stepsBeyondTerminated = 0
		reward = 100
	default:
		if sim.stepsBeyondTerminated == 0 {
			sim.log.Warn("step called on a terminated episode; behavior past " +
				"this point is undefined, call Reset to start a new episode")
		}
		sim.stepsBeyondTerminated++
		reward = 1000
	}

	obs := Observation{s.X, s.XDot, math.Cos(s.Theta), math.Sin(s.Theta), s.ThetaDot}
	return StepResult{
		Obs:        obs,
		Reward:     reward,
		Terminated: terminated,
		OffTrack:   offTrack,
		Info:       Info{},
	}, nil
}

// CurrentState exposes the raw state as a read-only side channel for
// renderers. Step and Reset never depend on it.
func (sim *Simulator) CurrentState() (State, error) {
	if !sim.initialized {
		return State{}, ErrNotReset
	}
	return sim.state, nil
}

// Close releases collaborator-owned resources. The physics core holds
// none, so this is a no-op kept for lifecycle symmetry with renderers.
func (sim *Simulator) Close() error { return nil }
