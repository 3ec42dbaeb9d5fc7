package control

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mohammadijoo/SwingUp_GO/cartpole"
)

// Random draws actions uniformly from [-1, 1]. Useful for exercising the
// plant and as an exploration baseline.
type Random struct {
	u distuv.Uniform
}

// NewRandom returns a seeded random policy.
func NewRandom(seed uint64) *Random {
	return &Random{u: distuv.Uniform{Min: -1, Max: 1, Src: rand.NewSource(seed)}}
}

func (r *Random) Act(cartpole.Observation) float64 { return r.u.Rand() }
