package cartpole

import "gonum.org/v1/gonum/mat"

// Linearize computes the continuous-time linearization x_dot = A*x + B*u
// of the dynamics about the upright equilibrium (0, 0, 0, 0) with zero
// force, by central finite differences through the exact derivative.
// A is 4x4 over (x, x_dot, theta, theta_dot); B is the force column.
// Useful for tuning catch controllers and for stability checks.
func Linearize(p Params) (*mat.Dense, *mat.VecDense) {
	const h = 1e-6

	a := mat.NewDense(4, 4, nil)
	for j := 0; j < 4; j++ {
		var zero State
		dp := derivative(p, zero.withComponent(j, h), 0).vec()
		dm := derivative(p, zero.withComponent(j, -h), 0).vec()
		for i := 0; i < 4; i++ {
			a.Set(i, j, (dp[i]-dm[i])/(2*h))
		}
	}

	b := mat.NewVecDense(4, nil)
	fp := derivative(p, State{}, h).vec()
	fm := derivative(p, State{}, -h).vec()
	for i := 0; i < 4; i++ {
		b.SetVec(i, (fp[i]-fm[i])/(2*h))
	}

	return a, b
}
