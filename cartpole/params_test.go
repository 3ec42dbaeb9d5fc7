package cartpole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestValidateRejectsNonPhysicalConstants(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero pole mass", func(p *Params) { p.MassPole = 0 }},
		{"negative cart mass", func(p *Params) { p.MassCart = -1 }},
		{"zero motor resistance", func(p *Params) { p.MotorResistance = 0 }},
		{"zero control period", func(p *Params) { p.Tau = 0 }},
		{"negative pinion damping", func(p *Params) { p.DampingPinion = -0.1 }},
		{"zero rail bound", func(p *Params) { p.XThreshold = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestDerivedQuantities(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, 1.17, p.TotalMass(), 1e-12)
	assert.InDelta(t, 0.230*0.3302, p.PoleMassLength(), 1e-12)
	assert.Greater(t, p.driveInertia(), 0.0)
}
