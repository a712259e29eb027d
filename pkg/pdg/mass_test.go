package pdg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMassSpotValues(t *testing.T) {
	assert.Equal(t, 3.096916, MassJPsi)
	assert.Equal(t, 2.28646, MassLambdaCPlus)
	assert.Equal(t, 2.01027, MassDStar)
	assert.Equal(t, 0.00051099891, MassElectron)
}

func TestAntiparticleMassesMatch(t *testing.T) {
	pairs := []struct {
		name           string
		particle, anti float64
	}{
		{"B0", MassB0, MassB0Bar},
		{"BS", MassBS, MassBSBar},
		{"D0", MassD0, MassD0Bar},
		{"DPlus", MassDPlus, MassDMinus},
		{"DS", MassDS, MassDSBar},
		{"Down", MassDown, MassDownBar},
		{"Up", MassUp, MassUpBar},
		{"Strange", MassStrange, MassStrangeBar},
		{"Charm", MassCharm, MassCharmBar},
		{"Bottom", MassBottom, MassBottomBar},
		{"Top", MassTop, MassTopBar},
		{"Electron", MassElectron, MassPositron},
		{"Muon", MassMuonMinus, MassMuonPlus},
		{"Tau", MassTauMinus, MassTauPlus},
		{"W", MassWPlus, MassWMinus},
		{"Pi", MassPiPlus, MassPiMinus},
		{"Proton", MassProton, MassProtonBar},
		{"Neutron", MassNeutron, MassNeutronBar},
		{"K0", MassK0, MassK0Bar},
		{"K", MassKPlus, MassKMinus},
		{"Lambda0", MassLambda0, MassLambda0Bar},
		{"SigmaMinus", MassSigmaMinus, MassSigmaBarPlus},
		{"SigmaPlus", MassSigmaPlus, MassSigmaBarMinus},
		{"Sigma0", MassSigma0, MassSigma0Bar},
		{"Xi", MassXiMinus, MassXiPlusBar},
		{"Omega", MassOmegaMinus, MassOmegaPlusBar},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.particle, tt.anti)
		})
	}
}

func TestMasslessParticles(t *testing.T) {
	for name, m := range map[string]float64{
		"Gluon":    MassGluon,
		"Gamma":    MassGamma,
		"NuE":      MassNuE,
		"NuEBar":   MassNuEBar,
		"NuMu":     MassNuMu,
		"NuMuBar":  MassNuMuBar,
		"NuTau":    MassNuTau,
		"NuTauBar": MassNuTauBar,
	} {
		assert.Equal(t, 0.0, m, name)
	}
}

func TestMassesAreNonNegative(t *testing.T) {
	for _, p := range Particles() {
		assert.GreaterOrEqual(t, p.Mass, 0.0, p.Name)
	}
}
