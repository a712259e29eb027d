package pdg

import (
	"fmt"
	"strconv"
	"strings"
)

// Particle ties a code to its mass. Name is the label shared by the
// K<Name> code and the Mass<Name> constant.
type Particle struct {
	Name string  `json:"name"`
	Code Code    `json:"code"`
	Mass float64 `json:"mass"` // GeV/c²
}

// particles is kept in declaration order
var particles = []Particle{
	{"B0", KB0, MassB0},
	{"B0Bar", KB0Bar, MassB0Bar},
	{"BPlus", KBPlus, MassBPlus},
	{"BS", KBS, MassBS},
	{"BSBar", KBSBar, MassBSBar},
	{"D0", KD0, MassD0},
	{"D0Bar", KD0Bar, MassD0Bar},
	{"DMinus", KDMinus, MassDMinus},
	{"DPlus", KDPlus, MassDPlus},
	{"DS", KDS, MassDS},
	{"DSBar", KDSBar, MassDSBar},
	{"DStar", KDStar, MassDStar},
	{"ChiC1", KChiC1, MassChiC1},
	{"JPsi", KJPsi, MassJPsi},
	{"LambdaB0", KLambdaB0, MassLambdaB0},
	{"LambdaCPlus", KLambdaCPlus, MassLambdaCPlus},
	{"OmegaC0", KOmegaC0, MassOmegaC0},
	{"Phi", KPhi, MassPhi},
	{"SigmaC0", KSigmaC0, MassSigmaC0},
	{"SigmaCPlusPlus", KSigmaCPlusPlus, MassSigmaCPlusPlus},
	{"X3872", KX3872, MassX3872},
	{"XiB0", KXiB0, MassXiB0},
	{"XiCCPlusPlus", KXiCCPlusPlus, MassXiCCPlusPlus},
	{"XiCPlus", KXiCPlus, MassXiCPlus},
	{"XiCZero", KXiCZero, MassXiCZero},

	{"Down", KDown, MassDown},
	{"DownBar", KDownBar, MassDownBar},
	{"Up", KUp, MassUp},
	{"UpBar", KUpBar, MassUpBar},
	{"Strange", KStrange, MassStrange},
	{"StrangeBar", KStrangeBar, MassStrangeBar},
	{"Charm", KCharm, MassCharm},
	{"CharmBar", KCharmBar, MassCharmBar},
	{"Bottom", KBottom, MassBottom},
	{"BottomBar", KBottomBar, MassBottomBar},
	{"Top", KTop, MassTop},
	{"TopBar", KTopBar, MassTopBar},
	{"Gluon", KGluon, MassGluon},
	{"Electron", KElectron, MassElectron},
	{"Positron", KPositron, MassPositron},
	{"NuE", KNuE, MassNuE},
	{"NuEBar", KNuEBar, MassNuEBar},
	{"MuonMinus", KMuonMinus, MassMuonMinus},
	{"MuonPlus", KMuonPlus, MassMuonPlus},
	{"NuMu", KNuMu, MassNuMu},
	{"NuMuBar", KNuMuBar, MassNuMuBar},
	{"TauMinus", KTauMinus, MassTauMinus},
	{"TauPlus", KTauPlus, MassTauPlus},
	{"NuTau", KNuTau, MassNuTau},
	{"NuTauBar", KNuTauBar, MassNuTauBar},
	{"Gamma", KGamma, MassGamma},
	{"Z0", KZ0, MassZ0},
	{"WPlus", KWPlus, MassWPlus},
	{"WMinus", KWMinus, MassWMinus},
	{"Pi0", KPi0, MassPi0},
	{"K0Long", KK0Long, MassK0Long},
	{"PiPlus", KPiPlus, MassPiPlus},
	{"PiMinus", KPiMinus, MassPiMinus},
	{"Proton", KProton, MassProton},
	{"ProtonBar", KProtonBar, MassProtonBar},
	{"Neutron", KNeutron, MassNeutron},
	{"NeutronBar", KNeutronBar, MassNeutronBar},
	{"K0Short", KK0Short, MassK0Short},
	{"K0", KK0, MassK0},
	{"K0Bar", KK0Bar, MassK0Bar},
	{"KPlus", KKPlus, MassKPlus},
	{"KMinus", KKMinus, MassKMinus},
	{"Lambda0", KLambda0, MassLambda0},
	{"Lambda0Bar", KLambda0Bar, MassLambda0Bar},
	{"Lambda1520", KLambda1520, MassLambda1520},
	{"SigmaMinus", KSigmaMinus, MassSigmaMinus},
	{"SigmaBarPlus", KSigmaBarPlus, MassSigmaBarPlus},
	{"SigmaPlus", KSigmaPlus, MassSigmaPlus},
	{"SigmaBarMinus", KSigmaBarMinus, MassSigmaBarMinus},
	{"Sigma0", KSigma0, MassSigma0},
	{"Sigma0Bar", KSigma0Bar, MassSigma0Bar},
	{"XiMinus", KXiMinus, MassXiMinus},
	{"XiPlusBar", KXiPlusBar, MassXiPlusBar},
	{"OmegaMinus", KOmegaMinus, MassOmegaMinus},
	{"OmegaPlusBar", KOmegaPlusBar, MassOmegaPlusBar},
}

var (
	byCode = make(map[Code]Particle, len(particles))
	byName = make(map[string]Particle, len(particles))
)

func init() {
	for _, p := range particles {
		byCode[p.Code] = p
		byName[p.Name] = p
	}
}

// Particles returns a copy of the whole table in declaration order.
func Particles() []Particle {
	out := make([]Particle, len(particles))
	copy(out, particles)
	return out
}

// Lookup returns the particle with the given code.
func Lookup(code Code) (Particle, error) {
	p, ok := byCode[code]
	if !ok {
		return Particle{}, fmt.Errorf("%w: %d", ErrUnknownCode, int(code))
	}
	return p, nil
}

// LookupName returns the particle with the given name, e.g. "LambdaCPlus".
func LookupName(name string) (Particle, error) {
	p, ok := byName[name]
	if !ok {
		return Particle{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return p, nil
}

// MassOf returns the rest mass in GeV/c² of the particle with the given code.
func MassOf(code Code) (float64, error) {
	p, err := Lookup(code)
	if err != nil {
		return 0, err
	}
	return p.Mass, nil
}

// Resolve accepts either a numeric PDG code or a particle name. Names may
// carry the upstream k/K label prefix ("kD0", "KD0" and "D0" are the same).
func Resolve(query string) (Particle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Particle{}, ErrInvalidQuery
	}

	if n, err := strconv.Atoi(query); err == nil {
		return Lookup(Code(n))
	}

	if p, err := LookupName(query); err == nil {
		return p, nil
	}
	if len(query) > 1 && (query[0] == 'k' || query[0] == 'K') {
		if p, err := LookupName(query[1:]); err == nil {
			return p, nil
		}
	}
	return Particle{}, fmt.Errorf("%w: %q", ErrUnknownName, query)
}
