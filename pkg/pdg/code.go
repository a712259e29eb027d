// Package pdg declares named PDG codes and rest masses of particles used in
// heavy-flavour analyses.
//
// The constants are generated from the upstream particle database. Code
// labels follow the upstream kCamelCase convention with an exported K
// prefix, and each KName has a matching MassName where a mass is known.
package pdg

import "fmt"

// Code is a PDG particle identifier. Antiparticles carry the negated code.
type Code int

// Heavy-flavour and exotic states missing from the standard PDG_t table
const (
	KB0             Code = 511
	KB0Bar          Code = -511
	KBPlus          Code = 521
	KBS             Code = 531
	KBSBar          Code = -531
	KD0             Code = 421
	KD0Bar          Code = -421
	KDMinus         Code = -411
	KDPlus          Code = 411
	KDS             Code = 431
	KDSBar          Code = -431
	KDStar          Code = 413
	KChiC1          Code = 20443
	KJPsi           Code = 443
	KLambdaB0       Code = 5122
	KLambdaCPlus    Code = 4122
	KOmegaC0        Code = 4332
	KPhi            Code = 333
	KSigmaC0        Code = 4112
	KSigmaCPlusPlus Code = 4222
	KX3872          Code = 9920443
	KXiB0           Code = 5232
	KXiCCPlusPlus   Code = 4422
	KXiCPlus        Code = 4232
	KXiCZero        Code = 4132
)

// Standard PDG_t codes, declared so the restated masses can be indexed
const (
	KDown          Code = 1
	KDownBar       Code = -1
	KUp            Code = 2
	KUpBar         Code = -2
	KStrange       Code = 3
	KStrangeBar    Code = -3
	KCharm         Code = 4
	KCharmBar      Code = -4
	KBottom        Code = 5
	KBottomBar     Code = -5
	KTop           Code = 6
	KTopBar        Code = -6
	KGluon         Code = 21
	KElectron      Code = 11
	KPositron      Code = -11
	KNuE           Code = 12
	KNuEBar        Code = -12
	KMuonMinus     Code = 13
	KMuonPlus      Code = -13
	KNuMu          Code = 14
	KNuMuBar       Code = -14
	KTauMinus      Code = 15
	KTauPlus       Code = -15
	KNuTau         Code = 16
	KNuTauBar      Code = -16
	KGamma         Code = 22
	KZ0            Code = 23
	KWPlus         Code = 24
	KWMinus        Code = -24
	KPi0           Code = 111
	KK0Long        Code = 130
	KPiPlus        Code = 211
	KPiMinus       Code = -211
	KProton        Code = 2212
	KProtonBar     Code = -2212
	KNeutron       Code = 2112
	KNeutronBar    Code = -2112
	KK0Short       Code = 310
	KK0            Code = 311
	KK0Bar         Code = -311
	KKPlus         Code = 321
	KKMinus        Code = -321
	KLambda0       Code = 3122
	KLambda0Bar    Code = -3122
	KLambda1520    Code = 3124
	KSigmaMinus    Code = 3112
	KSigmaBarPlus  Code = -3112
	KSigmaPlus     Code = 3222
	KSigmaBarMinus Code = -3222
	KSigma0        Code = 3212
	KSigma0Bar     Code = -3212
	KXiMinus       Code = 3312
	KXiPlusBar     Code = -3312
	KOmegaMinus    Code = 3334
	KOmegaPlusBar  Code = -3334
)

// IsAntiparticle reports whether c is the charge-conjugate code of a
// positively numbered particle.
func (c Code) IsAntiparticle() bool {
	return c < 0
}

// String returns the particle name, e.g. "D0Bar" for KD0Bar.
func (c Code) String() string {
	if p, ok := byCode[c]; ok {
		return p.Name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}
