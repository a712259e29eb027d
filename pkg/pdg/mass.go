package pdg

// Masses in GeV/c² for the heavy-flavour states above
const (
	MassB0             = 5.27953
	MassB0Bar          = 5.27953
	MassBPlus          = 5.27915
	MassBS             = 5.3663
	MassBSBar          = 5.3663
	MassD0             = 1.86484
	MassD0Bar          = 1.86484
	MassDMinus         = 1.86962
	MassDPlus          = 1.86962
	MassDS             = 1.9685
	MassDSBar          = 1.9685
	MassDStar          = 2.01027
	MassChiC1          = 3.51066
	MassJPsi           = 3.096916
	MassLambdaB0       = 5.6202
	MassLambdaCPlus    = 2.28646
	MassOmegaC0        = 2.6952
	MassPhi            = 1.019455
	MassSigmaC0        = 2.45376
	MassSigmaCPlusPlus = 2.45402
	MassX3872          = 3.87165
	MassXiB0           = 5.7924
	MassXiCCPlusPlus   = 3.62155
	MassXiCPlus        = 2.4679
	MassXiCZero        = 2.471
)

// Masses in GeV/c² for particles already in the standard PDG_t table
const (
	MassDown          = 0.0048
	MassDownBar       = 0.0048
	MassUp            = 0.0024
	MassUpBar         = 0.0024
	MassStrange       = 0.104
	MassStrangeBar    = 0.104
	MassCharm         = 1.27
	MassCharmBar      = 1.27
	MassBottom        = 4.68
	MassBottomBar     = 4.68
	MassTop           = 171.2
	MassTopBar        = 171.2
	MassGluon         = 0.0
	MassElectron      = 0.00051099891
	MassPositron      = 0.00051099891
	MassNuE           = 0.0
	MassNuEBar        = 0.0
	MassMuonMinus     = 0.105658
	MassMuonPlus      = 0.105658
	MassNuMu          = 0.0
	MassNuMuBar       = 0.0
	MassTauMinus      = 1.77684
	MassTauPlus       = 1.77684
	MassNuTau         = 0.0
	MassNuTauBar      = 0.0
	MassGamma         = 0.0
	MassZ0            = 91.187
	MassWPlus         = 80.398
	MassWMinus        = 80.398
	MassPi0           = 0.134977
	MassK0Long        = 0.497614
	MassPiPlus        = 0.13957
	MassPiMinus       = 0.13957
	MassProton        = 0.938272
	MassProtonBar     = 0.938272
	MassNeutron       = 0.939565
	MassNeutronBar    = 0.939565
	MassK0Short       = 0.497614
	MassK0            = 0.497614
	MassK0Bar         = 0.497614
	MassKPlus         = 0.493677
	MassKMinus        = 0.493677
	MassLambda0       = 1.11568
	MassLambda0Bar    = 1.11568
	MassLambda1520    = 1.5195
	MassSigmaMinus    = 1.19744
	MassSigmaBarPlus  = 1.19744
	MassSigmaPlus     = 1.18937
	MassSigmaBarMinus = 1.18937
	MassSigma0        = 1.192642
	MassSigma0Bar     = 1.192642
	MassXiMinus       = 1.32171
	MassXiPlusBar     = 1.32171
	MassOmegaMinus    = 1.67245
	MassOmegaPlusBar  = 1.67245
)
