package strat

// Tuning constants for the decision core. Exposed for inspection, never
// mutated at runtime.

// Weight update rule.
const (
	weightMin int16 = 2
	weightMax int16 = 16

	weightAlphaBase int16 = 8
	weightBetaBase  int16 = 8
	weightGammaBase int16 = 8
	weightDeltaBase int16 = 4
	weightKappaBase int16 = 8
	weightRhoBase   int16 = 4

	resourceTarget = 1000.0 // R*
	growthTarget   = 100.0  // G*
	coefResource   = 0.5    // c_R
	coefThreat     = 0.8    // c_T
	coefGrowth     = 0.5    // c_G
)

// Attack scoring.
const (
	attackLambda      = 1.5
	attackFortCoef    = 0.3 // b_fort
	attackTerrainCoef = 0.2 // b_terr
	attackDistCoef    = 0.1 // b_dist

	attackLootShare     = 0.5 // share of defender resources gained on a win
	attackLossShare     = 0.1 // share of own resources lost on a failure
	attackSecWinCoef    = 0.8
	attackSecLossCoef   = 0.2
	attackPrestigeWin   = 0.3
	attackPrestigeLoss  = 0.1
	attackRiskScale     = 8.0 // s_risk
	attackCasualtyCoef  = 0.5 // c_cas
	attackUpkeepCoef    = 0.2
	attackDiplomacyCoef = 0.3

	attackResNorm  = 50.0
	attackSecNorm  = 50.0
	attackPosNorm  = 20.0
	attackCostNorm = 20.0
)

// Invest scoring.
const (
	investHorizon = 8

	investCostScale  = 10.0
	investGrowthNorm = 10.0
	investResShare   = 0.2
	investResNorm    = 10.0
	investRisk       = 1.0
)

// Research scoring.
const (
	researchGrowthNorm = 5.0
	researchCostScale  = 10.0
)

// Diplomacy scoring.
const (
	diplomacyTheta        = 0.5 // θ for acceptance estimation
	diplomacyBenefitMil   = 0.2
	diplomacyBenefitPres  = 0.1
	diplomacyCost         = 5.0
	diplomacyRiskScale    = 4.0
	diplomacyHostilityCap = 0.8 // no proposals across hotter borders

	diplomacySecNorm    = 50.0
	diplomacyPosNorm    = 5.0
	diplomacyResNorm    = 50.0
	diplomacyGrowthNorm = 5.0
)

// Fortify and Move scoring.
const (
	fortifySecCoef = 0.5
	fortifyPosGain = 0.5
	fortifyCost    = 3.0
	fortifyRisk    = 0.5

	moveSecCoef = 0.3
	movePosCoef = 0.2
	movePosGain = 1.0
	moveCost    = 3.5
	moveRisk    = 1.0

	tileGradientNorm = 10.0
	fortificationCap = 5.0 // tiles at or above this repositioning instead
)

// Threat field.
const (
	// Neighbors whose relation is neither ally, pact, nor trade count as
	// enemies; so does any neighbor hotter than this threshold.
	hostilityEnemyThreshold = 0.5
)

// Numeric guards.
const (
	minDenominator = 1e-3 // epsilon floor before any ratio hits a LUT
	minCostBase    = 10.0 // resource floor in cost ratios
)

// TuningConstants reports the numeric constants the core runs with, for
// hosts and telemetry consumers. Read-only: the engine never varies them at
// runtime.
type TuningConstants struct {
	Caps ShortlistCaps

	AttackLambda      float64
	AttackFortCoef    float64
	AttackTerrainCoef float64
	AttackDistCoef    float64

	InvestHorizon int
	DiscountRate  float64

	DiplomacyTheta float64

	CoefResource   float64
	CoefThreat     float64
	CoefGrowth     float64
	ResourceTarget float64
	GrowthTarget   float64
	WeightBases    Weights
}

// Tuning returns the core's tuning constants.
func Tuning() TuningConstants {
	return TuningConstants{
		Caps:              DefaultCaps(),
		AttackLambda:      attackLambda,
		AttackFortCoef:    attackFortCoef,
		AttackTerrainCoef: attackTerrainCoef,
		AttackDistCoef:    attackDistCoef,
		InvestHorizon:     investHorizon,
		DiscountRate:      discountRate,
		DiplomacyTheta:    diplomacyTheta,
		CoefResource:      coefResource,
		CoefThreat:        coefThreat,
		CoefGrowth:        coefGrowth,
		ResourceTarget:    resourceTarget,
		GrowthTarget:      growthTarget,
		WeightBases: Weights{
			Alpha: weightAlphaBase,
			Beta:  weightBetaBase,
			Gamma: weightGammaBase,
			Delta: weightDeltaBase,
			Kappa: weightKappaBase,
			Rho:   weightRhoBase,
		},
	}
}

// investBoost is the base per-step GDP response for each sector. The
// projection compounds this with the country's own growth rate, so the
// response curve is per-sector and per-country.
func investBoost(s Sector) float32 {
	switch s {
	case SectorEconomy:
		return 5
	case SectorTechnology:
		return 4
	case SectorInfrastructure:
		return 3
	case SectorMilitary:
		return 2
	}
	return 0
}

// investCost is the upfront spend per sector.
func investCost(s Sector) float32 {
	switch s {
	case SectorInfrastructure:
		return 30
	case SectorTechnology:
		return 25
	case SectorEconomy:
		return 20
	case SectorMilitary:
		return 15
	}
	return 0
}

// researchCost is the fixed research spend per tech family.
func researchCost(s Sector) float32 {
	switch s {
	case SectorTechnology:
		return 40
	case SectorMilitary:
		return 30
	case SectorEconomy:
		return 25
	case SectorInfrastructure:
		return 20
	}
	return 0
}

// techMatrix is the fixed per-tech multiplier matrix m_{t,q}: row = tech
// family researched, column = marginal value channel it draws on.
var techMatrix = [4][4]float32{
	SectorInfrastructure: {1.4, 0.1, 0.4, 0.1},
	SectorMilitary:       {0.1, 1.5, 0.1, 0.2},
	SectorEconomy:        {0.3, 0.1, 1.8, 0.2},
	SectorTechnology:     {0.2, 0.3, 0.3, 2.0},
}
