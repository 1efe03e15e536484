package strat

import "math"

// updateWeights rewrites the adaptive weight vector from the country's
// cached stats and the threat index left by the previous tick.
//
// Alpha and gamma follow the closed-form needs rules. Beta ratchets: while
// the country is under net hostile pressure it rises by at least one step
// per tick toward (and past) its closed-form target until it pins at the
// maximum; once pressure drops to zero or below it relaxes straight to the
// target. Delta, kappa, and rho stay at their baselines.
func updateWeights(c *Country) {
	s := c.Stats

	alphaRaw := float64(weightAlphaBase) * (1 + coefResource*(resourceTarget-float64(s.Resources))/resourceTarget)
	c.Weights.Alpha = clampWeight(roundWeight(alphaRaw))

	gammaRaw := float64(weightGammaBase) * (1 + coefGrowth*(growthTarget-float64(s.Growth))/growthTarget)
	c.Weights.Gamma = clampWeight(roundWeight(gammaRaw))

	ti := float64(c.ThreatIndex)
	tiNorm := ti / (1 + math.Abs(ti))
	betaTarget := clampWeight(roundWeight(float64(weightBetaBase) * (1 + coefThreat*tiNorm)))
	if ti > 0 {
		beta := c.Weights.Beta + 1
		if betaTarget > beta {
			beta = betaTarget
		}
		c.Weights.Beta = clampWeight(beta)
	} else {
		c.Weights.Beta = betaTarget
	}

	c.Weights.Delta = clampWeight(weightDeltaBase)
	c.Weights.Kappa = clampWeight(weightKappaBase)
	c.Weights.Rho = clampWeight(weightRhoBase)
}

// updateMarginals recomputes MV_q from current stats. Each curve shrinks as
// the corresponding stat grows, which is the entire diminishing-returns
// model for research.
func updateMarginals(c *Country) {
	s := c.Stats
	c.Marginals.Military = 10 / maxf(s.MilEff+10, 1)
	c.Marginals.Economy = 10 / maxf(s.GDP+10, 1)
	c.Marginals.Technology = 5 / maxf(s.TechLevel+5, 1)
	c.Marginals.Infrastructure = 6 / maxf(s.Growth+10, 1)
}

// roundWeight rounds to the nearest integer, ties to even, saturating at the
// int16 range so extreme inputs clamp instead of wrapping.
func roundWeight(v float64) int16 {
	v = math.Max(math.MinInt16, math.Min(math.MaxInt16, v))
	return int16(math.RoundToEven(v))
}

func clampWeight(v int16) int16 {
	if v < weightMin {
		return weightMin
	}
	if v > weightMax {
		return weightMax
	}
	return v
}
