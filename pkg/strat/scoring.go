package strat

import "math"

// Components holds the six scoring channels in Q8.8 fixed point (1/256
// units): the deltas saturate at ±32, cost and risk at [0,16]. Quantizing
// before weighting keeps the final score an exact integer on every
// platform.
type Components struct {
	Res    int16
	Sec    int16
	Growth int16
	Pos    int16
	Cost   int16
	Risk   int16
}

const fixedOne = 256

// Score combines the channels with the country's integer weights:
//
//	S = α·ΔRes + β·ΔSec + γ·ΔGrowth + δ·ΔPos − κ·Cost − ρ·Risk
//
// The result is in 1/256 units; ordering is what matters.
func (c Components) Score(w Weights) int32 {
	return int32(w.Alpha)*int32(c.Res) +
		int32(w.Beta)*int32(c.Sec) +
		int32(w.Gamma)*int32(c.Growth) +
		int32(w.Delta)*int32(c.Pos) -
		int32(w.Kappa)*int32(c.Cost) -
		int32(w.Rho)*int32(c.Risk)
}

// rawComponents carries float32 intermediates inside a single scorer call.
// They never escape unquantized.
type rawComponents struct {
	res, sec, growth, pos, cost, risk float32
}

// quantize saturates each channel into its declared range and rounds to
// fixed point, ties to even.
func (r rawComponents) quantize() Components {
	return Components{
		Res:    fixDelta(r.res),
		Sec:    fixDelta(r.sec),
		Growth: fixDelta(r.growth),
		Pos:    fixDelta(r.pos),
		Cost:   fixMagnitude(r.cost),
		Risk:   fixMagnitude(r.risk),
	}
}

func fixDelta(v float32) int16 {
	return int16(math.RoundToEven(float64(clamp32(v, -32, 32)) * fixedOne))
}

func fixMagnitude(v float32) int16 {
	return int16(math.RoundToEven(float64(clamp32(v, 0, 16)) * fixedOne))
}

// scoreAction dispatches to the per-kind scorer. Pass is the zero baseline.
func scoreAction(c *Country, a Action, w *World, t *Tables) Components {
	switch a.Kind {
	case KindAttack:
		return scoreAttack(c, a, w, t)
	case KindInvest:
		return scoreInvest(c, a.Sector, t)
	case KindResearch:
		return scoreResearch(c, a.Sector)
	case KindDiplomacy:
		return scoreDiplomacy(c, a, w, t)
	case KindFortify:
		return scoreFortify(c, a)
	case KindMove:
		return scoreMove(c, a)
	}
	return Components{}
}

// winProbability runs the force ratio through the log-ratio and sigmoid
// tables: p = σ(λ·(ln FR − b_fort·Fort − b_terr·Terrain − b_dist·d)).
// A dead defender is a guaranteed win.
func winProbability(attacker, defender *Country, e *Edge, t *Tables) float32 {
	if defender.Stats.MilEff <= 0 {
		return 1
	}
	gPenalty := 1 + e.Terrain
	fr := attacker.Stats.MilEff / maxf(defender.Stats.MilEff*gPenalty, minDenominator)
	logit := attackLambda * (t.LogRatio.Lookup(fr) -
		attackFortCoef*e.Fortification -
		attackTerrainCoef*e.Terrain -
		attackDistCoef*float32(e.Distance))
	return t.Sigmoid.Lookup(logit)
}

func scoreAttack(c *Country, a Action, w *World, t *Tables) Components {
	e := &c.Edges[a.Edge]
	defender, ok := w.countries[e.Target]
	if !ok {
		return Components{}
	}

	pWin := winProbability(c, defender, e, t)

	var raw rawComponents
	if defender.Stats.MilEff <= 0 {
		// Walkover: loot and security saturate, nothing left to risk.
		raw.res = 33
		raw.sec = 33
	} else {
		winRes := defender.Stats.Resources * attackLootShare
		winSec := e.Hostility * defender.Stats.MilEff * attackSecWinCoef
		lossRes := -c.Stats.Resources * attackLossShare
		lossSec := -defender.Stats.MilEff * attackSecLossCoef
		raw.res = (pWin*winRes + (1-pWin)*lossRes) / attackResNorm
		raw.sec = (pWin*winSec + (1-pWin)*lossSec) / attackSecNorm
	}

	winPos := defender.Stats.Prestige * attackPrestigeWin
	lossPos := -c.Stats.Prestige * attackPrestigeLoss
	raw.pos = (pWin*winPos + (1-pWin)*lossPos) / attackPosNorm

	casualties := c.Stats.MilEff * 0.1 * (1 - pWin + 0.5)
	upkeep := defender.Stats.MilEff * 0.05
	diploPenalty := float32(0)
	if e.Relation >= RelationTrade {
		diploPenalty = 10 // attacking a partner burns standing
	}
	raw.cost = (attackCasualtyCoef*casualties + attackUpkeepCoef*upkeep + attackDiplomacyCoef*diploPenalty) / attackCostNorm

	raw.risk = attackRiskScale * pWin * (1 - pWin)

	return raw.quantize()
}

// scoreInvest projects the sector's GDP response over an 8-step horizon,
// compounding with the country's growth rate and discounting through the
// table: ROI = Σ d^h·ΔGDP(h) / H.
func scoreInvest(c *Country, s Sector, t *Tables) Components {
	boost := investBoost(s)
	growthFactor := 1 + c.Stats.Growth/100

	roi := float32(0)
	step := boost
	for h := 1; h <= investHorizon; h++ {
		step *= growthFactor
		roi += t.Discount.Get(h) * step
	}
	roi /= investHorizon

	var raw rawComponents
	raw.growth = roi / investGrowthNorm
	raw.res = roi * investResShare / investResNorm
	raw.cost = investCost(s) / maxf(c.Stats.Resources, minCostBase) * investCostScale
	raw.risk = investRisk
	return raw.quantize()
}

// scoreResearch prices a tech family purely from the marginal values:
// ΔGrowth = Σ_q m_{t,q}·MV_q. Research outcomes are certain, so risk is
// zero.
func scoreResearch(c *Country, tech Sector) Components {
	row := techMatrix[tech]
	gain := row[SectorInfrastructure]*c.Marginals.Infrastructure +
		row[SectorMilitary]*c.Marginals.Military +
		row[SectorEconomy]*c.Marginals.Economy +
		row[SectorTechnology]*c.Marginals.Technology

	var raw rawComponents
	raw.growth = gain / researchGrowthNorm
	raw.cost = researchCost(tech) / maxf(c.Stats.Resources, minCostBase) * researchCostScale
	return raw.quantize()
}

// acceptProbability estimates the partner's score delta for taking the
// proposal versus the status quo, through the sigmoid table. The proposer's
// strength and prestige, attenuated by border distance, stand in for the
// partner's gain.
func acceptProbability(c *Country, e *Edge, t *Tables) float32 {
	benefit := (c.Stats.MilEff*diplomacyBenefitMil + c.Stats.Prestige*diplomacyBenefitPres) * t.Kernel.Get(e.Distance)
	return t.Sigmoid.Lookup(diplomacyTheta * benefit)
}

func scoreDiplomacy(c *Country, a Action, w *World, t *Tables) Components {
	target, ok := w.countries[a.Target]
	if !ok {
		return Components{}
	}
	e := c.edgeTo(a.Target)
	if e == nil {
		return Components{}
	}

	p := acceptProbability(c, e, t)

	var raw rawComponents
	switch a.Prop {
	case RelationAlly:
		raw.sec = p * target.Stats.MilEff * 0.5 / diplomacySecNorm
		raw.pos = p * 5 / diplomacyPosNorm
	case RelationPact:
		raw.sec = p * target.Stats.MilEff * 0.3 / diplomacySecNorm
		raw.pos = p * 3 / diplomacyPosNorm
	case RelationTrade:
		raw.res = p * target.Stats.GDP * 0.1 / diplomacyResNorm
		raw.growth = p * 2 / diplomacyGrowthNorm
	}
	raw.cost = diplomacyCost
	raw.risk = diplomacyRiskScale * p * (1 - p)
	return raw.quantize()
}

func scoreFortify(c *Country, a Action) Components {
	tile := &c.Tiles[a.Tile]
	var raw rawComponents
	raw.sec = tile.Gradient * fortifySecCoef / tileGradientNorm
	raw.pos = fortifyPosGain
	raw.cost = fortifyCost
	raw.risk = fortifyRisk
	return raw.quantize()
}

func scoreMove(c *Country, a Action) Components {
	tile := &c.Tiles[a.Tile]
	var raw rawComponents
	raw.sec = tile.Gradient * moveSecCoef / tileGradientNorm
	raw.pos = tile.Gradient*movePosCoef/tileGradientNorm + movePosGain
	raw.cost = moveCost
	raw.risk = moveRisk
	return raw.quantize()
}
