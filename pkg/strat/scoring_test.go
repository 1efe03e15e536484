package strat

import "testing"

func TestComponents_Score(t *testing.T) {
	comp := Components{
		Res:  10 * fixedOne,
		Sec:  5 * fixedOne,
		Cost: 3 * fixedOne,
	}
	w := Weights{Alpha: 8, Beta: 8, Gamma: 8, Delta: 4, Kappa: 8, Rho: 4}
	// 8*10 + 8*5 - 8*3 = 96, in 1/256 units.
	if got, want := comp.Score(w), int32(96*fixedOne); got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}

func TestQuantize_Saturates(t *testing.T) {
	raw := rawComponents{res: 1000, sec: -1000, growth: 32.4, pos: -32.4, cost: 99, risk: -5}
	comp := raw.quantize()
	if comp.Res != 32*fixedOne {
		t.Errorf("res = %d, want saturate at +32", comp.Res)
	}
	if comp.Sec != -32*fixedOne {
		t.Errorf("sec = %d, want saturate at -32", comp.Sec)
	}
	if comp.Growth != 32*fixedOne {
		t.Errorf("growth = %d, want clamp to +32", comp.Growth)
	}
	if comp.Pos != -32*fixedOne {
		t.Errorf("pos = %d, want clamp to -32", comp.Pos)
	}
	if comp.Cost != 16*fixedOne {
		t.Errorf("cost = %d, want clamp to 16", comp.Cost)
	}
	if comp.Risk != 0 {
		t.Errorf("risk = %d, want floor at 0", comp.Risk)
	}
}

func TestScorePass_AllZero(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	c, _ := w.CountryByID(1)
	comp := scoreAction(c, Action{Kind: KindPass}, w, kernelTables())
	if comp != (Components{}) {
		t.Errorf("pass components = %+v, want all zero", comp)
	}
	if comp.Score(c.Weights) != 0 {
		t.Error("pass score must be 0")
	}
}

func attackFixture(t *testing.T, defenderMil float32) (*World, *Country) {
	t.Helper()
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	w.addEdge(1, 2, 1, 0.7)
	w.canonicalize()
	d, _ := w.CountryByID(2)
	d.Stats.MilEff = defenderMil
	updateThreat(w, kernelTables())
	c, _ := w.CountryByID(1)
	return w, c
}

func TestScoreAttack_Deterministic(t *testing.T) {
	// M_i=100 vs M_j=50 at d=1, no terrain, no fortification: the force
	// ratio is exactly 2 and both runs must land on identical fields.
	w1, c1 := attackFixture(t, 50)
	w2, c2 := attackFixture(t, 50)

	a := Action{Kind: KindAttack, Edge: 0}
	comp1 := scoreAttack(c1, a, w1, kernelTables())
	comp2 := scoreAttack(c2, a, w2, kernelTables())
	if comp1 != comp2 {
		t.Errorf("identical worlds scored differently: %+v vs %+v", comp1, comp2)
	}

	// FR=2 with only the distance penalty gives p_win over one half.
	e := &c1.Edges[0]
	p := winProbability(c1, mustCountry(t, w1, 2), e, kernelTables())
	if p <= 0.5 || p >= 1 {
		t.Errorf("p_win = %v for a 2:1 ratio, want in (0.5, 1)", p)
	}
}

func TestScoreAttack_DeadDefenderSaturates(t *testing.T) {
	w, c := attackFixture(t, 0)
	comp := scoreAttack(c, Action{Kind: KindAttack, Edge: 0}, w, kernelTables())
	if comp.Res != 32*fixedOne || comp.Sec != 32*fixedOne {
		t.Errorf("dead defender: res=%d sec=%d, want both saturated at +32", comp.Res, comp.Sec)
	}
	if comp.Risk != 0 {
		t.Errorf("dead defender: risk = %d, want 0 (p_win = 1)", comp.Risk)
	}
}

func TestScoreAttack_StrongerDefenderLowersWinOdds(t *testing.T) {
	wWeak, cWeak := attackFixture(t, 50)
	wStrong, cStrong := attackFixture(t, 400)

	pWeak := winProbability(cWeak, mustCountry(t, wWeak, 2), &cWeak.Edges[0], kernelTables())
	pStrong := winProbability(cStrong, mustCountry(t, wStrong, 2), &cStrong.Edges[0], kernelTables())
	if pStrong >= pWeak {
		t.Errorf("p_win %v vs stronger defender >= %v vs weaker", pStrong, pWeak)
	}
}

func TestScoreInvest_PositiveGrowth(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	c, _ := w.CountryByID(1)
	comp := scoreInvest(c, SectorEconomy, kernelTables())
	if comp.Growth <= 0 {
		t.Errorf("invest growth = %d, want positive", comp.Growth)
	}
	if comp.Cost <= 0 {
		t.Errorf("invest cost = %d, want positive", comp.Cost)
	}
	if comp.Risk != fixedOne {
		t.Errorf("invest risk = %d, want %d (flat low risk)", comp.Risk, fixedOne)
	}
}

func TestScoreResearch_ZeroRisk(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	c, _ := w.CountryByID(1)
	updateMarginals(c)
	comp := scoreResearch(c, SectorTechnology)
	if comp.Risk != 0 {
		t.Errorf("research risk = %d, want 0 (deterministic outcome)", comp.Risk)
	}
	if comp.Growth <= 0 {
		t.Errorf("research growth = %d, want positive", comp.Growth)
	}
}

func TestScoreDiplomacy_ScalesWithAcceptance(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	w.addEdge(1, 2, 1, 0.2)
	w.canonicalize()
	c, _ := w.CountryByID(1)

	ally := scoreDiplomacy(c, Action{Kind: KindDiplomacy, Target: 2, Prop: RelationAlly}, w, kernelTables())
	if ally.Sec <= 0 {
		t.Errorf("ally proposal sec = %d, want positive", ally.Sec)
	}
	trade := scoreDiplomacy(c, Action{Kind: KindDiplomacy, Target: 2, Prop: RelationTrade}, w, kernelTables())
	if trade.Res <= 0 || trade.Growth <= 0 {
		t.Errorf("trade proposal res=%d growth=%d, want both positive", trade.Res, trade.Growth)
	}
}

func TestScoreFortify_TracksGradient(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	w.addCountry(3)
	w.addEdge(1, 2, 1, 0.9)
	w.addEdge(1, 3, 1, 0.2)
	w.addBorderTile(1, 7, 2)
	w.addBorderTile(1, 8, 3)
	w.canonicalize()
	updateThreat(w, kernelTables())
	c, _ := w.CountryByID(1)

	comp7 := scoreFortify(c, Action{Kind: KindFortify, Tile: 0})
	comp8 := scoreFortify(c, Action{Kind: KindFortify, Tile: 1})
	hi, lo := comp7, comp8
	if c.Tiles[1].Gradient > c.Tiles[0].Gradient {
		hi, lo = comp8, comp7
	}
	if hi.Sec <= lo.Sec {
		t.Errorf("fortify sec on steeper gradient %d <= flatter %d", hi.Sec, lo.Sec)
	}
}

func TestScoreMove_FavorsPosition(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	w.addEdge(1, 2, 1, 0.9)
	w.addBorderTile(1, 7, 2)
	w.canonicalize()
	updateThreat(w, kernelTables())
	c, _ := w.CountryByID(1)
	c.Tiles[0].Gradient = 8

	fort := scoreFortify(c, Action{Kind: KindFortify, Tile: 0})
	move := scoreMove(c, Action{Kind: KindMove, Tile: 0})
	if move.Pos <= fort.Pos {
		t.Errorf("move pos %d <= fortify pos %d, want mobility to favor position", move.Pos, fort.Pos)
	}
	if move.Cost <= fort.Cost {
		t.Errorf("move cost %d <= fortify cost %d, want repositioning slightly dearer", move.Cost, fort.Cost)
	}
}

func mustCountry(t *testing.T, w *World, id uint32) *Country {
	t.Helper()
	c, ok := w.CountryByID(id)
	if !ok {
		t.Fatalf("missing country %d", id)
	}
	return c
}
