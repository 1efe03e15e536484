package strat

import "sort"

// candidate pairs an action with the cheap proxy used only for pruning.
type candidate struct {
	action   Action
	priority float32
	tie      uint32
}

// takeTop sorts candidates by priority descending, breaking ties by smaller
// target id then smaller kind code, and truncates to k.
func takeTop(cands []candidate, k int) []candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].priority != cands[j].priority {
			return cands[i].priority > cands[j].priority
		}
		if cands[i].tie != cands[j].tie {
			return cands[i].tie < cands[j].tie
		}
		return cands[i].action.Kind < cands[j].action.Kind
	})
	if len(cands) > k {
		cands = cands[:k]
	}
	return cands
}

// generateShortlist produces the bounded candidate set for one country.
// Pass is always present, so the list is never empty; with default caps it
// never exceeds 13 entries. The returned order is canonical: ascending kind
// code, then ascending target/tile/sector id, which is also the argmax
// tie-break order.
func generateShortlist(c *Country, w *World, t *Tables, caps ShortlistCaps) []Action {
	var out []Action

	// Attacks: proxy is the raw force ratio attenuated by distance.
	var attacks []candidate
	for i := range c.Edges {
		e := &c.Edges[i]
		n, ok := w.countries[e.Target]
		if !ok {
			continue
		}
		ratio := c.Stats.MilEff / maxf(n.Stats.MilEff, minDenominator)
		attacks = append(attacks, candidate{
			action:   Action{Kind: KindAttack, Edge: i},
			priority: ratio * t.Kernel.Get(e.Distance),
			tie:      e.Target,
		})
	}
	for _, cand := range takeTop(attacks, caps.Attack) {
		out = append(out, cand.action)
	}

	// Invest: crude ROI proxy straight from the marginal values.
	var invests []candidate
	for s := Sector(0); s < sectorCount; s++ {
		invests = append(invests, candidate{
			action:   Action{Kind: KindInvest, Sector: s},
			priority: c.Marginals.get(s),
			tie:      uint32(s),
		})
	}
	for _, cand := range takeTop(invests, caps.Invest) {
		out = append(out, cand.action)
	}

	// Research: the same weighted marginal sum the scorer will use.
	var research []candidate
	for s := Sector(0); s < sectorCount; s++ {
		row := techMatrix[s]
		gain := row[SectorInfrastructure]*c.Marginals.Infrastructure +
			row[SectorMilitary]*c.Marginals.Military +
			row[SectorEconomy]*c.Marginals.Economy +
			row[SectorTechnology]*c.Marginals.Technology
		research = append(research, candidate{
			action:   Action{Kind: KindResearch, Sector: s},
			priority: gain,
			tie:      uint32(s),
		})
	}
	for _, cand := range takeTop(research, caps.Research) {
		out = append(out, cand.action)
	}

	// Diplomacy: propose the next-better stance to the most valuable calm
	// neighbors. Hot borders get no offers.
	var diplo []candidate
	for i := range c.Edges {
		e := &c.Edges[i]
		if e.Hostility > diplomacyHostilityCap {
			continue
		}
		prop, ok := nextStance(e.Relation)
		if !ok {
			continue
		}
		n, ok := w.countries[e.Target]
		if !ok {
			continue
		}
		diplo = append(diplo, candidate{
			action:   Action{Kind: KindDiplomacy, Target: e.Target, Prop: prop},
			priority: (1 - e.Hostility) * t.Kernel.Get(e.Distance) * n.Stats.MilEff,
			tie:      e.Target,
		})
	}
	for _, cand := range takeTop(diplo, caps.Diplomacy) {
		out = append(out, cand.action)
	}

	// Border tiles: top gradients yield Fortify until the works cap out,
	// then Move (repositioning the garrison is all that is left).
	var tiles []candidate
	for i := range c.Tiles {
		tile := &c.Tiles[i]
		kind := KindFortify
		if tile.Fortification >= fortificationCap {
			kind = KindMove
		}
		tiles = append(tiles, candidate{
			action:   Action{Kind: kind, Tile: i},
			priority: tile.Gradient,
			tie:      tile.ID,
		})
	}
	for _, cand := range takeTop(tiles, caps.Fortify) {
		out = append(out, cand.action)
	}

	out = append(out, Action{Kind: KindPass})

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].tieKey(c) < out[j].tieKey(c)
	})
	return out
}
