package strat

// isEnemyEdge reports whether the neighbor behind this edge counts as a
// threat source: any relation outside ally/pact/trade, or any border hotter
// than the hostility threshold. An explicit alliance always wins.
func isEnemyEdge(e *Edge) bool {
	if e.Relation == RelationAlly {
		return false
	}
	switch e.Relation {
	case RelationPact, RelationTrade:
		return e.Hostility > hostilityEnemyThreshold
	}
	return true
}

// updateThreat recomputes the threat index for every country from its
// direct neighbors, then refreshes the per-tile gradients. Full
// recomputation every tick; no hidden history.
//
//	TI_i = Σ_enemies K(d)·M_j·h − Σ_allies K(d)·M_k
//
// The hostility h is the one the country itself records on the edge: its
// own read of the border, which is what its decisions react to.
func updateThreat(w *World, t *Tables) {
	w.forEach(func(c *Country) {
		ti := float32(0)
		for i := range c.Edges {
			e := &c.Edges[i]
			n, ok := w.countries[e.Target]
			if !ok {
				continue
			}
			k := t.Kernel.Get(e.Distance)
			if e.Relation == RelationAlly {
				ti -= k * n.Stats.MilEff
			} else if isEnemyEdge(e) {
				ti += k * n.Stats.MilEff * e.Hostility
			}
		}
		c.ThreatIndex = ti
	})

	// Tile gradients need every TI in place first.
	w.forEach(func(c *Country) {
		for i := range c.Tiles {
			tile := &c.Tiles[i]
			tile.Gradient = abs32(c.ThreatIndex - hostileContribution(w, t, c, tile.Facing))
		}
	})
}

// hostileContribution is the pseudo-TI along one edge: the threat this
// single neighbor feeds into the country's index. Used as the local proxy
// for the gradient at tiles facing that neighbor.
func hostileContribution(w *World, t *Tables, c *Country, facing uint32) float32 {
	e := c.edgeTo(facing)
	if e == nil || !isEnemyEdge(e) {
		return 0
	}
	n, ok := w.countries[e.Target]
	if !ok {
		return 0
	}
	return t.Kernel.Get(e.Distance) * n.Stats.MilEff * e.Hostility
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
