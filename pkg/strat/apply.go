package strat

// Default application effects used when the host installs no Applier.
// Attack loot is denormalized back to resource units with the attack
// scorer's resource norm; the other factors are fixed effect sizes applied
// to the committed components.
const (
	applyLootFactor   = 50.0
	applyCostFactor   = 2.0
	applyGrowthFactor = 0.1
	applyTechStep     = 0.1
	applyFortifyStep  = 0.5
	applyGarrisonStep = 1.0
)

// applyDefault mutates the world with the built-in effect of the chosen
// action.
func (e *Engine) applyDefault(c *Country, a Action, comp Components) {
	switch a.Kind {
	case KindAttack:
		c.Stats.Resources = maxf(c.Stats.Resources+float32(comp.Res)/fixedOne*applyLootFactor, 0)
	case KindInvest:
		c.Stats.Growth += float32(comp.Growth) / fixedOne * applyGrowthFactor
		c.Stats.Resources = maxf(c.Stats.Resources-float32(comp.Cost)/fixedOne*applyCostFactor, 0)
	case KindResearch:
		c.Stats.TechLevel += applyTechStep
		c.Stats.Resources = maxf(c.Stats.Resources-float32(comp.Cost)/fixedOne*applyCostFactor, 0)
	case KindDiplomacy:
		// Upgrade the stance on both directions where edges exist. The
		// acceptance probability already discounted the scored value; the
		// default world model just commits the new stance.
		if edge := c.edgeTo(a.Target); edge != nil && a.Prop > edge.Relation {
			edge.Relation = a.Prop
		}
		if n, ok := e.world.countries[a.Target]; ok {
			if back := n.edgeTo(c.ID); back != nil && a.Prop > back.Relation {
				back.Relation = a.Prop
			}
		}
	case KindFortify:
		c.Tiles[a.Tile].Fortification += applyFortifyStep
	case KindMove:
		c.Tiles[a.Tile].Garrison += applyGarrisonStep
	case KindPass:
	}
}
