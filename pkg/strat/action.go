package strat

import "fmt"

// Kind is the action discriminator. The numeric order is the canonical
// shortlist and tie-break order and must not be rearranged.
type Kind uint8

const (
	KindAttack Kind = iota
	KindInvest
	KindResearch
	KindDiplomacy
	KindFortify
	KindMove
	KindPass
)

func (k Kind) String() string {
	switch k {
	case KindAttack:
		return "attack"
	case KindInvest:
		return "invest"
	case KindResearch:
		return "research"
	case KindDiplomacy:
		return "diplomacy"
	case KindFortify:
		return "fortify"
	case KindMove:
		return "move"
	case KindPass:
		return "pass"
	}
	return "unknown"
}

// Sector identifies an investment sector or research tech family.
type Sector uint8

const (
	SectorInfrastructure Sector = iota
	SectorMilitary
	SectorEconomy
	SectorTechnology
	sectorCount = 4
)

func (s Sector) String() string {
	switch s {
	case SectorInfrastructure:
		return "infrastructure"
	case SectorMilitary:
		return "military"
	case SectorEconomy:
		return "economy"
	case SectorTechnology:
		return "technology"
	}
	return "unknown"
}

// Action is a tagged variant describing one candidate. Only the fields for
// the tagged kind are meaningful. Actions live for a single tick.
type Action struct {
	Kind   Kind
	Edge   int      // Attack: index into the country's edge list
	Sector Sector   // Invest, Research
	Target uint32   // Diplomacy: proposed partner
	Prop   Relation // Diplomacy: proposed relation
	Tile   int      // Fortify, Move: index into the country's tile list
}

// String renders the action for logs and telemetry inspection.
func (a Action) String() string {
	switch a.Kind {
	case KindAttack:
		return fmt.Sprintf("attack(edge=%d)", a.Edge)
	case KindInvest:
		return fmt.Sprintf("invest(%s)", a.Sector)
	case KindResearch:
		return fmt.Sprintf("research(%s)", a.Sector)
	case KindDiplomacy:
		return fmt.Sprintf("diplomacy(%d,%s)", a.Target, a.Prop)
	case KindFortify:
		return fmt.Sprintf("fortify(tile=%d)", a.Tile)
	case KindMove:
		return fmt.Sprintf("move(tile=%d)", a.Tile)
	case KindPass:
		return "pass"
	}
	return "unknown"
}

// tieKey is the secondary deterministic ordering key within one kind:
// target country id for attacks and diplomacy, tile id for border actions,
// sector code otherwise.
func (a Action) tieKey(c *Country) uint32 {
	switch a.Kind {
	case KindAttack:
		return c.Edges[a.Edge].Target
	case KindDiplomacy:
		return a.Target
	case KindFortify, KindMove:
		return c.Tiles[a.Tile].ID
	case KindInvest, KindResearch:
		return uint32(a.Sector)
	}
	return 0
}

// ShortlistCaps bounds the candidate count per action type. Fortify and
// Move share the fortify budget: the top-gradient tiles yield Fortify until
// their fortification caps out, then Move.
type ShortlistCaps struct {
	Attack    int
	Fortify   int
	Invest    int
	Research  int
	Diplomacy int
}

// DefaultCaps returns the default per-type caps; with Pass the shortlist
// never exceeds 13 entries.
func DefaultCaps() ShortlistCaps {
	return ShortlistCaps{
		Attack:    3,
		Fortify:   3,
		Invest:    2,
		Research:  2,
		Diplomacy: 2,
	}
}
