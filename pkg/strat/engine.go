package strat

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultLogRetention is the per-country telemetry ring size unless the
// host overrides it.
const DefaultLogRetention = 1024

// Applier is the host hook invoked for each committed action during the
// Apply step. Returning an error marks the entry CommitRejected; the tick
// continues with the remaining countries.
type Applier interface {
	Apply(countryID uint32, a Action, c Components) error
}

// Engine is the host-facing decision core. All mutators are legal only
// between ticks; Tick itself never mutates the graph beyond the Apply step.
type Engine struct {
	world     *World
	tables    *Tables
	caps      ShortlistCaps
	seed      uint64
	retention int
	logs      map[uint32]*logRing
	applier   Applier
	logger    zerolog.Logger
}

// New creates an engine with an empty world. The seed is recorded into
// snapshots so runs can be labeled; the core itself draws no randomness.
func New(seed uint64) *Engine {
	return &Engine{
		world:     newWorld(),
		tables:    kernelTables(),
		caps:      DefaultCaps(),
		seed:      seed,
		retention: DefaultLogRetention,
		logs:      make(map[uint32]*logRing),
		logger:    zerolog.Nop(),
	}
}

// SetApplier installs the host's action application hook. With none
// installed the engine applies the built-in default effects.
func (e *Engine) SetApplier(a Applier) { e.applier = a }

// SetLogger routes engine events (commit rejections) to the given logger.
func (e *Engine) SetLogger(l zerolog.Logger) { e.logger = l }

// SetRetention bounds the per-country telemetry ring. Affects only
// countries added afterwards; existing rings keep their capacity.
func (e *Engine) SetRetention(n int) { e.retention = n }

// SetCaps replaces the per-type shortlist caps.
func (e *Engine) SetCaps(c ShortlistCaps) { e.caps = c }

// AddCountry registers a country with default stats.
func (e *Engine) AddCountry(id uint32) error {
	if err := e.world.addCountry(id); err != nil {
		return err
	}
	e.logs[id] = newLogRing(e.retention)
	return nil
}

// AddEdge adds a directed edge. Distance must be a bucket in [0,20];
// hostility is clamped into [0,1].
func (e *Engine) AddEdge(from, to uint32, distance int, hostility float32) error {
	return e.world.addEdge(from, to, distance, hostility)
}

// SetRelation rewrites the stance on the from->to edge.
func (e *Engine) SetRelation(from, to uint32, rel Relation) error {
	return e.world.setRelation(from, to, rel)
}

// SetStats replaces a country's scalar stats.
func (e *Engine) SetStats(id uint32, s Stats) error {
	return e.world.setStats(id, s)
}

// AddBorderTile registers a border tile on a country, facing one of its
// existing edges.
func (e *Engine) AddBorderTile(country, tileID, facing uint32) error {
	return e.world.addBorderTile(country, tileID, facing)
}

// Tick runs the fixed six-step sequence once: weights, threat field,
// marginals, shortlists, score-and-choose, apply. Every step iterates
// countries in ascending id order.
func (e *Engine) Tick() {
	w := e.world
	w.canonicalize()

	w.forEach(updateWeights)
	updateThreat(w, e.tables)
	w.forEach(updateMarginals)

	shortlists := make([][]Action, 0, len(w.ids))
	w.forEach(func(c *Country) {
		shortlist := generateShortlist(c, w, e.tables, e.caps)
		if len(shortlist) == 0 {
			panic(fmt.Sprintf("strat: empty shortlist for country %d", c.ID))
		}
		shortlists = append(shortlists, shortlist)
	})

	type decision struct {
		country *Country
		entry   DecisionLog
	}
	decisions := make([]decision, 0, len(w.ids))

	next := 0
	w.forEach(func(c *Country) {
		shortlist := shortlists[next]
		next++

		scored := make([]ScoredAction, len(shortlist))
		bestIdx := 0
		var bestComp Components
		var bestScore int32
		for i, a := range shortlist {
			comp := scoreAction(c, a, w, e.tables)
			score := comp.Score(c.Weights)
			scored[i] = ScoredAction{Action: a, Score: score}
			if i == 0 || score > bestScore {
				bestIdx, bestScore, bestComp = i, score, comp
			}
		}

		decisions = append(decisions, decision{
			country: c,
			entry: DecisionLog{
				CountryID:  c.ID,
				Tick:       w.tick,
				Chosen:     shortlist[bestIdx],
				Score:      bestScore,
				Components: bestComp,
				Weights:    c.Weights,
				RunnersUp:  runnersUp(scored, bestIdx),
			},
		})
	})

	for i := range decisions {
		d := &decisions[i]
		if err := e.apply(d.country, d.entry.Chosen, d.entry.Components); err != nil {
			d.entry.CommitRejected = true
			e.logger.Warn().
				Uint64("tick", w.tick).
				Uint32("country", d.country.ID).
				Stringer("action", d.entry.Chosen).
				Err(err).
				Msg("commit rejected")
		}
		e.logs[d.country.ID].push(d.entry)
	}

	w.tick++
}

// runnersUp picks the two highest-scoring rejected candidates. The scored
// slice is already in canonical shortlist order, so equal scores resolve to
// the smaller kind code and target id.
func runnersUp(scored []ScoredAction, bestIdx int) []ScoredAction {
	first, second := -1, -1
	for i := range scored {
		if i == bestIdx {
			continue
		}
		switch {
		case first < 0 || scored[i].Score > scored[first].Score:
			second = first
			first = i
		case second < 0 || scored[i].Score > scored[second].Score:
			second = i
		}
	}
	out := make([]ScoredAction, 0, 2)
	if first >= 0 {
		out = append(out, scored[first])
	}
	if second >= 0 {
		out = append(out, scored[second])
	}
	return out
}

func (e *Engine) apply(c *Country, a Action, comp Components) error {
	if e.applier != nil {
		return e.applier.Apply(c.ID, a, comp)
	}
	e.applyDefault(c, a, comp)
	return nil
}

// Tick number of the next tick to run.
func (e *Engine) CurrentTick() uint64 {
	return e.world.tick
}

// Logs returns every retained telemetry entry, countries in ascending id
// order and each country's entries oldest first. The slice is a copy.
func (e *Engine) Logs() []DecisionLog {
	var out []DecisionLog
	for _, id := range e.world.ids {
		out = append(out, e.logs[id].ordered()...)
	}
	return out
}

// LogsOf returns the retained entries for one country, oldest first.
func (e *Engine) LogsOf(id uint32) []DecisionLog {
	ring, ok := e.logs[id]
	if !ok {
		return nil
	}
	return ring.ordered()
}

// Snapshot returns a deep copy of the world plus run metadata.
func (e *Engine) Snapshot() Snapshot {
	return e.world.snapshot(e.seed)
}

// CountryByID exposes read access for hosts and tests.
func (e *Engine) CountryByID(id uint32) (*Country, bool) {
	return e.world.CountryByID(id)
}
