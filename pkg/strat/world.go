// Package strat implements a deterministic per-tick decision core for the
// AI countries of a grand-strategy world: a bounded candidate shortlist per
// country, a six-channel utility scorer with adaptive integer weights, a
// first-order threat field over the country graph, and a tick orchestrator
// that commits the argmax action and records telemetry. All nonlinear math
// runs through precomputed lookup tables so two runs with the same seed and
// the same host edits choose identically, bit for bit.
package strat

import "sort"

// World holds every country and its edges. Countries are kept in a map for
// O(1) lookup plus a sorted id slice so all iteration is ascending by id.
type World struct {
	countries map[uint32]*Country
	ids       []uint32
	tick      uint64
}

func newWorld() *World {
	return &World{countries: make(map[uint32]*Country)}
}

// CountryByID returns the country with the given id.
func (w *World) CountryByID(id uint32) (*Country, bool) {
	c, ok := w.countries[id]
	return c, ok
}

// forEach visits every country in ascending id order.
func (w *World) forEach(fn func(*Country)) {
	for _, id := range w.ids {
		fn(w.countries[id])
	}
}

func (w *World) addCountry(id uint32) error {
	if _, ok := w.countries[id]; ok {
		return editErr("add country", "country %d already exists", id)
	}
	w.countries[id] = newCountry(id)
	w.ids = append(w.ids, id)
	sort.Slice(w.ids, func(i, j int) bool { return w.ids[i] < w.ids[j] })
	return nil
}

func (w *World) addEdge(from, to uint32, distance int, hostility float32) error {
	if from == to {
		return editErr("add edge", "self-loop on country %d", from)
	}
	src, ok := w.countries[from]
	if !ok {
		return editErr("add edge", "unknown country %d", from)
	}
	if _, ok := w.countries[to]; !ok {
		return editErr("add edge", "unknown country %d", to)
	}
	if distance < 0 || distance > kernelMaxDistance {
		return editErr("add edge", "distance %d outside [0,%d]", distance, kernelMaxDistance)
	}
	if src.edgeTo(to) != nil {
		return editErr("add edge", "duplicate edge %d->%d", from, to)
	}
	src.Edges = append(src.Edges, Edge{
		Target:       to,
		Distance:     distance,
		BorderLength: 1,
		Hostility:    clamp32(hostility, 0, 1),
		Relation:     RelationNeutral,
	})
	return nil
}

func (w *World) setRelation(from, to uint32, rel Relation) error {
	src, ok := w.countries[from]
	if !ok {
		return editErr("set relation", "unknown country %d", from)
	}
	e := src.edgeTo(to)
	if e == nil {
		return editErr("set relation", "no edge %d->%d", from, to)
	}
	e.Relation = rel
	return nil
}

func (w *World) setStats(id uint32, s Stats) error {
	c, ok := w.countries[id]
	if !ok {
		return editErr("set stats", "unknown country %d", id)
	}
	c.Stats = s
	return nil
}

func (w *World) addBorderTile(country, tileID, facing uint32) error {
	c, ok := w.countries[country]
	if !ok {
		return editErr("add border tile", "unknown country %d", country)
	}
	if c.tileByID(tileID) != nil {
		return editErr("add border tile", "duplicate tile %d on country %d", tileID, country)
	}
	if c.edgeTo(facing) == nil {
		return editErr("add border tile", "tile %d faces %d but country %d has no such edge", tileID, facing, country)
	}
	c.Tiles = append(c.Tiles, BorderTile{ID: tileID, Facing: facing})
	return nil
}

// canonicalize sorts every country's edges by target id and tiles by tile
// id. Called at the top of each tick so iteration order never depends on
// insertion history.
func (w *World) canonicalize() {
	w.forEach(func(c *Country) {
		sort.Slice(c.Edges, func(i, j int) bool { return c.Edges[i].Target < c.Edges[j].Target })
		sort.Slice(c.Tiles, func(i, j int) bool { return c.Tiles[i].ID < c.Tiles[j].ID })
	})
}

// Snapshot is a deep copy of the world, safe to hold across ticks.
type Snapshot struct {
	Tick      uint64
	Seed      uint64
	Countries []Country
}

func (w *World) snapshot(seed uint64) Snapshot {
	snap := Snapshot{Tick: w.tick, Seed: seed, Countries: make([]Country, 0, len(w.ids))}
	w.forEach(func(c *Country) {
		snap.Countries = append(snap.Countries, c.clone())
	})
	return snap
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
