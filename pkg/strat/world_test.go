package strat

import (
	"errors"
	"testing"
)

func TestAddCountry_Duplicate(t *testing.T) {
	w := newWorld()
	if err := w.addCountry(1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := w.addCountry(1)
	if !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("duplicate country: got %v, want ErrInvalidGraphEdit", err)
	}
}

func TestAddEdge_Validation(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)

	if err := w.addEdge(1, 1, 1, 0.5); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("self-loop: got %v", err)
	}
	if err := w.addEdge(1, 9, 1, 0.5); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("unknown target: got %v", err)
	}
	if err := w.addEdge(9, 1, 1, 0.5); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("unknown source: got %v", err)
	}
	if err := w.addEdge(1, 2, 21, 0.5); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("distance out of range: got %v", err)
	}
	if err := w.addEdge(1, 2, -1, 0.5); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("negative distance: got %v", err)
	}
	if err := w.addEdge(1, 2, 1, 0.5); err != nil {
		t.Fatalf("valid edge rejected: %v", err)
	}
	if err := w.addEdge(1, 2, 1, 0.5); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("duplicate edge: got %v", err)
	}
}

func TestAddEdge_HostilityClamped(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	w.addCountry(3)
	w.addEdge(1, 2, 1, 1.5)
	w.addEdge(1, 3, 1, -0.5)

	c, _ := w.CountryByID(1)
	if got := c.edgeTo(2).Hostility; got != 1 {
		t.Errorf("hostility 1.5 stored as %v, want clamp to 1", got)
	}
	if got := c.edgeTo(3).Hostility; got != 0 {
		t.Errorf("hostility -0.5 stored as %v, want clamp to 0", got)
	}
}

func TestCanonicalize_EdgeOrder(t *testing.T) {
	w := newWorld()
	for _, id := range []uint32{5, 1, 3} {
		w.addCountry(id)
	}
	// Insert out of order; canonicalize must sort by target id.
	w.addEdge(1, 5, 1, 0)
	w.addEdge(1, 3, 1, 0)
	w.canonicalize()

	c, _ := w.CountryByID(1)
	if c.Edges[0].Target != 3 || c.Edges[1].Target != 5 {
		t.Errorf("edges not in ascending target order: %v, %v", c.Edges[0].Target, c.Edges[1].Target)
	}

	// Country iteration ascends regardless of insertion order.
	var seen []uint32
	w.forEach(func(c *Country) { seen = append(seen, c.ID) })
	want := []uint32{1, 3, 5}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("iteration order %v, want %v", seen, want)
		}
	}
}

func TestSetRelation_RequiresEdge(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	if err := w.setRelation(1, 2, RelationAlly); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("relation without edge: got %v", err)
	}
	w.addEdge(1, 2, 1, 0)
	if err := w.setRelation(1, 2, RelationAlly); err != nil {
		t.Fatalf("set relation: %v", err)
	}
	c, _ := w.CountryByID(1)
	if c.edgeTo(2).Relation != RelationAlly {
		t.Error("relation not stored")
	}
}

func TestAddBorderTile_Validation(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	w.addEdge(1, 2, 1, 0.5)

	if err := w.addBorderTile(1, 10, 3); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("tile facing missing edge: got %v", err)
	}
	if err := w.addBorderTile(1, 10, 2); err != nil {
		t.Fatalf("valid tile rejected: %v", err)
	}
	if err := w.addBorderTile(1, 10, 2); !errors.Is(err, ErrInvalidGraphEdit) {
		t.Errorf("duplicate tile: got %v", err)
	}
}

func TestSnapshot_DeepCopy(t *testing.T) {
	w := newWorld()
	w.addCountry(1)
	w.addCountry(2)
	w.addEdge(1, 2, 1, 0.5)

	snap := w.snapshot(42)
	if snap.Seed != 42 {
		t.Errorf("seed = %d, want 42", snap.Seed)
	}
	if len(snap.Countries) != 2 {
		t.Fatalf("snapshot has %d countries, want 2", len(snap.Countries))
	}

	// Mutating the snapshot must not leak into the world.
	snap.Countries[0].Edges[0].Hostility = 0.9
	c, _ := w.CountryByID(1)
	if c.Edges[0].Hostility != 0.5 {
		t.Error("snapshot mutation leaked into world state")
	}
}
