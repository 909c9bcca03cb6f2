package sim

import (
	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/grid"
)

// seqRand returns values from a fixed sequence, wrapping each into [0,n).
type seqRand struct {
	values []int
	calls  int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

type fakeCatalog map[component.ItemID]component.Item

func (c fakeCatalog) Lookup(id component.ItemID) (grid.Footprint, component.Item, bool) {
	item, ok := c[id]
	return item.Footprint(), item, ok
}

// fakeStore is both the occupancy query and the spawn sink. With
// materialise set, spawns become visible to later RegionsIn calls.
type fakeStore struct {
	fixed       map[grid.Name][]grid.Region
	materialise bool
	spawned     []SpawnRequest
	queries     int
}

func (s *fakeStore) RegionsIn(name grid.Name) []grid.Region {
	s.queries++
	out := append([]grid.Region(nil), s.fixed[name]...)
	if s.materialise {
		for _, req := range s.spawned {
			if req.Grid == name {
				out = append(out, req.Region)
			}
		}
	}
	return out
}

func (s *fakeStore) Spawn(req SpawnRequest) { s.spawned = append(s.spawned, req) }

type lines []string

func (l *lines) Narrate(line string) { *l = append(*l, line) }

var testItems = fakeCatalog{
	"chest":  {ID: "chest", Name: "Chest", Width: 2, Height: 2},
	"flask":  {ID: "flask", Name: "Flask", Width: 1, Height: 1},
	"spear":  {ID: "spear", Name: "Spear", Width: 1, Height: 4},
	"banner": {ID: "banner", Name: "Banner", Width: 3, Height: 1},
}
