package sim

import (
	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/grid"
)

// ItemCatalog resolves loot ids.
type ItemCatalog interface {
	Lookup(id component.ItemID) (grid.Footprint, component.Item, bool)
}

// OccupancyQuery reports the regions currently covered by items in a grid.
type OccupancyQuery interface {
	RegionsIn(name grid.Name) []grid.Region
}

// SpawnRequest asks the entity store to materialise Template at Region.
type SpawnRequest struct {
	Template component.Item
	Grid     grid.Name
	Region   grid.Region
}

// SpawnSink materialises item entities.
type SpawnSink interface {
	Spawn(req SpawnRequest)
}

// NarrationSink displays narration.
type NarrationSink interface {
	Narrate(line string)
}

// Rand is the randomness narration draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NarrationFunc adapts a plain function to NarrationSink.
type NarrationFunc func(line string)

func (f NarrationFunc) Narrate(line string) { f(line) }

// SpawnFunc adapts a plain function to SpawnSink.
type SpawnFunc func(req SpawnRequest)

func (f SpawnFunc) Spawn(req SpawnRequest) { f(req) }
