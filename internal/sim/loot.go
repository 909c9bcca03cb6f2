package sim

import (
	"log/slog"

	"dungeon-inventory/internal/config"
	"dungeon-inventory/internal/grid"
)

// LootOutcome describes what happened to one loot request.
type LootOutcome uint8

const (
	LootSpawned LootOutcome = iota // placed and handed to the spawn sink
	LootUnknown                    // id not in the catalog
	LootNoSpace                    // target grid full for this footprint
)

func (o LootOutcome) String() string {
	switch o {
	case LootSpawned:
		return "spawned"
	case LootUnknown:
		return "unknown"
	case LootNoSpace:
		return "no_space"
	}
	return "?"
}

// LootHandler places looted items into a grid.
type LootHandler struct {
	Grids     config.GridConfig
	Target    grid.Name // grid items are placed in; empty means grid.DropIn
	Catalog   ItemCatalog
	Occupancy OccupancyQuery
	Spawner   SpawnSink
	Logger    *slog.Logger
}

// Handle processes events in arrival order. Unknown ids and full grids are
// expected outcomes: they are logged at debug level and the event is dropped.
func (h *LootHandler) Handle(events []LootRequest) []LootOutcome {
	if len(events) == 0 {
		return nil
	}
	target := h.Target
	if target == "" {
		target = grid.DropIn
	}
	bound, _ := h.Grids.Bounds(target)
	log := orDefault(h.Logger)

	// Regions handed to the sink earlier in this batch. They count as
	// occupied even if the sink has not materialised them yet.
	var claimed []grid.Region
	outcomes := make([]LootOutcome, 0, len(events))
	for _, ev := range events {
		log.Debug("received loot request", "item", string(ev.Item))
		fp, item, ok := h.Catalog.Lookup(ev.Item)
		if !ok {
			log.Debug("loot references unknown item", "item", string(ev.Item))
			outcomes = append(outcomes, LootUnknown)
			continue
		}
		snapshot := h.Occupancy.RegionsIn(target)
		occupied := make([]grid.Region, 0, len(snapshot)+len(claimed))
		occupied = append(append(occupied, snapshot...), claimed...)
		region, ok := grid.FindFootprint(bound, fp, occupied)
		if !ok {
			log.Debug("no free space for loot", "item", string(ev.Item), "grid", string(target))
			outcomes = append(outcomes, LootNoSpace)
			continue
		}
		claimed = append(claimed, region)
		h.Spawner.Spawn(SpawnRequest{Template: item, Grid: target, Region: region})
		outcomes = append(outcomes, LootSpawned)
	}
	return outcomes
}
