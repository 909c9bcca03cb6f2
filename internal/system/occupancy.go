package system

import (
	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/ecs"
	"dungeon-inventory/internal/grid"
)

// Occupancy answers grid occupancy questions from the live item entities in
// a World.
type Occupancy struct {
	World *ecs.World
}

// RegionsIn returns the regions covered by item entities placed in the named
// grid, in entity ID order.
func (o Occupancy) RegionsIn(name grid.Name) []grid.Region {
	var out []grid.Region
	for _, id := range o.World.Query(component.CTagItem, component.CPlacement) {
		p := o.World.Get(id, component.CPlacement).(component.Placement)
		if p.Grid == name {
			out = append(out, p.Region)
		}
	}
	return out
}

// ItemsIn returns the item entities placed in the named grid, in ID order.
func (o Occupancy) ItemsIn(name grid.Name) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range o.World.Query(component.CTagItem, component.CPlacement) {
		if o.World.Get(id, component.CPlacement).(component.Placement).Grid == name {
			out = append(out, id)
		}
	}
	return out
}

// ItemAt returns the item entity covering (row, col) in the named grid.
func (o Occupancy) ItemAt(name grid.Name, row, col int) (ecs.EntityID, bool) {
	for _, id := range o.World.Query(component.CTagItem, component.CPlacement) {
		p := o.World.Get(id, component.CPlacement).(component.Placement)
		if p.Grid == name && p.Region.ContainsCell(row, col) {
			return id, true
		}
	}
	return ecs.NilEntity, false
}
