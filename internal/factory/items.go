// Package factory materialises item entities in an ecs.World.
package factory

import (
	"errors"
	"fmt"

	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/config"
	"dungeon-inventory/internal/ecs"
	"dungeon-inventory/internal/grid"
	"dungeon-inventory/internal/sim"
	"dungeon-inventory/internal/system"
)

var (
	ErrNotItem     = errors.New("entity is not an item")
	ErrWrongSlot   = errors.New("item does not fit that slot")
	ErrSlotMissing = errors.New("slot not configured")
	ErrSlotTaken   = errors.New("slot already occupied")
)

// NewItem creates an item entity from template covering region of the named grid.
func NewItem(w *ecs.World, template component.Item, name grid.Name, region grid.Region) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.CItemComp{Item: template})
	w.Add(id, component.Placement{Grid: name, Region: region})
	w.Add(id, component.TagItem{})
	return id
}

// Spawner is the spawn sink backed by a World. Spawned entities are visible
// to system.Occupancy immediately.
type Spawner struct {
	World *ecs.World
	// OnSpawn, if set, is called with every new entity.
	OnSpawn func(id ecs.EntityID, req sim.SpawnRequest)
}

// Spawn implements sim.SpawnSink.
func (s Spawner) Spawn(req sim.SpawnRequest) {
	id := NewItem(s.World, req.Template, req.Grid, req.Region)
	if s.OnSpawn != nil {
		s.OnSpawn(id, req)
	}
}

// Equip moves item entity id into slot of the equipment panel. The item is
// anchored at the slot's top-left cell and must fit inside the slot.
func Equip(w *ecs.World, id ecs.EntityID, eq config.EquipmentGrid, slot component.EquipmentSlot) error {
	c := w.Get(id, component.CItem)
	if c == nil || !w.Has(id, component.CTagItem) {
		return ErrNotItem
	}
	item := c.(component.CItemComp).Item
	if item.Slot == component.SlotNone || item.Slot != slot {
		return fmt.Errorf("equip %s in %s: %w", item.ID, slot, ErrWrongSlot)
	}
	bound, ok := eq.Slot(slot)
	if !ok || bound.Empty() {
		return fmt.Errorf("equip %s: %s: %w", item.ID, slot, ErrSlotMissing)
	}
	region := grid.Region{Row: bound.Row, Col: bound.Col, Width: item.Width, Height: item.Height}
	if !bound.Contains(region) {
		return fmt.Errorf("equip %s: %s is %v: %w", item.ID, slot, bound, ErrWrongSlot)
	}
	for _, other := range w.Query(component.CTagEquipped) {
		if other != id && w.Get(other, component.CTagEquipped).(component.TagEquipped).Slot == slot {
			return fmt.Errorf("equip %s: %s: %w", item.ID, slot, ErrSlotTaken)
		}
	}
	w.Add(id, component.Placement{Grid: grid.Equipped, Region: region})
	w.Add(id, component.TagEquipped{Slot: slot})
	return nil
}

// Move places item entity id at the first free place in dest and clears any
// equipped tag. It returns false, leaving the item where it was, when dest
// has no room or is the equipment panel.
func Move(w *ecs.World, id ecs.EntityID, cfg config.GridConfig, dest grid.Name) bool {
	c := w.Get(id, component.CItem)
	if c == nil || dest == grid.Equipped {
		return false
	}
	bound, ok := cfg.Bounds(dest)
	if !ok {
		return false
	}
	var occupied []grid.Region
	for _, other := range (system.Occupancy{World: w}).ItemsIn(dest) {
		if other != id {
			occupied = append(occupied, w.Get(other, component.CPlacement).(component.Placement).Region)
		}
	}
	item := c.(component.CItemComp).Item
	region, ok := grid.FindFootprint(bound, item.Footprint(), occupied)
	if !ok {
		return false
	}
	w.Remove(id, component.CTagEquipped)
	w.Add(id, component.Placement{Grid: dest, Region: region})
	return true
}

// Unequip moves an equipped item back to the first free place in dest.
// It returns false, leaving the item equipped, when dest has no room.
func Unequip(w *ecs.World, id ecs.EntityID, cfg config.GridConfig, dest grid.Name) bool {
	if !w.Has(id, component.CTagEquipped) {
		return false
	}
	return Move(w, id, cfg, dest)
}
