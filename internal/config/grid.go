// Package config loads the grid layout and dungeon texts the simulation runs
// with. Loading never fails outward: a broken source is logged and replaced
// by built-in defaults so a bad file can degrade the layout but never stop
// the game.
package config

import (
	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/grid"
)

// GridFile is the file name of the grid layout in both config directories.
const GridFile = "grid.yaml"

// GridConfig holds the named grids. Each grid is its own coordinate space;
// they are not checked against each other for overlap.
type GridConfig struct {
	// An invisible grid above the inventory grid, this is where new items spawn in.
	DropIn grid.Region `yaml:"drop_in"`
	// This is where items are stored.
	Inventory grid.Region `yaml:"inventory"`
	// A small crafting window used for complex recipes (of more than two ingredients).
	Crafting grid.Region   `yaml:"crafting"`
	Equipped EquipmentGrid `yaml:"equipped"`
}

// EquipmentGrid is the equipment panel. Slot regions are relative to Coords.
type EquipmentGrid struct {
	Coords grid.Region                             `yaml:"coords"`
	Slots  map[component.EquipmentSlot]grid.Region `yaml:"slots"`
}

// Bounds returns the absolute bound of the named grid.
func (c GridConfig) Bounds(name grid.Name) (grid.Region, bool) {
	switch name {
	case grid.DropIn:
		return c.DropIn, true
	case grid.Inventory:
		return c.Inventory, true
	case grid.Crafting:
		return c.Crafting, true
	case grid.Equipped:
		return c.Equipped.Coords, true
	}
	return grid.Region{}, false
}

// Slot returns the absolute region of slot.
func (e EquipmentGrid) Slot(slot component.EquipmentSlot) (grid.Region, bool) {
	r, ok := e.Slots[slot]
	if !ok {
		return grid.Region{}, false
	}
	return r.Offset(e.Coords), true
}

// SlotAt returns the slot covering the absolute cell (row, col). Slots are
// probed in panel order so overlapping slot definitions resolve the same way
// every time.
func (e EquipmentGrid) SlotAt(row, col int) (component.EquipmentSlot, bool) {
	for _, s := range component.EquipmentSlots {
		if r, ok := e.Slot(s); ok && r.ContainsCell(row, col) {
			return s, true
		}
	}
	return component.SlotNone, false
}

// OutOfBounds lists, in panel order, the slots whose absolute region is not
// inside the panel. Degenerate (unset) slots are not reported.
func (e EquipmentGrid) OutOfBounds() []component.EquipmentSlot {
	var out []component.EquipmentSlot
	for _, s := range component.EquipmentSlots {
		r, ok := e.Slot(s)
		if ok && !r.Empty() && !e.Coords.Contains(r) {
			out = append(out, s)
		}
	}
	return out
}
