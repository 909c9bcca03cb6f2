package component

import (
	"dungeon-inventory/internal/ecs"
	"dungeon-inventory/internal/grid"
)

// ItemID names an item template in the catalog.
type ItemID string

// Item is the template an item entity is spawned from.
type Item struct {
	ID     ItemID
	Name   string
	Glyph  string
	Slot   EquipmentSlot // SlotNone for items that cannot be equipped
	Width  int           // footprint in cells
	Height int
}

// IsEmpty returns true when this Item is the zero value.
func (i Item) IsEmpty() bool { return i.ID == "" }

// Footprint returns how many cells the item covers.
func (i Item) Footprint() grid.Footprint {
	return grid.Footprint{Width: i.Width, Height: i.Height}
}

// CItem is the ECS component type for item entities.
const CItem ecs.ComponentType = 1

// CItemComp wraps Item so it can be stored on an item entity.
type CItemComp struct{ Item }

func (CItemComp) Type() ecs.ComponentType { return CItem }
