package component

import "dungeon-inventory/internal/ecs"

const (
	CTagItem     ecs.ComponentType = 3
	CTagEquipped ecs.ComponentType = 4
)

// TagItem marks an entity managed by the inventory grids.
type TagItem struct{}

func (TagItem) Type() ecs.ComponentType { return CTagItem }

// TagEquipped marks an item currently worn in an equipment slot.
type TagEquipped struct {
	Slot EquipmentSlot
}

func (TagEquipped) Type() ecs.ComponentType { return CTagEquipped }
