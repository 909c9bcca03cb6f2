package component

import (
	"dungeon-inventory/internal/ecs"
	"dungeon-inventory/internal/grid"
)

const CPlacement ecs.ComponentType = 2

// Placement is the cell region an item entity covers in one grid.
type Placement struct {
	Grid   grid.Name
	Region grid.Region
}

func (Placement) Type() ecs.ComponentType { return CPlacement }
