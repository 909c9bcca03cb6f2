// Package ecs is a small entity/component store. The inventory core never
// touches it directly; it backs the occupancy query and spawn sink the
// simulation is wired to.
package ecs

import "strconv"

// EntityID identifies an entity in a World.
type EntityID uint64

// NilEntity is never handed out by CreateEntity.
const NilEntity EntityID = 0

func (id EntityID) String() string { return "entity#" + strconv.FormatUint(uint64(id), 10) }

// ComponentType keys a component store.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
