// Package catalog resolves item ids to the templates and footprints used by
// the loot handler.
package catalog

import (
	"fmt"

	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/grid"
)

// Items is an immutable id → template index.
type Items struct {
	byID  map[component.ItemID]component.Item
	order []component.ItemID
}

// New indexes templates. Templates must have a unique id and a positive
// footprint.
func New(templates []component.Item) (*Items, error) {
	c := &Items{byID: make(map[component.ItemID]component.Item, len(templates))}
	for _, t := range templates {
		if t.IsEmpty() {
			return nil, fmt.Errorf("item %q: missing id", t.Name)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id", t.ID)
		}
		if t.Width <= 0 || t.Height <= 0 {
			return nil, fmt.Errorf("item %q: footprint %dx%d must be positive", t.ID, t.Width, t.Height)
		}
		c.byID[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c, nil
}

// Lookup returns the footprint and template for id.
func (c *Items) Lookup(id component.ItemID) (grid.Footprint, component.Item, bool) {
	t, ok := c.byID[id]
	if !ok {
		return grid.Footprint{}, component.Item{}, false
	}
	return t.Footprint(), t, true
}

// IDs returns every id in catalog order.
func (c *Items) IDs() []component.ItemID {
	return append([]component.ItemID(nil), c.order...)
}

// Len returns the number of templates.
func (c *Items) Len() int { return len(c.order) }
