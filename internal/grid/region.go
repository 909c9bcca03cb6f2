// Package grid holds the cell-space primitives shared by every panel:
// regions, footprints, grid names and the free-space search.
package grid

import "fmt"

// Name identifies one independently addressed grid.
type Name string

const (
	DropIn    Name = "drop_in"   // invisible grid above the inventory where new items enter
	Inventory Name = "inventory" // item storage
	Crafting  Name = "crafting"  // crafting window for recipes with more than two ingredients
	Equipped  Name = "equipped"  // equipment panel
)

// Names lists every grid in display order.
var Names = []Name{DropIn, Inventory, Crafting, Equipped}

// Region is a rectangle in grid cells. Width spans columns, Height spans rows.
// A zero Width or Height makes the region degenerate: it intersects nothing.
type Region struct {
	Row    int `yaml:"row" json:"row"`
	Col    int `yaml:"col" json:"col"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Footprint is the size of an item in cells.
type Footprint struct {
	Width  int
	Height int
}

// Empty reports whether r is degenerate.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Cells returns the number of cells covered by r.
func (r Region) Cells() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Intersects reports whether r and other share at least one cell.
func (r Region) Intersects(other Region) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return !(other.Col+other.Width <= r.Col || // other left of r
		other.Col >= r.Col+r.Width || // other right of r
		other.Row+other.Height <= r.Row || // other above r
		other.Row >= r.Row+r.Height) // other below r
}

// Contains reports whether other lies fully inside r.
// A degenerate region is only contained in an identical region.
func (r Region) Contains(other Region) bool {
	if other.Empty() || r.Empty() {
		return r == other
	}
	return other.Row >= r.Row &&
		other.Col >= r.Col &&
		other.Row+other.Height <= r.Row+r.Height &&
		other.Col+other.Width <= r.Col+r.Width
}

// ContainsCell reports whether the cell (row, col) lies inside r.
func (r Region) ContainsCell(row, col int) bool {
	return r.Contains(Region{Row: row, Col: col, Width: 1, Height: 1})
}

// Offset translates a region expressed relative to parent into parent's
// coordinate space.
func (r Region) Offset(parent Region) Region {
	r.Row += parent.Row
	r.Col += parent.Col
	return r
}

// Size returns the footprint of r.
func (r Region) Size() Footprint { return Footprint{Width: r.Width, Height: r.Height} }

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Row, r.Col, r.Width, r.Height)
}
