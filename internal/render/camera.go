package render

// Camera translates between grid cells and screen coordinates.
// Each cell is two terminal columns wide so emoji glyphs fit.
type Camera struct {
	OriginX    int // screen column of cell column 0
	OriginY    int // screen row of cell row 0
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera whose cell (0,0) sits at screen (ox, oy).
func NewCamera(ox, oy, viewW, viewH int) *Camera {
	return &Camera{OriginX: ox, OriginY: oy, ViewWidth: viewW, ViewHeight: viewH}
}

// CellToScreen converts cell (row, col) to screen (sx, sy).
// visible is false when the cell falls outside the viewport.
func (c *Camera) CellToScreen(row, col int) (sx, sy int, visible bool) {
	sx = c.OriginX + col*2
	sy = c.OriginY + row
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToCell converts screen (sx, sy) to the cell under it.
func (c *Camera) ScreenToCell(sx, sy int) (row, col int) {
	dx := sx - c.OriginX
	if dx < 0 {
		dx-- // floor division for columns left of the origin
	}
	return sy - c.OriginY, dx / 2
}
