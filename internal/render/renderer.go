// Package render draws the grid layout and its items onto a tcell screen.
package render

import (
	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/config"
	"dungeon-inventory/internal/ecs"
	"dungeon-inventory/internal/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows reserved below the panels.
const HUDHeight = 6

// Renderer draws the inventory panels onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen. Cell (0,0) is drawn
// one row and one column in from the top-left corner.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(1, 1, w, h-HUDHeight),
	}
}

// Camera exposes the cell/screen mapping, e.g. for mouse hit tests.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize recomputes the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, h-HUDHeight
}

// DrawFrame clears the screen and renders every panel and the items placed
// in them. It does not call Show.
func (r *Renderer) DrawFrame(w *ecs.World, cfg config.GridConfig) {
	r.screen.Clear()
	for _, name := range grid.Names {
		bound, _ := cfg.Bounds(name)
		r.drawPanel(name, bound)
	}
	r.drawSlots(cfg.Equipped)
	r.drawItems(w)
}

// drawPanel fills every cell of a panel with its empty glyph.
func (r *Renderer) drawPanel(name grid.Name, bound grid.Region) {
	theme := PanelThemes[name]
	style := tcell.StyleDefault.Foreground(tcell.ColorGray).Background(theme.EmptyBG)
	for row := bound.Row; row < bound.Row+bound.Height; row++ {
		for col := bound.Col; col < bound.Col+bound.Width; col++ {
			r.putCell(row, col, theme.Empty, style)
		}
	}
}

// drawSlots shades the configured equipment slot regions.
func (r *Renderer) drawSlots(eq config.EquipmentGrid) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(slotBG)
	for _, s := range component.EquipmentSlots {
		region, ok := eq.Slot(s)
		if !ok {
			continue
		}
		for row := region.Row; row < region.Row+region.Height; row++ {
			for col := region.Col; col < region.Col+region.Width; col++ {
				r.putCell(row, col, " ", style)
			}
		}
		// Slot initial in the top-left cell.
		r.putCell(region.Row, region.Col, s.String()[:1], style)
	}
}

// drawItems renders every placed item: its glyph in the top-left cell and
// the rest of its footprint shaded.
func (r *Renderer) drawItems(w *ecs.World) {
	for _, id := range w.Query(component.CTagItem, component.CPlacement, component.CItem) {
		p := w.Get(id, component.CPlacement).(component.Placement)
		item := w.Get(id, component.CItem).(component.CItemComp).Item
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(PanelThemes[p.Grid].ItemBG)
		for row := p.Region.Row; row < p.Region.Row+p.Region.Height; row++ {
			for col := p.Region.Col; col < p.Region.Col+p.Region.Width; col++ {
				r.putCell(row, col, " ", style)
			}
		}
		glyph := item.Glyph
		if glyph == "" {
			glyph = "?"
		}
		r.putCell(p.Region.Row, p.Region.Col, glyph, style)
	}
}

// putCell draws glyph in the two columns of cell (row, col).
func (r *Renderer) putCell(row, col int, glyph string, style tcell.Style) {
	sx, sy, visible := r.camera.CellToScreen(row, col)
	if !visible {
		return
	}
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
