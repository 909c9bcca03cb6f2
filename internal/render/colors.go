package render

import (
	"dungeon-inventory/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// PanelTheme holds the look of one grid panel. Emoji carry their own colors,
// so items are told apart from empty cells by background only.
type PanelTheme struct {
	Empty   string      // glyph for a free cell
	EmptyBG tcell.Color // background of a free cell
	ItemBG  tcell.Color // background of a covered cell
	Label   string      // legend text
	LabelFG tcell.Color // legend color
}

// PanelThemes maps each grid to its theme.
var PanelThemes = map[grid.Name]PanelTheme{
	grid.DropIn: {
		Empty:   "·",
		EmptyBG: tcell.ColorBlack,
		ItemBG:  tcell.ColorDarkGoldenrod,
		Label:   "Drop",
		LabelFG: tcell.ColorGold,
	},
	grid.Inventory: {
		Empty:   "·",
		EmptyBG: tcell.ColorBlack,
		ItemBG:  tcell.ColorDarkSlateGray,
		Label:   "Pack",
		LabelFG: tcell.ColorLightSteelBlue,
	},
	grid.Crafting: {
		Empty:   "░",
		EmptyBG: tcell.ColorBlack,
		ItemBG:  tcell.ColorDarkOliveGreen,
		Label:   "Craft",
		LabelFG: tcell.ColorLightGreen,
	},
	grid.Equipped: {
		Empty:   " ",
		EmptyBG: tcell.ColorBlack,
		ItemBG:  tcell.ColorDarkMagenta,
		Label:   "Worn",
		LabelFG: tcell.ColorOrchid,
	},
}

// slotBG marks the cells of a configured equipment slot.
const slotBG = tcell.ColorGray
