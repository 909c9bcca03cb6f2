package game

import "github.com/gdamore/tcell/v2"

// Action represents a user-requested demo action.
type Action uint8

const (
	ActionNone      Action = iota
	ActionLoot             // queue one random loot request
	ActionLootBurst        // queue a handful of loot requests in one tick
	ActionNarrate          // queue one random narration request
	ActionStash            // move drop-zone items into the inventory
	ActionEquip            // equip whatever fits a free slot
	ActionClear            // destroy everything in the drop zone
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'l':
		return ActionLoot
	case 'L':
		return ActionLootBurst
	case 'n', 'N':
		return ActionNarrate
	case 's', 'S':
		return ActionStash
	case 'e', 'E':
		return ActionEquip
	case 'c', 'C':
		return ActionClear
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
