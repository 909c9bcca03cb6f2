package assets

import "dungeon-inventory/internal/config"

// DungeonTexts is the built-in narration used when no texts file loads.
// One line per category is picked at random each time it is narrated.
var DungeonTexts = config.DungeonTexts{
	config.TextEnterRoom: {
		"Frost-rimed walls hum with contained experiments. Several containment fields are no longer containing anything.",
		"The walls breathe. You tell yourself this is a metaphor. The walls do not agree.",
		"Star charts cover every surface. They don't correspond to any known sky.",
	},
	config.TextEmptyRoom: {
		"Nothing here but dust and the suggestion of a previous adventurer.",
		"The room is empty. Aggressively, deliberately empty.",
	},
	config.TextLootFound: {
		"Something glints between the floor tiles.",
		"A previous owner will not be needing this.",
		"You pocket it before the room changes its mind.",
	},
	config.TextCombat: {
		"Steel meets crystal. Both come away worse for it.",
		"The vibration at this frequency is technically music. Technically.",
	},
	config.TextVictory: {
		"It stops moving. You wait a little longer, just in case.",
	},
	config.TextRest: {
		"You rest against a humming conduit. It hums back.",
		"Sleep comes quickly. Dreams come from directions that don't exist.",
	},
	config.TextFlee: {
		"You leave with dignity. Mostly.",
		"Discretion, valour, et cetera.",
	},
}
