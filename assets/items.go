package assets

import "dungeon-inventory/internal/component"

// Items is the built-in item catalog. Footprints are in grid cells.
var Items = []component.Item{
	// Consumables
	{ID: "hyperflask", Name: "Hyperflask", Glyph: GlyphHyperflask, Width: 1, Height: 1},
	{ID: "prism_shard", Name: "Prism Shard", Glyph: GlyphPrismShard, Width: 1, Height: 1},
	{ID: "memory_scroll", Name: "Memory Scroll", Glyph: GlyphMemoryScroll, Width: 1, Height: 2},
	{ID: "nano_syringe", Name: "Nano-Syringe", Glyph: GlyphNanoSyringe, Width: 1, Height: 1},
	{ID: "resonance_coil", Name: "Resonance Coil", Glyph: GlyphResonanceCoil, Width: 2, Height: 1},
	{ID: "tesseract", Name: "Tesseract Cube", Glyph: GlyphTesseract, Width: 2, Height: 2},
	// Head
	{ID: "crystal_helm", Name: "Crystal Helm", Glyph: GlyphCrystalHelm, Slot: component.SlotHead, Width: 2, Height: 2},
	{ID: "void_crown", Name: "Void Crown", Glyph: GlyphVoidCrown, Slot: component.SlotHead, Width: 2, Height: 1},
	// Body
	{ID: "frost_weave", Name: "Frost Weave", Glyph: GlyphFrostWeave, Slot: component.SlotBody, Width: 2, Height: 3},
	{ID: "prismatic_plate", Name: "Prismatic Plate", Glyph: GlyphPrismaticPlate, Slot: component.SlotBody, Width: 2, Height: 3},
	{ID: "calcified_carapace", Name: "Calcified Carapace", Glyph: GlyphCalcifiedShell, Slot: component.SlotBody, Width: 2, Height: 2},
	// Feet
	{ID: "flux_treads", Name: "Flux Treads", Glyph: GlyphFluxTreads, Slot: component.SlotFeet, Width: 2, Height: 1},
	// Weapons
	{ID: "shard_blade", Name: "Shard Blade", Glyph: GlyphShardBlade, Slot: component.SlotMainHand, Width: 1, Height: 3},
	{ID: "resonance_maul", Name: "Resonance Maul", Glyph: GlyphResonanceMaul, Slot: component.SlotMainHand, Width: 1, Height: 3},
	{ID: "abyssal_cleaver", Name: "Abyssal Cleaver", Glyph: GlyphAbyssalCleaver, Slot: component.SlotMainHand, Width: 1, Height: 2},
	// Off-hand
	{ID: "phase_mirror", Name: "Phase Mirror", Glyph: GlyphPhaseMirror, Slot: component.SlotOffHand, Width: 1, Height: 2},
}
