package assets

// Emoji constants used as item glyphs.
const (
	GlyphHyperflask     = "🧪"
	GlyphPrismShard     = "💎"
	GlyphMemoryScroll   = "📜"
	GlyphTesseract      = "📦"
	GlyphCrystalHelm    = "⛑️"
	GlyphFrostWeave     = "🥋"
	GlyphFluxTreads     = "👢"
	GlyphShardBlade     = "🗡️"
	GlyphResonanceMaul  = "🔨"
	GlyphPhaseMirror    = "🪞"
	GlyphVoidCrown      = "👑"
	GlyphPrismaticPlate = "🛡️"
	GlyphAbyssalCleaver = "🪓"
	GlyphResonanceCoil  = "🌀"
	GlyphNanoSyringe    = "💉"
	GlyphCalcifiedShell = "🐚"
)
