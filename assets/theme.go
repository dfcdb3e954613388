package assets

// Emoji glyphs keyed by content sprite id.
var spriteGlyphs = map[string]string{
	"actor_player":       "🧙",
	"actor_goblin":       "👺",
	"actor_forest_wolf":  "🐺",
	"prop_chest":         "🧰",
	"item_short_sword":   "🗡",
	"item_bow_basic":     "🏹",
	"item_arrow_wooden":  "➶",
	"item_oil_bottle":    "🧴",
	"item_dirt_clod":     "🟤",
	"item_leather_cap":   "🧢",
	"item_wooden_shield": "🛡",
}

// GlyphUnknown is drawn for sprite ids with no glyph.
const GlyphUnknown = "❓"

// Glyph returns the emoji for a sprite id.
func Glyph(spriteID string) string {
	if g, ok := spriteGlyphs[spriteID]; ok {
		return g
	}
	return GlyphUnknown
}

// Tile glyphs, indexed by the names gamemap.TileType.String returns.
var tileGlyphs = map[string]string{
	"ground_normal": "·",
	"ground_burnt":  "▒",
	"ground_water":  "≈",
	"ground_oil":    "░",
	"wall_stone":    "🧱",
	"wall_metal":    "▓",
	"tree_normal":   "🌲",
	"tree_burning":  "🔥",
	"tree_burnt":    "🪵",
	"fire":          "🔥",
	"overlay_water": "💧",
	"overlay_oil":   "🛢",
}

// TileGlyph returns the glyph for a tile type name.
func TileGlyph(name string) string {
	if g, ok := tileGlyphs[name]; ok {
		return g
	}
	return "?"
}

// Glyphs for things that have no sprite id.
const (
	GlyphPile       = "🎒"
	GlyphProjectile = "•"
	GlyphCursor     = "◎"
)
