package entities

// Sprite tags name the artwork a renderer should use for an item. Several
// sprites can share a kind (dragon and goblin are both Danger).
const (
	SpriteWall      = "wall"
	SpritePlant     = "plant"
	SpriteWizard    = "wizard"
	SpriteKey       = "key"
	SpriteChest     = "chest"
	SpriteLadder    = "ladder"
	SpriteSpell     = "spell"
	SpriteSpellDark = "spell_dark"
	SpriteDragon    = "dragon"
	SpriteGoblin    = "goblin"
	SpriteGrave     = "grave"
	SpriteElixir    = "elixir"
	SpriteSign      = "sign"
)

// SpriteInfo holds the text-mode appearance of a sprite
type SpriteInfo struct {
	Kind  Kind   // Kind the sprite is drawn for
	Glyph rune   // Single ASCII character for plain map prints
	Icon  string // Unicode icon for terminal output
}

// Sprites maps sprite tags to their appearance
var Sprites = map[string]SpriteInfo{
	SpriteWall:      {Kind: Wall, Glyph: 'W', Icon: "▒"},
	SpritePlant:     {Kind: Plant, Glyph: 'P', Icon: "♣"},
	SpriteWizard:    {Kind: NPC, Glyph: 'N', Icon: "☺"},
	SpriteKey:       {Kind: Key, Glyph: 'K', Icon: "⚷"},
	SpriteChest:     {Kind: Chest, Glyph: 'C', Icon: "▣"},
	SpriteLadder:    {Kind: Ladder, Glyph: 'L', Icon: "≡"},
	SpriteSpell:     {Kind: Spell, Glyph: 'B', Icon: "✧"},
	SpriteSpellDark: {Kind: SpellDark, Glyph: 'A', Icon: "✦"},
	SpriteDragon:    {Kind: Danger, Glyph: 'D', Icon: "Ж"},
	SpriteGoblin:    {Kind: Danger, Glyph: 'G', Icon: "ж"},
	SpriteGrave:     {Kind: Grave, Glyph: 'T', Icon: "†"},
	SpriteElixir:    {Kind: Elixir, Glyph: 'E', Icon: "♥"},
	SpriteSign:      {Kind: Sign, Glyph: 'S', Icon: "¶"},
}

// AllSprites returns every known sprite tag in legend order
func AllSprites() []string {
	return []string{
		SpriteWall, SpritePlant, SpriteWizard, SpriteKey, SpriteChest, SpriteLadder, SpriteSpell,
		SpriteSpellDark, SpriteDragon, SpriteGoblin, SpriteGrave, SpriteElixir, SpriteSign,
	}
}

// GlyphFor returns the plain glyph for a sprite, or '?' for unknown tags
func GlyphFor(sprite string) rune {
	if info, ok := Sprites[sprite]; ok {
		return info.Glyph
	}
	return '?'
}

// IconFor returns the terminal icon for a sprite, or "?" for unknown tags
func IconFor(sprite string) string {
	if info, ok := Sprites[sprite]; ok {
		return info.Icon
	}
	return "?"
}
