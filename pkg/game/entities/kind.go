// Package entities contains the closed set of map item kinds and their
// static properties.
package entities

// Kind is the discriminant of a map item.
type Kind int

const (
	Wall      Kind = iota // Impassable wall segment
	Plant                 // Background foliage
	NPC                   // The wizard
	Key                   // Key handed out by the wizard
	Chest                 // Treasure chest opened with the key
	Ladder                // Ladder between the overworld and a dungeon
	Spell                 // Light spell, defeats the dragon
	SpellDark             // Dark spell, defeats the goblin
	Danger                // Dragon or goblin
	Grave                 // Left behind by a defeated danger
	Elixir                // Health drop
	Sign                  // Readable signpost
)

// kindCount is the number of kinds (for iteration).
const kindCount = 12

// KindInfo contains the static properties of each kind
type KindInfo struct {
	Name     string
	Walkable bool
	Sprite   string // Default sprite tag handed to renderers
}

// KindTypes maps kinds to their properties
var KindTypes = map[Kind]KindInfo{
	Wall:      {Name: "Wall", Walkable: false, Sprite: SpriteWall},
	Plant:     {Name: "Plant", Walkable: true, Sprite: SpritePlant},
	NPC:       {Name: "Wizard", Walkable: true, Sprite: SpriteWizard},
	Key:       {Name: "Key", Walkable: true, Sprite: SpriteKey},
	Chest:     {Name: "Chest", Walkable: true, Sprite: SpriteChest},
	Ladder:    {Name: "Ladder", Walkable: true, Sprite: SpriteLadder},
	Spell:     {Name: "Light Spell", Walkable: true, Sprite: SpriteSpell},
	SpellDark: {Name: "Dark Spell", Walkable: true, Sprite: SpriteSpellDark},
	Danger:    {Name: "Danger", Walkable: false, Sprite: SpriteDragon},
	Grave:     {Name: "Grave", Walkable: false, Sprite: SpriteGrave},
	Elixir:    {Name: "Elixir", Walkable: true, Sprite: SpriteElixir},
	Sign:      {Name: "Sign", Walkable: true, Sprite: SpriteSign},
}

// AllKinds returns every kind in declaration order
func AllKinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// String returns the display name of the kind
func (k Kind) String() string {
	if info, ok := KindTypes[k]; ok {
		return info.Name
	}
	return "Unknown"
}

// Walkable reports whether the player may step onto an item of this kind
func (k Kind) Walkable() bool {
	return KindTypes[k].Walkable
}
