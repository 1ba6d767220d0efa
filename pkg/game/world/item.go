// Package world provides the game's spatial layer: typed map items stored on
// hash-backed grids, and the fixed set of maps the game switches between.
package world

import (
	"darkdungeon/pkg/game/entities"
)

// MapItem is the payload stored at a map coordinate.
type MapItem struct {
	Kind     entities.Kind
	Walkable bool

	// Sprite tells a renderer which artwork to use. The core never interprets it.
	Sprite string

	// Data holds optional game-specific state (sign text, loot, ...).
	Data any
}

// NewMapItem creates an item with the kind's default walkability and sprite
func NewMapItem(kind entities.Kind) *MapItem {
	info := entities.KindTypes[kind]
	return &MapItem{
		Kind:     kind,
		Walkable: info.Walkable,
		Sprite:   info.Sprite,
	}
}

// Is reports whether the item is non-nil and of the given kind
func (it *MapItem) Is(kind entities.Kind) bool {
	return it != nil && it.Kind == kind
}

// Glyph returns the plain-text glyph for the item's sprite
func (it *MapItem) Glyph() rune {
	return entities.GlyphFor(it.Sprite)
}
