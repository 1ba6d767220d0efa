package world

import (
	"github.com/zyedidia/generic/mapset"

	"darkdungeon/pkg/engine/hashtable"
	"darkdungeon/pkg/engine/world"
	"darkdungeon/pkg/game/entities"
)

// Map is one independently sized grid of map items. It owns every item
// stored on it: displaced, erased and torn-down items are released through
// the release hook, never handed back.
type Map struct {
	name    string
	grid    *world.Grid[*MapItem]
	release func(item *MapItem)
}

// MapOption configures a Map
type MapOption func(*Map)

// WithReleaseHook registers fn to observe every item the map releases
func WithReleaseHook(fn func(item *MapItem)) MapOption {
	return func(m *Map) {
		m.release = fn
	}
}

// NewMap creates an empty map. It panics on non-positive dimensions or a
// zero bucket count.
func NewMap(name string, width, height int, buckets uint32, opts ...MapOption) *Map {
	m := &Map{name: name}
	for _, opt := range opts {
		opt(m)
	}
	m.grid = world.NewGrid(width, height, buckets, hashtable.WithRelease(func(_ uint32, item *MapItem) {
		m.releaseItem(item)
	}))
	return m
}

func (m *Map) releaseItem(item *MapItem) {
	if m.release != nil && item != nil {
		m.release(item)
	}
}

// Name returns the map's name
func (m *Map) Name() string {
	return m.name
}

// Width returns the number of columns
func (m *Map) Width() int {
	return m.grid.Width()
}

// Height returns the number of rows
func (m *Map) Height() int {
	return m.grid.Height()
}

// Area returns width * height
func (m *Map) Area() int {
	return m.grid.Area()
}

// InBounds checks if (x, y) lies inside the map
func (m *Map) InBounds(x, y int) bool {
	return m.grid.InBounds(x, y)
}

// Here returns the item at (x, y), or nil
func (m *Map) Here(x, y int) *MapItem {
	item, _ := m.grid.Here(x, y)
	return item
}

// Neighbor returns the item one step from (x, y) in dir, or nil
func (m *Map) Neighbor(x, y int, dir world.Direction) *MapItem {
	item, _ := m.grid.Neighbor(x, y, dir)
	return item
}

// North returns the item at (x, y-1), or nil
func (m *Map) North(x, y int) *MapItem {
	return m.Neighbor(x, y, world.North)
}

// South returns the item at (x, y+1), or nil
func (m *Map) South(x, y int) *MapItem {
	return m.Neighbor(x, y, world.South)
}

// East returns the item at (x+1, y), or nil
func (m *Map) East(x, y int) *MapItem {
	return m.Neighbor(x, y, world.East)
}

// West returns the item at (x-1, y), or nil
func (m *Map) West(x, y int) *MapItem {
	return m.Neighbor(x, y, world.West)
}

// IsBlocked returns true if (x, y) holds a non-walkable item
func (m *Map) IsBlocked(x, y int) bool {
	item := m.Here(x, y)
	return item != nil && !item.Walkable
}

// Erase destroys the item at (x, y). Erasing an empty cell does nothing.
func (m *Map) Erase(x, y int) {
	m.grid.Erase(x, y)
}

// Place stores item at (x, y). Whatever was there before is released.
func (m *Map) Place(x, y int, item *MapItem) *MapItem {
	if old, replaced := m.grid.Put(x, y, item); replaced && old != item {
		m.releaseItem(old)
	}
	return item
}

// Add places a fresh item of the given kind at (x, y)
func (m *Map) Add(x, y int, kind entities.Kind) *MapItem {
	return m.Place(x, y, NewMapItem(kind))
}

func (m *Map) addSprite(x, y int, kind entities.Kind, sprite string) *MapItem {
	item := NewMapItem(kind)
	item.Sprite = sprite
	return m.Place(x, y, item)
}

// AddWall places length contiguous wall segments starting at (x, y)
func (m *Map) AddWall(x, y int, dir world.Orientation, length int) {
	for i := 0; i < length; i++ {
		dx, dy := dir.Step(i)
		m.Add(x+dx, y+dy, entities.Wall)
	}
}

// AddPlant places a plant at (x, y)
func (m *Map) AddPlant(x, y int) *MapItem {
	return m.Add(x, y, entities.Plant)
}

// AddNPC places the wizard at (x, y)
func (m *Map) AddNPC(x, y int) *MapItem {
	return m.Add(x, y, entities.NPC)
}

// AddKey places a key at (x, y)
func (m *Map) AddKey(x, y int) *MapItem {
	return m.Add(x, y, entities.Key)
}

// AddChest places a chest at (x, y)
func (m *Map) AddChest(x, y int) *MapItem {
	return m.Add(x, y, entities.Chest)
}

// AddLadder places a ladder at (x, y)
func (m *Map) AddLadder(x, y int) *MapItem {
	return m.Add(x, y, entities.Ladder)
}

// AddSpell places a light spell at (x, y)
func (m *Map) AddSpell(x, y int) *MapItem {
	return m.Add(x, y, entities.Spell)
}

// AddSpellDark places a dark spell at (x, y)
func (m *Map) AddSpellDark(x, y int) *MapItem {
	return m.Add(x, y, entities.SpellDark)
}

// AddDragon places a dragon danger at (x, y)
func (m *Map) AddDragon(x, y int) *MapItem {
	return m.addSprite(x, y, entities.Danger, entities.SpriteDragon)
}

// AddGoblin places a goblin danger at (x, y)
func (m *Map) AddGoblin(x, y int) *MapItem {
	return m.addSprite(x, y, entities.Danger, entities.SpriteGoblin)
}

// AddGrave places a grave at (x, y)
func (m *Map) AddGrave(x, y int) *MapItem {
	return m.Add(x, y, entities.Grave)
}

// AddElixir places an elixir at (x, y)
func (m *Map) AddElixir(x, y int) *MapItem {
	return m.Add(x, y, entities.Elixir)
}

// AddSign places a sign at (x, y). text is kept as the item's Data.
func (m *Map) AddSign(x, y int, text string) *MapItem {
	item := m.Add(x, y, entities.Sign)
	if text != "" {
		item.Data = text
	}
	return item
}

// ForEachCell calls fn for every occupied in-bounds cell, row by row
func (m *Map) ForEachCell(fn func(x, y int, item *MapItem)) {
	m.grid.ForEachCell(fn)
}

// Count returns the number of items on the map, including off-grid ones
func (m *Map) Count() int {
	return m.grid.Count()
}

// Kinds returns the set of kinds currently present on the map
func (m *Map) Kinds() mapset.Set[entities.Kind] {
	kinds := mapset.New[entities.Kind]()
	m.grid.Each(func(item *MapItem) {
		kinds.Put(item.Kind)
	})
	return kinds
}

// Sprites returns the set of sprite tags currently present on the map
func (m *Map) Sprites() mapset.Set[string] {
	sprites := mapset.New[string]()
	m.grid.Each(func(item *MapItem) {
		sprites.Put(item.Sprite)
	})
	return sprites
}

// Stats reports the backing table's occupancy
func (m *Map) Stats() hashtable.Stats {
	return m.grid.Stats()
}

// Destroy releases every item on the map
func (m *Map) Destroy() {
	m.grid.Destroy()
}
