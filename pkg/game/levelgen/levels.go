package levelgen

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"darkdungeon/pkg/engine/logger"
	"darkdungeon/pkg/engine/world"
	gameworld "darkdungeon/pkg/game/world"
)

// Overworld wizard position
const (
	wizardX = 43
	wizardY = 39
)

// plantStride spaces the background plants so motion is visible.
const plantStride = 39

// placers maps legend item names to map constructors.
var placers = map[string]func(m *gameworld.Map, x, y int){
	"wall":       func(m *gameworld.Map, x, y int) { m.AddWall(x, y, world.Vertical, 1) },
	"plant":      func(m *gameworld.Map, x, y int) { m.AddPlant(x, y) },
	"npc":        func(m *gameworld.Map, x, y int) { m.AddNPC(x, y) },
	"key":        func(m *gameworld.Map, x, y int) { m.AddKey(x, y) },
	"chest":      func(m *gameworld.Map, x, y int) { m.AddChest(x, y) },
	"ladder":     func(m *gameworld.Map, x, y int) { m.AddLadder(x, y) },
	"spell":      func(m *gameworld.Map, x, y int) { m.AddSpell(x, y) },
	"spell_dark": func(m *gameworld.Map, x, y int) { m.AddSpellDark(x, y) },
	"dragon":     func(m *gameworld.Map, x, y int) { m.AddDragon(x, y) },
	"goblin":     func(m *gameworld.Map, x, y int) { m.AddGoblin(x, y) },
	"grave":      func(m *gameworld.Map, x, y int) { m.AddGrave(x, y) },
	"elixir":     func(m *gameworld.Map, x, y int) { m.AddElixir(x, y) },
	"sign":       func(m *gameworld.Map, x, y int) { m.AddSign(x, y, "") },
}

// Level is a built map plus the named positions game logic needs to find
// again (mobile dangers, spell and drop points).
type Level struct {
	Map     *gameworld.Map
	Markers map[string]world.Point
}

func newLevel(m *gameworld.Map) *Level {
	return &Level{Map: m, Markers: make(map[string]world.Point)}
}

// Marker returns the position recorded under name
func (l *Level) Marker(name string) (world.Point, bool) {
	p, ok := l.Markers[name]
	return p, ok
}

func mapLog(m *gameworld.Map) *logrus.Entry {
	return logger.Log.WithField("map", m.Name())
}

// addBorder walls in the outer ring of the map
func addBorder(m *gameworld.Map) {
	w, h := m.Width(), m.Height()
	m.AddWall(0, 0, world.Horizontal, w)
	m.AddWall(0, h-1, world.Horizontal, w)
	m.AddWall(0, 0, world.Vertical, h)
	m.AddWall(w-1, 0, world.Vertical, h)
}

// BuildOverworld scatters plants, walls the border and places the wizard
func BuildOverworld(m *gameworld.Map) *Level {
	lvl := newLevel(m)
	w := m.Width()

	plants := 0
	for i := w + 3; i < m.Area(); i += plantStride {
		m.AddPlant(i%w, i/w)
		plants++
	}
	mapLog(m).WithField("plants", plants).Debug("plants placed")

	addBorder(m)
	mapLog(m).Debug("walls done")

	if m.InBounds(wizardX, wizardY) {
		m.AddNPC(wizardX, wizardY)
		lvl.Markers["wizard"] = world.Point{X: wizardX, Y: wizardY}
	}
	return lvl
}

// BuildDungeon builds the small linear dungeon: two interior walls, a
// ladder back up and one spell of each kind
func BuildDungeon(m *gameworld.Map) *Level {
	lvl := newLevel(m)

	addBorder(m)
	m.AddWall(1, 3, world.Horizontal, 6)
	m.AddWall(3, 6, world.Horizontal, 6)
	mapLog(m).Debug("walls done")

	m.AddLadder(1, 4)
	m.AddSpell(1, 1)
	m.AddSpellDark(8, 8)
	lvl.Markers["ladder"] = world.Point{X: 1, Y: 4}
	lvl.Markers["dragon_spell"] = world.Point{X: 1, Y: 1}
	lvl.Markers["goblin_spell"] = world.Point{X: 8, Y: 8}
	return lvl
}

// BuildFromLayout places one item per legend glyph. Spaces are empty floor;
// characters missing from the legend are skipped with a warning.
func BuildFromLayout(m *gameworld.Map, set *LayoutSet, layout *Layout) (*Level, error) {
	if layout.Width() > m.Width() || layout.Height() > m.Height() {
		return nil, fmt.Errorf("layout %dx%d does not fit map %q (%dx%d)",
			layout.Width(), layout.Height(), m.Name(), m.Width(), m.Height())
	}

	lvl := newLevel(m)
	for y, row := range layout.Rows {
		for x, c := range []rune(row) {
			if c == ' ' {
				continue
			}
			g, ok := set.Glyph(c)
			if !ok {
				mapLog(m).WithFields(logrus.Fields{"glyph": string(c), "x": x, "y": y}).Warn("unknown layout glyph")
				continue
			}
			if g.Place != "" {
				placers[g.Place](m, x, y)
			}
			if g.Marker != "" {
				lvl.Markers[g.Marker] = world.Point{X: x, Y: y}
			}
		}
	}
	mapLog(m).WithField("items", m.Count()).Debug("layout built")
	return lvl, nil
}

// BuildAll fills the overworld, dungeon and maze of the atlas and leaves the
// overworld active. The maze uses the "maze" layout from set.
func BuildAll(a *gameworld.Atlas, set *LayoutSet) ([]*Level, error) {
	if a.Len() < 3 {
		return nil, fmt.Errorf("atlas has %d maps, need 3", a.Len())
	}
	layout, ok := set.Layouts["maze"]
	if !ok {
		return nil, errors.New("no maze layout")
	}

	levels := make([]*Level, a.Len())
	levels[gameworld.Overworld] = BuildOverworld(a.Activate(gameworld.Overworld))
	levels[gameworld.Dungeon] = BuildDungeon(a.Activate(gameworld.Dungeon))

	maze, err := BuildFromLayout(a.Activate(gameworld.Maze), set, layout)
	if err != nil {
		return nil, fmt.Errorf("build maze: %w", err)
	}
	levels[gameworld.Maze] = maze

	for i := 3; i < a.Len(); i++ {
		levels[i] = newLevel(a.Map(i))
	}

	a.Activate(gameworld.Overworld)
	return levels, nil
}
