package world

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"darkdungeon/pkg/engine/logger"
)

// Standard map indices
const (
	Overworld = 0
	Dungeon   = 1
	Maze      = 2
)

// MapSpec describes one map to create
type MapSpec struct {
	Name   string
	Width  int
	Height int
}

// DefaultMapSpecs returns the three maps of the game: a large overworld, a
// small linear dungeon and a larger maze dungeon
func DefaultMapSpecs() []MapSpec {
	return []MapSpec{
		{Name: "overworld", Width: 90, Height: 90},
		{Name: "dungeon", Width: 10, Height: 10},
		{Name: "maze", Width: 20, Height: 20},
	}
}

// Atlas holds a fixed set of maps and tracks which one is active. The
// coordinate accessors on Atlas are shorthands for the same call on Active().
type Atlas struct {
	maps   []*Map
	active int
}

// NewAtlas creates one map per spec, all sharing the same bucket count. The
// first map starts active. It panics if specs is empty.
func NewAtlas(buckets uint32, specs []MapSpec, opts ...MapOption) *Atlas {
	if len(specs) == 0 {
		panic("atlas needs at least one map")
	}

	a := &Atlas{maps: make([]*Map, len(specs))}
	for i, spec := range specs {
		a.maps[i] = NewMap(spec.Name, spec.Width, spec.Height, buckets, opts...)
		logger.Log.WithFields(logrus.Fields{
			"map":     spec.Name,
			"index":   i,
			"width":   spec.Width,
			"height":  spec.Height,
			"buckets": buckets,
		}).Debug("map initialised")
	}
	return a
}

// Len returns the number of maps
func (a *Atlas) Len() int {
	return len(a.maps)
}

// Map returns the map at index i, or nil if out of range
func (a *Atlas) Map(i int) *Map {
	if i < 0 || i >= len(a.maps) {
		return nil
	}
	return a.maps[i]
}

// Maps returns all maps in index order
func (a *Atlas) Maps() []*Map {
	return a.maps
}

// Activate makes map i the active map and returns it. It panics if i is out
// of range.
func (a *Atlas) Activate(i int) *Map {
	if i < 0 || i >= len(a.maps) {
		panic(fmt.Sprintf("map index %d out of range [0,%d)", i, len(a.maps)))
	}
	a.active = i
	return a.maps[i]
}

// Active returns the active map
func (a *Atlas) Active() *Map {
	return a.maps[a.active]
}

// ActiveIndex returns the index of the active map
func (a *Atlas) ActiveIndex() int {
	return a.active
}

// Width returns the active map's width
func (a *Atlas) Width() int {
	return a.Active().Width()
}

// Height returns the active map's height
func (a *Atlas) Height() int {
	return a.Active().Height()
}

// Area returns the active map's area
func (a *Atlas) Area() int {
	return a.Active().Area()
}

// Here returns the item at (x, y) on the active map
func (a *Atlas) Here(x, y int) *MapItem {
	return a.Active().Here(x, y)
}

// North returns the item north of (x, y) on the active map
func (a *Atlas) North(x, y int) *MapItem {
	return a.Active().North(x, y)
}

// South returns the item south of (x, y) on the active map
func (a *Atlas) South(x, y int) *MapItem {
	return a.Active().South(x, y)
}

// East returns the item east of (x, y) on the active map
func (a *Atlas) East(x, y int) *MapItem {
	return a.Active().East(x, y)
}

// West returns the item west of (x, y) on the active map
func (a *Atlas) West(x, y int) *MapItem {
	return a.Active().West(x, y)
}

// Erase destroys the item at (x, y) on the active map
func (a *Atlas) Erase(x, y int) {
	a.Active().Erase(x, y)
}

// Destroy tears down every map
func (a *Atlas) Destroy() {
	for _, m := range a.maps {
		m.Destroy()
	}
}
