// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"darkdungeon/pkg/engine/hashtable"
)

// Grid is a width x height tile space whose contents live in a chained hash
// table keyed by XYKey. Dimensions describe the playable area only; the table
// accepts any coordinate, so sentinels can be parked outside the bounds.
type Grid[T any] struct {
	width  int
	height int
	items  *hashtable.Table[T]
}

// NewGrid creates an empty grid backed by a table with the given bucket
// count. It panics on non-positive dimensions or a zero bucket count.
func NewGrid[T any](width, height int, buckets uint32, opts ...hashtable.Option[T]) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	return &Grid[T]{
		width:  width,
		height: height,
		items:  hashtable.New[T](buckets, ModHash(buckets), opts...),
	}
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// Area returns width * height
func (g *Grid[T]) Area() int {
	return g.width * g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Here returns the value stored at (x, y).
func (g *Grid[T]) Here(x, y int) (T, bool) {
	return g.items.Get(XYKey(x, y))
}

// Neighbor returns the value one step from (x, y) in dir.
func (g *Grid[T]) Neighbor(x, y int, dir Direction) (T, bool) {
	dx, dy := dir.Delta()
	return g.Here(x+dx, y+dy)
}

// Put stores v at (x, y). A value already at that coordinate is returned to
// the caller with replaced == true.
func (g *Grid[T]) Put(x, y int, v T) (old T, replaced bool) {
	return g.items.Insert(XYKey(x, y), v)
}

// Take removes and returns the value at (x, y) without releasing it.
func (g *Grid[T]) Take(x, y int) (T, bool) {
	return g.items.Remove(XYKey(x, y))
}

// Erase removes the value at (x, y) and releases it through the table's
// release hook. It reports whether anything was there.
func (g *Grid[T]) Erase(x, y int) bool {
	key := XYKey(x, y)
	if !g.items.Has(key) {
		return false
	}
	g.items.Delete(key)
	return true
}

// Count returns the number of stored values, including out-of-bounds ones.
func (g *Grid[T]) Count() int {
	return g.items.Len()
}

// Each calls fn for every stored value in table order.
func (g *Grid[T]) Each(fn func(v T)) {
	g.items.Each(func(_ uint32, v T) {
		fn(v)
	})
}

// ForEachCell iterates over all in-bounds cells row by row, calling fn for
// each occupied one
func (g *Grid[T]) ForEachCell(fn func(x, y int, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if v, ok := g.Here(x, y); ok {
				fn(x, y, v)
			}
		}
	}
}

// Stats reports the backing table's occupancy.
func (g *Grid[T]) Stats() hashtable.Stats {
	return g.items.Stats()
}

// Destroy releases every stored value. The grid stays usable and empty.
func (g *Grid[T]) Destroy() {
	g.items.Destroy()
}
