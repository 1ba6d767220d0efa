package world

import "fmt"

// Point is an (x, y) tile coordinate.
type Point struct {
	X, Y int
}

// Add returns p moved one step in dir.
func (p Point) Add(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// XYKey encodes a coordinate as a table key using the Cantor pairing
// (x+y)(x+y+1)/2 + x, computed in signed arithmetic and truncated to 32 bits.
//
// The encoding is injective for x, y >= 0. Negative components are not
// offset, so they can collide with other coordinates: XYKey(0, -1) equals
// XYKey(0, 0).
func XYKey(x, y int) uint32 {
	s := int32(x + y)
	return uint32(s*(s+1)/2 + int32(x))
}

// ModHash returns a hash function reducing keys modulo buckets.
func ModHash(buckets uint32) func(key uint32) uint32 {
	return func(key uint32) uint32 {
		return key % buckets
	}
}
