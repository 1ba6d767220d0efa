package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the x and y offsets for one step in this direction.
// y grows downwards, so North is y-1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Orientation is the axis a run of tiles extends along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Step returns the offset of the i-th tile of a run starting at the origin.
func (o Orientation) Step(i int) (dx, dy int) {
	if o == Vertical {
		return 0, i
	}
	return i, 0
}
