package pixelgrid

// DefaultColour is the colour every cell holds after New or Clear.
const DefaultColour Colour = 'O'

// Colour is a single printable character stored in one cell.
type Colour rune

// String returns the colour as a one-character string.
func (c Colour) String() string {
	return string(c)
}

// Coord addresses a cell. Both axes are 1-based: (1,1) is the top-left cell.
type Coord struct {
	X, Y int
}

// neighbourOffsets enumerates the 4-neighbourhood in a fixed order:
// left, right, up, down. No diagonals.
var neighbourOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a width×height canvas of colours.
// cells holds the colours row-major; only offset translates a Coord into it.
type Grid struct {
	width, height int
	cells         []Colour
}
