package pixelgrid

import "strings"

// New constructs a width×height Grid with every cell set to DefaultColour.
// Returns ErrBadShape if either dimension is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadShape
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Colour, width*height),
	}
	g.Clear()

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Contains reports whether c lies within 1..Width × 1..Height.
// Complexity: O(1).
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 1 && c.X <= g.width && c.Y >= 1 && c.Y <= g.height
}

// At returns the colour stored at c.
// Returns ErrOutOfBounds (wrapped) if !Contains(c).
func (g *Grid) At(c Coord) (Colour, error) {
	if !g.Contains(c) {
		return 0, boundsErrorf("At", c)
	}
	return g.at(c), nil
}

// Set overwrites the colour at c in place. No other cell is touched.
// Returns ErrOutOfBounds (wrapped) if !Contains(c).
func (g *Grid) Set(c Coord, colour Colour) error {
	if !g.Contains(c) {
		return boundsErrorf("Set", c)
	}
	g.set(c, colour)
	return nil
}

// AdjacentSameColour returns the 4-neighbours of c that lie inside the grid and
// currently hold colour, enumerated left, right, up, down.
// Returns ErrOutOfBounds (wrapped) if !Contains(c).
// Complexity: O(1).
func (g *Grid) AdjacentSameColour(c Coord, colour Colour) ([]Coord, error) {
	if !g.Contains(c) {
		return nil, boundsErrorf("AdjacentSameColour", c)
	}
	return g.appendNeighbours(make([]Coord, 0, len(neighbourOffsets)), c, colour), nil
}

// Clear resets every cell to DefaultColour.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = DefaultColour
	}
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Colour, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Render returns Height lines of Width colours, top row first, each line
// terminated by '\n'. It does not mutate g.
// Complexity: O(W×H).
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			sb.WriteRune(rune(g.at(Coord{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer via Render.
func (g *Grid) String() string {
	return g.Render()
}

// offset maps a 1-based coordinate to its row-major index: (y-1)*width + (x-1).
// Callers must have checked Contains.
func (g *Grid) offset(c Coord) int {
	return (c.Y-1)*g.width + (c.X - 1)
}

func (g *Grid) at(c Coord) Colour {
	return g.cells[g.offset(c)]
}

func (g *Grid) set(c Coord, colour Colour) {
	g.cells[g.offset(c)] = colour
}

// appendNeighbours appends the in-bounds 4-neighbours of c holding colour to dst.
func (g *Grid) appendNeighbours(dst []Coord, c Coord, colour Colour) []Coord {
	for _, d := range neighbourOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Contains(n) && g.at(n) == colour {
			dst = append(dst, n)
		}
	}
	return dst
}
