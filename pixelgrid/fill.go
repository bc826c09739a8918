package pixelgrid

// FloodFill repaints the 4-connected region of cells sharing the colour of start
// with colour.
//
// Behavior:
//  1. Validate start with Contains; on failure return ErrOutOfBounds, grid untouched.
//  2. Record the old colour. If it already equals colour, return: the region is
//     already painted.
//  3. Paint start and push it on a LIFO worklist.
//  4. Pop a cell; for each neighbour (left, right, up, down) still holding the old
//     colour, paint it and push it.
//  5. Repeat until the worklist is empty.
//
// Cells are painted when pushed, so a painted cell never matches the old colour
// again and is never pushed twice.
//
// Complexity: O(R) time, O(R) memory, where R is the region size (at most W×H).
func (g *Grid) FloodFill(start Coord, colour Colour, opts ...FillOption) error {
	if !g.Contains(start) {
		return boundsErrorf("FloodFill", start)
	}
	o := DefaultFillOptions()
	for _, opt := range opts {
		opt(&o)
	}

	old := g.at(start)
	if old == colour {
		return nil
	}

	g.set(start, colour)
	o.OnPaint(start)
	stack := []Coord{start}
	next := make([]Coord, 0, len(neighbourOffsets))

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		next = g.appendNeighbours(next[:0], c, old)
		for _, n := range next {
			g.set(n, colour)
			o.OnPaint(n)
			stack = append(stack, n)
		}
	}

	return nil
}
