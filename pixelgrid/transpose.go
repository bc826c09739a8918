package pixelgrid

// Transpose swaps rows and columns: Width and Height exchange values and the
// colour at (x,y) moves to (y,x).
// A fresh buffer is allocated, filled, and swapped in.
// Complexity: O(W×H) time and memory.
func (g *Grid) Transpose() {
	w, h := g.width, g.height
	res := make([]Colour, len(g.cells))
	// cells[(y-1)*w + (x-1)] → res[(x-1)*h + (y-1)]
	var base int
	for row := 0; row < h; row++ {
		base = row * w
		for col := 0; col < w; col++ {
			res[col*h+row] = g.cells[base+col]
		}
	}
	g.cells = res
	g.width, g.height = h, w
}
