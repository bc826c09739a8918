package pixelgrid

// FillOption configures FloodFill via functional arguments.
type FillOption func(*FillOptions)

// FillOptions holds callbacks applied during FloodFill.
type FillOptions struct {
	// OnPaint is called once for every cell FloodFill repaints, in paint order.
	// The start cell is always reported first.
	OnPaint func(c Coord)
}

// DefaultFillOptions returns FillOptions with a no-op OnPaint hook.
func DefaultFillOptions() FillOptions {
	return FillOptions{
		OnPaint: func(Coord) {},
	}
}

// WithOnPaint registers a callback invoked for each repainted cell.
// A nil fn is ignored.
func WithOnPaint(fn func(c Coord)) FillOption {
	return func(o *FillOptions) {
		if fn != nil {
			o.OnPaint = fn
		}
	}
}
